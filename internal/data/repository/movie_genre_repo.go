package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieGenreRepository interface {
	CreateBatch(ctx context.Context, movieGenres []*entity.MovieGenre) error
	DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.MovieGenre, error)

	// CountByGenreID backs the delete guard on genres.
	CountByGenreID(ctx context.Context, genreID uuid.UUID) (int64, error)
}

type movieGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieGenreRepository(db database.PgxIface, log *zap.Logger) MovieGenreRepository {
	return &movieGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_genre")),
	}
}

func (r *movieGenreRepository) CreateBatch(ctx context.Context, movieGenres []*entity.MovieGenre) error {
	if len(movieGenres) == 0 {
		return nil
	}

	query := `INSERT INTO movie_genres (id, movie_id, genre_id, created_at) VALUES `
	args := []interface{}{}

	for i, mg := range movieGenres {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d)",
			i*4+1, i*4+2, i*4+3, i*4+4)

		args = append(args, mg.ID, mg.MovieID, mg.GenreID, mg.CreatedAt)
	}

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch movie_genres",
			zap.Error(err),
			zap.Int("count", len(movieGenres)),
		)
		return fmt.Errorf("create batch movie_genres: %w", classifyPgError(err))
	}

	return nil
}

func (r *movieGenreRepository) DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error {
	query := `DELETE FROM movie_genres WHERE movie_id = $1`

	_, err := r.db.Exec(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to delete movie_genres by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("delete movie_genres: %w", err)
	}

	return nil
}

func (r *movieGenreRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.MovieGenre, error) {
	query := `SELECT id, movie_id, genre_id, created_at FROM movie_genres WHERE movie_id = $1`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find movie_genres by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find movie_genres: %w", err)
	}
	defer rows.Close()

	var movieGenres []*entity.MovieGenre
	for rows.Next() {
		var mg entity.MovieGenre
		err := rows.Scan(
			&mg.ID,
			&mg.MovieID,
			&mg.GenreID,
			&mg.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie_genre row", zap.Error(err))
			return nil, fmt.Errorf("scan movie_genre row: %w", err)
		}
		movieGenres = append(movieGenres, &mg)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie_genre rows: %w", err)
	}

	return movieGenres, nil
}

func (r *movieGenreRepository) CountByGenreID(ctx context.Context, genreID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM movie_genres WHERE genre_id = $1`

	var total int64
	err := r.db.QueryRow(ctx, query, genreID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count movie_genres by genre ID",
			zap.Error(err),
			zap.String("genre_id", genreID.String()),
		)
		return 0, fmt.Errorf("count movie_genres by genre: %w", err)
	}

	return total, nil
}
