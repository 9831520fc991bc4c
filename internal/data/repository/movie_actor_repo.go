package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieActorRepository interface {
	CreateBatch(ctx context.Context, movieActors []*entity.MovieActor) error
	DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.MovieActor, error)

	// CountByActorID backs the delete guard on actors.
	CountByActorID(ctx context.Context, actorID uuid.UUID) (int64, error)
}

type movieActorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieActorRepository(db database.PgxIface, log *zap.Logger) MovieActorRepository {
	return &movieActorRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_actor")),
	}
}

func (r *movieActorRepository) CreateBatch(ctx context.Context, movieActors []*entity.MovieActor) error {
	if len(movieActors) == 0 {
		return nil
	}

	query := `INSERT INTO movie_actors (id, movie_id, actor_id, created_at) VALUES `
	args := []interface{}{}

	for i, ma := range movieActors {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d)",
			i*4+1, i*4+2, i*4+3, i*4+4)

		args = append(args, ma.ID, ma.MovieID, ma.ActorID, ma.CreatedAt)
	}

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch movie_actors",
			zap.Error(err),
			zap.Int("count", len(movieActors)),
		)
		return fmt.Errorf("create batch movie_actors: %w", classifyPgError(err))
	}

	return nil
}

func (r *movieActorRepository) DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error {
	query := `DELETE FROM movie_actors WHERE movie_id = $1`

	_, err := r.db.Exec(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to delete movie_actors by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("delete movie_actors: %w", err)
	}

	return nil
}

func (r *movieActorRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.MovieActor, error) {
	query := `SELECT id, movie_id, actor_id, created_at FROM movie_actors WHERE movie_id = $1`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find movie_actors by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find movie_actors: %w", err)
	}
	defer rows.Close()

	var movieActors []*entity.MovieActor
	for rows.Next() {
		var ma entity.MovieActor
		err := rows.Scan(
			&ma.ID,
			&ma.MovieID,
			&ma.ActorID,
			&ma.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie_actor row", zap.Error(err))
			return nil, fmt.Errorf("scan movie_actor row: %w", err)
		}
		movieActors = append(movieActors, &ma)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie_actor rows: %w", err)
	}

	return movieActors, nil
}

func (r *movieActorRepository) CountByActorID(ctx context.Context, actorID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM movie_actors WHERE actor_id = $1`

	var total int64
	err := r.db.QueryRow(ctx, query, actorID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count movie_actors by actor ID",
			zap.Error(err),
			zap.String("actor_id", actorID.String()),
		)
		return 0, fmt.Errorf("count movie_actors by actor: %w", err)
	}

	return total, nil
}
