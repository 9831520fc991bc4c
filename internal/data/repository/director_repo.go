package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DirectorRepository interface {
	Create(ctx context.Context, director *entity.Director) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Director, error)
	FindAll(ctx context.Context) ([]*entity.Director, error)
	Update(ctx context.Context, director *entity.Director) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type directorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDirectorRepository(db database.PgxIface, log *zap.Logger) DirectorRepository {
	return &directorRepository{
		db:  db,
		log: log.With(zap.String("repository", "director")),
	}
}

func (r *directorRepository) Create(ctx context.Context, director *entity.Director) error {
	query := `
		INSERT INTO directors (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		director.ID,
		director.Name,
		director.CreatedAt,
		director.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create director",
			zap.Error(err),
			zap.String("name", director.Name),
		)
		return fmt.Errorf("create director: %w", err)
	}

	return nil
}

func (r *directorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Director, error) {
	query := `SELECT id, name, created_at, updated_at FROM directors WHERE id = $1`

	var director entity.Director
	err := r.db.QueryRow(ctx, query, id).Scan(
		&director.ID,
		&director.Name,
		&director.CreatedAt,
		&director.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find director by ID",
			zap.Error(err),
			zap.String("director_id", id.String()),
		)
		return nil, fmt.Errorf("find director by id: %w", err)
	}

	return &director, nil
}

func (r *directorRepository) FindAll(ctx context.Context) ([]*entity.Director, error) {
	query := `SELECT id, name, created_at, updated_at FROM directors ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all directors", zap.Error(err))
		return nil, fmt.Errorf("find directors: %w", err)
	}
	defer rows.Close()

	var directors []*entity.Director
	for rows.Next() {
		var director entity.Director
		err := rows.Scan(
			&director.ID,
			&director.Name,
			&director.CreatedAt,
			&director.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan director row", zap.Error(err))
			return nil, fmt.Errorf("scan director row: %w", err)
		}
		directors = append(directors, &director)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate director rows: %w", err)
	}

	return directors, nil
}

func (r *directorRepository) Update(ctx context.Context, director *entity.Director) error {
	query := `UPDATE directors SET name = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		director.ID,
		director.Name,
		director.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update director",
			zap.Error(err),
			zap.String("director_id", director.ID.String()),
		)
		return fmt.Errorf("update director: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *directorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM directors WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete director",
			zap.Error(err),
			zap.String("director_id", id.String()),
		)
		return fmt.Errorf("delete director: %w", classifyPgError(err))
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
