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

type ActorRepository interface {
	Create(ctx context.Context, actor *entity.Actor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error)
	FindAll(ctx context.Context) ([]*entity.Actor, error)
	Update(ctx context.Context, actor *entity.Actor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type actorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActorRepository(db database.PgxIface, log *zap.Logger) ActorRepository {
	return &actorRepository{
		db:  db,
		log: log.With(zap.String("repository", "actor")),
	}
}

func (r *actorRepository) Create(ctx context.Context, actor *entity.Actor) error {
	query := `
		INSERT INTO actors (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		actor.ID,
		actor.Name,
		actor.CreatedAt,
		actor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create actor",
			zap.Error(err),
			zap.String("name", actor.Name),
		)
		return fmt.Errorf("create actor: %w", err)
	}

	return nil
}

func (r *actorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error) {
	query := `SELECT id, name, created_at, updated_at FROM actors WHERE id = $1`

	var actor entity.Actor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&actor.ID,
		&actor.Name,
		&actor.CreatedAt,
		&actor.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find actor by ID",
			zap.Error(err),
			zap.String("actor_id", id.String()),
		)
		return nil, fmt.Errorf("find actor by id: %w", err)
	}

	return &actor, nil
}

func (r *actorRepository) FindAll(ctx context.Context) ([]*entity.Actor, error) {
	query := `SELECT id, name, created_at, updated_at FROM actors ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all actors", zap.Error(err))
		return nil, fmt.Errorf("find actors: %w", err)
	}
	defer rows.Close()

	var actors []*entity.Actor
	for rows.Next() {
		var actor entity.Actor
		err := rows.Scan(
			&actor.ID,
			&actor.Name,
			&actor.CreatedAt,
			&actor.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan actor row", zap.Error(err))
			return nil, fmt.Errorf("scan actor row: %w", err)
		}
		actors = append(actors, &actor)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate actor rows: %w", err)
	}

	return actors, nil
}

func (r *actorRepository) Update(ctx context.Context, actor *entity.Actor) error {
	query := `UPDATE actors SET name = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		actor.ID,
		actor.Name,
		actor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update actor",
			zap.Error(err),
			zap.String("actor_id", actor.ID.String()),
		)
		return fmt.Errorf("update actor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *actorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM actors WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete actor",
			zap.Error(err),
			zap.String("actor_id", id.String()),
		)
		return fmt.Errorf("delete actor: %w", classifyPgError(err))
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
