package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ActorService interface {
	Create(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
	GetAll(ctx context.Context) ([]response.ActorResponse, error)
	GetByID(ctx context.Context, actorID string) (*response.ActorResponse, error)
	Update(ctx context.Context, req *request.ActorUpdateRequest) (*response.ActorResponse, error)
	Delete(ctx context.Context, actorID string) error
}

type actorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewActorService(repo *repository.Repository, log *zap.Logger) ActorService {
	return &actorService{
		repo: repo,
		log:  log.With(zap.String("service", "actor")),
	}
}

func (s *actorService) Create(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create actor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	actor := &entity.Actor{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
	}

	if err := s.repo.Actor.Create(ctx, actor); err != nil {
		s.log.Error("Failed to create actor", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create actor: %w", err)
	}

	s.log.Info("Actor created",
		zap.String("actor_id", actor.ID.String()),
		zap.String("name", actor.Name),
	)

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) GetAll(ctx context.Context) ([]response.ActorResponse, error) {
	actors, err := s.repo.Actor.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get actors", zap.Error(err))
		return nil, fmt.Errorf("get actors: %w", err)
	}

	return response.ActorsToResponse(actors), nil
}

func (s *actorService) GetByID(ctx context.Context, actorID string) (*response.ActorResponse, error) {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid actor id", ErrInvalidInput)
	}

	actor, err := s.repo.Actor.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get actor by ID", zap.Error(err), zap.String("actor_id", actorID))
		return nil, fmt.Errorf("get actor by id: %w", err)
	}
	if actor == nil {
		return nil, fmt.Errorf("%w: actor %s", ErrNotFound, actorID)
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) Update(ctx context.Context, req *request.ActorUpdateRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update actor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(req.ActorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid actor id", ErrInvalidInput)
	}

	actor, err := s.repo.Actor.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find actor: %w", err)
	}
	if actor == nil {
		return nil, fmt.Errorf("%w: actor %s", ErrNotFound, req.ActorID)
	}

	actor.Name = req.Name
	actor.UpdatedAt = time.Now()

	if err := s.repo.Actor.Update(ctx, actor); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: actor %s", ErrNotFound, req.ActorID)
		}
		s.log.Error("Failed to update actor", zap.Error(err), zap.String("actor_id", req.ActorID))
		return nil, fmt.Errorf("update actor: %w", err)
	}

	s.log.Info("Actor updated",
		zap.String("actor_id", req.ActorID),
		zap.String("name", actor.Name),
	)

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) Delete(ctx context.Context, actorID string) error {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("%w: invalid actor id", ErrInvalidInput)
	}

	refs, err := s.repo.MovieActor.CountByActorID(ctx, id)
	if err != nil {
		return fmt.Errorf("count actor references: %w", err)
	}
	if refs > 0 {
		s.log.Warn("Delete actor blocked by references",
			zap.String("actor_id", actorID),
			zap.Int64("movies", refs),
		)
		return fmt.Errorf("%w: actor %s used by %d movie(s)", ErrEntityInUse, actorID, refs)
	}

	if err := s.repo.Actor.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("%w: actor %s", ErrNotFound, actorID)
		case errors.Is(err, repository.ErrForeignKey):
			return fmt.Errorf("%w: actor %s", ErrEntityInUse, actorID)
		}
		s.log.Error("Failed to delete actor", zap.Error(err), zap.String("actor_id", actorID))
		return fmt.Errorf("delete actor: %w", err)
	}

	s.log.Info("Actor deleted", zap.String("actor_id", actorID))
	return nil
}
