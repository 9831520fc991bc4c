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

type DirectorService interface {
	Create(ctx context.Context, req *request.DirectorRequest) (*response.DirectorResponse, error)
	GetAll(ctx context.Context) ([]response.DirectorResponse, error)
	GetByID(ctx context.Context, directorID string) (*response.DirectorResponse, error)
	Update(ctx context.Context, req *request.DirectorUpdateRequest) (*response.DirectorResponse, error)
	Delete(ctx context.Context, directorID string) error
}

type directorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDirectorService(repo *repository.Repository, log *zap.Logger) DirectorService {
	return &directorService{
		repo: repo,
		log:  log.With(zap.String("service", "director")),
	}
}

func (s *directorService) Create(ctx context.Context, req *request.DirectorRequest) (*response.DirectorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create director validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	director := &entity.Director{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
	}

	if err := s.repo.Director.Create(ctx, director); err != nil {
		s.log.Error("Failed to create director", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create director: %w", err)
	}

	s.log.Info("Director created",
		zap.String("director_id", director.ID.String()),
		zap.String("name", director.Name),
	)

	resp := response.DirectorToResponse(director)
	return &resp, nil
}

func (s *directorService) GetAll(ctx context.Context) ([]response.DirectorResponse, error) {
	directors, err := s.repo.Director.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get directors", zap.Error(err))
		return nil, fmt.Errorf("get directors: %w", err)
	}

	return response.DirectorsToResponse(directors), nil
}

func (s *directorService) GetByID(ctx context.Context, directorID string) (*response.DirectorResponse, error) {
	id, err := uuid.Parse(directorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid director id", ErrInvalidInput)
	}

	director, err := s.repo.Director.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get director by ID", zap.Error(err), zap.String("director_id", directorID))
		return nil, fmt.Errorf("get director by id: %w", err)
	}
	if director == nil {
		return nil, fmt.Errorf("%w: director %s", ErrNotFound, directorID)
	}

	resp := response.DirectorToResponse(director)
	return &resp, nil
}

func (s *directorService) Update(ctx context.Context, req *request.DirectorUpdateRequest) (*response.DirectorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update director validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(req.DirectorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid director id", ErrInvalidInput)
	}

	director, err := s.repo.Director.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find director: %w", err)
	}
	if director == nil {
		return nil, fmt.Errorf("%w: director %s", ErrNotFound, req.DirectorID)
	}

	director.Name = req.Name
	director.UpdatedAt = time.Now()

	if err := s.repo.Director.Update(ctx, director); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: director %s", ErrNotFound, req.DirectorID)
		}
		s.log.Error("Failed to update director", zap.Error(err), zap.String("director_id", req.DirectorID))
		return nil, fmt.Errorf("update director: %w", err)
	}

	s.log.Info("Director updated",
		zap.String("director_id", req.DirectorID),
		zap.String("name", director.Name),
	)

	resp := response.DirectorToResponse(director)
	return &resp, nil
}

func (s *directorService) Delete(ctx context.Context, directorID string) error {
	id, err := uuid.Parse(directorID)
	if err != nil {
		return fmt.Errorf("%w: invalid director id", ErrInvalidInput)
	}

	// Reject the delete while any movie still references this director.
	refs, err := s.repo.Movie.CountByDirectorID(ctx, id)
	if err != nil {
		return fmt.Errorf("count director references: %w", err)
	}
	if refs > 0 {
		s.log.Warn("Delete director blocked by references",
			zap.String("director_id", directorID),
			zap.Int64("movies", refs),
		)
		return fmt.Errorf("%w: director %s used by %d movie(s)", ErrEntityInUse, directorID, refs)
	}

	if err := s.repo.Director.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("%w: director %s", ErrNotFound, directorID)
		case errors.Is(err, repository.ErrForeignKey):
			// A movie was created between the reference check and the delete;
			// the constraint caught it.
			return fmt.Errorf("%w: director %s", ErrEntityInUse, directorID)
		}
		s.log.Error("Failed to delete director", zap.Error(err), zap.String("director_id", directorID))
		return fmt.Errorf("delete director: %w", err)
	}

	s.log.Info("Director deleted", zap.String("director_id", directorID))
	return nil
}
