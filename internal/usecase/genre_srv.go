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

type GenreService interface {
	Create(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	GetAll(ctx context.Context) ([]response.GenreResponse, error)
	GetByID(ctx context.Context, genreID string) (*response.GenreResponse, error)
	Update(ctx context.Context, req *request.GenreUpdateRequest) (*response.GenreResponse, error)
	Delete(ctx context.Context, genreID string) error
}

type genreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGenreService(repo *repository.Repository, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) Create(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	genre := &entity.Genre{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
	}

	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		s.log.Error("Failed to create genre", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created",
		zap.String("genre_id", genre.ID.String()),
		zap.String("name", genre.Name),
	)

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) GetAll(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get genres", zap.Error(err))
		return nil, fmt.Errorf("get genres: %w", err)
	}

	return response.GenresToResponse(genres), nil
}

func (s *genreService) GetByID(ctx context.Context, genreID string) (*response.GenreResponse, error) {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid genre id", ErrInvalidInput)
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get genre by ID", zap.Error(err), zap.String("genre_id", genreID))
		return nil, fmt.Errorf("get genre by id: %w", err)
	}
	if genre == nil {
		return nil, fmt.Errorf("%w: genre %s", ErrNotFound, genreID)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) Update(ctx context.Context, req *request.GenreUpdateRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update genre validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(req.GenreID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid genre id", ErrInvalidInput)
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find genre: %w", err)
	}
	if genre == nil {
		return nil, fmt.Errorf("%w: genre %s", ErrNotFound, req.GenreID)
	}

	genre.Name = req.Name
	genre.UpdatedAt = time.Now()

	if err := s.repo.Genre.Update(ctx, genre); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: genre %s", ErrNotFound, req.GenreID)
		}
		s.log.Error("Failed to update genre", zap.Error(err), zap.String("genre_id", req.GenreID))
		return nil, fmt.Errorf("update genre: %w", err)
	}

	s.log.Info("Genre updated",
		zap.String("genre_id", req.GenreID),
		zap.String("name", genre.Name),
	)

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) Delete(ctx context.Context, genreID string) error {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return fmt.Errorf("%w: invalid genre id", ErrInvalidInput)
	}

	refs, err := s.repo.MovieGenre.CountByGenreID(ctx, id)
	if err != nil {
		return fmt.Errorf("count genre references: %w", err)
	}
	if refs > 0 {
		s.log.Warn("Delete genre blocked by references",
			zap.String("genre_id", genreID),
			zap.Int64("movies", refs),
		)
		return fmt.Errorf("%w: genre %s used by %d movie(s)", ErrEntityInUse, genreID, refs)
	}

	if err := s.repo.Genre.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("%w: genre %s", ErrNotFound, genreID)
		case errors.Is(err, repository.ErrForeignKey):
			return fmt.Errorf("%w: genre %s", ErrEntityInUse, genreID)
		}
		s.log.Error("Failed to delete genre", zap.Error(err), zap.String("genre_id", genreID))
		return fmt.Errorf("delete genre: %w", err)
	}

	s.log.Info("Genre deleted", zap.String("genre_id", genreID))
	return nil
}
