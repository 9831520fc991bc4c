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

type MovieService interface {
	Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	GetAll(ctx context.Context) ([]response.MovieResponse, error)
	GetByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	Update(ctx context.Context, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	Delete(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

// movieRefs holds the resolved foreign ids of a create/update request.
type movieRefs struct {
	directorID uuid.UUID
	genreIDs   []uuid.UUID
	actorIDs   []uuid.UUID
}

// resolveRefs parses and existence-checks every referenced id before any
// write happens. Any missing reference aborts the operation with
// ErrReferenceNotFound. Duplicate ids in the request collapse to one.
func (s *movieService) resolveRefs(ctx context.Context, directorID string, genreIDs, actorIDs []string) (*movieRefs, error) {
	dirID, err := uuid.Parse(directorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid director id", ErrInvalidInput)
	}

	director, err := s.repo.Director.FindByID(ctx, dirID)
	if err != nil {
		s.log.Error("Failed to check director existence",
			zap.Error(err),
			zap.String("director_id", directorID),
		)
		return nil, fmt.Errorf("check director: %w", err)
	}
	if director == nil {
		return nil, fmt.Errorf("%w: director %s", ErrReferenceNotFound, directorID)
	}

	refs := &movieRefs{directorID: dirID}

	seenGenres := make(map[uuid.UUID]bool)
	for _, genreIDStr := range genreIDs {
		genreID, err := uuid.Parse(genreIDStr)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid genre id %s", ErrInvalidInput, genreIDStr)
		}
		if seenGenres[genreID] {
			continue
		}
		seenGenres[genreID] = true

		genre, err := s.repo.Genre.FindByID(ctx, genreID)
		if err != nil {
			s.log.Error("Failed to check genre existence",
				zap.Error(err),
				zap.String("genre_id", genreIDStr),
			)
			return nil, fmt.Errorf("check genre: %w", err)
		}
		if genre == nil {
			return nil, fmt.Errorf("%w: genre %s", ErrReferenceNotFound, genreIDStr)
		}

		refs.genreIDs = append(refs.genreIDs, genreID)
	}

	seenActors := make(map[uuid.UUID]bool)
	for _, actorIDStr := range actorIDs {
		actorID, err := uuid.Parse(actorIDStr)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid actor id %s", ErrInvalidInput, actorIDStr)
		}
		if seenActors[actorID] {
			continue
		}
		seenActors[actorID] = true

		actor, err := s.repo.Actor.FindByID(ctx, actorID)
		if err != nil {
			s.log.Error("Failed to check actor existence",
				zap.Error(err),
				zap.String("actor_id", actorIDStr),
			)
			return nil, fmt.Errorf("check actor: %w", err)
		}
		if actor == nil {
			return nil, fmt.Errorf("%w: actor %s", ErrReferenceNotFound, actorIDStr)
		}

		refs.actorIDs = append(refs.actorIDs, actorID)
	}

	return refs, nil
}

func (s *movieService) Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	refs, err := s.resolveRefs(ctx, req.DirectorID, req.GenreIDs, req.ActorIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:      req.Title,
		DirectorID: refs.directorID,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			// Director deleted between the existence check and the insert.
			return nil, fmt.Errorf("%w: director %s", ErrReferenceNotFound, req.DirectorID)
		}
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	if err := s.writeRelations(ctx, movie.ID, refs, now); err != nil {
		// No partial write: remove the movie row again.
		if delErr := s.repo.Movie.Delete(ctx, movie.ID); delErr != nil {
			s.log.Error("Failed to roll back movie after relation failure",
				zap.Error(delErr),
				zap.String("movie_id", movie.ID.String()),
			)
		}
		return nil, err
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.Int("genres", len(refs.genreIDs)),
		zap.Int("actors", len(refs.actorIDs)),
	)

	resp := response.MovieToResponse(movie, uuidStrings(refs.genreIDs), uuidStrings(refs.actorIDs))
	return &resp, nil
}

func (s *movieService) GetAll(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		genreIDs, actorIDs, err := s.relationIDs(ctx, movie.ID)
		if err != nil {
			return nil, err
		}
		movieResponses[i] = response.MovieToResponse(movie, genreIDs, actorIDs)
	}

	return movieResponses, nil
}

func (s *movieService) GetByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie id", ErrInvalidInput)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %s", ErrNotFound, movieID)
	}

	genreIDs, actorIDs, err := s.relationIDs(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	resp := response.MovieToResponse(movie, genreIDs, actorIDs)
	return &resp, nil
}

func (s *movieService) Update(ctx context.Context, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie id", ErrInvalidInput)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %s", ErrNotFound, req.MovieID)
	}

	refs, err := s.resolveRefs(ctx, req.DirectorID, req.GenreIDs, req.ActorIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	movie.Title = req.Title
	movie.DirectorID = refs.directorID
	movie.UpdatedAt = now

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, fmt.Errorf("%w: movie %s", ErrNotFound, req.MovieID)
		case errors.Is(err, repository.ErrForeignKey):
			return nil, fmt.Errorf("%w: director %s", ErrReferenceNotFound, req.DirectorID)
		}
		s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", req.MovieID))
		return nil, fmt.Errorf("update movie: %w", err)
	}

	// Replace the relation rows with the new set.
	if err := s.repo.MovieGenre.DeleteByMovieID(ctx, movie.ID); err != nil {
		return nil, fmt.Errorf("clear movie genres: %w", err)
	}
	if err := s.repo.MovieActor.DeleteByMovieID(ctx, movie.ID); err != nil {
		return nil, fmt.Errorf("clear movie actors: %w", err)
	}
	if err := s.writeRelations(ctx, movie.ID, refs, now); err != nil {
		return nil, err
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", req.MovieID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie, uuidStrings(refs.genreIDs), uuidStrings(refs.actorIDs))
	return &resp, nil
}

func (s *movieService) Delete(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("%w: invalid movie id", ErrInvalidInput)
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: movie %s", ErrNotFound, movieID)
		}
		s.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", movieID))
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}

// writeRelations inserts the join rows for the checked references.
func (s *movieService) writeRelations(ctx context.Context, movieID uuid.UUID, refs *movieRefs, now time.Time) error {
	if len(refs.genreIDs) > 0 {
		movieGenres := make([]*entity.MovieGenre, len(refs.genreIDs))
		for i, genreID := range refs.genreIDs {
			movieGenres[i] = &entity.MovieGenre{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				MovieID: movieID,
				GenreID: genreID,
			}
		}

		if err := s.repo.MovieGenre.CreateBatch(ctx, movieGenres); err != nil {
			if errors.Is(err, repository.ErrForeignKey) {
				return fmt.Errorf("%w: genre vanished during write", ErrReferenceNotFound)
			}
			s.log.Error("Failed to create movie-genre relations",
				zap.Error(err),
				zap.String("movie_id", movieID.String()),
			)
			return fmt.Errorf("create movie-genre relations: %w", err)
		}
	}

	if len(refs.actorIDs) > 0 {
		movieActors := make([]*entity.MovieActor, len(refs.actorIDs))
		for i, actorID := range refs.actorIDs {
			movieActors[i] = &entity.MovieActor{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				MovieID: movieID,
				ActorID: actorID,
			}
		}

		if err := s.repo.MovieActor.CreateBatch(ctx, movieActors); err != nil {
			if errors.Is(err, repository.ErrForeignKey) {
				return fmt.Errorf("%w: actor vanished during write", ErrReferenceNotFound)
			}
			s.log.Error("Failed to create movie-actor relations",
				zap.Error(err),
				zap.String("movie_id", movieID.String()),
			)
			return fmt.Errorf("create movie-actor relations: %w", err)
		}
	}

	return nil
}

// relationIDs loads a movie's genre and actor ids from the join tables.
func (s *movieService) relationIDs(ctx context.Context, movieID uuid.UUID) (genreIDs, actorIDs []string, err error) {
	movieGenres, err := s.repo.MovieGenre.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, nil, fmt.Errorf("get movie genres: %w", err)
	}
	for _, mg := range movieGenres {
		genreIDs = append(genreIDs, mg.GenreID.String())
	}

	movieActors, err := s.repo.MovieActor.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, nil, fmt.Errorf("get movie actors: %w", err)
	}
	for _, ma := range movieActors {
		actorIDs = append(actorIDs, ma.ActorID.String())
	}

	return genreIDs, actorIDs, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
