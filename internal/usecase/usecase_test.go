package usecase

import (
	"context"
	"sort"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"

	"github.com/google/uuid"
)

// fakeStore is a shared in-memory backing for the fake repositories. It
// mimics the contract of the pgx implementations: FindByID returns (nil, nil)
// for a missing row, Update and Delete return repository.ErrNotFound when
// nothing matched, and returned rows are copies.
type fakeStore struct {
	directors map[uuid.UUID]entity.Director
	actors    map[uuid.UUID]entity.Actor
	genres    map[uuid.UUID]entity.Genre
	movies    map[uuid.UUID]entity.Movie
	users     map[uuid.UUID]entity.User

	movieGenres []entity.MovieGenre
	movieActors []entity.MovieActor

	// failActorBatch makes the next movie-actor batch insert fail with a
	// foreign key error, simulating an actor deleted mid-write.
	failActorBatch bool
}

func newFakeRepo() (*repository.Repository, *fakeStore) {
	s := &fakeStore{
		directors: make(map[uuid.UUID]entity.Director),
		actors:    make(map[uuid.UUID]entity.Actor),
		genres:    make(map[uuid.UUID]entity.Genre),
		movies:    make(map[uuid.UUID]entity.Movie),
		users:     make(map[uuid.UUID]entity.User),
	}

	return &repository.Repository{
		User:       &fakeUserRepo{s: s},
		Director:   &fakeDirectorRepo{s: s},
		Actor:      &fakeActorRepo{s: s},
		Genre:      &fakeGenreRepo{s: s},
		Movie:      &fakeMovieRepo{s: s},
		MovieGenre: &fakeMovieGenreRepo{s: s},
		MovieActor: &fakeMovieActorRepo{s: s},
	}, s
}

type fakeDirectorRepo struct{ s *fakeStore }

func (r *fakeDirectorRepo) Create(_ context.Context, director *entity.Director) error {
	r.s.directors[director.ID] = *director
	return nil
}

func (r *fakeDirectorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Director, error) {
	director, ok := r.s.directors[id]
	if !ok {
		return nil, nil
	}
	return &director, nil
}

func (r *fakeDirectorRepo) FindAll(_ context.Context) ([]*entity.Director, error) {
	out := make([]*entity.Director, 0, len(r.s.directors))
	for id := range r.s.directors {
		director := r.s.directors[id]
		out = append(out, &director)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeDirectorRepo) Update(_ context.Context, director *entity.Director) error {
	if _, ok := r.s.directors[director.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.directors[director.ID] = *director
	return nil
}

func (r *fakeDirectorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.directors[id]; !ok {
		return repository.ErrNotFound
	}
	for _, movie := range r.s.movies {
		if movie.DirectorID == id {
			return repository.ErrForeignKey
		}
	}
	delete(r.s.directors, id)
	return nil
}

type fakeActorRepo struct{ s *fakeStore }

func (r *fakeActorRepo) Create(_ context.Context, actor *entity.Actor) error {
	r.s.actors[actor.ID] = *actor
	return nil
}

func (r *fakeActorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Actor, error) {
	actor, ok := r.s.actors[id]
	if !ok {
		return nil, nil
	}
	return &actor, nil
}

func (r *fakeActorRepo) FindAll(_ context.Context) ([]*entity.Actor, error) {
	out := make([]*entity.Actor, 0, len(r.s.actors))
	for id := range r.s.actors {
		actor := r.s.actors[id]
		out = append(out, &actor)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeActorRepo) Update(_ context.Context, actor *entity.Actor) error {
	if _, ok := r.s.actors[actor.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.actors[actor.ID] = *actor
	return nil
}

func (r *fakeActorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.actors[id]; !ok {
		return repository.ErrNotFound
	}
	for _, ma := range r.s.movieActors {
		if ma.ActorID == id {
			return repository.ErrForeignKey
		}
	}
	delete(r.s.actors, id)
	return nil
}

type fakeGenreRepo struct{ s *fakeStore }

func (r *fakeGenreRepo) Create(_ context.Context, genre *entity.Genre) error {
	r.s.genres[genre.ID] = *genre
	return nil
}

func (r *fakeGenreRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Genre, error) {
	genre, ok := r.s.genres[id]
	if !ok {
		return nil, nil
	}
	return &genre, nil
}

func (r *fakeGenreRepo) FindAll(_ context.Context) ([]*entity.Genre, error) {
	out := make([]*entity.Genre, 0, len(r.s.genres))
	for id := range r.s.genres {
		genre := r.s.genres[id]
		out = append(out, &genre)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeGenreRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.Genre, error) {
	var out []*entity.Genre
	for _, mg := range r.s.movieGenres {
		if mg.MovieID != movieID {
			continue
		}
		genre, ok := r.s.genres[mg.GenreID]
		if !ok {
			continue
		}
		out = append(out, &genre)
	}
	return out, nil
}

func (r *fakeGenreRepo) Update(_ context.Context, genre *entity.Genre) error {
	if _, ok := r.s.genres[genre.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.genres[genre.ID] = *genre
	return nil
}

func (r *fakeGenreRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.genres[id]; !ok {
		return repository.ErrNotFound
	}
	for _, mg := range r.s.movieGenres {
		if mg.GenreID == id {
			return repository.ErrForeignKey
		}
	}
	delete(r.s.genres, id)
	return nil
}

type fakeMovieRepo struct{ s *fakeStore }

func (r *fakeMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	if _, ok := r.s.directors[movie.DirectorID]; !ok {
		return repository.ErrForeignKey
	}
	r.s.movies[movie.ID] = *movie
	return nil
}

func (r *fakeMovieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	movie, ok := r.s.movies[id]
	if !ok {
		return nil, nil
	}
	return &movie, nil
}

func (r *fakeMovieRepo) FindAll(_ context.Context) ([]*entity.Movie, error) {
	out := make([]*entity.Movie, 0, len(r.s.movies))
	for id := range r.s.movies {
		movie := r.s.movies[id]
		out = append(out, &movie)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMovieRepo) Update(_ context.Context, movie *entity.Movie) error {
	if _, ok := r.s.movies[movie.ID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.s.directors[movie.DirectorID]; !ok {
		return repository.ErrForeignKey
	}
	r.s.movies[movie.ID] = *movie
	return nil
}

func (r *fakeMovieRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.movies[id]; !ok {
		return repository.ErrNotFound
	}
	r.s.movieGenres = filterMovieGenres(r.s.movieGenres, id)
	r.s.movieActors = filterMovieActors(r.s.movieActors, id)
	delete(r.s.movies, id)
	return nil
}

func (r *fakeMovieRepo) CountByDirectorID(_ context.Context, directorID uuid.UUID) (int64, error) {
	var total int64
	for _, movie := range r.s.movies {
		if movie.DirectorID == directorID {
			total++
		}
	}
	return total, nil
}

type fakeMovieGenreRepo struct{ s *fakeStore }

func (r *fakeMovieGenreRepo) CreateBatch(_ context.Context, movieGenres []*entity.MovieGenre) error {
	for _, mg := range movieGenres {
		if _, ok := r.s.genres[mg.GenreID]; !ok {
			return repository.ErrForeignKey
		}
		r.s.movieGenres = append(r.s.movieGenres, *mg)
	}
	return nil
}

func (r *fakeMovieGenreRepo) DeleteByMovieID(_ context.Context, movieID uuid.UUID) error {
	r.s.movieGenres = filterMovieGenres(r.s.movieGenres, movieID)
	return nil
}

func (r *fakeMovieGenreRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.MovieGenre, error) {
	var out []*entity.MovieGenre
	for i := range r.s.movieGenres {
		if r.s.movieGenres[i].MovieID == movieID {
			mg := r.s.movieGenres[i]
			out = append(out, &mg)
		}
	}
	return out, nil
}

func (r *fakeMovieGenreRepo) CountByGenreID(_ context.Context, genreID uuid.UUID) (int64, error) {
	var total int64
	for _, mg := range r.s.movieGenres {
		if mg.GenreID == genreID {
			total++
		}
	}
	return total, nil
}

type fakeMovieActorRepo struct{ s *fakeStore }

func (r *fakeMovieActorRepo) CreateBatch(_ context.Context, movieActors []*entity.MovieActor) error {
	if r.s.failActorBatch {
		return repository.ErrForeignKey
	}
	for _, ma := range movieActors {
		if _, ok := r.s.actors[ma.ActorID]; !ok {
			return repository.ErrForeignKey
		}
		r.s.movieActors = append(r.s.movieActors, *ma)
	}
	return nil
}

func (r *fakeMovieActorRepo) DeleteByMovieID(_ context.Context, movieID uuid.UUID) error {
	r.s.movieActors = filterMovieActors(r.s.movieActors, movieID)
	return nil
}

func (r *fakeMovieActorRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.MovieActor, error) {
	var out []*entity.MovieActor
	for i := range r.s.movieActors {
		if r.s.movieActors[i].MovieID == movieID {
			ma := r.s.movieActors[i]
			out = append(out, &ma)
		}
	}
	return out, nil
}

func (r *fakeMovieActorRepo) CountByActorID(_ context.Context, actorID uuid.UUID) (int64, error) {
	var total int64
	for _, ma := range r.s.movieActors {
		if ma.ActorID == actorID {
			total++
		}
	}
	return total, nil
}

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for id := range r.s.users {
		if r.s.users[id].Email == email {
			user := r.s.users[id]
			return &user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for id := range r.s.users {
		if r.s.users[id].Username == username {
			user := r.s.users[id]
			return &user, nil
		}
	}
	return nil, nil
}

func filterMovieGenres(rows []entity.MovieGenre, movieID uuid.UUID) []entity.MovieGenre {
	out := rows[:0]
	for _, mg := range rows {
		if mg.MovieID != movieID {
			out = append(out, mg)
		}
	}
	return out
}

func filterMovieActors(rows []entity.MovieActor, movieID uuid.UUID) []entity.MovieActor {
	out := rows[:0]
	for _, ma := range rows {
		if ma.MovieID != movieID {
			out = append(out, ma)
		}
	}
	return out
}
