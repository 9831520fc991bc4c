package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-catalog/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestDirectorService_CreateAndGet(t *testing.T) {
	repo, _ := newFakeRepo()
	service := NewDirectorService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := service.Create(ctx, &request.DirectorRequest{Name: "Christopher Nolan"})
	if err != nil {
		t.Fatalf("create director: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Name != "Christopher Nolan" {
		t.Fatalf("unexpected name %q", created.Name)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatal("expected equal timestamps on create")
	}

	got, err := service.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get director: %v", err)
	}
	if got.ID != created.ID || got.Name != created.Name {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, created)
	}
}

func TestDirectorService_Create_InvalidName(t *testing.T) {
	repo, _ := newFakeRepo()
	service := NewDirectorService(repo, zap.NewNop())

	_, err := service.Create(context.Background(), &request.DirectorRequest{Name: ""})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDirectorService_GetByID_NotFound(t *testing.T) {
	repo, _ := newFakeRepo()
	service := NewDirectorService(repo, zap.NewNop())

	_, err := service.GetByID(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDirectorService_Update(t *testing.T) {
	repo, _ := newFakeRepo()
	service := NewDirectorService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := service.Create(ctx, &request.DirectorRequest{Name: "Dennis Villeneuve"})
	if err != nil {
		t.Fatalf("create director: %v", err)
	}

	updated, err := service.Update(ctx, &request.DirectorUpdateRequest{
		DirectorID: created.ID,
		Name:       "Denis Villeneuve",
	})
	if err != nil {
		t.Fatalf("update director: %v", err)
	}
	if updated.Name != "Denis Villeneuve" {
		t.Fatalf("unexpected name %q", updated.Name)
	}
	if updated.ID != created.ID {
		t.Fatal("id must not change on update")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("created_at must not change on update")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatal("updated_at must not go backwards")
	}
}

func TestDirectorService_Update_NotFound(t *testing.T) {
	repo, _ := newFakeRepo()
	service := NewDirectorService(repo, zap.NewNop())

	_, err := service.Update(context.Background(), &request.DirectorUpdateRequest{
		DirectorID: uuid.NewString(),
		Name:       "Nobody",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDirectorService_Delete(t *testing.T) {
	repo, _ := newFakeRepo()
	service := NewDirectorService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := service.Create(ctx, &request.DirectorRequest{Name: "Sofia Coppola"})
	if err != nil {
		t.Fatalf("create director: %v", err)
	}

	if err := service.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete director: %v", err)
	}

	// Reads and repeated deletes of the removed id report the same kind.
	if _, err := service.GetByID(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := service.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDirectorService_Delete_BlockedByMovie(t *testing.T) {
	repo, store := newFakeRepo()
	directors := NewDirectorService(repo, zap.NewNop())
	movies := NewMovieService(repo, zap.NewNop())
	ctx := context.Background()

	director, err := directors.Create(ctx, &request.DirectorRequest{Name: "Christopher Nolan"})
	if err != nil {
		t.Fatalf("create director: %v", err)
	}

	movie, err := movies.Create(ctx, &request.MovieRequest{
		Title:      "Tenet",
		DirectorID: director.ID,
	})
	if err != nil {
		t.Fatalf("create movie: %v", err)
	}

	if err := directors.Delete(ctx, director.ID); !errors.Is(err, ErrEntityInUse) {
		t.Fatalf("expected ErrEntityInUse, got %v", err)
	}
	if len(store.directors) != 1 {
		t.Fatal("blocked delete must not remove the director")
	}

	// Removing the referencing movie unblocks the delete.
	if err := movies.Delete(ctx, movie.ID); err != nil {
		t.Fatalf("delete movie: %v", err)
	}
	if err := directors.Delete(ctx, director.ID); err != nil {
		t.Fatalf("delete director after movie removed: %v", err)
	}
}
