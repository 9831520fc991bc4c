package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// stubActorService returns canned results so the tests can drive every
// branch of the status-code mapping.
type stubActorService struct {
	actor *response.ActorResponse
	list  []response.ActorResponse
	err   error
}

func (s *stubActorService) Create(context.Context, *request.ActorRequest) (*response.ActorResponse, error) {
	return s.actor, s.err
}

func (s *stubActorService) GetAll(context.Context) ([]response.ActorResponse, error) {
	return s.list, s.err
}

func (s *stubActorService) GetByID(context.Context, string) (*response.ActorResponse, error) {
	return s.actor, s.err
}

func (s *stubActorService) Update(context.Context, *request.ActorUpdateRequest) (*response.ActorResponse, error) {
	return s.actor, s.err
}

func (s *stubActorService) Delete(context.Context, string) error {
	return s.err
}

func newActorRouter(service usecase.ActorService) *chi.Mux {
	handler := NewActorHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/actor", handler.Create)
	r.Get("/api/actor", handler.GetAll)
	r.Get("/api/actor/{actor_id}", handler.GetByID)
	r.Put("/api/actor", handler.Update)
	r.Delete("/api/actor/{actor_id}", handler.Delete)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var envelope utils.Response
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope
}

func TestActorHandler_Create(t *testing.T) {
	actor := &response.ActorResponse{ID: uuid.NewString(), Name: "Elizabeth Debicki"}
	router := newActorRouter(&stubActorService{actor: actor})

	body := bytes.NewBufferString(`{"name": "Elizabeth Debicki"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/actor", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if !envelope.Status {
		t.Fatalf("expected status true, got %+v", envelope)
	}
}

func TestActorHandler_Create_BadBody(t *testing.T) {
	router := newActorRouter(&stubActorService{})

	req := httptest.NewRequest(http.MethodPost, "/api/actor", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestActorHandler_Create_ValidationFailure(t *testing.T) {
	router := newActorRouter(&stubActorService{})

	req := httptest.NewRequest(http.MethodPost, "/api/actor", strings.NewReader(`{"name": ""}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Errors == nil {
		t.Fatal("expected field errors in the envelope")
	}
}

func TestActorHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", fmt.Errorf("%w: bad id", usecase.ErrInvalidInput), http.StatusBadRequest},
		{"not found", fmt.Errorf("%w: actor x", usecase.ErrNotFound), http.StatusNotFound},
		{"reference not found", fmt.Errorf("%w: genre y", usecase.ErrReferenceNotFound), http.StatusNotFound},
		{"entity in use", fmt.Errorf("%w: actor x", usecase.ErrEntityInUse), http.StatusConflict},
		{"conflict", fmt.Errorf("%w: name", usecase.ErrConflict), http.StatusConflict},
		{"internal", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newActorRouter(&stubActorService{err: tc.err})

			req := httptest.NewRequest(http.MethodDelete, "/api/actor/"+uuid.NewString(), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
			envelope := decodeEnvelope(t, rec)
			if envelope.Status {
				t.Fatal("error responses must carry status false")
			}
		})
	}
}

func TestActorHandler_GetAll(t *testing.T) {
	list := []response.ActorResponse{
		{ID: uuid.NewString(), Name: "Elizabeth Debicki"},
		{ID: uuid.NewString(), Name: "John David Washington"},
	}
	router := newActorRouter(&stubActorService{list: list})

	req := httptest.NewRequest(http.MethodGet, "/api/actor", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

type stubAuthService struct {
	resp *response.AuthResponse
	err  error
}

func (s *stubAuthService) Register(context.Context, *request.RegisterRequest) (*response.AuthResponse, error) {
	return s.resp, s.err
}

func (s *stubAuthService) Login(context.Context, *request.LoginRequest) (*response.AuthResponse, error) {
	return s.resp, s.err
}

func newAuthRouter(service usecase.AuthService) *chi.Mux {
	handler := NewAuthHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/register", handler.Register)
	r.Post("/api/login", handler.Login)
	return r
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	router := newAuthRouter(&stubAuthService{err: usecase.ErrInvalidCredentials})

	body := strings.NewReader(`{"username": "kcooper", "password": "wrongpass"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/login", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Register(t *testing.T) {
	resp := &response.AuthResponse{UserID: uuid.NewString(), Username: "kcooper", Token: "signed"}
	router := newAuthRouter(&stubAuthService{resp: resp})

	body := strings.NewReader(`{"username": "kcooper", "email": "cooper@example.com", "password": "stellar1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	envelope := decodeEnvelope(t, rec)
	payload, err := json.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("marshal data: %v", err)
	}
	var got response.AuthResponse
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("unmarshal auth response: %v", err)
	}
	if got.Token != "signed" {
		t.Fatalf("unexpected auth payload %+v", got)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	router := newAuthRouter(&stubAuthService{err: fmt.Errorf("%w: email already registered", usecase.ErrConflict)})

	body := strings.NewReader(`{"username": "kcooper", "email": "cooper@example.com", "password": "stellar1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
