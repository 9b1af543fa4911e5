package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Mmasetshaba28/haircut-booking/internal/auth"
	domain "github.com/Mmasetshaba28/haircut-booking/internal/domain/appointment"
	"github.com/Mmasetshaba28/haircut-booking/internal/models"
)

// userStore stubs the user side of domain.Repository. The embedded nil
// Repository panics on anything else, which is what we want: Register and
// Login must not touch appointment or service state.
type userStore struct {
	domain.Repository

	users   map[string]models.User
	userErr error
	created []models.User
}

func newUserStore() *userStore {
	return &userStore{users: map[string]models.User{}}
}

func (s *userStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if s.userErr != nil {
		return nil, s.userErr
	}
	if u, ok := s.users[email]; ok {
		return &u, nil
	}
	return nil, domain.ErrNotFound
}

func (s *userStore) CreateUser(_ context.Context, u *models.User) error {
	u.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *u)
	s.users[u.Email] = *u
	return nil
}

func newAuthRouter(store *userStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewAuthHandler(store, auth.NewIssuer("test-secret"))
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newUserStore()
	store.users["jamie@example.com"] = models.User{ID: 1, Email: "jamie@example.com"}

	w := postJSON(newAuthRouter(store), "/register", gin.H{
		"email":    "jamie@example.com",
		"password": "secret1",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(store.created) != 0 {
		t.Error("no user may be created for a duplicate email")
	}
}

func TestRegister_EmailLookupFailure(t *testing.T) {
	store := newUserStore()
	store.userErr = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	w := postJSON(newAuthRouter(store), "/register", gin.H{
		"email":    "jamie@example.com",
		"password": "secret1",
	})

	// An unreadable store must not read as "email free": registration
	// fails with a server error and nothing is written.
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if len(store.created) != 0 {
		t.Error("no user may be created while the store is unreachable")
	}
}

func TestLogin_EmailLookupFailure(t *testing.T) {
	store := newUserStore()
	store.userErr = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	w := postJSON(newAuthRouter(store), "/login", gin.H{
		"email":    "jamie@example.com",
		"password": "secret1",
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	w := postJSON(newAuthRouter(newUserStore()), "/login", gin.H{
		"email":    "nobody@example.com",
		"password": "secret1",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
