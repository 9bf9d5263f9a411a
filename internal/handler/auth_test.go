package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/srkarthi1982/fortune-teller/internal/model"
	"github.com/srkarthi1982/fortune-teller/internal/service"
	"github.com/srkarthi1982/fortune-teller/pkg/token"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockUserRepo struct {
	createFunc     func(ctx context.Context, u *model.User) (*model.User, error)
	getByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	getByIDFunc    func(ctx context.Context, id string) (*model.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	u.ID = "user:created"
	return u, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

type staticSigner struct{}

func (staticSigner) Sign(claims token.Claims) (string, error) {
	return "signed-token", nil
}

func newAuthHandler(users *mockUserRepo) *AuthHandler {
	if users == nil {
		users = &mockUserRepo{}
	}
	svc := service.NewAuthService(service.AuthServiceConfig{
		UserRepo: users,
		Signer:   staticSigner{},
	})
	return NewAuthHandler(svc)
}

// ============================================================================
// Register Tests
// ============================================================================

func TestRegister_Success_Returns201WithToken(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(nil)

	body := []byte(`{"email":"seer@example.com","password":"crystal-ball","username":"seer"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data model.AuthResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Token != "signed-token" {
		t.Errorf("expected token in response, got %q", resp.Data.Token)
	}
	if resp.Data.User == nil || resp.Data.User.Email != "seer@example.com" {
		t.Errorf("expected registered user in response, got %+v", resp.Data.User)
	}
}

func TestRegister_DuplicateEmail_Returns409(t *testing.T) {
	t.Parallel()

	users := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "user:1", Email: email}, nil
		},
	}
	h := newAuthHandler(users)

	body := []byte(`{"email":"seer@example.com","password":"crystal-ball"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestRegister_ShortPassword_Returns422(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(nil)

	body := []byte(`{"email":"seer@example.com","password":"short"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
}

// ============================================================================
// Login Tests
// ============================================================================

func TestLogin_Success_Returns200(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("crystal-ball"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	users := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "user:1", Email: email, PasswordHash: string(hash)}, nil
		},
	}
	h := newAuthHandler(users)

	body := []byte(`{"email":"seer@example.com","password":"crystal-ball"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLogin_BadCredentials_Returns401(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(nil)

	body := []byte(`{"email":"nobody@example.com","password":"crystal-ball"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
