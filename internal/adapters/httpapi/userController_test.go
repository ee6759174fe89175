package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"mingle/internal/adapters/httpapi"
	"mingle/internal/apperrors"
	userPort "mingle/internal/ports/user"

	"github.com/gin-gonic/gin"
)

type mockUserUC struct {
	loginFn    func(ctx context.Context, email, password string) (*userPort.LoginResponse, error)
	registerFn func(ctx context.Context, name, email, password, avatarURL string) (*userPort.IdentityDTO, error)
	getMeFn    func(ctx context.Context, userID string) (*userPort.IdentityDTO, error)
}

func (m *mockUserUC) LoginUser(ctx context.Context, email, password string) (*userPort.LoginResponse, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockUserUC) RegisterUser(ctx context.Context, name, email, password, avatarURL string) (*userPort.IdentityDTO, error) {
	return m.registerFn(ctx, name, email, password, avatarURL)
}

func (m *mockUserUC) GetMe(ctx context.Context, userID string) (*userPort.IdentityDTO, error) {
	return m.getMeFn(ctx, userID)
}

func newAuthRouter(uc *mockUserUC) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctl := httpapi.NewUserController(uc)
	r := gin.New()
	r.POST("/auth/register", ctl.RegisterUser)
	r.POST("/auth/login", ctl.LoginUser)
	r.GET("/auth/me", withUser("u1"), ctl.GetMe)
	return r
}

func TestRegisterUser_Created(t *testing.T) {
	r := newAuthRouter(&mockUserUC{
		registerFn: func(ctx context.Context, name, email, password, avatarURL string) (*userPort.IdentityDTO, error) {
			if avatarURL != "/avatars/alice.png" {
				t.Fatalf("expected avatar url passed through, got %q", avatarURL)
			}
			return &userPort.IdentityDTO{ID: "u1", Name: name, Email: email, AvatarURL: avatarURL}, nil
		},
	})

	w := doRequest(t, r, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"password","avatarUrl":"/avatars/alice.png"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var dto userPort.IdentityDTO
	if err := json.Unmarshal(w.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if dto.AvatarURL != "/avatars/alice.png" {
		t.Fatalf("expected avatar url in response, got %+v", dto)
	}
}

func TestRegisterUser_DuplicateEmailIsConflict(t *testing.T) {
	r := newAuthRouter(&mockUserUC{
		registerFn: func(ctx context.Context, name, email, password, avatarURL string) (*userPort.IdentityDTO, error) {
			return nil, apperrors.Conflictf("email already registered")
		},
	})

	w := doRequest(t, r, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"password"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterUser_ValidationIsBadRequest(t *testing.T) {
	r := newAuthRouter(&mockUserUC{
		registerFn: func(ctx context.Context, name, email, password, avatarURL string) (*userPort.IdentityDTO, error) {
			return nil, apperrors.Validationf("password must be at least 6 characters")
		},
	})

	w := doRequest(t, r, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"12345"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterUser_StoreFailureIsServerError(t *testing.T) {
	r := newAuthRouter(&mockUserUC{
		registerFn: func(ctx context.Context, name, email, password, avatarURL string) (*userPort.IdentityDTO, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	})

	w := doRequest(t, r, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"password"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for a store failure, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Error != "could not register user" {
		t.Fatalf("store details must not leak to the client, got %q", body.Error)
	}
}

func TestLoginUser_InvalidCredentials(t *testing.T) {
	r := newAuthRouter(&mockUserUC{
		loginFn: func(ctx context.Context, email, password string) (*userPort.LoginResponse, error) {
			return nil, errors.New("invalid credentials")
		},
	})

	w := doRequest(t, r, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}
