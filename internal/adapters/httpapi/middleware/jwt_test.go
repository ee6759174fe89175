package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mingle/internal/adapters/httpapi/middleware"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.JWTAuthMiddleware(), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return r
}

func signToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := &jwt.StandardClaims{Subject: subject, ExpiresAt: expiresAt.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("could not sign token: %v", err)
	}
	return token
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestJWTAuthMiddleware_BadSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter()

	token := signToken(t, "other-secret", "u1", time.Now().Add(time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter()

	token := signToken(t, "test-secret", "u1", time.Now().Add(-time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter()

	token := signToken(t, "test-secret", "u1", time.Now().Add(time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); !containsSubject(body, "u1") {
		t.Fatalf("expected userID u1 in response, got %s", body)
	}
}

func containsSubject(body, subject string) bool {
	return len(body) > 0 && (body == `{"userID":"`+subject+`"}`)
}
