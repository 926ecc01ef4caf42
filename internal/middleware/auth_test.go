package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"holiday_planner/internal/domain"
	"holiday_planner/internal/service"
	errs "holiday_planner/pkg/errors"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatal(msg string, keysAndValues ...interface{}) {}

type stubAuthService struct {
	user *domain.User
}

func (s *stubAuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	return nil, errs.ErrValidation
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*service.LoginResponse, error) {
	return nil, errs.ErrUnauthorized
}

func (s *stubAuthService) RefreshToken(ctx context.Context, refreshToken string) (*service.TokenResponse, error) {
	return nil, errs.ErrInvalidToken
}

func (s *stubAuthService) ValidateToken(ctx context.Context, tokenString string) (*domain.User, error) {
	if tokenString == "valid-token" && s.user != nil {
		return s.user, nil
	}
	return nil, errs.ErrInvalidToken
}

func (s *stubAuthService) Logout(ctx context.Context, refreshToken string) error {
	return nil
}

func authTestRouter(user *domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	m := NewAuthMiddleware(&stubAuthService{user: user}, nopLogger{})
	router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID.(uuid.UUID)})
	})

	return router
}

func TestRequireAuth_ValidToken(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "anna@example.com"}
	router := authTestRouter(user)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID.String())
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	router := authTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	router := authTestRouter(nil)

	for _, header := range []string{"valid-token", "Basic dXNlcg==", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q must be rejected", header)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	router := authTestRouter(&domain.User{ID: uuid.New()})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
