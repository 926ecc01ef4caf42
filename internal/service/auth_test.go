package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holiday_planner/internal/config"
	errs "holiday_planner/pkg/errors"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    24 * time.Hour,
	}
}

func TestAuthService_Register(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTConfig(), nopLogger{})

	user, err := svc.Register(context.Background(), "Anna@Example.com", "correcthorse", "Anna", "Schmidt")
	require.NoError(t, err)

	assert.Equal(t, "anna@example.com", user.Email, "emails are stored lowercased")
	assert.Empty(t, user.PasswordHash, "hashes never leave the service")
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTConfig(), nopLogger{})

	cases := []struct {
		name                                  string
		email, password, firstName, lastName string
	}{
		{"empty email", "", "correcthorse", "Anna", "Schmidt"},
		{"bad email", "not-an-email", "correcthorse", "Anna", "Schmidt"},
		{"short password", "anna@example.com", "short", "Anna", "Schmidt"},
		{"missing first name", "anna@example.com", "correcthorse", "", "Schmidt"},
		{"missing last name", "anna@example.com", "correcthorse", "Anna", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.email, tc.password, tc.firstName, tc.lastName)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTConfig(), nopLogger{})

	_, err := svc.Register(context.Background(), "anna@example.com", "correcthorse", "Anna", "Schmidt")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "anna@example.com", "otherpassword", "Other", "Person")
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testJWTConfig(), nopLogger{})

	registered, err := svc.Register(context.Background(), "anna@example.com", "correcthorse", "Anna", "Schmidt")
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), "anna@example.com", "correcthorse")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	user, err := svc.ValidateToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthService_Login_WrongCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTConfig(), nopLogger{})

	_, err := svc.Register(context.Background(), "anna@example.com", "correcthorse", "Anna", "Schmidt")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "anna@example.com", "wrongpassword")
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = svc.Login(context.Background(), "unknown@example.com", "correcthorse")
	assert.ErrorIs(t, err, errs.ErrUnauthorized, "unknown accounts and bad passwords look the same")
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTConfig(), nopLogger{})

	_, err := svc.ValidateToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}
