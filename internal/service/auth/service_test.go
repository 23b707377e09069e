package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rosterly/attendance-backend-go/internal/domain/auth"
	"github.com/rosterly/attendance-backend-go/internal/pkg/jwt"
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

func newTestService(t *testing.T) auth.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	jwtService := jwt.NewJWTService("test-secret", "12h")
	return NewAuthService("admin", string(hash), jwtService)
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "battery staple",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongUsername(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "root",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "username")
	assert.Contains(t, m, "password")
}
