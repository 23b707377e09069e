package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rosterly/attendance-backend-go/internal/domain/auth"
	"github.com/rosterly/attendance-backend-go/internal/pkg/jwt"
	"github.com/rosterly/attendance-backend-go/internal/pkg/validator"
)

// AuthServiceImpl authenticates the single administrator configured through
// the environment. There is no user table; the admin account is config.
type AuthServiceImpl struct {
	adminUsername     string
	adminPasswordHash string
	jwtService        jwt.Service
}

func NewAuthService(adminUsername, adminPasswordHash string, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		jwtService:        jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(req.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username is required"})
	}
	if validator.IsEmpty(req.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}
	if len(errs) > 0 {
		return auth.LoginResponse{}, errs
	}

	if req.Username != s.adminUsername {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(req.Username)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
