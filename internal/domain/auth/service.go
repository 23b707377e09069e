package auth

import "context"

// AuthService authenticates the single configured administrator.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
