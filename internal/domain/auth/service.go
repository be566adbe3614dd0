package auth

import "context"

// AuthService issues tokens for registered users. Account management
// (registration, password reset) is handled out of band.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
}
