package usecase

import (
	authdomain "pinflow-backend/internal/auth/domain"
	authdto "pinflow-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication operations
type AuthUsecase interface {
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error

	// ValidateToken verifies an access token and returns the owning user
	ValidateToken(tokenString string) (*authdomain.User, error)
}
