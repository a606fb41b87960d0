package repository

import (
	"time"

	authdomain "pinflow-backend/internal/auth/domain"
)

// UserRepository defines the interface for user and credential data access
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error

	// UpdatePinterestTokens overwrites the stored Pinterest credential for a user
	UpdatePinterestTokens(userID, accessToken, refreshToken string, expiresAt time.Time) error

	// UpdatePinterestUsername records the linked Pinterest account name
	UpdatePinterestUsername(userID, username string) error

	// UpdatePinterestBoardID caches the resolved default board for a user
	UpdatePinterestBoardID(userID, boardID string) error

	// ClearPinterestCredentials removes the entire Pinterest linkage (disconnect)
	ClearPinterestCredentials(userID string) error

	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	DeleteRefreshToken(token string) error
}
