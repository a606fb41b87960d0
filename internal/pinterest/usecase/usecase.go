package usecase

import (
	"context"
	"time"

	pindomain "pinflow-backend/internal/pinterest/domain"
	postdomain "pinflow-backend/internal/post/domain"
)

// APIClient defines what the Pinterest usecases need from the API
// client. Satisfied by pkg/pinterest.Client.
type APIClient interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, userID, code string) (pindomain.TokenPair, error)
	RefreshAccessToken(ctx context.Context, userID, refreshToken string) (pindomain.TokenPair, error)
	FetchUserAccount(ctx context.Context, userID, accessToken string) (*pindomain.UserAccount, error)
	ListBoards(ctx context.Context, userID, accessToken string) ([]pindomain.BoardSummary, error)
	CreateBoard(ctx context.Context, userID, accessToken, name, description string) (*pindomain.BoardSummary, error)
	CreatePin(ctx context.Context, userID, accessToken, boardID string, post *postdomain.Post) (string, error)
}

// ConnectUsecase defines the Pinterest account linkage operations
type ConnectUsecase interface {
	// BuildAuthURL builds the authorization redirect URL for a user
	BuildAuthURL(userID string) (string, error)

	// HandleCallback consumes the OAuth callback: exchanges the code and
	// persists the credential for the user carried in state
	HandleCallback(ctx context.Context, code, state string) error

	// Disconnect clears the stored credential
	Disconnect(userID string) error

	// Status reports the current linkage for the settings screen
	Status(userID string) (*ConnectionStatus, error)
}

// ConnectionStatus describes a user's Pinterest linkage
type ConnectionStatus struct {
	Connected bool       `json:"connected"`
	Username  string     `json:"username,omitempty"`
	BoardID   string     `json:"board_id,omitempty"`
	ExpiresAt *time.Time `json:"token_expires_at,omitempty"`
}
