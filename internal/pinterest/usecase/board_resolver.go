package usecase

import (
	"context"

	authdomain "pinflow-backend/internal/auth/domain"
	authrepo "pinflow-backend/internal/auth/repository"
)

// Default board created for users who have none
const (
	DefaultBoardName        = "My Scheduled Pins"
	DefaultBoardDescription = "Pins published by my post scheduler"
)

// BoardResolver determines which board a user's pins publish to. The
// chosen board id is persisted before it is returned, so later calls hit
// the cache without an API round trip. At most one board is created per
// user under normal operation.
type BoardResolver struct {
	userRepo authrepo.UserRepository
	client   APIClient
}

// NewBoardResolver creates a BoardResolver
func NewBoardResolver(userRepo authrepo.UserRepository, client APIClient) *BoardResolver {
	return &BoardResolver{
		userRepo: userRepo,
		client:   client,
	}
}

// Resolve returns the board id to publish into for the given user
func (r *BoardResolver) Resolve(ctx context.Context, user *authdomain.User, accessToken string) (string, error) {
	if user.PinterestBoardID != "" {
		return user.PinterestBoardID, nil
	}

	boards, err := r.client.ListBoards(ctx, user.ID, accessToken)
	if err != nil {
		return "", err
	}

	var boardID string
	if len(boards) > 0 {
		// First board in API order wins
		boardID = boards[0].ID
	} else {
		board, err := r.client.CreateBoard(ctx, user.ID, accessToken, DefaultBoardName, DefaultBoardDescription)
		if err != nil {
			return "", err
		}
		boardID = board.ID
	}

	// Persist-then-return so concurrent or later calls hit the cache
	if err := r.userRepo.UpdatePinterestBoardID(user.ID, boardID); err != nil {
		return "", err
	}
	user.PinterestBoardID = boardID

	return boardID, nil
}
