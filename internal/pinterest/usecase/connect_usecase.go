package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	authrepo "pinflow-backend/internal/auth/repository"
	pindomain "pinflow-backend/internal/pinterest/domain"
)

// connectUsecase implements ConnectUsecase
type connectUsecase struct {
	userRepo authrepo.UserRepository
	client   APIClient
}

// NewConnectUsecase creates a new instance of connectUsecase
func NewConnectUsecase(userRepo authrepo.UserRepository, client APIClient) ConnectUsecase {
	return &connectUsecase{
		userRepo: userRepo,
		client:   client,
	}
}

func (u *connectUsecase) BuildAuthURL(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}
	// The user id doubles as the anti-forgery state parameter; the
	// callback uses it to key the stored credential.
	return u.client.AuthCodeURL(userID), nil
}

func (u *connectUsecase) HandleCallback(ctx context.Context, code, state string) error {
	if code == "" {
		return pindomain.ErrMissingAuthCode
	}
	if state == "" {
		return errors.New("missing state parameter")
	}

	user, err := u.userRepo.FindByID(state)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("unknown user in state parameter")
	}

	tokens, err := u.client.ExchangeCode(ctx, state, code)
	if err != nil {
		return err
	}

	expiresAt := tokens.ExpiresAt(time.Now())
	if err := u.userRepo.UpdatePinterestTokens(state, tokens.AccessToken, tokens.RefreshToken, expiresAt); err != nil {
		return err
	}

	// The account profile is informational; a failure here must not
	// undo a successful token exchange.
	account, err := u.client.FetchUserAccount(ctx, state, tokens.AccessToken)
	if err != nil {
		log.Printf("[Pinterest] Connected user %s but account lookup failed: %v", state, err)
		return nil
	}
	if err := u.userRepo.UpdatePinterestUsername(state, account.Username); err != nil {
		log.Printf("[Pinterest] Failed to store Pinterest username for user %s: %v", state, err)
	}

	return nil
}

func (u *connectUsecase) Disconnect(userID string) error {
	return u.userRepo.ClearPinterestCredentials(userID)
}

func (u *connectUsecase) Status(userID string) (*ConnectionStatus, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	return &ConnectionStatus{
		Connected: user.PinterestConnected(),
		Username:  user.PinterestUsername,
		BoardID:   user.PinterestBoardID,
		ExpiresAt: user.PinterestTokenExpiresAt,
	}, nil
}
