package usecase

import (
	"context"
	"time"

	authdomain "pinflow-backend/internal/auth/domain"
	pindomain "pinflow-backend/internal/pinterest/domain"
	postdomain "pinflow-backend/internal/post/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *authdomain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*authdomain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authdomain.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id string) (*authdomain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authdomain.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *authdomain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePinterestTokens(userID, accessToken, refreshToken string, expiresAt time.Time) error {
	args := m.Called(userID, accessToken, refreshToken, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePinterestUsername(userID, username string) error {
	args := m.Called(userID, username)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePinterestBoardID(userID, boardID string) error {
	args := m.Called(userID, boardID)
	return args.Error(0)
}

func (m *MockUserRepository) ClearPinterestCredentials(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) SaveRefreshToken(token *authdomain.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockUserRepository) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authdomain.RefreshToken), args.Error(1)
}

func (m *MockUserRepository) DeleteRefreshToken(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

// MockPostRepository is a mock implementation of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *postdomain.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(id string) (*postdomain.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postdomain.Post), args.Error(1)
}

func (m *MockPostRepository) FindByUserID(userID string, limit, offset int) ([]*postdomain.Post, int64, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*postdomain.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) Update(post *postdomain.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) FindDuePosts(now time.Time) ([]*postdomain.Post, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*postdomain.Post), args.Error(1)
}

func (m *MockPostRepository) ClaimForPublishing(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) MarkPublished(id, pinterestPostID string, publishedAt time.Time) error {
	args := m.Called(id, pinterestPostID, publishedAt)
	return args.Error(0)
}

func (m *MockPostRepository) ReleaseWithError(id, message string) error {
	args := m.Called(id, message)
	return args.Error(0)
}

func (m *MockPostRepository) SetPublishError(id, message string) error {
	args := m.Called(id, message)
	return args.Error(0)
}

// MockAPICallLogRepository is a mock implementation of the APICallLogRepository interface
type MockAPICallLogRepository struct {
	mock.Mock
}

func (m *MockAPICallLogRepository) Append(entry *pindomain.APICallLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockAPICallLogRepository) CountPinCreations(userID string, since time.Time) (int64, error) {
	args := m.Called(userID, since)
	return args.Get(0).(int64), args.Error(1)
}

// MockAPIClient is a mock implementation of the APIClient interface
type MockAPIClient struct {
	mock.Mock
}

func (m *MockAPIClient) AuthCodeURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockAPIClient) ExchangeCode(ctx context.Context, userID, code string) (pindomain.TokenPair, error) {
	args := m.Called(ctx, userID, code)
	return args.Get(0).(pindomain.TokenPair), args.Error(1)
}

func (m *MockAPIClient) RefreshAccessToken(ctx context.Context, userID, refreshToken string) (pindomain.TokenPair, error) {
	args := m.Called(ctx, userID, refreshToken)
	return args.Get(0).(pindomain.TokenPair), args.Error(1)
}

func (m *MockAPIClient) FetchUserAccount(ctx context.Context, userID, accessToken string) (*pindomain.UserAccount, error) {
	args := m.Called(ctx, userID, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pindomain.UserAccount), args.Error(1)
}

func (m *MockAPIClient) ListBoards(ctx context.Context, userID, accessToken string) ([]pindomain.BoardSummary, error) {
	args := m.Called(ctx, userID, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pindomain.BoardSummary), args.Error(1)
}

func (m *MockAPIClient) CreateBoard(ctx context.Context, userID, accessToken, name, description string) (*pindomain.BoardSummary, error) {
	args := m.Called(ctx, userID, accessToken, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pindomain.BoardSummary), args.Error(1)
}

func (m *MockAPIClient) CreatePin(ctx context.Context, userID, accessToken, boardID string, post *postdomain.Post) (string, error) {
	args := m.Called(ctx, userID, accessToken, boardID, post)
	return args.String(0), args.Error(1)
}
