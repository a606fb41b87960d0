package domain

import "time"

// Endpoint paths recorded in the audit log, relative to the v5 API base
const (
	EndpointToken       = "/oauth/token"
	EndpointUserAccount = "/user_account"
	EndpointBoards      = "/boards"
	EndpointPins        = "/pins"
)

// TokenPair is the result of a token exchange or refresh
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int // seconds
}

// ExpiresAt computes the absolute expiry from a reference time
func (t TokenPair) ExpiresAt(now time.Time) time.Time {
	return now.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// BoardSummary is one board as reported by the boards API
type BoardSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UserAccount is the authenticated Pinterest account profile
type UserAccount struct {
	Username    string `json:"username"`
	AccountType string `json:"account_type,omitempty"`
}

// APICallLog is an append-only audit row for one outbound Pinterest API
// call. Rows are never mutated or deleted.
type APICallLog struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"index"`
	PostID       string    `json:"post_id,omitempty" gorm:"index"`
	Endpoint     string    `json:"endpoint"`
	StatusCode   int       `json:"status_code,omitempty"`
	ResponseBody string    `json:"response_body,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
