package domain

import "time"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-"` // Never return password in JSON
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Pinterest credential, embedded in the profile row.
	// AccessToken present means the account is connected; RefreshToken
	// must accompany it so expired tokens can be renewed silently.
	PinterestAccessToken    string     `json:"-"`
	PinterestRefreshToken   string     `json:"-"`
	PinterestTokenExpiresAt *time.Time `json:"-"`
	PinterestBoardID        string     `json:"-"`
	PinterestUsername       string     `json:"pinterest_username,omitempty"`
}

// PinterestConnected reports whether the user has linked a Pinterest account
func (u *User) PinterestConnected() bool {
	return u.PinterestAccessToken != ""
}

// PinterestTokenExpired reports whether the stored access token needs a refresh
func (u *User) PinterestTokenExpired(now time.Time) bool {
	return u.PinterestTokenExpiresAt != nil && !u.PinterestTokenExpiresAt.After(now)
}

type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at"`
}
