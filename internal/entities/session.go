package entities

import "time"

// Session identifies the caller of an operation. It is passed explicitly
// to every use case that acts on behalf of an account.
type Session struct {
	UserID      string
	Email       string
	AccessToken string
	ExpiresAt   time.Time
}
