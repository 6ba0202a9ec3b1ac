package entities

import (
	"strings"
	"time"
)

// Account is an authenticatable identity record.
type Account struct {
	ID               string
	Email            string
	EmailConfirmedAt *time.Time
	CreatedAt        time.Time
}

// NewAccount carries what the auth store needs to provision an account.
type NewAccount struct {
	Email        string
	PasswordHash string
	Username     string
	Confirmed    bool
}

// Credentials is the sign-in projection of an account.
type Credentials struct {
	ID           string
	Email        string
	PasswordHash string
}

// UsernameFromEmail returns the local part of an email address.
func UsernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
