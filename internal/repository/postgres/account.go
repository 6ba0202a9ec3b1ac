package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"member-admin/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertAccountQuery = `
INSERT INTO accounts (id, email, password_hash, email_confirmed_at, metadata)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, email, email_confirmed_at, created_at`
	deleteAccountQuery   = `DELETE FROM accounts WHERE id = $1`
	selectAccountQuery   = `SELECT id::text, email, email_confirmed_at, created_at FROM accounts WHERE id = $1`
	selectCredentialsSQL = `SELECT id::text, email, password_hash FROM accounts WHERE lower(email) = lower($1)`

	uniqueViolation = "23505"
)

type accountMetadata struct {
	Username string `json:"username,omitempty"`
}

// CreateAccount inserts an account; the on_account_created trigger adds its profile.
func (p *Postgres) CreateAccount(ctx context.Context, account entities.NewAccount) (*entities.Account, error) {
	meta, err := json.Marshal(accountMetadata{Username: account.Username})
	if err != nil {
		return nil, fmt.Errorf("encode account metadata: %w", err)
	}

	var confirmedAt *time.Time
	if account.Confirmed {
		now := time.Now().UTC()
		confirmedAt = &now
	}

	var a entities.Account
	err = p.db.QueryRow(ctx, insertAccountQuery, uuid.NewString(), account.Email, account.PasswordHash, confirmedAt, meta).
		Scan(&a.ID, &a.Email, &a.EmailConfirmedAt, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, entities.ErrAccountExists
		}
		p.log.Errorw("failed to create account", "error", err, "email", account.Email)
		return nil, fmt.Errorf("create account: %w", err)
	}

	p.log.Infow("account created", "user_id", a.ID)
	return &a, nil
}

// DeleteAccount hard-deletes an account; profile and role rows cascade.
func (p *Postgres) DeleteAccount(ctx context.Context, userID string) error {
	if !isUUID(userID) {
		return entities.ErrAccountNotFound
	}
	tag, err := p.db.Exec(ctx, deleteAccountQuery, userID)
	if err != nil {
		p.log.Errorw("failed to delete account", "error", err, "user_id", userID)
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrAccountNotFound
	}

	p.log.Infow("account deleted", "user_id", userID)
	return nil
}

// GetAccount returns the account by id.
func (p *Postgres) GetAccount(ctx context.Context, userID string) (*entities.Account, error) {
	if !isUUID(userID) {
		return nil, entities.ErrAccountNotFound
	}
	var a entities.Account
	err := p.db.QueryRow(ctx, selectAccountQuery, userID).
		Scan(&a.ID, &a.Email, &a.EmailConfirmedAt, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// GetCredentials returns the password hash for sign-in.
func (p *Postgres) GetCredentials(ctx context.Context, email string) (*entities.Credentials, error) {
	var c entities.Credentials
	err := p.db.QueryRow(ctx, selectCredentialsSQL, email).Scan(&c.ID, &c.Email, &c.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get credentials: %w", err)
	}
	return &c, nil
}

// isUUID guards uuid columns; a malformed id can match no row.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
