package postgres

import (
	"context"
	"errors"
	"fmt"

	"member-admin/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectRoleQuery      = `SELECT role::text FROM user_roles WHERE user_id = $1`
	deleteUserRolesQuery = `DELETE FROM user_roles WHERE user_id = $1`
	insertUserRoleQuery  = `INSERT INTO user_roles (user_id, role) VALUES ($1, $2::app_role)`
)

// GetRole returns the single role assigned to the account.
func (p *Postgres) GetRole(ctx context.Context, userID string) (entities.Role, error) {
	if !isUUID(userID) {
		return "", entities.ErrRoleNotFound
	}
	var role string
	if err := p.db.QueryRow(ctx, selectRoleQuery, userID).Scan(&role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", entities.ErrRoleNotFound
		}
		return "", fmt.Errorf("get role: %w", err)
	}
	return entities.Role(role), nil
}

// ReplaceRole removes every role row of the account and inserts exactly one,
// inside one transaction.
func (p *Postgres) ReplaceRole(ctx context.Context, userID string, role entities.Role) error {
	if !isUUID(userID) {
		return entities.ErrAccountNotFound
	}

	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, deleteUserRolesQuery, userID)
	if err != nil {
		return fmt.Errorf("delete roles: %w", err)
	}

	if _, err := tx.Exec(ctx, insertUserRoleQuery, userID, string(role)); err != nil {
		p.log.Errorw("failed to insert role", "error", err, "user_id", userID, "role", role)
		return fmt.Errorf("insert role: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	p.log.Infow("role replaced", "user_id", userID, "role", role, "removed", tag.RowsAffected())
	return nil
}
