package postgres

import (
	"context"
	"errors"
	"fmt"

	"member-admin/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	profileColumns     = `p.id::text, p.user_id::text, p.username, p.full_name, p.email, p.avatar_url, p.department, p.team_role, p.created_at`
	selectProfileQuery = `SELECT ` + profileColumns + ` FROM profiles p WHERE p.user_id = $1`
	listMembersQuery   = `SELECT ` + profileColumns + `, r.role::text
FROM profiles p
LEFT JOIN user_roles r ON r.user_id = p.user_id`
	updateProfileQuery       = `UPDATE profiles SET department = $2, team_role = $3 WHERE id = $1`
	updateProfileByUserQuery = `UPDATE profiles SET department = $2, team_role = $3 WHERE user_id = $1`
)

// GetProfile returns the profile owned by the account.
func (p *Postgres) GetProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	if !isUUID(userID) {
		return nil, entities.ErrProfileNotFound
	}
	var pr entities.Profile
	err := p.db.QueryRow(ctx, selectProfileQuery, userID).Scan(
		&pr.ID, &pr.UserID, &pr.Username, &pr.FullName, &pr.Email,
		&pr.AvatarURL, &pr.Department, &pr.TeamRole, &pr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &pr, nil
}

// UpdateProfile sets department and team role on the profile with the given id.
func (p *Postgres) UpdateProfile(ctx context.Context, profileID string, fields entities.ProfileFields) error {
	return p.updateProfile(ctx, updateProfileQuery, profileID, fields)
}

// UpdateProfileByUserID sets department and team role on the account's profile.
func (p *Postgres) UpdateProfileByUserID(ctx context.Context, userID string, fields entities.ProfileFields) error {
	return p.updateProfile(ctx, updateProfileByUserQuery, userID, fields)
}

func (p *Postgres) updateProfile(ctx context.Context, query, id string, fields entities.ProfileFields) error {
	if !isUUID(id) {
		return entities.ErrProfileNotFound
	}
	tag, err := p.db.Exec(ctx, query, id, fields.Department, fields.TeamRole)
	if err != nil {
		p.log.Errorw("failed to update profile", "error", err, "id", id)
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProfileNotFound
	}
	return nil
}

// ListMembers returns every profile with its role, in store order.
func (p *Postgres) ListMembers(ctx context.Context) ([]entities.Member, error) {
	rows, err := p.db.Query(ctx, listMembersQuery)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.Member, 0)
	for rows.Next() {
		var (
			m    entities.Member
			role *string
		)
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Username, &m.FullName, &m.Email,
			&m.AvatarURL, &m.Department, &m.TeamRole, &m.CreatedAt, &role,
		); err != nil {
			p.log.Errorw("failed to scan member", "error", err)
			return nil, fmt.Errorf("scan members: %w", err)
		}
		if role != nil {
			r := entities.Role(*role)
			m.Role = &r
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}
