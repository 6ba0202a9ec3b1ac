package entities

import "time"

// Profile is the descriptive record attached one-to-one to an account.
type Profile struct {
	ID         string
	UserID     string
	Username   *string
	FullName   *string
	Email      *string
	AvatarURL  *string
	Department *string
	TeamRole   *string
	CreatedAt  time.Time
}

// ProfileFields are the admin-editable profile columns. Nil means NULL.
type ProfileFields struct {
	Department *string
	TeamRole   *string
}

// NewProfileFields normalizes empty strings to NULL.
func NewProfileFields(department, teamRole string) ProfileFields {
	return ProfileFields{Department: nullable(department), TeamRole: nullable(teamRole)}
}

// Member is a profile joined with its current role.
type Member struct {
	Profile
	Role *Role
}

// CurrentRole returns the assigned role, treating a missing assignment as member.
func (m Member) CurrentRole() Role {
	if m.Role == nil {
		return RoleMember
	}
	return *m.Role
}

// DisplayName returns the username or a placeholder.
func (m Member) DisplayName() string {
	if m.Username == nil || *m.Username == "" {
		return "member"
	}
	return *m.Username
}

// MemberEdit is the console edit form.
type MemberEdit struct {
	Role       Role
	Department string
	TeamRole   string
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
