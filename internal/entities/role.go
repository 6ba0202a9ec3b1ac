package entities

// Role is the single authoritative role attached to an account.
type Role string

const (
	// RoleAdmin may manage other members.
	RoleAdmin Role = "admin"
	// RoleMember is the default role.
	RoleMember Role = "member"
)

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// ParseRole maps an optional wire value to a role; empty means member.
func ParseRole(s string) (Role, bool) {
	if s == "" {
		return RoleMember, true
	}
	r := Role(s)
	return r, r.Valid()
}
