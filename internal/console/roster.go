package console

import "member-admin/internal/entities"

// RosterState tells apart a roster never fetched from one fetched empty.
type RosterState int

const (
	// RosterLoading means the member list was not fetched yet.
	RosterLoading RosterState = iota
	// RosterEmpty means the list was fetched and holds no members.
	RosterEmpty
	// RosterLoaded means the list was fetched and holds members.
	RosterLoaded
)

func (s RosterState) String() string {
	switch s {
	case RosterEmpty:
		return "empty"
	case RosterLoaded:
		return "loaded"
	default:
		return "loading"
	}
}

// Roster is the console's view of the member list.
type Roster struct {
	State   RosterState
	Members []entities.Member
}

func newRoster(members []entities.Member) Roster {
	if len(members) == 0 {
		return Roster{State: RosterEmpty, Members: []entities.Member{}}
	}
	return Roster{State: RosterLoaded, Members: members}
}

// Find returns the member owning the account.
func (r Roster) Find(userID string) (entities.Member, bool) {
	for _, m := range r.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return entities.Member{}, false
}
