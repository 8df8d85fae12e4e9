package domain

// Role is the closed set of authorization roles. The stored column keeps the
// literal string so existing rows round-trip without a lookup table.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleGeneral Role = "GENERAL"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleGeneral
}

// ParseRole maps a stored or transported role string onto the enum.
// Anything unknown degrades to GENERAL, never to a wider permission.
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleGeneral
}

// CurrentActor identifies the authenticated employee performing an operation.
// It is always passed explicitly into service calls that make authorization
// decisions; services never reach into ambient session state.
type CurrentActor struct {
	Code string
	Role Role
}

func (a CurrentActor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
