package domain

import "strings"

// Role is the closed set of principals the console knows about.
type Role string

const (
	RoleUser     Role = "user"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleUser, RoleEmployee, RoleAdmin}

// ParseRole converts s into a Role, rejecting anything outside the closed set.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", &ValidationError{Field: "role", Message: "role must be one of: user, employee, admin"}
	}
	return r, nil
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// Satisfies reports whether a principal holding r may enter a destination that
// requires the given role. An empty requirement admits every role and admin
// admits everything.
func (r Role) Satisfies(required Role) bool {
	if required == "" {
		return true
	}
	return r == required || r == RoleAdmin
}

func (r Role) String() string { return string(r) }
