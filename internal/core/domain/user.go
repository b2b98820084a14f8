package domain

import "time"

// DirectoryUser is a staff or guest account as listed by the catalog. It is
// read-only here and unrelated to the console session.
type DirectoryUser struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Roles       []Role    `json:"roles"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// FullName joins first and last name, falling back to the email local part.
func (u DirectoryUser) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return NameFromEmail(u.Email)
	}
}

// HasRole reports whether role is among the user's roles.
func (u DirectoryUser) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
