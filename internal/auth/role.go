package auth

import "fmt"

// Role identifies which side of the transfer a credential belongs to.
type Role string

const (
	RoleSource      Role = "source"
	RoleDestination Role = "destination"
)

// Valid reports whether the role is one of the two known transfer sides.
func (r Role) Valid() bool {
	return r == RoleSource || r == RoleDestination
}

// ParseRole converts a string into a Role, rejecting anything that is not
// "source" or "destination".
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown account role %q (expected %q or %q)", s, RoleSource, RoleDestination)
	}
	return r, nil
}
