// Copyright (c) 2026 Fondren Library. All rights reserved.

package sec

// Role represents the authorization level granted to an operator.
type Role string

const (
	// Unrestricted access, including the identifier-type catalog.
	RoleAdmin Role = "admin"

	// Can create and edit name records and their associated records.
	RoleEditor Role = "editor"
)

// AtLeast checks if the current role meets or exceeds the target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {
	switch r {
	case RoleAdmin:
		return 20
	case RoleEditor:
		return 10
	default:
		return 0
	}
}
