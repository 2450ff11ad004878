package domain

import "slices"

// Role represents a user role in the system
type Role string

const (
	// RoleAdmin is the super-administrator: provisions restaurants and
	// licenses and sees data across all tenants
	RoleAdmin Role = "admin"

	// RoleOwner is a restaurant owner; full access within their restaurant
	RoleOwner Role = "owner"

	// RoleStaff can view and progress orders within their restaurant
	RoleStaff Role = "staff"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleAdmin, RoleOwner, RoleStaff}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasRole checks if a slice of roles contains a specific role
func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, string(role))
}

// HasAnyRole checks if a slice of roles contains any of the specified roles
func HasAnyRole(roles []string, requiredRoles ...Role) bool {
	for _, required := range requiredRoles {
		if HasRole(roles, required) {
			return true
		}
	}
	return false
}
