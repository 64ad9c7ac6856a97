package user

import "booking/internal/pkg/errs"

// Role classifies an account. Roles are fixed at registration; there is no
// role-transition machinery.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer books jobs.
	RoleCustomer

	// RoleTranslator accepts and fulfils jobs.
	RoleTranslator

	// RoleAdmin manages jobs and corrects session metadata.
	RoleAdmin

	// RoleSuperadmin has every admin capability plus account management.
	RoleSuperadmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleCustomer:   "customer",
		RoleTranslator: "translator",
		RoleAdmin:      "admin",
		RoleSuperadmin: "superadmin",
	}
}

// RoleFromString parses a role name, e.g. from a JWT claim.
// Returns RoleUnknown and false for unrecognized input.
func RoleFromString(s string) (Role, bool) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, true
		}
	}
	return RoleUnknown, false
}

// String returns the lowercase name of the role, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Role value is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// IsAdmin reports whether the role carries admin privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}
