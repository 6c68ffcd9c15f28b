package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Role identifies the actor requesting a transition. Authorization over
// transitions is role-scoped: see services.OrderStateMachine.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer placed the order. May only cancel before production starts.
	RoleCustomer

	// RoleBaker works the order forward through its lifecycle.
	RoleBaker

	// RoleOwner runs the bakery; privileged under the default policy.
	RoleOwner

	// RoleAdmin administers the platform; privileged under the default policy.
	RoleAdmin

	// RoleSystem attributes scheduled automatic transitions; privileged
	// under the default policy.
	RoleSystem
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleBaker:    "baker",
		RoleOwner:    "owner",
		RoleAdmin:    "admin",
		RoleSystem:   "system",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "customer",
		RoleBaker:    "baker",
		RoleOwner:    "owner",
		RoleAdmin:    "admin",
		RoleSystem:   "system",
	}
}

// RoleFromString parses the persisted/wire form of a role.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks that the Role is one of the defined actors.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the persisted/wire name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
