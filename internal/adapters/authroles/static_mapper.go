// Package authroles maps API user types onto portal roles.
package authroles

import (
	domainauth "github.com/careerhub/portal/internal/domain/auth"
	"github.com/careerhub/portal/internal/ports"
)

var _ ports.RoleMapper = StaticRoleMapper{}

// StaticRoleMapper grants admin to one configured user type. Any other
// non-empty type is a regular user; an empty type is a guest.
type StaticRoleMapper struct {
	AdminUserType string
}

func (m StaticRoleMapper) Map(userType string) domainauth.Role {
	return domainauth.RoleFor(userType, m.AdminUserType)
}
