// Package authz is the single decision point for role-restricted
// operations. Both the router guards and the account service consult it,
// so a handler wiring mistake cannot bypass the service-level check.
package authz

import (
	"idento/internal/app/session"
	"idento/internal/domain/model"
)

// Allowed reports whether the identity may access an operation
// restricted to the given role. Roles match exactly: an admin is not
// implicitly a student.
func Allowed(id session.Identity, role model.Role) bool {
	return id.IsAuthenticated() && id.Role == role
}
