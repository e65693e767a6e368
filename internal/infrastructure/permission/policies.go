package permission

import (
	"fmt"

	"preparos/internal/shared/authorization"
)

// Resources guarded by the policy.
const (
	ResourceBatch    = "batch"
	ResourceSession  = "session"
	ResourceTransfer = "transfer"
	ResourceReport   = "report"
)

// Actions checked against the policy.
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"
)

// DefaultPolicies lets members work with every record except deleting
// batches. Admins inherit member permissions.
func DefaultPolicies() [][]string {
	member := authorization.RoleMember.String()
	admin := authorization.RoleAdmin.String()

	return [][]string{
		{member, ResourceBatch, ActionRead},
		{member, ResourceBatch, ActionWrite},
		{member, ResourceSession, ActionRead},
		{member, ResourceSession, ActionWrite},
		{member, ResourceSession, ActionDelete},
		{member, ResourceTransfer, ActionRead},
		{member, ResourceTransfer, ActionWrite},
		{member, ResourceTransfer, ActionDelete},
		{member, ResourceReport, ActionRead},
		{admin, ResourceBatch, ActionDelete},
	}
}

// SeedDefaultPolicies adds the default policies that are missing. Existing
// rows are left as they are, so policies edited in the database survive
// restarts.
func SeedDefaultPolicies(e *Enforcer) error {
	for _, p := range DefaultPolicies() {
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to seed policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}

	if err := e.AddRoleInheritance(authorization.RoleAdmin.String(), authorization.RoleMember.String()); err != nil {
		return err
	}

	e.logger.Infow("default permissions seeded", "policies", len(DefaultPolicies()))
	return nil
}
