// Package permission maps roles to capability sets. The mapping is a pure
// lookup over the closed role enum; it holds no state and touches nothing.
package permission

import "taskhub/internal/domain"

// Capabilities is the set of rights a role grants. The matrix is not a
// hierarchy: Guest differs from TeamMember only on document and comment
// management, analytics and creation rights belong to Admin and
// ProjectManager, and user management is Admin-exclusive.
type Capabilities struct {
	CanCreateProject   bool `json:"canCreateProject"`
	CanDeleteProject   bool `json:"canDeleteProject"`
	CanCreateTask      bool `json:"canCreateTask"`
	CanDeleteTask      bool `json:"canDeleteTask"`
	CanAssignTask      bool `json:"canAssignTask"`
	CanViewAnalytics   bool `json:"canViewAnalytics"`
	CanManageDocuments bool `json:"canManageDocuments"`
	CanManageUsers     bool `json:"canManageUsers"`
}

// For returns the capability set for a role. Unknown roles get no
// capabilities at all.
func For(role domain.Role) Capabilities {
	if !role.IsValid() {
		return Capabilities{}
	}

	manager := role == domain.RoleAdmin || role == domain.RoleProjectManager

	return Capabilities{
		CanCreateProject:   manager,
		CanDeleteProject:   role == domain.RoleAdmin,
		CanCreateTask:      manager,
		CanDeleteTask:      manager,
		CanAssignTask:      manager,
		CanViewAnalytics:   manager,
		CanManageDocuments: role != domain.RoleGuest,
		CanManageUsers:     role == domain.RoleAdmin,
	}
}
