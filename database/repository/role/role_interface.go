package roleRepo

import "context"

// RoleRepository defines methods for role assignment data access.
type RoleRepository interface {
	// HasRole reports whether the (userID, role) assignment exists.
	HasRole(ctx context.Context, userID, role string) (bool, error)
	// Grant adds an assignment. Granting twice is not an error.
	Grant(ctx context.Context, userID, role string) error
	// Revoke removes an assignment. Revoking a missing one is not an error.
	Revoke(ctx context.Context, userID, role string) error
}

const collectionName = "user_roles"
