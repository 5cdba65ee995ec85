// File: xoadvisor/models/role.go
package models

import "time"

// AdminRole is the only role label the application checks.
const AdminRole = "admin"

// RoleAssignment grants a role label to an identity.
type RoleAssignment struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
