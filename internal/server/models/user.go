// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is the identity record. Hash and Salt never leave the service layer;
// handlers must only ever see PublicUser.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Hash      string
	Salt      string
	RoleID    *int64
	Role      *Role
	DeletedAt *time.Time
	CreatedAt time.Time
}

// IsActive reports whether the user may authenticate. A user with a non-nil
// soft-delete timestamp is treated exactly like a missing user.
func (u *User) IsActive() bool {
	return u != nil && u.DeletedAt == nil
}

// PermissionNames flattens the user's role permissions into a name list for
// the access-token payload. Always non-nil.
func (u *User) PermissionNames() []string {
	names := []string{}
	if u.Role == nil {
		return names
	}
	for _, p := range u.Role.Permissions {
		names = append(names, p.Name)
	}
	return names
}

// Role groups a set of permissions. A user has at most one role.
type Role struct {
	ID          int64
	Name        string
	Permissions []Permission
}

// Permission is a named capability attached to a role.
type Permission struct {
	ID   int64
	Name string
}

// PublicUser is the projection of a User safe to return to clients.
type PublicUser struct {
	ID          int64    `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Email       string   `json:"email"`
	RoleID      *int64   `json:"role_id,omitempty"`
	Permissions []string `json:"permissions"`
}

// Public builds the client-safe projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		RoleID:      u.RoleID,
		Permissions: u.PermissionNames(),
	}
}
