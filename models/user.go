package models

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleClient     Role = "client"
	RoleContractor Role = "contractor"
	RoleAdmin      Role = "admin"
)

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleClient, RoleContractor, RoleAdmin:
		return Role(raw), true
	}
	return "", false
}

// User is the identity record behind both clients and contractors.
type User struct {
	ID               string    `bson:"id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Email            string    `bson:"email" json:"email"`
	PasswordHash     string    `bson:"passwordHash" json:"-"`
	Role             Role      `bson:"role" json:"role"`
	Phone            string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address          string    `bson:"address,omitempty" json:"address,omitempty"`
	ProfileCompleted bool      `bson:"profileCompleted" json:"profileCompleted"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Actor is the authenticated principal acting on a request. It is extracted
// once by the auth middleware and passed explicitly into every core operation
// so no service reads ambient request state.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the actor carries the admin capability that
// bypasses ownership checks.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
