package userRepo

import "contracthub/models"

// UserRepository defines methods for identity data access.
// Lookup methods return (nil, nil) when no document matches.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// Update replaces an existing user record.
	Update(user *models.User) error
}
