package savedRepo

import "contracthub/models"

// SavedContractorRepository defines methods for bookmark data access. The
// (clientId, contractorId) pair is unique.
type SavedContractorRepository interface {
	// Create inserts a new bookmark. IsDuplicate recognizes the unique-index
	// violation for an already-saved contractor.
	Create(saved *models.SavedContractor) error
	// IsDuplicate reports whether err is the unique-index violation raised by
	// Create for a duplicate pair.
	IsDuplicate(err error) bool
	// Exists reports whether the client has already saved the contractor.
	Exists(clientID, contractorID string) (bool, error)
	// Delete removes a bookmark; missing pairs are not an error.
	Delete(clientID, contractorID string) error
	// ListByClient returns a client's bookmarks newest-first.
	ListByClient(clientID string) ([]models.SavedContractor, error)
	// CountByClient counts a client's bookmarks.
	CountByClient(clientID string) (int64, error)
}
