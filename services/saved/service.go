package saved

import (
	"fmt"
	"time"

	contractorRepo "contracthub/database/repository/contractor"
	savedRepo "contracthub/database/repository/saved"
	"contracthub/models"
	"contracthub/utils"

	"github.com/google/uuid"
)

// SavedEntry is a bookmark joined with its contractor for display.
type SavedEntry struct {
	Contractor models.Contractor `json:"contractor"`
	Notes      string            `json:"notes,omitempty"`
	Tags       []string          `json:"tags,omitempty"`
	SavedAt    time.Time         `json:"savedAt"`
}

// Service manages a client's contractor bookmarks. Bookmarks never touch
// booking or rating state.
type Service interface {
	Save(actor models.Actor, contractorID, notes string, tags []string) (*models.SavedContractor, error)
	Remove(actor models.Actor, contractorID string) error
	List(actor models.Actor) ([]SavedEntry, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Saved       savedRepo.SavedContractorRepository
	Contractors contractorRepo.ContractorRepository
}

func (s *DefaultService) Save(actor models.Actor, contractorID, notes string, tags []string) (*models.SavedContractor, error) {
	if contractorID == "" {
		return nil, utils.NewValidationError("contractorId is required")
	}
	contractor, err := s.Contractors.GetByID(contractorID)
	if err != nil {
		return nil, err
	}
	if contractor == nil {
		return nil, &utils.NotFoundError{Resource: "contractor", ID: contractorID}
	}
	// Friendly pre-check; the unique (clientId, contractorId) index closes
	// the race below.
	exists, err := s.Saved.Exists(actor.ID, contractorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &utils.ConflictError{Message: "contractor already saved"}
	}

	bookmark := &models.SavedContractor{
		ID:           uuid.New().String(),
		ClientID:     actor.ID,
		ContractorID: contractorID,
		Notes:        notes,
		Tags:         tags,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Saved.Create(bookmark); err != nil {
		if s.Saved.IsDuplicate(err) {
			return nil, &utils.ConflictError{Message: "contractor already saved"}
		}
		return nil, fmt.Errorf("failed to save contractor: %w", err)
	}
	return bookmark, nil
}

func (s *DefaultService) Remove(actor models.Actor, contractorID string) error {
	return s.Saved.Delete(actor.ID, contractorID)
}

func (s *DefaultService) List(actor models.Actor) ([]SavedEntry, error) {
	bookmarks, err := s.Saved.ListByClient(actor.ID)
	if err != nil {
		return nil, err
	}

	entries := make([]SavedEntry, 0, len(bookmarks))
	for _, b := range bookmarks {
		contractor, err := s.Contractors.GetByID(b.ContractorID)
		if err != nil {
			return nil, err
		}
		if contractor == nil {
			// Contractor deleted since bookmarking; skip rather than fail.
			continue
		}
		entries = append(entries, SavedEntry{
			Contractor: *contractor,
			Notes:      b.Notes,
			Tags:       b.Tags,
			SavedAt:    b.CreatedAt,
		})
	}
	return entries, nil
}
