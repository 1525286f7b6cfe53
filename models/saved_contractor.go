package models

import "time"

// SavedContractor is a client's bookmark of a contractor. The
// (clientId, contractorId) pair is unique; bookmarks have no effect on
// booking or rating state.
type SavedContractor struct {
	ID           string    `bson:"id" json:"id"`
	ClientID     string    `bson:"clientId" json:"clientId"`
	ContractorID string    `bson:"contractorId" json:"contractorId"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Tags         []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
