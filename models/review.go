package models

import "time"

// AspectRatings are the optional per-aspect sub-ratings of a review, each
// 1-5 when present.
type AspectRatings struct {
	Quality         int `bson:"quality,omitempty" json:"quality,omitempty"`
	Punctuality     int `bson:"punctuality,omitempty" json:"punctuality,omitempty"`
	Communication   int `bson:"communication,omitempty" json:"communication,omitempty"`
	Professionalism int `bson:"professionalism,omitempty" json:"professionalism,omitempty"`
}

// Review is the one-per-completed-booking rating record. ContractorID is
// denormalized from the booking at creation for query efficiency. Reviews are
// immutable once written.
type Review struct {
	ID             string        `bson:"id" json:"id"`
	BookingID      string        `bson:"bookingId" json:"bookingId"`
	ClientID       string        `bson:"clientId" json:"clientId"`
	ContractorID   string        `bson:"contractorId" json:"contractorId"`
	Rating         int           `bson:"rating" json:"rating"` // 1-5
	Comment        string        `bson:"comment,omitempty" json:"comment,omitempty"`
	Aspects        AspectRatings `bson:"aspects,omitempty" json:"aspects,omitempty"`
	WouldRecommend bool          `bson:"wouldRecommend" json:"wouldRecommend"`
	CreatedAt      time.Time     `bson:"createdAt" json:"createdAt"`
}

// ReviewInput is the client-supplied payload for attaching a review.
type ReviewInput struct {
	BookingID      string        `json:"bookingId"`
	Rating         int           `json:"rating"`
	Comment        string        `json:"comment"`
	Aspects        AspectRatings `json:"aspects"`
	WouldRecommend *bool         `json:"wouldRecommend"`
}
