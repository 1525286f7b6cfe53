package models

import "time"

// ServiceDetails is the snapshot of the booked service taken at creation
// time. It is a copy, not a live reference to the contractor's service list.
type ServiceDetails struct {
	Category    string    `bson:"category" json:"category"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	PriceType   PriceType `bson:"priceType" json:"priceType"`
}

// ReviewSnapshot is the denormalized rating written onto a booking when its
// review is attached, so listings can show it without a join.
type ReviewSnapshot struct {
	Rating  int       `bson:"rating" json:"rating"`
	Comment string    `bson:"comment,omitempty" json:"comment,omitempty"`
	RatedAt time.Time `bson:"ratedAt" json:"ratedAt"`
}

// Booking is the central transactional entity. ClientID and ContractorID are
// immutable after creation; cancellation is a terminal status, never a delete.
type Booking struct {
	ID                string          `bson:"id" json:"id"`
	ClientID          string          `bson:"clientId" json:"clientId"`
	ContractorID      string          `bson:"contractorId" json:"contractorId"`
	ServiceDetails    ServiceDetails  `bson:"serviceDetails" json:"serviceDetails"`
	ScheduledDate     time.Time       `bson:"scheduledDate" json:"scheduledDate"`
	ScheduledTime     string          `bson:"scheduledTime" json:"scheduledTime"`
	EstimatedDuration float64         `bson:"estimatedDuration,omitempty" json:"estimatedDuration,omitempty"` // hours
	Status            BookingStatus   `bson:"status" json:"status"`
	ClientAddress     Address         `bson:"clientAddress,omitempty" json:"clientAddress,omitempty"`
	Notes             string          `bson:"notes,omitempty" json:"notes,omitempty"`
	TotalAmount       float64         `bson:"totalAmount" json:"totalAmount"`
	PaymentStatus     PaymentStatus   `bson:"paymentStatus" json:"paymentStatus"`
	ClientRating      *ReviewSnapshot `bson:"clientRating,omitempty" json:"clientRating,omitempty"`
	CreatedAt         time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// BookingInput is the client-supplied payload for creating a booking.
type BookingInput struct {
	ContractorID      string         `json:"contractorId"`
	ServiceDetails    ServiceDetails `json:"serviceDetails"`
	ScheduledDate     time.Time      `json:"scheduledDate"`
	ScheduledTime     string         `json:"scheduledTime"`
	EstimatedDuration float64        `json:"estimatedDuration"`
	ClientAddress     Address        `json:"clientAddress"`
	Notes             string         `json:"notes"`
	TotalAmount       float64        `json:"totalAmount"`
}
