package handlers

import (
	reviewRepo "contracthub/database/repository/review"
	userRepo "contracthub/database/repository/user"
	"contracthub/services/account"
	"contracthub/services/booking"
	"contracthub/services/saved"
	"contracthub/services/search"
	"contracthub/services/stats"
)

// HandlerBundle groups every endpoint handler's dependencies into one struct.
// Routes pull handlers off the bundle; main wires the services in.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository
	Reviews  reviewRepo.ReviewRepository

	Bookings booking.Service
	Search   search.Service
	Stats    stats.Service
	Saved    saved.Service
	Accounts account.Service
}
