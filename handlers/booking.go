package handlers

import (
	"net/http"

	bookingRepo "contracthub/database/repository/booking"
	"contracthub/middleware"
	"contracthub/models"
	"contracthub/utils"

	"github.com/gin-gonic/gin"
)

// CreateBooking opens a new booking in pending for the authenticated client.
func (hb *HandlerBundle) CreateBooking(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := hb.Bookings.Create(actor, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetBooking returns a single booking visible to its client, its contractor,
// or an admin.
func (hb *HandlerBundle) GetBooking(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	booking, err := hb.Bookings.Get(actor, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListClientBookings returns the authenticated client's bookings, newest
// scheduled first, optionally filtered by status.
func (hb *HandlerBundle) ListClientBookings(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	opts := bookingRepo.ClientListOptions{
		Page:  parseIntQuery(c, "page", 1),
		Limit: parseIntQuery(c, "limit", 10),
	}
	if raw := c.Query("status"); raw != "" {
		status, ok := models.ParseBookingStatus(raw)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown status "+raw)
			return
		}
		opts.Status = &status
	}

	bookings, total, err := hb.Bookings.ListForClient(actor, opts)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings":    bookings,
		"totalCount":  total,
		"currentPage": opts.Page,
	})
}

// ListJobRequests returns pending bookings addressed to the authenticated
// contractor.
func (hb *HandlerBundle) ListJobRequests(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	bookings, err := hb.Bookings.ListJobRequests(actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatus advances the booking lifecycle to the requested status.
func (hb *HandlerBundle) UpdateBookingStatus(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	target, ok := models.ParseBookingStatus(input.Status)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown status "+input.Status)
		return
	}

	booking, err := hb.Bookings.Transition(actor, c.Param("id"), target)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdatePaymentStatus sets the payment axis of a booking.
func (hb *HandlerBundle) UpdatePaymentStatus(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	status, ok := models.ParsePaymentStatus(input.Status)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown payment status "+input.Status)
		return
	}

	booking, err := hb.Bookings.UpdatePaymentStatus(actor, c.Param("id"), status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBooking is the client-facing cancellation path. The booking is not
// deleted; it lands in the cancelled terminal status.
func (hb *HandlerBundle) CancelBooking(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	booking, err := hb.Bookings.Cancel(actor, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
