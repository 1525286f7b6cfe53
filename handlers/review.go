package handlers

import (
	"net/http"

	"contracthub/middleware"
	"contracthub/models"
	"contracthub/utils"

	"github.com/gin-gonic/gin"
)

// CreateReview attaches the single review a completed booking may carry and
// triggers the contractor rating recompute.
func (hb *HandlerBundle) CreateReview(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	review, err := hb.Bookings.AttachReview(actor, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListContractorReviews returns a contractor's reviews, newest-first.
func (hb *HandlerBundle) ListContractorReviews(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 10)

	reviews, total, err := hb.Reviews.ListByContractor(c.Param("id"), page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reviews":     reviews,
		"totalCount":  total,
		"currentPage": page,
	})
}

// ListMyReviews returns every review the authenticated client has written.
func (hb *HandlerBundle) ListMyReviews(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	reviews, err := hb.Reviews.ListByClient(actor.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
