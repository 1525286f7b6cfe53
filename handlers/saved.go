package handlers

import (
	"net/http"

	"contracthub/middleware"
	"contracthub/utils"

	"github.com/gin-gonic/gin"
)

// SaveContractor bookmarks a contractor for the authenticated client.
func (hb *HandlerBundle) SaveContractor(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	var input struct {
		ContractorID string   `json:"contractorId"`
		Notes        string   `json:"notes"`
		Tags         []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	bookmark, err := hb.Saved.Save(actor, input.ContractorID, input.Notes, input.Tags)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bookmark)
}

// RemoveSavedContractor drops a bookmark. Removing an absent bookmark is a
// no-op.
func (hb *HandlerBundle) RemoveSavedContractor(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	if err := hb.Saved.Remove(actor, c.Param("contractorId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// ListSavedContractors returns the client's bookmarks joined with their
// contractors.
func (hb *HandlerBundle) ListSavedContractors(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing actor")
		return
	}

	entries, err := hb.Saved.List(actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"savedContractors": entries})
}
