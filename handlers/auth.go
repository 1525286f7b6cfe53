package handlers

import (
	"net/http"

	"contracthub/services/account"
	"contracthub/utils"

	"github.com/gin-gonic/gin"
)

// Register creates a user account (and a contractor profile for the
// contractor role) and issues a session token.
func (hb *HandlerBundle) Register(c *gin.Context) {
	var input account.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := hb.Accounts.Register(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Login verifies credentials and issues a session token.
func (hb *HandlerBundle) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := hb.Accounts.Login(input.Email, input.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
