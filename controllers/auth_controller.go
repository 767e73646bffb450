package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ievamoo/get2gether/middleware"
)

type RegisterInput struct {
	Username    string `json:"username" binding:"required,min=3,max=50" example:"johndoe"`
	DisplayName string `json:"display_name" binding:"max=100" example:"John Doe"`
	Password    string `json:"password" binding:"required,min=6" example:"secret123"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required" example:"johndoe"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type AvailableDaysInput struct {
	Dates []string `json:"dates" binding:"required" example:"2025-06-01"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account and returns a token for it
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterInput true "User Registration"
// @Success 201 {object} map[string]interface{} "User registered successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Username taken"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/register [post]
func (ctl *Controller) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := ctl.svc.Users.Register(c.Request.Context(), input.Username, input.DisplayName, input.Password)
	if err != nil {
		ctl.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
		"token":   token,
	})
}

// Login godoc
// @Summary Log in
// @Description Checks credentials and returns a token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginInput true "User Login"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/login [post]
func (ctl *Controller) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := ctl.svc.Users.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		ctl.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// Me godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Current user"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/me [get]
func (ctl *Controller) Me(c *gin.Context) {
	user, err := ctl.svc.Users.Profile(c.Request.Context(), middleware.Username(c))
	if err != nil {
		ctl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SetAvailableDays godoc
// @Summary Replace the authenticated user's available days
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param days body AvailableDaysInput true "Available days, YYYY-MM-DD"
// @Success 200 {object} map[string]interface{} "Updated user"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/me/available-days [put]
func (ctl *Controller) SetAvailableDays(c *gin.Context) {
	var input AvailableDaysInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.svc.Users.SetAvailableDays(c.Request.Context(), middleware.Username(c), input.Dates)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
