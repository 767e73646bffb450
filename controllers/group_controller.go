package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ievamoo/get2gether/middleware"
)

type CreateGroupInput struct {
	Name      string   `json:"name" binding:"required,max=255" example:"Weekend Hikers"`
	Usernames []string `json:"usernames" example:"janedoe"`
}

// GetGroups godoc
// @Summary Get all groups for the authenticated user
// @Description Returns every group the authenticated user is a member of
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of groups"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/groups [get]
func (ctl *Controller) GetGroups(c *gin.Context) {
	groups, err := ctl.svc.Groups.List(c.Request.Context(), middleware.Username(c))
	if err != nil {
		ctl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// CreateGroup godoc
// @Summary Create a new group
// @Description Creates a group administered by the authenticated user and invites the listed users
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param group body CreateGroupInput true "Group Creation"
// @Success 201 {object} map[string]interface{} "Group created successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invited user not found"
// @Failure 409 {object} map[string]string "Group name taken"
// @Router /api/groups [post]
func (ctl *Controller) CreateGroup(c *gin.Context) {
	var input CreateGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := ctl.svc.Groups.Create(c.Request.Context(), middleware.Username(c), input.Name, input.Usernames)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Group created successfully", "group": group})
}

// GetGroup godoc
// @Summary Get a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]interface{} "Group details"
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Group not found"
// @Router /api/groups/{id} [get]
func (ctl *Controller) GetGroup(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	group, err := ctl.svc.Groups.Get(c.Request.Context(), middleware.Username(c), id)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group})
}

// DeleteGroup godoc
// @Summary Delete a group
// @Description Deletes the group with its events and pending invites. Admin only.
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]string "Group deleted successfully"
// @Failure 403 {object} map[string]string "Not the admin"
// @Failure 404 {object} map[string]string "Group not found"
// @Router /api/groups/{id} [delete]
func (ctl *Controller) DeleteGroup(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.svc.Groups.Delete(c.Request.Context(), middleware.Username(c), id); err != nil {
		ctl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Group deleted successfully"})
}

// LeaveGroup godoc
// @Summary Leave a group
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]string "Left group successfully"
// @Failure 403 {object} map[string]string "Not a member, or the admin"
// @Failure 404 {object} map[string]string "Group not found"
// @Router /api/groups/{id}/leave [post]
func (ctl *Controller) LeaveGroup(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.svc.Groups.Leave(c.Request.Context(), middleware.Username(c), id); err != nil {
		ctl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Left group successfully"})
}
