package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ievamoo/get2gether/middleware"
	"github.com/ievamoo/get2gether/models"
)

type SendInviteInput struct {
	Kind     models.InviteKind `json:"kind" binding:"required,oneof=GROUP EVENT" example:"GROUP"`
	TargetID uint              `json:"target_id" binding:"required" example:"1"`
	Username string            `json:"username" binding:"required" example:"janedoe"`
}

type RespondInviteInput struct {
	Action string `json:"action" binding:"required,oneof=accept decline" example:"accept"`
}

// GetInvites godoc
// @Summary Get pending invites for the authenticated user
// @Description Returns all pending invitations addressed to the authenticated user
// @Tags invites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of pending invites"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/invites [get]
func (ctl *Controller) GetInvites(c *gin.Context) {
	invites, err := ctl.svc.Invites.Received(c.Request.Context(), middleware.Username(c))
	if err != nil {
		ctl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invites": invites})
}

// SendInvite godoc
// @Summary Send an invitation to a user
// @Description Invites a user to a group (admin only) or to an event of a group both users belong to
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invite body SendInviteInput true "Invite Creation"
// @Success 201 {object} map[string]interface{} "Invitation sent successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User or target not found"
// @Failure 409 {object} map[string]string "Invitation already pending"
// @Router /api/invites [post]
func (ctl *Controller) SendInvite(c *gin.Context) {
	var input SendInviteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invite, err := ctl.svc.Invites.Send(c.Request.Context(), middleware.Username(c), input.Kind, input.TargetID, input.Username)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Invitation sent successfully", "invite": invite})
}

// RespondToInvite godoc
// @Summary Respond to an invitation
// @Description Accepts or declines an invitation. The invitation is removed either way.
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Invite ID"
// @Param response body RespondInviteInput true "Invite Response"
// @Success 200 {object} map[string]string "Invitation answered"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not the receiver"
// @Failure 404 {object} map[string]string "Invite not found"
// @Failure 409 {object} map[string]string "Already a member"
// @Router /api/invites/{id}/respond [post]
func (ctl *Controller) RespondToInvite(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input RespondInviteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accepted := input.Action == "accept"
	if err := ctl.svc.Invites.Respond(c.Request.Context(), middleware.Username(c), id, accepted); err != nil {
		ctl.fail(c, err)
		return
	}

	message := "Invitation declined"
	if accepted {
		message = "Invitation accepted"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
