package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ievamoo/get2gether/middleware"
)

// GetMessages godoc
// @Summary Get recent chat messages of a group
// @Description Returns the latest messages of the group chat, oldest first. New messages arrive over the websocket.
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param limit query int false "Maximum number of messages"
// @Success 200 {object} map[string]interface{} "List of messages"
// @Failure 400 {object} map[string]string "Invalid group ID"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/groups/{id}/messages [get]
func (ctl *Controller) GetMessages(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	messages, err := ctl.svc.Groups.Messages(c.Request.Context(), middleware.Username(c), id, limit)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
