package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ievamoo/get2gether/middleware"
)

type CreateEventInput struct {
	Name string `json:"name" binding:"required,max=255" example:"Saturday Hike"`
	Date string `json:"date" binding:"required" example:"2025-06-01"`
}

type AttendanceInput struct {
	Going *bool `json:"going" binding:"required" example:"true"`
}

// GetGroupEvents godoc
// @Summary Get the events of a group
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]interface{} "List of events"
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Group not found"
// @Router /api/groups/{id}/events [get]
func (ctl *Controller) GetGroupEvents(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	events, err := ctl.svc.Events.ListByGroup(c.Request.Context(), middleware.Username(c), id)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CreateEvent godoc
// @Summary Create an event in a group
// @Description The authenticated user hosts the event, is marked as going, and every other member is invited
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param event body CreateEventInput true "Event Creation"
// @Success 201 {object} map[string]interface{} "Event created successfully"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Group not found"
// @Router /api/groups/{id}/events [post]
func (ctl *Controller) CreateEvent(c *gin.Context) {
	groupID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := ctl.svc.Events.Create(c.Request.Context(), middleware.Username(c), groupID, input.Name, input.Date)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Event created successfully", "event": event})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Host only. Pending invites to the event are removed and members are notified.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string "Event deleted successfully"
// @Failure 403 {object} map[string]string "Not the host"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /api/events/{id} [delete]
func (ctl *Controller) DeleteEvent(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.svc.Events.Delete(c.Request.Context(), middleware.Username(c), id); err != nil {
		ctl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// SetAttendance godoc
// @Summary Mark attendance for an event
// @Description Going removes the event date from the user's available days. Not going leaves them unchanged.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param attendance body AttendanceInput true "Attendance"
// @Success 200 {object} map[string]interface{} "Updated event"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /api/events/{id}/attendance [put]
func (ctl *Controller) SetAttendance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input AttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := ctl.svc.Events.SetAttendance(c.Request.Context(), middleware.Username(c), id, *input.Going)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}
