package models

import (
	"time"
)

type Event struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Date         string    `gorm:"size:10;not null;index" json:"date"`
	HostUsername string    `gorm:"size:255;not null" json:"host_username"`
	GroupID      uint      `gorm:"not null;index" json:"group_id"`
	Group        *Group    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	GoingMembers []User    `gorm:"many2many:event_going_members;" json:"going_members,omitempty"`
}

// EventGoingMember is the join row behind Event.GoingMembers
type EventGoingMember struct {
	EventID   uint      `gorm:"primaryKey" json:"event_id"`
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// IsGoing reports whether username is among the loaded going members
func (e *Event) IsGoing(username string) bool {
	for _, m := range e.GoingMembers {
		if m.Username == username {
			return true
		}
	}
	return false
}
