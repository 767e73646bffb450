package models

import (
	"time"
)

type Group struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	AdminID   uint      `gorm:"not null" json:"admin_id"`
	Admin     User      `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Members   []User    `gorm:"many2many:group_members;" json:"members,omitempty"`
	Events    []Event   `json:"events,omitempty"`
}

// GroupMember is the join row behind Group.Members
type GroupMember struct {
	GroupID   uint      `gorm:"primaryKey" json:"group_id"`
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// HasMember reports whether username is among the loaded members
func (g *Group) HasMember(username string) bool {
	for _, m := range g.Members {
		if m.Username == username {
			return true
		}
	}
	return false
}

// MemberUsernames lists the loaded members' usernames
func (g *Group) MemberUsernames() []string {
	names := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		names = append(names, m.Username)
	}
	return names
}

// EventIDs lists the ids of the loaded events
func (g *Group) EventIDs() []uint {
	ids := make([]uint, 0, len(g.Events))
	for _, e := range g.Events {
		ids = append(ids, e.ID)
	}
	return ids
}
