package models

import (
	"time"
)

// InviteKind tags what an invite points at
type InviteKind string

const (
	InviteKindGroup InviteKind = "GROUP"
	InviteKindEvent InviteKind = "EVENT"
)

// Valid reports whether k is a known kind
func (k InviteKind) Valid() bool {
	return k == InviteKindGroup || k == InviteKindEvent
}

// Invite is a pending invitation. Responding deletes the row, so a stored
// invite is always pending.
type Invite struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Kind           InviteKind `gorm:"size:10;not null;uniqueIndex:idx_invite_receiver_target" json:"kind"`
	TargetID       uint       `gorm:"not null;uniqueIndex:idx_invite_receiver_target;index:idx_invite_target" json:"target_id"`
	TargetName     string     `gorm:"size:255" json:"target_name"`
	SenderUsername string     `gorm:"size:255;not null" json:"sender_username"`
	ReceiverID     uint       `gorm:"not null;uniqueIndex:idx_invite_receiver_target" json:"-"`
	Receiver       User       `gorm:"foreignKey:ReceiverID" json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
}
