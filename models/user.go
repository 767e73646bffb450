package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DateLayout is the wire and storage format of calendar days
const DateLayout = "2006-01-02"

type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Username      string         `gorm:"size:255;not null;uniqueIndex" json:"username"`
	DisplayName   string         `gorm:"size:255" json:"display_name"`
	Password      string         `gorm:"size:255;not null" json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	AvailableDays []AvailableDay `gorm:"constraint:OnDelete:CASCADE;" json:"available_days,omitempty"`
	Groups        []Group        `gorm:"many2many:group_members;" json:"-"`
	Attending     []Event        `gorm:"many2many:event_going_members;" json:"-"`
	Invites       []Invite       `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE;" json:"-"`
}

// AvailableDay is one date a user has marked as free
type AvailableDay struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_user_day" json:"-"`
	Date   string `gorm:"size:10;not null;uniqueIndex:idx_user_day" json:"date"`
}

// BeforeCreate hashes the password before the first insert. Later saves keep
// the stored hash untouched.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return nil
}

// ValidatePassword checks if the provided password matches the stored hash
func (u *User) ValidatePassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// Dates returns the user's available days as plain strings
func (u *User) Dates() []string {
	dates := make([]string, 0, len(u.AvailableDays))
	for _, d := range u.AvailableDays {
		dates = append(dates, d.Date)
	}
	return dates
}
