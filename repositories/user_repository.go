package repositories

import (
	"context"

	"github.com/ievamoo/get2gether/models"
)

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.conn(ctx).Create(user).Error; err != nil {
		return translate(err, "user %q", user.Username)
	}
	return nil
}

func (s *GormStore) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.conn(ctx).Preload("AvailableDays").First(&user, id).Error; err != nil {
		return nil, translate(err, "user %d", id)
	}
	return &user, nil
}

func (s *GormStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.conn(ctx).Preload("AvailableDays").
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, translate(err, "user %q", username)
	}
	return &user, nil
}

func (s *GormStore) ExistsUserByUsername(ctx context.Context, username string) (bool, error) {
	ok, err := exists(s.conn(ctx).Model(&models.User{}).Where("username = ?", username))
	if err != nil {
		return false, translate(err, "user %q", username)
	}
	return ok, nil
}

// ReplaceAvailableDays makes dates the user's full set of available days
func (s *GormStore) ReplaceAvailableDays(ctx context.Context, userID uint, dates []string) error {
	db := s.conn(ctx)
	if err := db.Where("user_id = ?", userID).Delete(&models.AvailableDay{}).Error; err != nil {
		return translate(err, "available days of user %d", userID)
	}
	if len(dates) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(dates))
	days := make([]models.AvailableDay, 0, len(dates))
	for _, d := range dates {
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, models.AvailableDay{UserID: userID, Date: d})
	}
	if err := db.Create(&days).Error; err != nil {
		return translate(err, "available days of user %d", userID)
	}
	return nil
}

// RemoveAvailableDay is a no-op when the date is not in the set
func (s *GormStore) RemoveAvailableDay(ctx context.Context, userID uint, date string) error {
	err := s.conn(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&models.AvailableDay{}).Error
	if err != nil {
		return translate(err, "available day %s of user %d", date, userID)
	}
	return nil
}
