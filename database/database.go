package database

import (
	"fmt"
	"strings"

	"github.com/ievamoo/get2gether/config"
	"github.com/ievamoo/get2gether/logger"
	"github.com/ievamoo/get2gether/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the configured database
func Connect(cfg config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(withForeignKeys(cfg.DSN()))
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// one writer at a time; sqlite locks the whole file anyway
		sqlDB.SetMaxOpenConns(1)
	}

	logger.Log.Info("Database connection established", zap.String("driver", cfg.Driver))
	return db, nil
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// Migrate creates or updates the schema
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Group{}, "Members", &models.GroupMember{}); err != nil {
		return fmt.Errorf("setup group_members: %w", err)
	}
	if err := db.SetupJoinTable(&models.User{}, "Groups", &models.GroupMember{}); err != nil {
		return fmt.Errorf("setup group_members: %w", err)
	}
	if err := db.SetupJoinTable(&models.Event{}, "GoingMembers", &models.EventGoingMember{}); err != nil {
		return fmt.Errorf("setup event_going_members: %w", err)
	}
	if err := db.SetupJoinTable(&models.User{}, "Attending", &models.EventGoingMember{}); err != nil {
		return fmt.Errorf("setup event_going_members: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.AvailableDay{},
		&models.Group{},
		&models.GroupMember{},
		&models.Event{},
		&models.EventGoingMember{},
		&models.Invite{},
		&models.Message{},
	)
	if err != nil {
		logger.Log.Error("Database migration failed", zap.Error(err))
		return err
	}

	logger.Log.Info("Database migration completed")
	return nil
}
