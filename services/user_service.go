package services

import (
	"context"
	"fmt"

	"github.com/ievamoo/get2gether/apperrors"
	"github.com/ievamoo/get2gether/models"
	"github.com/ievamoo/get2gether/repositories"
	"go.uber.org/zap"
)

type UserService struct {
	store  repositories.Store
	tokens TokenGenerator
	log    *zap.Logger
}

func NewUserService(store repositories.Store, tokens TokenGenerator, log *zap.Logger) *UserService {
	return &UserService{store: store, tokens: tokens, log: log}
}

// Register creates an account and returns it with a fresh token
func (s *UserService) Register(ctx context.Context, username, displayName, password string) (*models.User, string, error) {
	taken, err := s.store.ExistsUserByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", apperrors.AlreadyExists("username %q is already taken", username)
	}

	if displayName == "" {
		displayName = username
	}
	user := &models.User{Username: username, DisplayName: displayName, Password: password}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	s.log.Info("user registered", zap.String("username", user.Username))
	return user, token, nil
}

// Login checks the password and returns a fresh token
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.store.FindUserByUsername(ctx, username)
	if apperrors.IsNotFound(err) {
		return nil, "", apperrors.Unauthorized("invalid username or password")
	}
	if err != nil {
		return nil, "", err
	}
	if err := user.ValidatePassword(password); err != nil {
		return nil, "", apperrors.Unauthorized("invalid username or password")
	}

	token, err := s.tokens.GenerateToken(user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

func (s *UserService) Profile(ctx context.Context, username string) (*models.User, error) {
	return s.store.FindUserByUsername(ctx, username)
}

// SetAvailableDays replaces the user's available days with dates
func (s *UserService) SetAvailableDays(ctx context.Context, username string, dates []string) (*models.User, error) {
	clean := make([]string, 0, len(dates))
	for _, d := range dates {
		date, err := parseDate(d)
		if err != nil {
			return nil, err
		}
		clean = append(clean, date)
	}

	err := s.store.Transaction(ctx, func(store repositories.Store) error {
		user, err := store.FindUserByUsername(ctx, username)
		if err != nil {
			return err
		}
		return store.ReplaceAvailableDays(ctx, user.ID, clean)
	})
	if err != nil {
		return nil, err
	}
	return s.store.FindUserByUsername(ctx, username)
}
