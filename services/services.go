// Package services holds the mutation entry points of the application. Every
// mutation runs as one unit of work and publishes the actions that cascade
// from it.
package services

import (
	"strings"
	"time"

	"github.com/ievamoo/get2gether/actions"
	"github.com/ievamoo/get2gether/apperrors"
	"github.com/ievamoo/get2gether/models"
	"github.com/ievamoo/get2gether/repositories"
	"go.uber.org/zap"
)

// TokenGenerator issues credentials for authenticated users
type TokenGenerator interface {
	GenerateToken(username string) (string, error)
}

// Services bundles the entry points used by the REST and socket surfaces
type Services struct {
	Users   *UserService
	Groups  *GroupService
	Events  *EventService
	Invites *InviteService
}

func New(store repositories.Store, runner *actions.Runner, tokens TokenGenerator, log *zap.Logger) *Services {
	return &Services{
		Users:   NewUserService(store, tokens, log),
		Groups:  NewGroupService(store, runner, log),
		Events:  NewEventService(store, runner, log),
		Invites: NewInviteService(store, runner, log),
	}
}

// parseDate checks a calendar day in models.DateLayout
func parseDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return "", apperrors.Invalid("invalid date %q, expected YYYY-MM-DD", date)
	}
	return date, nil
}
