package actions

import (
	"context"
	"errors"

	"github.com/ievamoo/get2gether/repositories"
	"github.com/ievamoo/get2gether/websocket"
)

// Tx is the unit of work of one request: a Store bound to a single open
// transaction and a notifier whose messages are held until that transaction
// commits.
type Tx struct {
	repositories.Store
	Notify websocket.Notifier

	dispatcher *Dispatcher
}

// Publish dispatches action inside this unit of work
func (tx *Tx) Publish(ctx context.Context, action Action) error {
	return tx.dispatcher.Publish(ctx, tx, action)
}

// Runner opens units of work
type Runner struct {
	store      repositories.Store
	notifier   websocket.Notifier
	dispatcher *Dispatcher
}

func NewRunner(store repositories.Store, notifier websocket.Notifier, dispatcher *Dispatcher) *Runner {
	return &Runner{store: store, notifier: notifier, dispatcher: dispatcher}
}

// Run executes fn in one transaction. Notifications raised by fn or by the
// handlers it triggers reach the notifier only after a successful commit; on
// rollback they are discarded.
func (r *Runner) Run(ctx context.Context, fn func(tx *Tx) error) error {
	outbox := websocket.NewOutbox(r.notifier)

	var kept error
	err := r.store.Transaction(ctx, func(store repositories.Store) error {
		err := fn(&Tx{Store: store, Notify: outbox, dispatcher: r.dispatcher})
		var c *committedError
		if errors.As(err, &c) {
			kept = c.err
			return nil
		}
		return err
	})
	if err != nil {
		outbox.Discard()
		return err
	}

	outbox.Flush()
	return kept
}

type committedError struct {
	err error
}

func (e *committedError) Error() string { return e.err.Error() }
func (e *committedError) Unwrap() error { return e.err }

// Commit wraps err so that Run still commits the work done so far and then
// returns err to its caller.
func Commit(err error) error {
	if err == nil {
		return nil
	}
	return &committedError{err: err}
}
