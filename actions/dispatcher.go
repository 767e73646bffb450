package actions

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/ievamoo/get2gether/actions"

// Dispatcher delivers actions to subscribed handlers in registration order,
// on the caller's goroutine. Handlers are registered once at startup;
// subscribing while actions are being published is not safe.
type Dispatcher struct {
	groupHandlers []GroupHandler
	eventHandlers []EventHandler
	tracer        trace.Tracer
	log           *zap.Logger
}

// DispatcherOption customises a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithTracerProvider takes spans from tp instead of the global provider
func WithTracerProvider(tp trace.TracerProvider) DispatcherOption {
	return func(d *Dispatcher) {
		d.tracer = tp.Tracer(tracerName)
	}
}

// NewDispatcher returns an empty Dispatcher. Without options the tracer comes
// from the global provider, so tracing.Setup must run first.
func NewDispatcher(log *zap.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		tracer: otel.Tracer(tracerName),
		log:    log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) SubscribeGroup(h GroupHandler) {
	d.groupHandlers = append(d.groupHandlers, h)
}

func (d *Dispatcher) SubscribeEvent(h EventHandler) {
	d.eventHandlers = append(d.eventHandlers, h)
}

// Publish runs every handler of the action's family and stops at the first
// error, which is returned unchanged so the caller's transaction rolls back.
func (d *Dispatcher) Publish(ctx context.Context, tx *Tx, action Action) error {
	ctx, span := d.tracer.Start(ctx, "publish "+action.Name(),
		trace.WithAttributes(attribute.String("action.name", action.Name())))
	defer span.End()

	if err := action.dispatch(ctx, tx, d); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.log.Debug("action handler failed", zap.String("action", action.Name()), zap.Error(err))
		return err
	}

	d.log.Debug("action published", zap.String("action", action.Name()))
	return nil
}
