package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/ievamoo/get2gether/models"
	"github.com/ievamoo/get2gether/testkit"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// spanProbe notes whether the handler ran inside a recording span
type spanProbe struct {
	traceHandler
	recording *bool
}

func (h spanProbe) OnGroupCreated(ctx context.Context, tx *Tx, a GroupCreated) error {
	*h.recording = trace.SpanFromContext(ctx).IsRecording()
	return h.traceHandler.OnGroupCreated(ctx, tx, a)
}

func TestPublishRecordsSpan(t *testing.T) {
	tests := []struct {
		name       string
		handlerErr error
		wantStatus codes.Code
	}{
		{name: "handler succeeds", wantStatus: codes.Unset},
		{name: "handler fails", handlerErr: errors.New("boom"), wantStatus: codes.Error},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
			t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

			var calls []string
			var recording bool
			d := NewDispatcher(zap.NewNop(), WithTracerProvider(tp))
			d.SubscribeGroup(spanProbe{
				traceHandler: traceHandler{name: "probe", calls: &calls, err: tc.handlerErr},
				recording:    &recording,
			})

			runner := NewRunner(testkit.NewStore(t), &testkit.Recorder{}, d)
			err := runner.Run(context.Background(), func(tx *Tx) error {
				return tx.Publish(context.Background(), GroupCreated{Group: &models.Group{}})
			})
			if !errors.Is(err, tc.handlerErr) {
				t.Fatalf("Run() error = %v, want %v", err, tc.handlerErr)
			}
			if !recording {
				t.Fatal("handler context carries no recording span")
			}

			spans := recorder.Ended()
			if len(spans) != 1 {
				t.Fatalf("ended spans = %d, want 1", len(spans))
			}
			if got := spans[0].Name(); got != "publish group.created" {
				t.Fatalf("span name = %q, want %q", got, "publish group.created")
			}
			if got := spans[0].Status().Code; got != tc.wantStatus {
				t.Fatalf("span status = %v, want %v", got, tc.wantStatus)
			}
		})
	}
}
