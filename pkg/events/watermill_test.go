package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/bizzy/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func nopLogger() logger.Logger {
	return logger.Discard()
}

func fastRetry() RetryPolicy {
	return RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond}
}

func TestRetryPolicy_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return nil
	}
	if err := fastRetry().run(context.Background(), message.NewMessage("id", nil), handler, nopLogger()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetryPolicy_SuccessAfterRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("transient error")
		}
		return nil
	}
	if err := fastRetry().run(context.Background(), message.NewMessage("id", nil), handler, nopLogger()); err != nil {
		t.Fatalf("expected nil after eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryPolicy_ExhaustsAttempts(t *testing.T) {
	calls := 0
	permanent := errors.New("permanent error")
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return permanent
	}
	err := fastRetry().run(context.Background(), message.NewMessage("id", nil), handler, nopLogger())
	if !errors.Is(err, permanent) {
		t.Fatalf("expected wrapped handler error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryPolicy_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("error")
	}
	policy := RetryPolicy{Attempts: 3, BaseDelay: time.Second}
	if err := policy.run(ctx, message.NewMessage("id", nil), handler, nopLogger()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call before context cancel, got %d", calls)
	}
}

func TestOptions_DefaultRetry(t *testing.T) {
	if got := (Options{}).withDefaults().Retry; got != DefaultRetry {
		t.Errorf("Retry = %+v, want %+v", got, DefaultRetry)
	}
	custom := RetryPolicy{Attempts: 5, BaseDelay: time.Millisecond}
	if got := (Options{Retry: custom}).withDefaults().Retry; got != custom {
		t.Errorf("Retry = %+v, want %+v", got, custom)
	}
}

func TestStartForwarder_WithoutOutbox(t *testing.T) {
	bus := &EventBus{}
	if err := bus.StartForwarder(context.Background()); err == nil {
		t.Fatal("expected error for a bus without an outbox")
	}
}

func TestOutbox_PassThroughWithoutOutbox(t *testing.T) {
	pub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pub.Close() //nolint:errcheck

	bus := &EventBus{}
	if got := bus.outbox(pub); got != message.Publisher(pub) {
		t.Fatal("expected the publisher unchanged when the outbox is off")
	}
}

func TestInjectTrace_RoundTrip(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "inventory.low_stock")
	defer span.End()
	wantTraceID := span.SpanContext().TraceID()

	msg := message.NewMessage("id", nil)
	injectTrace(ctx, []*message.Message{msg})

	msgCtx := extractTrace(context.Background(), msg)

	gotSpan := trace.SpanFromContext(msgCtx)
	if !gotSpan.SpanContext().IsValid() {
		t.Fatal("extracted span context is not valid")
	}
	if gotSpan.SpanContext().TraceID() != wantTraceID {
		t.Errorf("trace ID mismatch: want %s, got %s", wantTraceID, gotSpan.SpanContext().TraceID())
	}
}
