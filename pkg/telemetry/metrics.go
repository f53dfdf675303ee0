package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/bizzy"

var (
	instrumentsOnce sync.Once
	identifiers     metric.Int64Counter
	assistantCalls  metric.Int64Counter
)

func instruments() {
	instrumentsOnce.Do(func() {
		m := otel.Meter(meterName)
		// Errors only occur for invalid instrument names; the returned no-op
		// instrument is still safe to use.
		identifiers, _ = m.Int64Counter("bizzy.identifiers.generated",
			metric.WithDescription("Sequential record identifiers handed out, by prefix"))
		assistantCalls, _ = m.Int64Counter("bizzy.assistant.calls",
			metric.WithDescription("Calls to the external assistant endpoints, by endpoint and outcome"))
	})
}

// IdentifierGenerated records one identifier issued with the given prefix.
func IdentifierGenerated(ctx context.Context, prefix string) {
	instruments()
	identifiers.Add(ctx, 1, metric.WithAttributes(attribute.String("prefix", prefix)))
}

// AssistantCall records one call to an assistant endpoint.
func AssistantCall(ctx context.Context, endpoint string, ok bool) {
	instruments()
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	assistantCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("outcome", outcome),
	))
}
