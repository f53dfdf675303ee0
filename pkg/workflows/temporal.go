// Package workflows connects to Temporal. The notification context runs its
// recommendation workflow on a worker created here when TEMPORAL_ENABLED is set.
package workflows

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	"go.temporal.io/sdk/interceptor"
	temporallog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/bizzy/pkg/config"
	"github.com/ghuser/bizzy/pkg/logger"
)

// Options locates the Temporal namespace and task queue.
type Options struct {
	HostPort  string
	Namespace string
	TaskQueue string
	// MaxConcurrentActivities bounds the activities one worker runs at once.
	// Recommendation activities call a slow external endpoint. Defaults to 4.
	MaxConcurrentActivities int
}

// OptionsFromConfig reads the TEMPORAL_* settings.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		HostPort:  cfg.TemporalHostPort,
		Namespace: cfg.TemporalNamespace,
		TaskQueue: cfg.TemporalTaskQueue,
	}
}

// TemporalClient is a dialed Temporal client bound to one task queue.
type TemporalClient struct {
	Client    client.Client
	TaskQueue string
	opts      Options
	tracing   interceptor.Interceptor
	log       logger.Logger
}

// NewTemporalClient dials Temporal with OTel tracing on every workflow and
// activity. Call Close when the process shuts down.
func NewTemporalClient(ctx context.Context, opts Options, log logger.Logger) (*TemporalClient, error) {
	if opts.MaxConcurrentActivities <= 0 {
		opts.MaxConcurrentActivities = 4
	}
	log = log.With("component", "temporal")

	tracing, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: otel.Tracer("temporal"),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal otel interceptor: %w", err)
	}

	c, err := client.DialContext(ctx, client.Options{
		HostPort:     opts.HostPort,
		Namespace:    opts.Namespace,
		Logger:       temporallog.NewStructuredLogger(log.ToSlog()),
		Interceptors: []interceptor.ClientInterceptor{tracing},
	})
	if err != nil {
		return nil, fmt.Errorf("dial temporal server at %s: %w", opts.HostPort, err)
	}

	log.Info("temporal client connected",
		"host_port", opts.HostPort, "namespace", opts.Namespace, "task_queue", opts.TaskQueue)

	return &TemporalClient{
		Client:    c,
		TaskQueue: opts.TaskQueue,
		opts:      opts,
		tracing:   tracing,
		log:       log,
	}, nil
}

// NewWorker returns a worker polling the client's task queue. Register
// workflows and activities on it before calling Start or Run.
func (tc *TemporalClient) NewWorker() worker.Worker {
	return worker.New(tc.Client, tc.TaskQueue, workerOptions(tc.opts, tc.tracing))
}

func workerOptions(opts Options, tracing interceptor.Interceptor) worker.Options {
	wo := worker.Options{MaxConcurrentActivityExecutionSize: opts.MaxConcurrentActivities}
	if tracing != nil {
		wo.Interceptors = []interceptor.WorkerInterceptor{tracing}
	}
	return wo
}

// Close shuts down the client connection.
func (tc *TemporalClient) Close() {
	tc.Client.Close()
	tc.log.Info("temporal client closed")
}
