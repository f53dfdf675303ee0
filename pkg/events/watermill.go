// Package events is the PostgreSQL event bus built on Watermill's SQL transport.
//
// Inventory writes its events inside the transaction that changes stock. In
// outbox mode those messages land on an internal queue, and a forwarder running
// in the API process relays them to their real topic once committed. The worker
// subscribes as one consumer group, so each event is handled by a single worker
// instance. Handlers must be idempotent because delivery is at-least-once.
//
// The OTel trace context of the publisher travels in message metadata and is
// restored for the handler.
package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ghuser/bizzy/pkg/config"
	"github.com/ghuser/bizzy/pkg/logger"
)

const (
	outboxTopic     = "_outbox"
	outboxGroup     = "outbox-forwarder"
	errBufferSize   = 100
	shutdownTimeout = 30 * time.Second
)

// RetryPolicy controls how often a failing handler is re-run before the
// message is nacked. The delay doubles after every attempt.
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
}

// DefaultRetry retries a handler three times, waiting 1s and then 2s.
var DefaultRetry = RetryPolicy{Attempts: 3, BaseDelay: time.Second}

// Options configures an EventBus.
type Options struct {
	DatabaseURL string
	// ConsumerGroup shares delivery between processes with the same group.
	ConsumerGroup string
	// Outbox routes Publish through the forwarder queue. StartForwarder must
	// run in exactly one place for the messages to reach their topics.
	Outbox bool
	Retry  RetryPolicy
}

func (o Options) withDefaults() Options {
	if o.Retry.Attempts <= 0 {
		o.Retry = DefaultRetry
	}
	return o
}

// EventBus publishes and consumes domain events stored in PostgreSQL.
type EventBus struct {
	opts       Options
	db         *sql.DB
	log        logger.Logger
	wlog       watermill.LoggerAdapter
	publisher  message.Publisher
	subscriber *watermillsql.Subscriber
	fwd        *forwarder.Forwarder
	wg         sync.WaitGroup
}

// NewEventBus opens the bus the worker consumes from.
func NewEventBus(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return Open(Options{
		DatabaseURL:   cfg.DefinitionDatabaseURL,
		ConsumerGroup: cfg.ServiceName + "-worker",
	}, log)
}

// NewEventBusWithForwarder opens the bus the API publishes to, in outbox mode.
// Call StartForwarder after it to begin relaying.
func NewEventBusWithForwarder(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return Open(Options{
		DatabaseURL:   cfg.DefinitionDatabaseURL,
		ConsumerGroup: cfg.ServiceName + "-api",
		Outbox:        true,
	}, log)
}

// Open connects to opts.DatabaseURL and creates the Watermill tables on first use.
func Open(opts Options, log logger.Logger) (*EventBus, error) {
	opts = opts.withDefaults()

	db, err := sql.Open("pgx", opts.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}
	wlog := watermill.NewSlogLogger(log.ToSlog())

	pub, err := watermillsql.NewPublisher(db, publisherConfig(true), wlog)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}
	sub, err := watermillsql.NewSubscriber(db, subscriberConfig(opts.ConsumerGroup), wlog)
	if err != nil {
		_ = pub.Close()
		_ = db.Close()
		return nil, fmt.Errorf("events: new subscriber: %w", err)
	}

	bus := &EventBus{opts: opts, db: db, log: log, wlog: wlog, subscriber: sub}
	bus.publisher = bus.outbox(pub)
	return bus, nil
}

func publisherConfig(initSchema bool) watermillsql.PublisherConfig {
	return watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: initSchema,
	}
}

func subscriberConfig(group string) watermillsql.SubscriberConfig {
	return watermillsql.SubscriberConfig{
		SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    group,
	}
}

// outbox wraps pub in a forwarder envelope when the bus runs in outbox mode.
func (q *EventBus) outbox(pub message.Publisher) message.Publisher {
	if !q.opts.Outbox {
		return pub
	}
	return forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: outboxTopic})
}

// StartForwarder relays committed outbox messages to their topics until ctx
// is done. It returns once the forwarder is running.
func (q *EventBus) StartForwarder(ctx context.Context) error {
	if !q.opts.Outbox {
		return errors.New("events: StartForwarder called on a bus without an outbox")
	}
	if q.fwd != nil {
		return errors.New("events: forwarder already started")
	}

	queue, err := watermillsql.NewSubscriber(q.db, subscriberConfig(outboxGroup), q.wlog)
	if err != nil {
		return fmt.Errorf("events: new outbox subscriber: %w", err)
	}
	target, err := watermillsql.NewPublisher(q.db, publisherConfig(true), q.wlog)
	if err != nil {
		_ = queue.Close()
		return fmt.Errorf("events: new outbox target publisher: %w", err)
	}
	fwd, err := forwarder.NewForwarder(queue, target, q.wlog, forwarder.Config{ForwarderTopic: outboxTopic})
	if err != nil {
		_ = target.Close()
		_ = queue.Close()
		return fmt.Errorf("events: create forwarder: %w", err)
	}
	q.fwd = fwd

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.log.InfoContext(ctx, "events: forwarder started")
		if err := fwd.Run(ctx); err != nil {
			q.log.ErrorContext(ctx, "events: forwarder stopped with error", "error", err)
			return
		}
		q.log.InfoContext(ctx, "events: forwarder stopped")
	}()

	select {
	case <-fwd.Running():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: waiting for forwarder: %w", ctx.Err())
	}
}

// Publish sends msgs to topic outside any transaction.
func (q *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	injectTrace(ctx, msgs)
	if err := q.publisher.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// PublishInTx publishes msgs on topic inside tx, so the event is committed or
// rolled back together with the business write. The tables already exist by
// the time a transaction runs, so the schema is not initialized here.
func (q *EventBus) PublishInTx(ctx context.Context, tx *sql.Tx, topic string, msgs ...*message.Message) error {
	pub, err := watermillsql.NewPublisher(tx, publisherConfig(false), q.wlog)
	if err != nil {
		return fmt.Errorf("events: new tx publisher: %w", err)
	}
	injectTrace(ctx, msgs)
	if err := q.outbox(pub).Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s in tx: %w", topic, err)
	}
	return nil
}

func injectTrace(ctx context.Context, msgs []*message.Message) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
}

func extractTrace(ctx context.Context, msg *message.Message) context.Context {
	carrier := propagation.MapCarrier{}
	for k, v := range msg.Metadata {
		carrier[k] = v
	}
	return otel.GetTextMapPropagator().Extract(ctx, carrier)
}

// Subscribe runs handler for every message on topic in a background goroutine.
// A nil return acks the message. An error is retried per the bus RetryPolicy,
// after which the message is nacked and the error is sent on the returned
// channel. Callers must drain the channel.
//
// Close waits for in-flight handlers.
func (q *EventBus) Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error) {
	ch, err := q.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, errBufferSize)
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(errCh)

		for msg := range ch {
			msgCtx := extractTrace(ctx, msg)
			if err := q.opts.Retry.run(msgCtx, msg, handler, q.log); err != nil {
				msg.Nack()
				select {
				case errCh <- fmt.Errorf("%s: %w", topic, err):
				default:
					q.log.ErrorContext(msgCtx, "events: error channel full, dropping error",
						"error", err, "topic", topic)
				}
				continue
			}
			msg.Ack()
		}
	}()

	return errCh, nil
}

// run calls handler until it succeeds or the attempts are used up, and
// returns the last error.
func (p RetryPolicy) run(
	ctx context.Context,
	msg *message.Message,
	handler func(context.Context, *message.Message) error,
	log logger.Logger,
) error {
	delay := p.BaseDelay
	var err error
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if attempt == p.Attempts {
			break
		}
		log.WarnContext(ctx, "events: handler failed, retrying",
			"message_id", msg.UUID,
			"attempt", attempt,
			"next_delay", delay,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("events: handler failed after %d attempts: %w", p.Attempts, err)
}

// Ping checks the EventBus database connection health.
func (q *EventBus) Ping(ctx context.Context) error {
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops the subscriber and forwarder, waits up to 30s for in-flight
// handlers, then closes the publisher and the connection.
func (q *EventBus) Close() error {
	if err := q.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}
	if q.fwd != nil {
		if err := q.fwd.Close(); err != nil {
			return fmt.Errorf("events: close forwarder: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		q.log.Error("events: timed out waiting for in-flight handlers")
	}

	if err := q.publisher.Close(); err != nil {
		return fmt.Errorf("events: close publisher: %w", err)
	}
	return q.db.Close()
}
