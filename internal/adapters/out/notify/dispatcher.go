package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"reservation/internal/core/ports"
)

const (
	defaultQueueSize   = 256
	defaultMaxAttempts = 3
	defaultBackoff     = 500 * time.Millisecond
)

// Dispatcher is an asynchronous ports.Notifier. Notify enqueues and returns
// immediately; a single worker goroutine drains the queue and calls the
// Sender, retrying failed deliveries with linear backoff. When the queue is
// full the notification is dropped and logged — reservation state has already
// committed by the time Notify is called, so losing a message never loses a
// booking.
type Dispatcher struct {
	sender      Sender
	logger      *slog.Logger
	queue       chan ports.Notification
	maxAttempts int
	backoff     time.Duration

	closeOnce sync.Once
	done      chan struct{}
}

// DispatcherOption customizes a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithQueueSize sets the channel buffer size.
func WithQueueSize(n int) DispatcherOption {
	return func(d *Dispatcher) {
		d.queue = make(chan ports.Notification, n)
	}
}

// WithRetryPolicy sets the per-notification attempt limit and the backoff
// between attempts.
func WithRetryPolicy(maxAttempts int, backoff time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.maxAttempts = maxAttempts
		d.backoff = backoff
	}
}

// NewDispatcher creates a Dispatcher and starts its worker goroutine.
// Call Close to stop the worker and flush what remains in the queue.
func NewDispatcher(sender Sender, logger *slog.Logger, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		sender:      sender,
		logger:      logger.With("component", "notification_dispatcher"),
		queue:       make(chan ports.Notification, defaultQueueSize),
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
		done:        make(chan struct{}),
	}

	for _, opt := range opts {
		opt(d)
	}

	go d.run()
	return d
}

// Notify enqueues the notification without blocking. Implements ports.Notifier.
func (d *Dispatcher) Notify(ctx context.Context, n ports.Notification) {
	select {
	case d.queue <- n:
	default:
		d.logger.WarnContext(ctx, "Notification queue full, dropping",
			"event", string(n.Event),
			"refCode", n.RefCode,
		)
	}
}

// Close stops accepting new notifications and blocks until the worker has
// drained the queue.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
		<-d.done
	})
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for n := range d.queue {
		d.deliver(n)
	}
}

func (d *Dispatcher) deliver(n ports.Notification) {
	ctx := context.Background()

	var err error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		if err = d.sender.Send(ctx, n); err == nil {
			return
		}

		d.logger.WarnContext(ctx, "Notification delivery failed",
			"event", string(n.Event),
			"refCode", n.RefCode,
			"attempt", attempt,
			"error", err,
		)

		if attempt < d.maxAttempts {
			time.Sleep(d.backoff * time.Duration(attempt))
		}
	}

	d.logger.ErrorContext(ctx, "Notification abandoned after retries",
		"event", string(n.Event),
		"refCode", n.RefCode,
		"error", err,
	)
}
