// Package webhook delivers lifecycle notifications to registered listener
// callbacks over HTTP with best-effort semantics.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"serviceordering/internal/core/domain/model/event"
	"serviceordering/internal/core/domain/model/listener"
	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/core/ports"
)

// DefaultDeliveryTimeout bounds one delivery attempt when no timeout is
// configured.
const DefaultDeliveryTimeout = 3 * time.Second

const queueCapacity = 256

// Publisher fans lifecycle events out to registered listeners. Delivery runs
// on a single background worker fed by a bounded queue: events keep their
// emission order per listener, the triggering request never holds a store
// lock during network I/O, and once an event is queued delivery proceeds
// regardless of the original request's context.
//
// Every failure class - transport error, non-2xx response, timeout - is
// logged and swallowed; it never reaches the API caller.
type Publisher struct {
	listeners ports.ListenerRepository
	client    *http.Client
	timeout   time.Duration
	logger    *slog.Logger

	sequence  atomic.Uint64
	queue     chan event.Envelope
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

var _ ports.NotificationPublisher = (*Publisher)(nil)

// NewPublisher creates a publisher and starts its delivery worker. A zero or
// negative timeout falls back to DefaultDeliveryTimeout.
func NewPublisher(listeners ports.ListenerRepository, timeout time.Duration, logger *slog.Logger) *Publisher {
	if timeout <= 0 {
		timeout = DefaultDeliveryTimeout
	}

	p := &Publisher{
		listeners: listeners,
		client:    &http.Client{},
		timeout:   timeout,
		logger:    logger.With("component", "notification_hub"),
		queue:     make(chan event.Envelope, queueCapacity),
		done:      make(chan struct{}),
	}

	p.wg.Add(1)
	go p.run()
	return p
}

// Publish queues one lifecycle event for delivery. Event identifiers come
// from a process-wide monotonic counter independent of resource identifiers,
// rendered as a fixed-width zero-padded string.
func (p *Publisher) Publish(kind event.Kind, serviceOrder order.Document) {
	envelope := event.NewEnvelope(p.nextEventID(), time.Now(), kind, serviceOrder)

	select {
	case p.queue <- envelope:
	case <-p.done:
		p.logger.Warn("notification dropped, publisher is closed",
			"eventType", kind.String(), "eventId", envelope.EventID)
	}
}

// Close stops accepting events, drains the queue, and waits for in-flight
// deliveries to finish or time out.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
	p.wg.Wait()
}

func (p *Publisher) nextEventID() string {
	return fmt.Sprintf("%05d", p.sequence.Add(1))
}

func (p *Publisher) run() {
	defer p.wg.Done()

	for {
		select {
		case envelope := <-p.queue:
			p.emit(envelope)
		case <-p.done:
			for {
				select {
				case envelope := <-p.queue:
					p.emit(envelope)
				default:
					return
				}
			}
		}
	}
}

func (p *Publisher) emit(envelope event.Envelope) {
	p.logger.Info("notification emitted",
		"eventType", envelope.EventType.String(), "eventId", envelope.EventID)

	registrations, err := p.listeners.List(context.Background())
	if err != nil {
		p.logger.Warn("failed to snapshot listeners", "eventId", envelope.EventID, "error", err)
		return
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		p.logger.Warn("failed to encode notification", "eventId", envelope.EventID, "error", err)
		return
	}

	for _, registration := range registrations {
		if !registration.Accepts(envelope.EventType.String()) {
			continue
		}
		p.deliver(registration, envelope, body)
	}
}

func (p *Publisher) deliver(registration listener.Registration, envelope event.Envelope, body []byte) {
	deliveryID := uuid.NewString()
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, registration.Callback, bytes.NewReader(body))
	if err != nil {
		p.logger.Warn("failed to build notification request",
			"listenerId", registration.ID, "deliveryId", deliveryID, "error", err)
		return
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := p.client.Do(request)
	if err != nil {
		p.logger.Warn("failed to publish notification",
			"listenerId", registration.ID, "callback", registration.Callback,
			"eventType", envelope.EventType.String(), "deliveryId", deliveryID, "error", err)
		return
	}
	defer response.Body.Close()

	if response.StatusCode/100 != 2 {
		p.logger.Warn("listener responded with non-success status",
			"listenerId", registration.ID, "status", response.StatusCode,
			"eventType", envelope.EventType.String(), "deliveryId", deliveryID)
	}
}
