package events

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// EventType identifies the kind of event flowing through the bus
type EventType string

const (
	EventTypeTicketGenerated EventType = "ticket_generated"
	EventTypeDrawsImported   EventType = "draws_imported"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// TicketGeneratedEvent is emitted after a ticket suggestion has been built
type TicketGeneratedEvent struct {
	StrategyID  string
	Strategy    string
	Numbers     []int
	StarNumbers []int
	DrawCount   int
	Source      string
	Duration    time.Duration
}

func (e TicketGeneratedEvent) Type() EventType {
	return EventTypeTicketGenerated
}

// DrawsImportedEvent is emitted once an import batch has been committed
type DrawsImportedEvent struct {
	Imported   int
	Skipped    int
	LatestDate time.Time
}

func (e DrawsImportedEvent) Type() EventType {
	return EventTypeDrawsImported
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus dispatches events to subscribed handlers. Handlers run asynchronously
// and a panicking handler does not affect the others.
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates an empty event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed event handler")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event")

	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// TransactionalBus holds events raised inside a unit of work until it commits
type TransactionalBus struct {
	real    *Bus
	pending []Event
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

// Publish queues an event until Flush
func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Pending returns the number of queued events
func (b *TransactionalBus) Pending() int {
	return len(b.pending)
}

// Flush emits every queued event on the underlying bus. Call it after commit.
func (b *TransactionalBus) Flush(ctx context.Context) {
	log.WithField("pendingEventCount", len(b.pending)).Debug("Flushing transactional events")

	// handlers outlive the transaction context
	eventCtx := context.WithoutCancel(ctx)
	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
}

// Discard drops queued events after a rollback
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
