package service

import (
	"context"
	"time"

	"eurojackpot/events"
	"eurojackpot/models"
)

// DrawRepository defines the interface for stored draw history
type DrawRepository interface {
	// Upsert inserts or replaces draws keyed by date and returns how many rows were written
	Upsert(ctx context.Context, draws []models.Draw) (int, error)

	// GetAll returns every stored draw, oldest first
	GetAll(ctx context.Context) ([]models.RawDraw, error)

	// Count returns the number of stored draws
	Count(ctx context.Context) (int, error)

	// LatestDate returns the most recent stored draw date, or nil when empty
	LatestDate(ctx context.Context) (*time.Time, error)

	// StoredDates returns the stored draw dates within [since, until], oldest first
	StoredDates(ctx context.Context, since, until time.Time) ([]time.Time, error)
}

// DrawSource supplies the historical draws tickets are generated from
type DrawSource interface {
	// LoadDraws returns the raw draw history
	LoadDraws(ctx context.Context) ([]models.RawDraw, error)

	// Name identifies the source in logs and events
	Name() string
}

// TicketService defines the interface for ticket suggestions
type TicketService interface {
	// GenerateTicket suggests a ticket with a randomly selected strategy
	GenerateTicket(ctx context.Context) (*models.GeneratedTicket, error)

	// GenerateTicketWithStrategy suggests a ticket with the named strategy
	GenerateTicketWithStrategy(ctx context.Context, id models.StrategyID) (*models.GeneratedTicket, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// EventEmitter defines the interface for emitting events outside a transaction
type EventEmitter interface {
	Emit(ctx context.Context, event events.Event)
}

// UnitOfWork groups repository writes and their events into one transaction
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and flushes pending events
	Commit() error

	// Rollback rolls back the transaction and discards pending events
	Rollback() error

	DrawRepository() DrawRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
