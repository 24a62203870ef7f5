package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"eurojackpot/events"
	"eurojackpot/generator"
	"eurojackpot/models"

	log "github.com/sirupsen/logrus"
)

// ErrUnknownStrategy is returned when a strategy ID does not exist
var ErrUnknownStrategy = errors.New("unknown strategy")

type ticketService struct {
	source  DrawSource
	emitter EventEmitter

	// guards the generator's random source, which need not be concurrency safe
	mu        sync.Mutex
	generator *generator.Generator
}

// NewTicketService creates a ticket service. A nil rng uses the default
// random source; a nil emitter disables events.
func NewTicketService(source DrawSource, emitter EventEmitter, rng generator.RandomSource) TicketService {
	return &ticketService{
		source:    source,
		emitter:   emitter,
		generator: generator.New(rng),
	}
}

func (s *ticketService) GenerateTicket(ctx context.Context) (*models.GeneratedTicket, error) {
	return s.generate(ctx, nil)
}

func (s *ticketService) GenerateTicketWithStrategy(ctx context.Context, id models.StrategyID) (*models.GeneratedTicket, error) {
	strategy, ok := generator.StrategyByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, id)
	}
	return s.generate(ctx, &strategy)
}

func (s *ticketService) generate(ctx context.Context, strategy *models.Strategy) (*models.GeneratedTicket, error) {
	start := time.Now()

	draws, err := s.source.LoadDraws(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load draws: %w", err)
	}

	s.mu.Lock()
	var ticket *models.GeneratedTicket
	if strategy != nil {
		ticket = s.generator.GenerateWithStrategy(draws, *strategy)
	} else {
		ticket = s.generator.Generate(draws)
	}
	s.mu.Unlock()

	duration := time.Since(start)

	log.WithFields(log.Fields{
		"strategy":    ticket.StrategyID,
		"numbers":     ticket.Numbers,
		"starNumbers": ticket.StarNumbers,
		"draws":       len(draws),
		"source":      s.source.Name(),
		"duration":    duration,
	}).Debug("Generated ticket")

	if s.emitter != nil {
		s.emitter.Emit(context.WithoutCancel(ctx), events.TicketGeneratedEvent{
			StrategyID:  string(ticket.StrategyID),
			Strategy:    ticket.Strategy,
			Numbers:     ticket.Numbers,
			StarNumbers: ticket.StarNumbers,
			DrawCount:   len(draws),
			Source:      s.source.Name(),
			Duration:    duration,
		})
	}

	return ticket, nil
}
