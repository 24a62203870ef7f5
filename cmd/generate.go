package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"eurojackpot/bot/common"
	"eurojackpot/config"
	"eurojackpot/generator"
	"eurojackpot/models"
	"eurojackpot/service"
)

// GenerateOptions controls a one-off ticket generation
type GenerateOptions struct {
	Seed     uint64
	Seeded   bool
	Strategy string
}

// Generate prints one ticket to w
func Generate(ctx context.Context, w io.Writer, opts GenerateOptions) error {
	cfg := config.Get()

	source, db, err := newDrawSource(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	var rng generator.RandomSource
	if opts.Seeded {
		rng = generator.NewSeededSource(opts.Seed)
	}

	return generateTo(ctx, w, service.NewTicketService(source, nil, rng), opts.Strategy)
}

func generateTo(ctx context.Context, w io.Writer, tickets service.TicketService, strategy string) error {
	var (
		ticket *models.GeneratedTicket
		err    error
	)
	if strategy != "" {
		ticket, err = tickets.GenerateTicketWithStrategy(ctx, models.StrategyID(strategy))
	} else {
		ticket, err = tickets.GenerateTicket(ctx)
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, FormatTicket(ticket))
	return err
}

// FormatTicket renders a ticket as plain text
func FormatTicket(ticket *models.GeneratedTicket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Numbers:      %s\n", joinNumbers(ticket.Numbers))
	fmt.Fprintf(&b, "Euro numbers: %s\n", joinNumbers(ticket.StarNumbers))
	fmt.Fprintf(&b, "Strategy:     %s\n", ticket.Strategy)
	fmt.Fprintf(&b, "\n%s\n\n%s\n%s\n", ticket.Rationale, ticket.Disclaimer, ticket.Closing)
	return b.String()
}

func joinNumbers(numbers []int) string {
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, common.FormatNumber(n))
	}
	return strings.Join(parts, " ")
}
