// Package generator suggests EuroJackpot tickets from historical draw
// statistics. Suggestions are heuristic: every combination has the same odds.
package generator

import (
	"slices"

	"eurojackpot/models"
)

const (
	Disclaimer = "This is for entertainment only. Past draws do NOT predict future ones. Every combination has exactly the same 1/139,838,160 jackpot chance. This suggestion uses historical patterns only as a heuristic - it has no mathematical advantage over random."

	Closing = "Play responsibly - the house edge means long-term expected value is negative."
)

// Generator produces tickets using an injected random source
type Generator struct {
	rng RandomSource
}

// New creates a generator. A nil source uses DefaultSource.
func New(rng RandomSource) *Generator {
	if rng == nil {
		rng = DefaultSource()
	}
	return &Generator{rng: rng}
}

// GenerateTicket suggests a ticket using the default random source
func GenerateTicket(raw []models.RawDraw) *models.GeneratedTicket {
	return New(nil).Generate(raw)
}

// Generate suggests a ticket using a randomly selected strategy
func (g *Generator) Generate(raw []models.RawDraw) *models.GeneratedTicket {
	stats := BuildStats(Normalize(raw))
	return g.assemble(stats, SelectStrategy(g.rng))
}

// GenerateWithStrategy suggests a ticket using the given strategy
func (g *Generator) GenerateWithStrategy(raw []models.RawDraw, strategy models.Strategy) *models.GeneratedTicket {
	stats := BuildStats(Normalize(raw))
	return g.assemble(stats, strategy)
}

func (g *Generator) assemble(stats *Stats, strategy models.Strategy) *models.GeneratedTicket {
	numbers := pickMainNumbers(g.rng, stats, strategy.ID)
	stars := pickStarNumbers(g.rng, stats, strategy.ID)

	slices.Sort(numbers)
	slices.Sort(stars)

	return &models.GeneratedTicket{
		Numbers:     numbers,
		StarNumbers: stars,
		StrategyID:  strategy.ID,
		Strategy:    strategy.Label,
		Rationale:   BuildRationale(strategy.ID, numbers, stats),
		Disclaimer:  Disclaimer,
		Closing:     Closing,
	}
}
