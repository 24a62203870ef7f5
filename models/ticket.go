package models

// StrategyID identifies one of the ticket selection strategies
type StrategyID string

const (
	StrategyBalancedFrequency StrategyID = "balanced-frequency"
	StrategyHistoricalShape   StrategyID = "historical-shape"
	StrategyMildHotBias       StrategyID = "mild-hot-bias"
	StrategyOverdueLightCold  StrategyID = "overdue-light-cold"
	StrategyRandomConstraints StrategyID = "random-constraints"
)

// Strategy pairs a strategy identifier with its display label
type Strategy struct {
	ID    StrategyID `json:"id"`
	Label string     `json:"label"`
}

// GeneratedTicket is a single suggested ticket (returned to the user)
type GeneratedTicket struct {
	Numbers     []int      `json:"numbers"`
	StarNumbers []int      `json:"starNumbers"`
	StrategyID  StrategyID `json:"strategyId"`
	Strategy    string     `json:"strategy"`
	Rationale   string     `json:"rationale"`
	Disclaimer  string     `json:"disclaimer"`
	Closing     string     `json:"closing"`
}
