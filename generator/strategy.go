package generator

import "eurojackpot/models"

// Strategies lists every selection strategy in a fixed order
var Strategies = []models.Strategy{
	{ID: models.StrategyBalancedFrequency, Label: "Balanced frequency mix"},
	{ID: models.StrategyHistoricalShape, Label: "Historical average shape"},
	{ID: models.StrategyMildHotBias, Label: "Mild hot bias + randomness"},
	{ID: models.StrategyOverdueLightCold, Label: "Overdue / light cold bias"},
	{ID: models.StrategyRandomConstraints, Label: "Pure random with constraints"},
}

// SelectStrategy picks one strategy uniformly at random
func SelectStrategy(rng RandomSource) models.Strategy {
	return Strategies[randomIndex(rng, len(Strategies))]
}

// StrategyByID looks up a strategy by its identifier
func StrategyByID(id models.StrategyID) (models.Strategy, bool) {
	for _, s := range Strategies {
		if s.ID == id {
			return s, true
		}
	}
	return models.Strategy{}, false
}
