package generator

import (
	"math/rand/v2"

	"eurojackpot/models"
)

// sequenceSource replays fixed values in a loop
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// sampleDraws builds n valid draws from a seeded generator
func sampleDraws(n int, seed uint64) []models.RawDraw {
	r := rand.New(rand.NewPCG(seed, seed+1))
	draws := make([]models.RawDraw, 0, n)
	for i := 0; i < n; i++ {
		mains := r.Perm(MainMax)[:MainPickCount]
		stars := r.Perm(StarMax)[:StarPickCount]
		for j := range mains {
			mains[j]++
		}
		for j := range stars {
			stars[j]++
		}
		draws = append(draws, models.NewRawDraw("", mains, stars))
	}
	return draws
}

func firstDraw() models.RawDraw {
	return models.RawDraw{
		Date: "2012-03-23",
		Numbers: []models.RawNumber{
			models.StringValue("5"), models.StringValue("8"), models.StringValue("21"),
			models.StringValue("37"), models.StringValue("46"),
		},
		StarNumbers: []models.RawNumber{models.StringValue("6"), models.StringValue("8")},
	}
}

func drawOf(numbers ...int) models.Draw {
	return models.Draw{Numbers: numbers}
}
