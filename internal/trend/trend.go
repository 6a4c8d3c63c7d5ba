// Package trend produces the decorative weekly activity chart.
//
// The bars carry no data; they only fill the analytics panel. Randomness
// comes from an injected Source so callers can pin it.
package trend

import (
	"math"
	"math/rand"
)

// Days are the chart columns, Monday first
var Days = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Source supplies values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Bar is one day of the chart
type Bar struct {
	Day    string  `json:"day"`
	Height float64 `json:"height"` // percent of the chart height, 40-100
	Value  int     `json:"value"`
}

// Week is a full chart, Monday to Sunday
type Week [7]Bar

// Weekly builds a chart from src
func Weekly(src Source) Week {
	var w Week
	for i, day := range Days {
		height := 40 + src.Float64()*60
		w[i] = Bar{
			Day:    day,
			Height: height,
			Value:  int(math.Floor(height / 10)),
		}
	}
	return w
}

// NewSource returns a seeded source; seed 0 picks a random seed
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = rand.Int63()
	}
	return rand.New(rand.NewSource(seed))
}
