// Package insights produces the insight payload accompanying an emission
// value: from the external prediction service when it is reachable, and from
// a local heuristic estimator otherwise.
package insights

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"carboncare/internal/models"
)

type Breakdown struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Average float64 `json:"average"`
}

type Recommendation struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// Payload is the locally generated substitute for the prediction service's
// insight payload: a five-category breakdown plus one recommendation per
// category.
type Payload struct {
	Breakdown       []Breakdown      `json:"breakdown"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Estimator computes an approximate emission when no model prediction is
// available. The perturbation source is injected so tests can pin it down.
// One estimator serves every request; rand.Rand is not safe for concurrent
// use, so draws go through the mutex.
type Estimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEstimator builds an estimator around rng. A nil rng gets a time-seeded
// source; callers needing reproducible output pass their own.
func NewEstimator(rng *rand.Rand) *Estimator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Estimator{rng: rng}
}

var (
	transportOffsets = map[string]float64{
		"public": 2,
	}
	dietOffsets = map[string]float64{
		"vegetarian": -1,
		"vegan":      -2,
	}
	heatingOffsets = map[string]float64{
		"coal":        3,
		"natural gas": 2,
		"electricity": 1,
	}
)

// EstimateEmission returns a heuristic emission in kg CO2e: a base of 10
// adjusted by fixed per-category offsets, plus a perturbation in [0,2) so
// repeated estimates show plausible variation. The result is rounded to two
// decimals and is never negative.
func (e *Estimator) EstimateEmission(rec models.CarbonRecord) float64 {
	emission := 10.0
	emission += transportOffsets[rec.Transport]
	emission += dietOffsets[rec.Diet]
	emission += heatingOffsets[rec.HeatingEnergySource]

	e.mu.Lock()
	emission += e.rng.Float64() * 2
	e.mu.Unlock()

	if emission < 0 {
		emission = 0
	}
	return math.Round(emission*100) / 100
}

// FallbackInsights builds the fixed-shape payload used when the prediction
// service is unavailable. It has no I/O and never fails.
func FallbackInsights(rec models.CarbonRecord) *Payload {
	transport := 2.0
	switch rec.Transport {
	case "private":
		transport = 5.2
	case "public":
		transport = 3.1
	}

	home := 3.5
	switch rec.HeatingEnergySource {
	case "coal":
		home = 4.8
	case "natural gas":
		home = 3.8
	case "electricity":
		home = 3.2
	}

	food := 2.1
	switch rec.Diet {
	case "vegan":
		food = 1.2
	case "vegetarian":
		food = 1.5
	case "pescatarian":
		food = 1.8
	}

	consumption := 1.4
	if rec.HowManyNewClothesMonthly > 5 {
		consumption = 2.2
	} else if rec.HowManyNewClothesMonthly > 2 {
		consumption = 1.6
	}

	waste := 0.6
	if rec.WasteBagWeeklyCount > 3 {
		waste = 1.2
	} else if rec.WasteBagWeeklyCount > 1 {
		waste = 0.8
	}

	return &Payload{
		Breakdown: []Breakdown{
			{Name: "Transport", Value: transport, Average: 4.8},
			{Name: "Home Energy", Value: home, Average: 4.2},
			{Name: "Food", Value: food, Average: 2.8},
			{Name: "Consumption", Value: consumption, Average: 1.9},
			{Name: "Waste", Value: waste, Average: 1.0},
		},
		Recommendations: []Recommendation{
			{
				Category:    "Transport",
				Title:       "Reduce car usage",
				Description: "Try using public transportation, biking, or walking for short trips.",
				Impact:      "high",
			},
			{
				Category:    "Home Energy",
				Title:       "Switch to LED lighting",
				Description: "Replace all incandescent bulbs with energy-efficient LED alternatives.",
				Impact:      "medium",
			},
			{
				Category:    "Food",
				Title:       "Reduce meat consumption",
				Description: "Try incorporating more plant-based meals into your diet each week.",
				Impact:      "high",
			},
			{
				Category:    "Consumption",
				Title:       "Buy fewer new clothes",
				Description: "Consider second-hand shopping or extending the life of your current wardrobe.",
				Impact:      "medium",
			},
			{
				Category:    "Waste",
				Title:       "Improve recycling habits",
				Description: "Ensure you're properly sorting recyclables and composting organic waste.",
				Impact:      "low",
			},
		},
	}
}
