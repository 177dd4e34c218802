// Package trend aggregates a user's submissions into a monthly emission
// series for the dashboard chart.
package trend

import (
	"sort"

	"carboncare/internal/models"
)

// Point is one month of the series. Emission is the mean of that month's
// submissions, in tons CO2e.
type Point struct {
	Month    string  `json:"month"`
	Emission float64 `json:"emission"`
}

const maxMonths = 6

// placeholder is shown to users who have not submitted anything yet.
var placeholder = []Point{
	{Month: "Jan", Emission: 0.12},
	{Month: "Feb", Emission: 0.115},
	{Month: "Mar", Emission: 0.11},
	{Month: "Apr", Emission: 0.11},
	{Month: "May", Emission: 0.105},
	{Month: "Jun", Emission: 0.1},
}

// KgToTons converts an emission from kilograms to tons.
func KgToTons(kg float64) float64 { return kg / 1000 }

// Monthly groups records by calendar month and returns the per-month mean
// emission in tons, oldest first, truncated to the most recent six months.
// Zero input records yield a fixed illustrative series rather than an error.
func Monthly(records []models.CarbonRecord) []Point {
	if len(records) == 0 {
		out := make([]Point, len(placeholder))
		copy(out, placeholder)
		return out
	}

	sorted := make([]models.CarbonRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
	})

	type bucket struct {
		mean  float64
		count int
	}
	type key struct {
		year  int
		month int
	}
	buckets := map[key]*bucket{}
	var order []key

	for _, rec := range sorted {
		k := key{year: rec.RecordedAt.Year(), month: int(rec.RecordedAt.Month())}
		b, ok := buckets[k]
		if !ok {
			b = &bucket{}
			buckets[k] = b
			order = append(order, k)
		}
		// Incremental mean; only the final per-month value is read.
		b.mean = (b.mean*float64(b.count) + KgToTons(rec.CarbonEmission)) / float64(b.count+1)
		b.count++
	}

	if len(order) > maxMonths {
		order = order[len(order)-maxMonths:]
	}

	out := make([]Point, 0, len(order))
	for _, k := range order {
		out = append(out, Point{
			Month:    monthShort(k.month),
			Emission: buckets[k].mean,
		})
	}
	return out
}

func monthShort(m int) string {
	names := [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	if m < 1 || m > 12 {
		return ""
	}
	return names[m-1]
}
