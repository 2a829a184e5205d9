// Package insight implements the pattern detection engine: seven
// independent detectors over the energy and interaction logs, each
// emitting zero or one confidence-banded pattern.
//
// Every detector is a pure function with its own minimum sample size
// and effect-size threshold; under-threshold inputs are a normal "no
// pattern" outcome. Deterministic: same inputs and same clock produce
// the same patterns.
package insight

import (
	"sort"
	"time"

	"github.com/kinlog/kinlog/internal/model"
)

type detector func(energy []model.EnergyEntry, interactions []model.Interaction, people []model.Person, now time.Time) *model.Pattern

// Detector order is the tie-break when confidence bands are equal.
var detectors = []detector{
	detectWeeklyCycle,
	detectSocialEnergy,
	detectBestDay,
	detectConsistency,
	detectTrend,
	detectQualityDepth,
	detectArchetypeAffinity,
}

// Detect runs every detector over the supplied snapshots and returns
// the non-empty results sorted by confidence (high first), preserving
// detector order on ties.
func Detect(energy []model.EnergyEntry, interactions []model.Interaction, people []model.Person, now time.Time) []model.Pattern {
	var patterns []model.Pattern
	for _, d := range detectors {
		if p := d(energy, interactions, people, now); p != nil {
			patterns = append(patterns, *p)
		}
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Confidence.Rank() > patterns[j].Confidence.Rank()
	})
	return patterns
}

// dayKey truncates a timestamp to its UTC calendar day.
func dayKey(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// interactionsPerDay counts interactions by UTC calendar day.
func interactionsPerDay(interactions []model.Interaction) map[time.Time]int {
	counts := map[time.Time]int{}
	for _, i := range interactions {
		counts[dayKey(i.Date)]++
	}
	return counts
}

// energyByDay averages energy values per UTC calendar day.
func energyByDay(energy []model.EnergyEntry) map[time.Time]float64 {
	sums := map[time.Time]float64{}
	counts := map[time.Time]int{}
	for _, e := range energy {
		d := dayKey(e.At)
		sums[d] += float64(e.Value)
		counts[d]++
	}
	avgs := map[time.Time]float64{}
	for d, sum := range sums {
		avgs[d] = sum / float64(counts[d])
	}
	return avgs
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
