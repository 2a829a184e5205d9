// Package suggest implements the adaptive chip suggestion engine:
// usage frequency scoring, custom chip mining, contextual ranking, and
// sentence assembly. Everything here is pure computation over snapshots
// supplied by the store; "now" is always an explicit parameter.
package suggest

import (
	"sort"
	"time"

	"github.com/kinlog/kinlog/internal/model"
)

// FrequencyWindowDays is the trailing window used for usage scoring.
const FrequencyWindowDays = 30

// ChipCount is one entry of a most-used ranking.
type ChipCount struct {
	ChipID   string         `json:"chip_id"`
	Slot     model.SlotType `json:"slot"`
	Count    int            `json:"count"`
	IsCustom bool           `json:"is_custom,omitempty"`
}

// ScoreChipFrequency converts ledger records into normalized
// recency-weighted scores. Records older than the trailing 30-day
// window are ignored; each remaining chip scores count/max, so the most
// used chip scores 1.0. Chips with no recent use are absent (callers
// treat missing as 0).
func ScoreChipFrequency(records []model.UsageRecord, now time.Time) map[string]float64 {
	cutoff := now.AddDate(0, 0, -FrequencyWindowDays)

	counts := map[string]int{}
	max := 0
	for _, r := range records {
		if r.At.Before(cutoff) || r.At.After(now) {
			continue
		}
		counts[r.ChipID]++
		if counts[r.ChipID] > max {
			max = counts[r.ChipID]
		}
	}

	scores := map[string]float64{}
	if max == 0 {
		return scores
	}
	for id, c := range counts {
		scores[id] = float64(c) / float64(max)
	}
	return scores
}

// MostUsedChips returns the top limit chips by usage count within the
// 30-day window, descending. Ties keep first-encountered order.
func MostUsedChips(records []model.UsageRecord, now time.Time, limit int) []ChipCount {
	if limit <= 0 {
		limit = 10
	}
	cutoff := now.AddDate(0, 0, -FrequencyWindowDays)

	index := map[string]int{}
	var ranked []ChipCount
	for _, r := range records {
		if r.At.Before(cutoff) || r.At.After(now) {
			continue
		}
		if i, ok := index[r.ChipID]; ok {
			ranked[i].Count++
			continue
		}
		index[r.ChipID] = len(ranked)
		ranked = append(ranked, ChipCount{
			ChipID: r.ChipID, Slot: r.Slot, Count: 1, IsCustom: r.IsCustom,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
