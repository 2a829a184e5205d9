package insight

import (
	"fmt"
	"testing"
	"time"

	"github.com/kinlog/kinlog/internal/model"
)

// baseSunday anchors the fixtures; 2025-06-01 is a Sunday.
var baseSunday = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

var insightNow = baseSunday.AddDate(0, 0, 30)

// weekGrid builds weeks x 7 daily entries with a value per weekday.
func weekGrid(weeks int, valueFor func(time.Weekday) int) []model.EnergyEntry {
	var entries []model.EnergyEntry
	for w := 0; w < weeks; w++ {
		for d := 0; d < 7; d++ {
			at := baseSunday.AddDate(0, 0, w*7+d)
			entries = append(entries, model.EnergyEntry{
				ID:    fmt.Sprintf("e-%d-%d", w, d),
				At:    at,
				Value: valueFor(at.Weekday()),
			})
		}
	}
	return entries
}

// dailyRun builds one entry per consecutive day with a value per index.
func dailyRun(days int, valueAt func(day int) int) []model.EnergyEntry {
	entries := make([]model.EnergyEntry, 0, days)
	for d := 0; d < days; d++ {
		entries = append(entries, model.EnergyEntry{
			ID:    fmt.Sprintf("e-%d", d),
			At:    baseSunday.AddDate(0, 0, d),
			Value: valueAt(d),
		})
	}
	return entries
}

func interactionOn(id string, at time.Time, quality int, pids ...string) model.Interaction {
	return model.Interaction{
		ID:             id,
		Date:           at,
		Quality:        quality,
		Status:         "completed",
		ParticipantIDs: pids,
	}
}

func TestDetectWeeklyCycleHigh(t *testing.T) {
	energy := weekGrid(3, func(wd time.Weekday) int {
		switch wd {
		case time.Monday:
			return 5
		case time.Saturday:
			return 2
		default:
			return 3
		}
	})

	p := detectWeeklyCycle(energy, nil, nil, insightNow)
	if p == nil {
		t.Fatal("expected a weekly cycle pattern")
	}
	if p.Confidence != model.ConfidenceHigh {
		t.Errorf("gap 3.0 should be high confidence, got %s", p.Confidence)
	}
	if p.Data["peak_day"] != float64(time.Monday) {
		t.Errorf("expected Monday peak, got weekday %v", p.Data["peak_day"])
	}
	if p.Data["trough_day"] != float64(time.Saturday) {
		t.Errorf("expected Saturday trough, got weekday %v", p.Data["trough_day"])
	}
	if p.Data["gap"] != 3.0 {
		t.Errorf("expected gap 3.0, got %v", p.Data["gap"])
	}
}

func TestDetectWeeklyCycleFractionalAverages(t *testing.T) {
	// Monday samples 5,5,4,4 average 4.5; Saturdays sit at 2.0. The
	// 2.5 spread clears the high band on averages, not raw values.
	mondays := []int{5, 5, 4, 4}
	var energy []model.EnergyEntry
	for w := 0; w < 4; w++ {
		for d := 0; d < 7; d++ {
			at := baseSunday.AddDate(0, 0, w*7+d)
			v := 3
			switch at.Weekday() {
			case time.Monday:
				v = mondays[w]
			case time.Saturday:
				v = 2
			}
			energy = append(energy, model.EnergyEntry{
				ID:    fmt.Sprintf("e-%d-%d", w, d),
				At:    at,
				Value: v,
			})
		}
	}

	p := detectWeeklyCycle(energy, nil, nil, insightNow)
	if p == nil {
		t.Fatal("expected a weekly cycle pattern")
	}
	if p.Confidence != model.ConfidenceHigh {
		t.Errorf("gap 2.5 should be high confidence, got %s", p.Confidence)
	}
	if p.Data["peak_avg"] != 4.5 {
		t.Errorf("expected Monday average 4.5, got %v", p.Data["peak_avg"])
	}
	if p.Data["gap"] != 2.5 {
		t.Errorf("expected gap 2.5, got %v", p.Data["gap"])
	}
	if p.Data["peak_day"] != float64(time.Monday) || p.Data["trough_day"] != float64(time.Saturday) {
		t.Errorf("expected Monday peak and Saturday trough, got %v/%v",
			p.Data["peak_day"], p.Data["trough_day"])
	}
}

func TestDetectWeeklyCycleMedium(t *testing.T) {
	energy := weekGrid(3, func(wd time.Weekday) int {
		if wd == time.Monday {
			return 4
		}
		return 3
	})

	p := detectWeeklyCycle(energy, nil, nil, insightNow)
	if p == nil {
		t.Fatal("expected a weekly cycle pattern")
	}
	if p.Confidence != model.ConfidenceMedium {
		t.Errorf("gap 1.0 should be medium confidence, got %s", p.Confidence)
	}
}

func TestDetectWeeklyCycleBelowGap(t *testing.T) {
	energy := weekGrid(3, func(time.Weekday) int { return 3 })
	if p := detectWeeklyCycle(energy, nil, nil, insightNow); p != nil {
		t.Errorf("flat weekday averages should detect nothing, got %+v", p)
	}
}

func TestDetectWeeklyCycleSampleGate(t *testing.T) {
	energy := weekGrid(3, func(wd time.Weekday) int {
		if wd == time.Monday {
			return 5
		}
		return 2
	})
	if p := detectWeeklyCycle(energy[:20], nil, nil, insightNow); p != nil {
		t.Errorf("expected nil below 21 entries, got %+v", p)
	}
}

func TestDetectSocialEnergyPositive(t *testing.T) {
	// First week high energy, second week low.
	energy := dailyRun(14, func(d int) int {
		if d < 7 {
			return 5
		}
		return 1
	})
	var interactions []model.Interaction
	for d := 0; d < 7; d++ {
		at := baseSunday.AddDate(0, 0, d)
		interactions = append(interactions,
			interactionOn(fmt.Sprintf("i-%d-a", d), at, 0),
			interactionOn(fmt.Sprintf("i-%d-b", d), at, 0),
		)
	}

	p := detectSocialEnergy(energy, interactions, nil, insightNow)
	if p == nil {
		t.Fatal("expected a social energy pattern")
	}
	if p.Confidence != model.ConfidenceHigh {
		t.Errorf("diff 2.0 should be high confidence, got %s", p.Confidence)
	}
	if p.Data["diff"] != 2.0 {
		t.Errorf("expected diff 2.0, got %v", p.Data["diff"])
	}
}

func TestDetectSocialEnergyNegative(t *testing.T) {
	energy := dailyRun(14, func(d int) int {
		if d < 7 {
			return 5
		}
		return 1
	})
	var interactions []model.Interaction
	for d := 7; d < 14; d++ {
		at := baseSunday.AddDate(0, 0, d)
		interactions = append(interactions,
			interactionOn(fmt.Sprintf("i-%d-a", d), at, 0),
			interactionOn(fmt.Sprintf("i-%d-b", d), at, 0),
		)
	}

	p := detectSocialEnergy(energy, interactions, nil, insightNow)
	if p == nil {
		t.Fatal("expected a social energy pattern")
	}
	if p.Data["diff"] != -2.0 {
		t.Errorf("expected diff -2.0, got %v", p.Data["diff"])
	}
	if p.Description != "You socialize more on low-energy days." {
		t.Errorf("negative diff should flip the narrative, got %q", p.Description)
	}
}

func TestDetectSocialEnergyBelowDiff(t *testing.T) {
	energy := dailyRun(14, func(d int) int {
		if d < 7 {
			return 5
		}
		return 1
	})
	// One interaction every day: high and low means are equal.
	var interactions []model.Interaction
	for d := 0; d < 14; d++ {
		interactions = append(interactions,
			interactionOn(fmt.Sprintf("i-%d", d), baseSunday.AddDate(0, 0, d), 0))
	}

	if p := detectSocialEnergy(energy, interactions, nil, insightNow); p != nil {
		t.Errorf("equal social load should detect nothing, got %+v", p)
	}
}

func TestDetectSocialEnergySampleGates(t *testing.T) {
	energy := dailyRun(13, func(int) int { return 5 })
	interactions := []model.Interaction{
		interactionOn("i-1", baseSunday, 0),
		interactionOn("i-2", baseSunday, 0),
		interactionOn("i-3", baseSunday, 0),
		interactionOn("i-4", baseSunday, 0),
		interactionOn("i-5", baseSunday, 0),
	}
	if p := detectSocialEnergy(energy, interactions, nil, insightNow); p != nil {
		t.Error("expected nil below 14 energy entries")
	}

	energy = dailyRun(14, func(int) int { return 5 })
	if p := detectSocialEnergy(energy, interactions[:4], nil, insightNow); p != nil {
		t.Error("expected nil below 5 interactions")
	}
}

func TestDetectBestDay(t *testing.T) {
	energy := weekGrid(3, func(wd time.Weekday) int {
		if wd == time.Monday {
			return 5
		}
		return 3
	})
	// Two interactions on each of the three Mondays.
	var interactions []model.Interaction
	for w := 0; w < 3; w++ {
		at := baseSunday.AddDate(0, 0, w*7+1)
		interactions = append(interactions,
			interactionOn(fmt.Sprintf("i-%d-a", w), at, 0),
			interactionOn(fmt.Sprintf("i-%d-b", w), at, 0),
		)
	}

	p := detectBestDay(energy, interactions, nil, insightNow)
	if p == nil {
		t.Fatal("expected a best day pattern")
	}
	if p.Data["weekday"] != float64(time.Monday) {
		t.Errorf("expected Monday, got weekday %v", p.Data["weekday"])
	}
	// 0.5*5 energy + 0.5*2 interactions per Monday.
	if p.Data["composite"] != 3.5 {
		t.Errorf("expected composite 3.5, got %v", p.Data["composite"])
	}
	if p.Confidence != model.ConfidenceHigh {
		t.Errorf("composite 3.5 should be high confidence, got %s", p.Confidence)
	}
}

func TestDetectBestDaySampleGate(t *testing.T) {
	energy := weekGrid(3, func(time.Weekday) int { return 4 })
	if p := detectBestDay(energy[:20], nil, nil, insightNow); p != nil {
		t.Errorf("expected nil below 21 entries, got %+v", p)
	}
}

func TestDetectConsistencySteady(t *testing.T) {
	energy := dailyRun(30, func(int) int { return 4 })

	p := detectConsistency(energy, nil, nil, insightNow)
	if p == nil {
		t.Fatal("expected a consistency pattern")
	}
	if p.Title != "Steady energy" {
		t.Errorf("stddev 0 should read steady, got %q", p.Title)
	}
	if p.Confidence != model.ConfidenceHigh {
		t.Errorf("consistency patterns are always high confidence, got %s", p.Confidence)
	}
	if p.Data["stddev"] != 0 {
		t.Errorf("expected stddev 0, got %v", p.Data["stddev"])
	}
}

func TestDetectConsistencyVolatile(t *testing.T) {
	// Alternating 1 and 5: population stddev 2.0.
	energy := dailyRun(30, func(d int) int {
		if d%2 == 0 {
			return 1
		}
		return 5
	})

	p := detectConsistency(energy, nil, nil, insightNow)
	if p == nil {
		t.Fatal("expected a consistency pattern")
	}
	if p.Title != "Variable energy" {
		t.Errorf("stddev 2.0 should read volatile, got %q", p.Title)
	}
}

func TestDetectConsistencyMiddleBand(t *testing.T) {
	// Alternating 2 and 4: stddev 1.0, between the bands.
	energy := dailyRun(30, func(d int) int {
		if d%2 == 0 {
			return 2
		}
		return 4
	})
	if p := detectConsistency(energy, nil, nil, insightNow); p != nil {
		t.Errorf("middle-band stddev should detect nothing, got %+v", p)
	}
}

func TestDetectConsistencySampleGate(t *testing.T) {
	energy := dailyRun(29, func(int) int { return 4 })
	if p := detectConsistency(energy, nil, nil, insightNow); p != nil {
		t.Errorf("expected nil below 30 entries, got %+v", p)
	}
}

func TestDetectTrendRising(t *testing.T) {
	energy := dailyRun(14, func(d int) int {
		if d < 7 {
			return 2
		}
		return 4
	})

	p := detectTrend(energy, nil, nil, insightNow)
	if p == nil {
		t.Fatal("expected a trend pattern")
	}
	if p.Title != "Energy trending up" {
		t.Errorf("expected rising trend, got %q", p.Title)
	}
	if p.Confidence != model.ConfidenceHigh {
		t.Errorf("change 2.0 should be high confidence, got %s", p.Confidence)
	}
	if p.Data["change"] != 2.0 {
		t.Errorf("expected change 2.0, got %v", p.Data["change"])
	}
}

func TestDetectTrendDeclining(t *testing.T) {
	energy := dailyRun(14, func(d int) int {
		if d < 7 {
			return 4
		}
		return 2
	})

	p := detectTrend(energy, nil, nil, insightNow)
	if p == nil {
		t.Fatal("expected a trend pattern")
	}
	if p.Title != "Energy trending down" {
		t.Errorf("expected declining trend, got %q", p.Title)
	}
}

func TestDetectTrendStable(t *testing.T) {
	energy := dailyRun(14, func(int) int { return 3 })

	p := detectTrend(energy, nil, nil, insightNow)
	if p == nil {
		t.Fatal("expected a trend pattern once the gate is met")
	}
	if p.Title != "Energy holding steady" {
		t.Errorf("expected stable trend, got %q", p.Title)
	}
	if p.Confidence != model.ConfidenceMedium {
		t.Errorf("stable trend should be medium confidence, got %s", p.Confidence)
	}
}

func TestDetectTrendOrdersChronologically(t *testing.T) {
	// Reverse insertion order must not flip the trend direction.
	rising := dailyRun(14, func(d int) int {
		if d < 7 {
			return 2
		}
		return 4
	})
	reversed := make([]model.EnergyEntry, len(rising))
	for i, e := range rising {
		reversed[len(rising)-1-i] = e
	}

	p := detectTrend(reversed, nil, nil, insightNow)
	if p == nil || p.Title != "Energy trending up" {
		t.Errorf("expected rising trend regardless of input order, got %+v", p)
	}
}

func TestDetectTrendSampleGate(t *testing.T) {
	energy := dailyRun(13, func(int) int { return 3 })
	if p := detectTrend(energy, nil, nil, insightNow); p != nil {
		t.Errorf("expected nil below 14 entries, got %+v", p)
	}
}
