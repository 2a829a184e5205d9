package insight

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/kinlog/kinlog/internal/model"
)

// Weekly cycle thresholds.
const (
	weeklyCycleMinEntries  = 21
	weeklyCycleMinWeekdays = 4
	weeklyCycleMinSamples  = 3
	weeklyCycleMinGap      = 0.8
	weeklyCycleMediumGap   = 1.0
	weeklyCycleHighGap     = 1.5
)

// detectWeeklyCycle looks for a recurring weekday energy rhythm: a
// spread of at least 0.8 between the best and worst weekday averages.
func detectWeeklyCycle(energy []model.EnergyEntry, _ []model.Interaction, _ []model.Person, _ time.Time) *model.Pattern {
	if len(energy) < weeklyCycleMinEntries {
		return nil
	}

	sums := map[time.Weekday]float64{}
	counts := map[time.Weekday]int{}
	for _, e := range energy {
		wd := e.At.UTC().Weekday()
		sums[wd] += float64(e.Value)
		counts[wd]++
	}

	avgs := map[time.Weekday]float64{}
	for wd, n := range counts {
		if n >= weeklyCycleMinSamples {
			avgs[wd] = sums[wd] / float64(n)
		}
	}
	if len(avgs) < weeklyCycleMinWeekdays {
		return nil
	}

	peak, trough := extremeWeekdays(avgs)
	gap := avgs[peak] - avgs[trough]
	if gap < weeklyCycleMinGap {
		return nil
	}

	confidence := model.ConfidenceLow
	switch {
	case gap >= weeklyCycleHighGap:
		confidence = model.ConfidenceHigh
	case gap >= weeklyCycleMediumGap:
		confidence = model.ConfidenceMedium
	}

	return &model.Pattern{
		ID:          string(model.PatternWeeklyCycle),
		Kind:        model.PatternWeeklyCycle,
		Title:       "Weekly energy cycle",
		Description: fmt.Sprintf("Your energy peaks on %ss and dips on %ss.", peak, trough),
		Insight: fmt.Sprintf("Consider planning demanding plans for %ss and keeping %ss light.",
			peak, trough),
		Confidence: confidence,
		Icon:       "calendar",
		Data: map[string]float64{
			"gap":         gap,
			"peak_avg":    avgs[peak],
			"trough_avg":  avgs[trough],
			"peak_day":    float64(peak),
			"trough_day":  float64(trough),
			"sample_size": float64(len(energy)),
		},
	}
}

// extremeWeekdays returns the weekdays with the highest and lowest
// averages. Ties resolve to the earlier weekday for determinism.
func extremeWeekdays(avgs map[time.Weekday]float64) (peak, trough time.Weekday) {
	first := true
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		avg, ok := avgs[wd]
		if !ok {
			continue
		}
		if first {
			peak, trough = wd, wd
			first = false
			continue
		}
		if avg > avgs[peak] {
			peak = wd
		}
		if avg < avgs[trough] {
			trough = wd
		}
	}
	return peak, trough
}

// Social energy correlation thresholds.
const (
	socialEnergyMinEntries      = 14
	socialEnergyMinInteractions = 5
	socialEnergyMinDays         = 3
	socialEnergyMinDiff         = 0.5
	socialEnergyMediumDiff      = 1.0
	socialEnergyHighDiff        = 1.5

	highEnergyValue = 4
	lowEnergyValue  = 2
)

// detectSocialEnergy compares how social the user is on high-energy
// days (daily average >= 4) versus low-energy days (<= 2). The sign of
// the difference flips the narrative.
func detectSocialEnergy(energy []model.EnergyEntry, interactions []model.Interaction, _ []model.Person, _ time.Time) *model.Pattern {
	if len(energy) < socialEnergyMinEntries || len(interactions) < socialEnergyMinInteractions {
		return nil
	}

	days := energyByDay(energy)
	perDay := interactionsPerDay(interactions)

	var highCounts, lowCounts []float64
	for day, avg := range days {
		switch {
		case avg >= highEnergyValue:
			highCounts = append(highCounts, float64(perDay[day]))
		case avg <= lowEnergyValue:
			lowCounts = append(lowCounts, float64(perDay[day]))
		}
	}
	if len(highCounts) < socialEnergyMinDays || len(lowCounts) < socialEnergyMinDays {
		return nil
	}

	diff := mean(highCounts) - mean(lowCounts)
	if math.Abs(diff) < socialEnergyMinDiff {
		return nil
	}

	confidence := model.ConfidenceLow
	switch {
	case math.Abs(diff) >= socialEnergyHighDiff:
		confidence = model.ConfidenceHigh
	case math.Abs(diff) >= socialEnergyMediumDiff:
		confidence = model.ConfidenceMedium
	}

	description := "You socialize noticeably more on high-energy days."
	insight := "Social time seems to ride on your energy. Use strong days for the plans that matter."
	if diff < 0 {
		description = "You socialize more on low-energy days."
		insight = "Time with people may be how you recharge. Reaching out on a flat day could help."
	}

	return &model.Pattern{
		ID:          string(model.PatternSocialEnergy),
		Kind:        model.PatternSocialEnergy,
		Title:       "Energy and social life",
		Description: description,
		Insight:     insight,
		Confidence:  confidence,
		Icon:        "battery",
		Data: map[string]float64{
			"diff":           diff,
			"high_day_count": float64(len(highCounts)),
			"low_day_count":  float64(len(lowCounts)),
		},
	}
}

// Best composite day thresholds.
const (
	bestDayHighComposite   = 3
	bestDayMediumComposite = 2
)

// detectBestDay scores each weekday on a composite of average energy
// and average interactions, reporting the winner. Uses the weekly-cycle
// sample gate; always reports once the gate is met.
func detectBestDay(energy []model.EnergyEntry, interactions []model.Interaction, _ []model.Person, _ time.Time) *model.Pattern {
	if len(energy) < weeklyCycleMinEntries {
		return nil
	}

	sums := map[time.Weekday]float64{}
	dayCounts := map[time.Weekday]int{}
	distinctDays := map[time.Weekday]map[time.Time]bool{}
	for _, e := range energy {
		wd := e.At.UTC().Weekday()
		sums[wd] += float64(e.Value)
		dayCounts[wd]++
		if distinctDays[wd] == nil {
			distinctDays[wd] = map[time.Time]bool{}
		}
		distinctDays[wd][dayKey(e.At)] = true
	}

	interactionsByWeekday := map[time.Weekday]int{}
	for _, i := range interactions {
		interactionsByWeekday[i.Date.UTC().Weekday()]++
	}

	type dayScore struct {
		weekday   time.Weekday
		composite float64
	}
	var scores []dayScore
	for wd, n := range dayCounts {
		if n < weeklyCycleMinSamples {
			continue
		}
		avgEnergy := sums[wd] / float64(n)
		// Interactions averaged over the observed calendar days of this
		// weekday in the energy log.
		avgInteractions := float64(interactionsByWeekday[wd]) / float64(len(distinctDays[wd]))
		scores = append(scores, dayScore{weekday: wd, composite: 0.5*avgEnergy + 0.5*avgInteractions})
	}
	if len(scores) < weeklyCycleMinWeekdays {
		return nil
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].composite != scores[j].composite {
			return scores[i].composite > scores[j].composite
		}
		return scores[i].weekday < scores[j].weekday
	})
	best := scores[0]

	confidence := model.ConfidenceLow
	switch {
	case best.composite >= bestDayHighComposite:
		confidence = model.ConfidenceHigh
	case best.composite >= bestDayMediumComposite:
		confidence = model.ConfidenceMedium
	}

	return &model.Pattern{
		ID:          string(model.PatternBestDay),
		Kind:        model.PatternBestDay,
		Title:       "Your best day",
		Description: fmt.Sprintf("%ss combine your highest energy and most social time.", best.weekday),
		Insight:     fmt.Sprintf("%s looks like your day. Protect it for the people who matter most.", best.weekday),
		Confidence:  confidence,
		Icon:        "trophy",
		Data: map[string]float64{
			"composite": best.composite,
			"weekday":   float64(best.weekday),
		},
	}
}

// Consistency thresholds.
const (
	consistencyMinEntries = 30
	steadyMaxStdDev       = 0.8
	volatileMinStdDev     = 1.5
)

// detectConsistency classifies the energy log as steady or volatile by
// population standard deviation. The middle band reports nothing.
func detectConsistency(energy []model.EnergyEntry, _ []model.Interaction, _ []model.Person, _ time.Time) *model.Pattern {
	if len(energy) < consistencyMinEntries {
		return nil
	}

	values := make([]float64, 0, len(energy))
	for _, e := range energy {
		values = append(values, float64(e.Value))
	}
	m := mean(values)
	variance := 0.0
	for _, v := range values {
		variance += (v - m) * (v - m)
	}
	stddev := math.Sqrt(variance / float64(len(values)))

	p := &model.Pattern{
		ID:         string(model.PatternConsistency),
		Kind:       model.PatternConsistency,
		Confidence: model.ConfidenceHigh,
		Icon:       "waves",
		Data: map[string]float64{
			"stddev": stddev,
			"mean":   m,
		},
	}

	switch {
	case stddev <= steadyMaxStdDev:
		p.Title = "Steady energy"
		p.Description = "Your energy levels are remarkably consistent day to day."
		p.Insight = "A stable baseline makes it easier to commit to plans in advance."
	case stddev >= volatileMinStdDev:
		p.Title = "Variable energy"
		p.Description = "Your energy swings widely from day to day."
		p.Insight = "Flexible plans and shorter commitments may suit you better than fixed ones."
	default:
		return nil
	}
	return p
}

// Trend thresholds.
const (
	trendMinEntries = 14
	trendStableBand = 0.6
	trendHighChange = 1.0
)

// detectTrend splits the log chronologically at its midpoint and
// compares the halves. Always reports once the sample gate is met.
func detectTrend(energy []model.EnergyEntry, _ []model.Interaction, _ []model.Person, _ time.Time) *model.Pattern {
	if len(energy) < trendMinEntries {
		return nil
	}

	ordered := make([]model.EnergyEntry, len(energy))
	copy(ordered, energy)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].At.Before(ordered[j].At)
	})

	mid := len(ordered) / 2
	var first, second []float64
	for _, e := range ordered[:mid] {
		first = append(first, float64(e.Value))
	}
	for _, e := range ordered[mid:] {
		second = append(second, float64(e.Value))
	}
	change := mean(second) - mean(first)

	confidence := model.ConfidenceMedium
	if math.Abs(change) >= trendHighChange {
		confidence = model.ConfidenceHigh
	}

	p := &model.Pattern{
		ID:         string(model.PatternTrend),
		Kind:       model.PatternTrend,
		Confidence: confidence,
		Data: map[string]float64{
			"change":      change,
			"first_mean":  mean(first),
			"second_mean": mean(second),
		},
	}

	switch {
	case change >= trendStableBand:
		p.Title = "Energy trending up"
		p.Description = "Your recent energy is clearly higher than it was."
		p.Insight = "Whatever changed recently is working. Worth noticing what it was."
		p.Icon = "trending-up"
	case change <= -trendStableBand:
		p.Title = "Energy trending down"
		p.Description = "Your recent energy is lower than it was."
		p.Insight = "A gentle week and time with easy company might help reset."
		p.Icon = "trending-down"
	default:
		p.Title = "Energy holding steady"
		p.Description = "Your energy has stayed about the same recently."
		p.Insight = "No big shifts. Your current rhythm seems sustainable."
		p.Icon = "minus"
	}
	return p
}
