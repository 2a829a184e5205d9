package insight

import (
	"fmt"
	"sort"
	"time"

	"github.com/kinlog/kinlog/internal/model"
)

// Quality-depth thresholds.
const (
	qualityDepthMinInteractions = 10
	qualityDepthMinPerPerson    = 3
	qualityDepthMinLift         = 0.5
	qualityDepthHighAvg         = 4.0
	qualityDepthMediumAvg       = 3.5
)

// detectQualityDepth finds the counterpart whose interactions rate
// clearly above the overall average. Unrated interactions and
// unresolvable person ids are skipped.
func detectQualityDepth(_ []model.EnergyEntry, interactions []model.Interaction, people []model.Person, _ time.Time) *model.Pattern {
	byID := peopleByID(people)

	var overall []float64
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, i := range interactions {
		if i.Quality == 0 {
			continue
		}
		overall = append(overall, float64(i.Quality))
		for _, pid := range i.ParticipantIDs {
			if _, ok := byID[pid]; !ok {
				continue
			}
			sums[pid] += float64(i.Quality)
			counts[pid]++
		}
	}
	if len(overall) < qualityDepthMinInteractions {
		return nil
	}

	ids := make([]string, 0, len(counts))
	for pid := range counts {
		ids = append(ids, pid)
	}
	sort.Strings(ids) // deterministic tie-breaks

	var topID string
	topAvg := 0.0
	for _, pid := range ids {
		if counts[pid] < qualityDepthMinPerPerson {
			continue
		}
		avg := sums[pid] / float64(counts[pid])
		if topID == "" || avg > topAvg {
			topID = pid
			topAvg = avg
		}
	}
	if topID == "" {
		return nil
	}

	overallAvg := mean(overall)
	if topAvg-overallAvg < qualityDepthMinLift {
		return nil
	}

	confidence := model.ConfidenceLow
	switch {
	case topAvg >= qualityDepthHighAvg:
		confidence = model.ConfidenceHigh
	case topAvg >= qualityDepthMediumAvg:
		confidence = model.ConfidenceMedium
	}

	name := byID[topID].Name
	return &model.Pattern{
		ID:          string(model.PatternQualityDepth),
		Kind:        model.PatternQualityDepth,
		Title:       "Quality connection",
		Description: fmt.Sprintf("Time with %s consistently rates above your average.", name),
		Insight:     fmt.Sprintf("%s brings out your best interactions. Worth prioritizing.", name),
		Confidence:  confidence,
		Icon:        "heart",
		Data: map[string]float64{
			"top_avg":     topAvg,
			"overall_avg": overallAvg,
			"count":       float64(counts[topID]),
		},
	}
}

// Archetype affinity thresholds. Bucket scores live on a 0..100 scale
// (quality rating x 20) so the point thresholds apply directly.
const (
	archetypeMinInteractions = 15
	archetypeMinPerBucket    = 3
	archetypeMinBuckets      = 2
	archetypeMinSpread       = 15.0
	archetypeHighSpread      = 25.0
	archetypeScalePerPoint   = 20.0
)

// detectArchetypeAffinity compares average interaction scores across
// relationship archetypes and reports a clear favorite.
func detectArchetypeAffinity(_ []model.EnergyEntry, interactions []model.Interaction, people []model.Person, _ time.Time) *model.Pattern {
	byID := peopleByID(people)

	rated := 0
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, i := range interactions {
		if i.Quality == 0 {
			continue
		}
		rated++
		for _, pid := range i.ParticipantIDs {
			p, ok := byID[pid]
			if !ok || p.Archetype == "" {
				continue
			}
			sums[p.Archetype] += float64(i.Quality) * archetypeScalePerPoint
			counts[p.Archetype]++
		}
	}
	if rated < archetypeMinInteractions {
		return nil
	}

	var buckets []string
	for a, n := range counts {
		if n >= archetypeMinPerBucket {
			buckets = append(buckets, a)
		}
	}
	if len(buckets) < archetypeMinBuckets {
		return nil
	}
	sort.Strings(buckets) // deterministic tie-breaks

	best, worst := buckets[0], buckets[0]
	for _, a := range buckets[1:] {
		avg := sums[a] / float64(counts[a])
		if avg > sums[best]/float64(counts[best]) {
			best = a
		}
		if avg < sums[worst]/float64(counts[worst]) {
			worst = a
		}
	}

	bestAvg := sums[best] / float64(counts[best])
	worstAvg := sums[worst] / float64(counts[worst])
	spread := bestAvg - worstAvg
	if spread < archetypeMinSpread {
		return nil
	}

	confidence := model.ConfidenceMedium
	if spread >= archetypeHighSpread {
		confidence = model.ConfidenceHigh
	}

	return &model.Pattern{
		ID:          string(model.PatternArchetype),
		Kind:        model.PatternArchetype,
		Title:       "Archetype affinity",
		Description: fmt.Sprintf("Your %s relationships rate well above your %s ones.", best, worst),
		Insight:     fmt.Sprintf("People who play a %s role seem to suit you. More of that may go a long way.", best),
		Confidence:  confidence,
		Icon:        "users",
		Data: map[string]float64{
			"best_avg":  bestAvg,
			"worst_avg": worstAvg,
			"spread":    spread,
		},
	}
}

func peopleByID(people []model.Person) map[string]model.Person {
	m := make(map[string]model.Person, len(people))
	for _, p := range people {
		m[p.ID] = p
	}
	return m
}
