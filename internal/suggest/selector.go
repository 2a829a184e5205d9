package suggest

import (
	"sort"
	"strings"

	"github.com/kinlog/kinlog/internal/model"
)

// DefaultVisible is how many ranked chips are shown before "show more".
const DefaultVisible = 5

// Single-slot scoring weights. Recent real usage (frequency x 20)
// dominates the static affinity weights.
const (
	archetypeWeight = 15
	tierWeight      = 10
	vibeWeight      = 8
	categoryWeight  = 3
	frequencyWeight = 20

	orientationBonus  = 5
	depthBonus        = 5
	reconnectionBonus = 8

	newRelationshipMax  = 5  // fewer interactions than this is a new relationship
	deepRelationshipMin = 20 // more than this is an established one
	reconnectionGapDays = 30
)

// SelectChips filters and ranks candidate chips for one narrative slot.
// Hard filters reject slot mismatches, declared categories that differ
// from the context category, and declared tier affinities that exclude
// the context tier. The full ranked list is returned; callers typically
// show the first DefaultVisible.
func SelectChips(chips []model.Chip, slot model.SlotType, ctx model.SuggestContext) []model.Chip {
	type scored struct {
		chip  model.Chip
		score float64
	}
	var candidates []scored

	for _, c := range chips {
		if c.Slot != slot {
			continue
		}
		if c.Category != "" && c.Category != ctx.Category {
			continue
		}
		if len(c.Tiers) > 0 && !c.HasTier(ctx.Tier) {
			continue
		}

		score := 0.0
		if ctx.Archetype != "" && c.HasArchetype(ctx.Archetype) {
			score += archetypeWeight
		}
		if ctx.Vibe != "" && c.HasVibe(ctx.Vibe) {
			score += vibeWeight
		}
		if ctx.Tier != "" && c.HasTier(ctx.Tier) {
			score += tierWeight
		}
		if c.Category != "" && c.Category == ctx.Category {
			score += categoryWeight
		}
		score += ctx.Frequency[c.ID] * frequencyWeight

		if ctx.InteractionCount < newRelationshipMax && isOrientationChip(c) {
			score += orientationBonus
		}
		if ctx.InteractionCount > deepRelationshipMin && isDepthChip(c) {
			score += depthBonus
		}
		if ctx.DaysSinceLast > reconnectionGapDays && isReconnectionChip(c) {
			score += reconnectionBonus
		}

		candidates = append(candidates, scored{chip: c, score: score})
	}

	// Stable sort keeps catalog order on ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	result := make([]model.Chip, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.chip)
	}
	return result
}

// Orientation chips help describe a relationship still finding its shape.
func isOrientationChip(c model.Chip) bool {
	return hasAnyPrefix(c.ID, "affinity-", "comfort-", "flow-")
}

// Depth chips fit relationships with enough history for vulnerability.
func isDepthChip(c model.Chip) bool {
	if hasAnyPrefix(c.ID, "breakthrough-", "vulnerable-") {
		return true
	}
	return c.HasTier(model.TierInner)
}

// Reconnection chips fit a long gap since the last interaction.
func isReconnectionChip(c model.Chip) bool {
	return hasAnyPrefix(c.ID, "pickup-", "distant-", "nostalgia-")
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Diverse-mode scoring weights.
const (
	diverseArchetypeWeight = 10
	diverseVibeWeight      = 5
	defaultTagWeight       = 5
)

// SelectDiverseTags scores reflection tags and selects up to limit of
// them with role diversity: the highest-scored tags per role, allocated
// round-robin in priority order topic, quality, connection, action with
// a per-role cap of floor(limit/4)+1, then backfilled with the
// next-highest-scored tags overall.
func SelectDiverseTags(tags []model.Chip, ctx model.SuggestContext, limit int) []model.Chip {
	if limit <= 0 {
		limit = 12
	}

	type scored struct {
		tag   model.Chip
		score float64
	}
	var candidates []scored

	for _, t := range tags {
		if t.Category != "" && t.Category != ctx.Category {
			continue
		}
		weight := t.Weight
		if weight == 0 {
			weight = defaultTagWeight
		}
		score := float64(weight)
		if ctx.Archetype != "" && t.HasArchetype(ctx.Archetype) {
			score += diverseArchetypeWeight
		}
		if ctx.Vibe != "" && t.HasVibe(ctx.Vibe) {
			score += diverseVibeWeight
		}
		if score <= 0 {
			continue
		}
		candidates = append(candidates, scored{tag: t, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	perRole := limit/4 + 1
	picked := map[string]bool{}
	taken := map[model.SlotType]int{}
	var result []model.Chip

	// Round-robin keeps role counts balanced; the cap stops one role
	// from crowding out the rest when candidates are plentiful.
	for len(result) < limit {
		progress := false
		for _, role := range model.TagRoles {
			if len(result) >= limit || taken[role] >= perRole {
				continue
			}
			for _, c := range candidates {
				if c.tag.Slot != role || picked[c.tag.ID] {
					continue
				}
				picked[c.tag.ID] = true
				taken[role]++
				result = append(result, c.tag)
				progress = true
				break
			}
		}
		if !progress {
			break
		}
	}

	// Backfill from the global ranking.
	for _, c := range candidates {
		if len(result) >= limit {
			break
		}
		if picked[c.tag.ID] {
			continue
		}
		picked[c.tag.ID] = true
		result = append(result, c.tag)
	}

	return result
}
