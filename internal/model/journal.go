// Package model defines the core journal data types.
package model

import "time"

// SlotType is the narrative role a chip fills or the sentence role a
// reflection tag fills.
type SlotType string

// Story chip slots.
const (
	SlotActivity SlotType = "activity"
	SlotSetting  SlotType = "setting"
	SlotFeeling  SlotType = "feeling"
)

// Reflection tag roles.
const (
	SlotTopic      SlotType = "topic"
	SlotQuality    SlotType = "quality"
	SlotAction     SlotType = "action"
	SlotConnection SlotType = "connection"
)

// ValidSlots are the allowed slot types.
var ValidSlots = map[SlotType]bool{
	SlotActivity:   true,
	SlotSetting:    true,
	SlotFeeling:    true,
	SlotTopic:      true,
	SlotQuality:    true,
	SlotAction:     true,
	SlotConnection: true,
}

// TagRoles are the sentence roles, in allocation priority order.
var TagRoles = []SlotType{SlotTopic, SlotQuality, SlotConnection, SlotAction}

// Tier is a closeness category for a relationship.
type Tier string

const (
	TierInner   Tier = "inner"
	TierClose   Tier = "close"
	TierRegular Tier = "regular"
	TierOuter   Tier = "outer"
)

// ValidTiers are the allowed relationship tiers.
var ValidTiers = map[Tier]bool{
	TierInner:   true,
	TierClose:   true,
	TierRegular: true,
	TierOuter:   true,
}

// Confidence is the qualitative band attached to a detected pattern.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Rank orders confidence bands for sorting (higher is stronger).
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 1
	}
	return 0
}

// PatternKind identifies one of the seven detector outputs.
type PatternKind string

const (
	PatternWeeklyCycle  PatternKind = "weekly_cycle"
	PatternSocialEnergy PatternKind = "social_energy"
	PatternBestDay      PatternKind = "best_day"
	PatternConsistency  PatternKind = "consistency"
	PatternTrend        PatternKind = "trend"
	PatternQualityDepth PatternKind = "quality_depth"
	PatternArchetype    PatternKind = "archetype_affinity"
)

// EnergyEntry is one daily energy check-in, value 1..5.
type EnergyEntry struct {
	ID    string    `json:"id"`
	At    time.Time `json:"at"`
	Value int       `json:"value"`
}

// Person is a tracked relationship.
type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Tier      Tier      `json:"tier"`
	Archetype string    `json:"archetype,omitempty"`
	Vibe      string    `json:"vibe,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Reflection is one structured chip selection attached to an interaction.
type Reflection struct {
	ChipID     string `json:"chip_id"`
	Override   string `json:"override,omitempty"`
	CustomNote string `json:"custom_note,omitempty"`
}

// Interaction is a logged social interaction with its reflections.
type Interaction struct {
	ID             string       `json:"id"`
	Date           time.Time    `json:"date"`
	DurationMin    int          `json:"duration_min,omitempty"`
	Mood           string       `json:"mood,omitempty"`
	Quality        int          `json:"quality,omitempty"` // 1..5, 0 = unrated
	Note           string       `json:"note,omitempty"`
	Status         string       `json:"status"`
	ParticipantIDs []string     `json:"participant_ids,omitempty"`
	Reflections    []Reflection `json:"reflections,omitempty"`
}

// Chip is a catalog entry: a short phrase usable to build a reflection
// without free typing. Nil affinity slices mean no affinity declared.
type Chip struct {
	ID         string   `json:"id"`
	Slot       SlotType `json:"slot"`
	Category   string   `json:"category,omitempty"`
	Archetypes []string `json:"archetypes,omitempty"`
	Vibes      []string `json:"vibes,omitempty"`
	Tiers      []Tier   `json:"tiers,omitempty"`
	Template   string   `json:"template"`
	PlainText  string   `json:"plain_text"`
	Weight     int      `json:"weight"`
	IsCustom   bool     `json:"is_custom,omitempty"`
}

// HasArchetype reports whether the chip declares the given archetype affinity.
func (c Chip) HasArchetype(a string) bool {
	for _, x := range c.Archetypes {
		if x == a {
			return true
		}
	}
	return false
}

// HasVibe reports whether the chip declares the given vibe affinity.
func (c Chip) HasVibe(v string) bool {
	for _, x := range c.Vibes {
		if x == v {
			return true
		}
	}
	return false
}

// HasTier reports whether the chip declares the given tier affinity.
func (c Chip) HasTier(t Tier) bool {
	for _, x := range c.Tiers {
		if x == t {
			return true
		}
	}
	return false
}

// UsageRecord is one append-only ledger entry: a chip chosen in a reflection.
type UsageRecord struct {
	ID            string    `json:"id"`
	ChipID        string    `json:"chip_id"`
	Slot          SlotType  `json:"slot"`
	InteractionID string    `json:"interaction_id"`
	PersonID      string    `json:"person_id,omitempty"`
	At            time.Time `json:"at"`
	IsCustom      bool      `json:"is_custom,omitempty"`
}

// Pattern is a derived behavioral insight. Never persisted.
type Pattern struct {
	ID          string             `json:"id"`
	Kind        PatternKind        `json:"kind"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Insight     string             `json:"insight"`
	Confidence  Confidence         `json:"confidence"`
	Icon        string             `json:"icon"`
	Data        map[string]float64 `json:"data,omitempty"`
}

// SuggestContext describes the situation chips are being ranked for.
type SuggestContext struct {
	Category         string             `json:"category,omitempty"`
	Archetype        string             `json:"archetype,omitempty"`
	Vibe             string             `json:"vibe,omitempty"`
	Tier             Tier               `json:"tier,omitempty"`
	InteractionCount int                `json:"interaction_count"`
	DaysSinceLast    int                `json:"days_since_last"` // -1 when unknown
	Frequency        map[string]float64 `json:"-"`
}
