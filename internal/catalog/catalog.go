// Package catalog holds the static chip and reflection tag tables.
//
// Story chips fill narrative slots (activity, setting, feeling) and
// reflection tags fill sentence roles (topic, quality, action,
// connection). The tables are immutable configuration; custom chips
// created at runtime live in the store and are merged by callers.
package catalog

import "github.com/kinlog/kinlog/internal/model"

// Narrative categories story chips may declare.
const (
	CategoryHangout     = "hangout"
	CategoryDeepTalk    = "deep-talk"
	CategoryCelebration = "celebration"
	CategorySupport     = "support"
	CategoryReconnect   = "reconnect"
)

var storyChips = []model.Chip{
	// Activity slot
	{ID: "coffee-catchup", Slot: model.SlotActivity, Category: CategoryHangout, Template: "grabbed coffee", PlainText: "grabbed coffee", Weight: 6, Vibes: []string{"calm", "warm"}},
	{ID: "shared-meal", Slot: model.SlotActivity, Category: CategoryHangout, Template: "shared a meal", PlainText: "shared a meal", Weight: 6, Vibes: []string{"warm"}},
	{ID: "long-walk", Slot: model.SlotActivity, Category: CategoryHangout, Template: "went for a walk", PlainText: "went for a walk", Weight: 5, Vibes: []string{"calm"}, Archetypes: []string{"anchor", "confidant"}},
	{ID: "game-night", Slot: model.SlotActivity, Category: CategoryHangout, Template: "played games", PlainText: "played games", Weight: 5, Vibes: []string{"playful", "energized"}, Archetypes: []string{"spark", "adventurer"}},
	{ID: "workout-together", Slot: model.SlotActivity, Category: CategoryHangout, Template: "worked out together", PlainText: "worked out together", Weight: 4, Vibes: []string{"energized"}, Archetypes: []string{"adventurer"}},
	{ID: "deep-conversation", Slot: model.SlotActivity, Category: CategoryDeepTalk, Template: "had a deep conversation", PlainText: "had a deep conversation", Weight: 6, Archetypes: []string{"confidant", "mentor"}, Tiers: []model.Tier{model.TierInner, model.TierClose}},
	{ID: "celebrated-win", Slot: model.SlotActivity, Category: CategoryCelebration, Template: "celebrated a win", PlainText: "celebrated a win", Weight: 5, Vibes: []string{"energized", "playful"}, Archetypes: []string{"cheerleader"}},
	{ID: "helped-out", Slot: model.SlotActivity, Category: CategorySupport, Template: "helped each other out", PlainText: "helped each other out", Weight: 5, Archetypes: []string{"anchor"}},
	{ID: "pickup-where-left", Slot: model.SlotActivity, Category: CategoryReconnect, Template: "picked up right where we left off", PlainText: "picked up right where we left off", Weight: 5},
	{ID: "nostalgia-trip", Slot: model.SlotActivity, Category: CategoryReconnect, Template: "reminisced about old times", PlainText: "reminisced about old times", Weight: 4, Vibes: []string{"warm"}},

	// Setting slot
	{ID: "cozy-spot", Slot: model.SlotSetting, Template: "at our usual spot", PlainText: "at our usual spot", Weight: 6, Vibes: []string{"calm", "warm"}},
	{ID: "outdoors", Slot: model.SlotSetting, Template: "out in nature", PlainText: "out in nature", Weight: 5, Vibes: []string{"calm"}, Archetypes: []string{"adventurer"}},
	{ID: "their-place", Slot: model.SlotSetting, Template: "at their place", PlainText: "at their place", Weight: 5, Tiers: []model.Tier{model.TierInner, model.TierClose}},
	{ID: "somewhere-new", Slot: model.SlotSetting, Template: "somewhere new to both of us", PlainText: "somewhere new to both of us", Weight: 4, Vibes: []string{"energized"}, Archetypes: []string{"adventurer", "spark"}},
	{ID: "on-a-call", Slot: model.SlotSetting, Template: "over a call", PlainText: "over a call", Weight: 5},
	{ID: "busy-place", Slot: model.SlotSetting, Template: "somewhere buzzing", PlainText: "somewhere buzzing", Weight: 3, Vibes: []string{"energized", "playful"}},

	// Feeling slot
	{ID: "affinity-ease", Slot: model.SlotFeeling, Template: "felt easy to be around", PlainText: "felt easy to be around", Weight: 6},
	{ID: "comfort-zone", Slot: model.SlotFeeling, Template: "felt comfortable and unhurried", PlainText: "felt comfortable and unhurried", Weight: 5, Vibes: []string{"calm"}},
	{ID: "flow-state", Slot: model.SlotFeeling, Template: "conversation just flowed", PlainText: "conversation just flowed", Weight: 5},
	{ID: "breakthrough-moment", Slot: model.SlotFeeling, Category: CategoryDeepTalk, Template: "hit a real breakthrough", PlainText: "hit a real breakthrough", Weight: 4, Tiers: []model.Tier{model.TierInner, model.TierClose}, Archetypes: []string{"confidant", "mentor"}},
	{ID: "vulnerable-share", Slot: model.SlotFeeling, Category: CategoryDeepTalk, Template: "opened up about something hard", PlainText: "opened up about something hard", Weight: 4, Tiers: []model.Tier{model.TierInner}},
	{ID: "energized-after", Slot: model.SlotFeeling, Template: "left feeling energized", PlainText: "left feeling energized", Weight: 5, Vibes: []string{"energized"}},
	{ID: "drained-after", Slot: model.SlotFeeling, Template: "left feeling a bit drained", PlainText: "left feeling a bit drained", Weight: 3, Vibes: []string{"heavy"}},
	{ID: "distant-lately", Slot: model.SlotFeeling, Category: CategoryReconnect, Template: "we'd felt distant lately", PlainText: "we'd felt distant lately", Weight: 3},
	{ID: "seen-heard", Slot: model.SlotFeeling, Template: "felt seen and heard", PlainText: "felt seen and heard", Weight: 5, Archetypes: []string{"confidant"}, Tiers: []model.Tier{model.TierInner, model.TierClose}},
}

var reflectionTags = []model.Chip{
	// Topic role
	{ID: "topic-work", Slot: model.SlotTopic, Template: "talked about work", PlainText: "work", Weight: 6},
	{ID: "topic-life-updates", Slot: model.SlotTopic, Template: "caught up on life updates", PlainText: "life updates", Weight: 6},
	{ID: "topic-family", Slot: model.SlotTopic, Template: "talked about family", PlainText: "family", Weight: 5, Tiers: []model.Tier{model.TierInner, model.TierClose}},
	{ID: "topic-plans", Slot: model.SlotTopic, Template: "talked about future plans", PlainText: "future plans", Weight: 5, Archetypes: []string{"mentor", "adventurer"}},
	{ID: "topic-feelings", Slot: model.SlotTopic, Category: CategoryDeepTalk, Template: "talked about how we've been feeling", PlainText: "feelings", Weight: 4, Archetypes: []string{"confidant"}},
	{ID: "topic-memories", Slot: model.SlotTopic, Category: CategoryReconnect, Template: "swapped old memories", PlainText: "old memories", Weight: 4},
	{ID: "topic-ideas", Slot: model.SlotTopic, Template: "traded ideas", PlainText: "ideas", Weight: 5, Vibes: []string{"energized"}, Archetypes: []string{"spark", "mentor"}},

	// Quality role
	{ID: "quality-energizing", Slot: model.SlotQuality, Template: "energizing", PlainText: "energizing", Weight: 6, Vibes: []string{"energized"}},
	{ID: "quality-easy", Slot: model.SlotQuality, Template: "easy and comfortable", PlainText: "easy and comfortable", Weight: 6, Vibes: []string{"calm"}},
	{ID: "quality-fun", Slot: model.SlotQuality, Template: "a lot of fun", PlainText: "a lot of fun", Weight: 5, Vibes: []string{"playful"}, Archetypes: []string{"spark"}},
	{ID: "quality-deep", Slot: model.SlotQuality, Category: CategoryDeepTalk, Template: "deeper than usual", PlainText: "deeper than usual", Weight: 4, Archetypes: []string{"confidant"}},
	{ID: "quality-heavy", Slot: model.SlotQuality, Template: "heavy but worth it", PlainText: "heavy but worth it", Weight: 3, Vibes: []string{"heavy"}},
	{ID: "quality-short-sweet", Slot: model.SlotQuality, Template: "short but sweet", PlainText: "short but sweet", Weight: 5},

	// Action role
	{ID: "action-coffee", Slot: model.SlotAction, Template: "grabbed coffee", PlainText: "coffee", Weight: 6},
	{ID: "action-walk", Slot: model.SlotAction, Template: "went for a walk", PlainText: "a walk", Weight: 5, Vibes: []string{"calm"}},
	{ID: "action-meal", Slot: model.SlotAction, Template: "shared a meal", PlainText: "a meal", Weight: 6, Vibes: []string{"warm"}},
	{ID: "action-show", Slot: model.SlotAction, Template: "watched a show together", PlainText: "a show", Weight: 4, Vibes: []string{"playful"}},
	{ID: "action-errand", Slot: model.SlotAction, Template: "ran errands together", PlainText: "errands", Weight: 3, Archetypes: []string{"anchor"}},
	{ID: "action-game", Slot: model.SlotAction, Template: "played a game", PlainText: "a game", Weight: 4, Vibes: []string{"playful"}, Archetypes: []string{"spark", "adventurer"}},

	// Connection role
	{ID: "connection-heard", Slot: model.SlotConnection, Template: "felt really heard", PlainText: "really heard", Weight: 6, Archetypes: []string{"confidant"}},
	{ID: "connection-closer", Slot: model.SlotConnection, Template: "felt closer than before", PlainText: "closer than before", Weight: 5},
	{ID: "connection-supported", Slot: model.SlotConnection, Template: "felt supported", PlainText: "supported", Weight: 5, Archetypes: []string{"anchor", "cheerleader"}},
	{ID: "connection-inspired", Slot: model.SlotConnection, Template: "felt inspired afterwards", PlainText: "inspired", Weight: 4, Vibes: []string{"energized"}, Archetypes: []string{"mentor", "spark"}},
	{ID: "connection-grateful", Slot: model.SlotConnection, Template: "felt grateful for them", PlainText: "grateful", Weight: 5, Vibes: []string{"warm"}},
	{ID: "connection-distance", Slot: model.SlotConnection, Category: CategoryReconnect, Template: "felt the distance closing", PlainText: "the distance closing", Weight: 3},
}

var byID = map[string]model.Chip{}

func init() {
	for _, c := range storyChips {
		byID[c.ID] = c
	}
	for _, t := range reflectionTags {
		byID[t.ID] = t
	}
}

// Chips returns the story chip table. Callers must not mutate it.
func Chips() []model.Chip {
	return storyChips
}

// Tags returns the reflection tag table. Callers must not mutate it.
func Tags() []model.Chip {
	return reflectionTags
}

// ByID looks up a catalog entry (chip or tag) by id.
func ByID(id string) (model.Chip, bool) {
	c, ok := byID[id]
	return c, ok
}
