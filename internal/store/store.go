// Package store provides the journal storage interface and SQLite implementation.
package store

import (
	"context"
	"time"

	"github.com/kinlog/kinlog/internal/model"
)

// EnergyParams holds parameters for logging an energy check-in.
type EnergyParams struct {
	Value int
	At    time.Time // zero means now
}

// PersonParams holds parameters for adding a person.
type PersonParams struct {
	Name      string
	Tier      model.Tier
	Archetype string
	Vibe      string
}

// InteractionParams holds parameters for logging an interaction.
type InteractionParams struct {
	Date        time.Time // zero means now
	DurationMin int
	Mood        string
	Quality     int // 1..5, 0 = unrated
	Note        string
	Status      string // defaults to "completed"
	PersonIDs   []string
	ChipIDs     []string // reflections; each also appends a usage record
}

// ReflectParams holds parameters for attaching reflections to an
// existing interaction.
type ReflectParams struct {
	InteractionID string
	ChipIDs       []string
	CustomNote    string
}

// UsageParams holds parameters for appending a usage record.
type UsageParams struct {
	ChipID        string
	Slot          model.SlotType
	InteractionID string
	PersonID      string
	IsCustom      bool
	At            time.Time // zero means now
}

// CustomChipParams holds parameters for creating a custom chip.
type CustomChipParams struct {
	Slot model.SlotType
	Text string
}

// Store defines the journal storage interface.
type Store interface {
	// LogEnergy records a daily energy check-in (value 1..5).
	LogEnergy(ctx context.Context, p EnergyParams) (*model.EnergyEntry, error)

	// EnergyLog returns all energy entries ordered by timestamp ascending.
	EnergyLog(ctx context.Context) ([]model.EnergyEntry, error)

	// AddPerson adds a tracked relationship.
	AddPerson(ctx context.Context, p PersonParams) (*model.Person, error)

	// People lists all people.
	People(ctx context.Context) ([]model.Person, error)

	// Person fetches one person by id.
	Person(ctx context.Context, id string) (*model.Person, error)

	// LogInteraction records an interaction with participants and reflections.
	LogInteraction(ctx context.Context, p InteractionParams) (*model.Interaction, error)

	// Interactions returns completed interactions within the trailing
	// daysBack window relative to now, newest first.
	Interactions(ctx context.Context, daysBack int, now time.Time) ([]model.Interaction, error)

	// AttachReflections adds chip reflections to an existing interaction
	// and appends matching usage records.
	AttachReflections(ctx context.Context, p ReflectParams) error

	// RecordUsage appends one usage record to the ledger.
	RecordUsage(ctx context.Context, p UsageParams) (*model.UsageRecord, error)

	// UsageSince returns ledger records at or after the given time.
	UsageSince(ctx context.Context, since time.Time) ([]model.UsageRecord, error)

	// AddCustomChip creates a custom chip.
	AddCustomChip(ctx context.Context, p CustomChipParams) (*model.Chip, error)

	// CustomChips lists active custom chips.
	CustomChips(ctx context.Context) ([]model.Chip, error)

	// RemoveCustomChip soft-deletes (or hard-deletes) a custom chip.
	RemoveCustomChip(ctx context.Context, id string, hard bool) error

	// Close closes the store.
	Close() error
}
