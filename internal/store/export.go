package store

import (
	"context"
	"time"

	"github.com/kinlog/kinlog/internal/model"
)

// Export is a full JSON snapshot of the journal.
type Export struct {
	ExportedAt   time.Time           `json:"exported_at"`
	Energy       []model.EnergyEntry `json:"energy,omitempty"`
	People       []model.Person      `json:"people,omitempty"`
	Interactions []model.Interaction `json:"interactions,omitempty"`
	Usage        []model.UsageRecord `json:"usage,omitempty"`
	CustomChips  []model.Chip        `json:"custom_chips,omitempty"`
}

// ExportAll returns a snapshot of every table.
func (s *SQLiteStore) ExportAll(ctx context.Context) (*Export, error) {
	out := &Export{ExportedAt: time.Now().UTC()}

	var err error
	if out.Energy, err = s.EnergyLog(ctx); err != nil {
		return nil, err
	}
	if out.People, err = s.People(ctx); err != nil {
		return nil, err
	}
	// The full history, not just the analysis window.
	if out.Interactions, err = s.Interactions(ctx, 365*20, time.Now().UTC()); err != nil {
		return nil, err
	}
	if out.Usage, err = s.UsageSince(ctx, time.Time{}); err != nil {
		return nil, err
	}
	if out.CustomChips, err = s.CustomChips(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// Import stores records from an export. Existing ids are preserved so
// usage records keep referring to the same interactions and people.
func (s *SQLiteStore) Import(ctx context.Context, e *Export) (int, error) {
	imported := 0

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	for _, en := range e.Energy {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO energy_log (id, at, value) VALUES (?, ?, ?)`,
			en.ID, en.At.UTC().Format(time.RFC3339), en.Value)
		if err != nil {
			return imported, err
		}
		imported++
	}
	for _, p := range e.People {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO people (id, name, tier, archetype, vibe, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, string(p.Tier), nullable(p.Archetype), nullable(p.Vibe),
			p.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return imported, err
		}
		imported++
	}
	for _, i := range e.Interactions {
		res, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO interactions (id, date, duration_min, mood, quality, note, status, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			i.ID, i.Date.UTC().Format(time.RFC3339), i.DurationMin, nullable(i.Mood),
			i.Quality, nullable(i.Note), i.Status, i.Date.UTC().Format(time.RFC3339))
		if err != nil {
			return imported, err
		}
		// Reflections carry generated ids, so they are only written
		// alongside a newly inserted interaction row; a known id means
		// its children are already present.
		if n, _ := res.RowsAffected(); n == 0 {
			continue
		}
		for _, pid := range i.ParticipantIDs {
			_, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO interaction_people (interaction_id, person_id) VALUES (?, ?)`,
				i.ID, pid)
			if err != nil {
				return imported, err
			}
		}
		for _, r := range i.Reflections {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO reflections (id, interaction_id, chip_id, override, custom_note)
				 VALUES (?, ?, ?, ?, ?)`,
				s.newID(), i.ID, r.ChipID, nullable(r.Override), nullable(r.CustomNote))
			if err != nil {
				return imported, err
			}
		}
		imported++
	}
	for _, u := range e.Usage {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO chip_usage (id, chip_id, slot, interaction_id, person_id, at, is_custom)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			u.ID, u.ChipID, string(u.Slot), nullable(u.InteractionID), nullable(u.PersonID),
			u.At.UTC().Format(time.RFC3339), boolInt(u.IsCustom))
		if err != nil {
			return imported, err
		}
		imported++
	}
	for _, c := range e.CustomChips {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO custom_chips (id, slot, text, created_at) VALUES (?, ?, ?, ?)`,
			c.ID, string(c.Slot), c.PlainText, time.Now().UTC().Format(time.RFC3339))
		if err != nil {
			return imported, err
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return imported, err
	}
	return imported, nil
}
