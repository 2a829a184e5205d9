package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/kinlog/kinlog/internal/catalog"
	"github.com/kinlog/kinlog/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS energy_log (
		id    TEXT PRIMARY KEY,
		at    TEXT NOT NULL,
		value INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_energy_at ON energy_log(at);

	CREATE TABLE IF NOT EXISTS people (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		tier       TEXT NOT NULL DEFAULT 'regular',
		archetype  TEXT,
		vibe       TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS interactions (
		id           TEXT PRIMARY KEY,
		date         TEXT NOT NULL,
		duration_min INTEGER NOT NULL DEFAULT 0,
		mood         TEXT,
		quality      INTEGER NOT NULL DEFAULT 0,
		note         TEXT,
		status       TEXT NOT NULL DEFAULT 'completed',
		created_at   TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_interactions_date ON interactions(date DESC);
	CREATE INDEX IF NOT EXISTS idx_interactions_status ON interactions(status);

	CREATE TABLE IF NOT EXISTS interaction_people (
		interaction_id TEXT NOT NULL REFERENCES interactions(id),
		person_id      TEXT NOT NULL REFERENCES people(id),
		PRIMARY KEY (interaction_id, person_id)
	);
	CREATE INDEX IF NOT EXISTS idx_ip_person ON interaction_people(person_id);

	CREATE TABLE IF NOT EXISTS reflections (
		id             TEXT PRIMARY KEY,
		interaction_id TEXT NOT NULL REFERENCES interactions(id),
		chip_id        TEXT NOT NULL,
		override       TEXT,
		custom_note    TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_reflections_interaction ON reflections(interaction_id);

	CREATE TABLE IF NOT EXISTS chip_usage (
		id             TEXT PRIMARY KEY,
		chip_id        TEXT NOT NULL,
		slot           TEXT NOT NULL,
		interaction_id TEXT,
		person_id      TEXT,
		at             TEXT NOT NULL,
		is_custom      INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_usage_at ON chip_usage(at);
	CREATE INDEX IF NOT EXISTS idx_usage_chip ON chip_usage(chip_id);

	CREATE TABLE IF NOT EXISTS custom_chips (
		id         TEXT PRIMARY KEY,
		slot       TEXT NOT NULL,
		text       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		deleted_at TEXT
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) LogEnergy(ctx context.Context, p EnergyParams) (*model.EnergyEntry, error) {
	if p.Value < 1 || p.Value > 5 {
		return nil, fmt.Errorf("energy value must be 1..5, got %d", p.Value)
	}
	at := p.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	id := s.newID()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO energy_log (id, at, value) VALUES (?, ?, ?)`,
		id, at.UTC().Format(time.RFC3339), p.Value)
	if err != nil {
		return nil, fmt.Errorf("insert energy: %w", err)
	}

	return &model.EnergyEntry{ID: id, At: at.UTC(), Value: p.Value}, nil
}

func (s *SQLiteStore) EnergyLog(ctx context.Context) ([]model.EnergyEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, at, value FROM energy_log ORDER BY at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.EnergyEntry
	for rows.Next() {
		var e model.EnergyEntry
		var at string
		if err := rows.Scan(&e.ID, &at, &e.Value); err != nil {
			return nil, err
		}
		e.At, _ = time.Parse(time.RFC3339, at)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) AddPerson(ctx context.Context, p PersonParams) (*model.Person, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("person name is required")
	}
	tier := p.Tier
	if tier == "" {
		tier = model.TierRegular
	}
	if !model.ValidTiers[tier] {
		return nil, fmt.Errorf("invalid tier %q", tier)
	}

	now := time.Now().UTC()
	id := s.newID()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO people (id, name, tier, archetype, vibe, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, p.Name, string(tier), nullable(p.Archetype), nullable(p.Vibe), now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert person: %w", err)
	}

	return &model.Person{
		ID: id, Name: p.Name, Tier: tier,
		Archetype: p.Archetype, Vibe: p.Vibe, CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) People(ctx context.Context) ([]model.Person, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, tier, archetype, vibe, created_at FROM people ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []model.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

func (s *SQLiteStore) Person(ctx context.Context, id string) (*model.Person, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, tier, archetype, vibe, created_at FROM people WHERE id = ?`, id)
	p, err := scanPerson(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("person not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLiteStore) LogInteraction(ctx context.Context, p InteractionParams) (*model.Interaction, error) {
	date := p.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	status := p.Status
	if status == "" {
		status = "completed"
	}
	if p.Quality < 0 || p.Quality > 5 {
		return nil, fmt.Errorf("quality must be 1..5 (or 0 for unrated), got %d", p.Quality)
	}

	now := time.Now().UTC()
	id := s.newID()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO interactions (id, date, duration_min, mood, quality, note, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, date.UTC().Format(time.RFC3339), p.DurationMin, nullable(p.Mood),
		p.Quality, nullable(p.Note), status, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert interaction: %w", err)
	}

	for _, pid := range p.PersonIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO interaction_people (interaction_id, person_id) VALUES (?, ?)`, id, pid)
		if err != nil {
			return nil, fmt.Errorf("insert participant: %w", err)
		}
	}

	personID := ""
	if len(p.PersonIDs) > 0 {
		personID = p.PersonIDs[0]
	}

	var refs []model.Reflection
	for _, chipID := range p.ChipIDs {
		slot, isCustom := s.chipSlot(ctx, chipID)
		_, err = tx.ExecContext(ctx,
			`INSERT INTO reflections (id, interaction_id, chip_id) VALUES (?, ?, ?)`,
			s.newID(), id, chipID)
		if err != nil {
			return nil, fmt.Errorf("insert reflection: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO chip_usage (id, chip_id, slot, interaction_id, person_id, at, is_custom)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.newID(), chipID, string(slot), id, nullable(personID),
			date.UTC().Format(time.RFC3339), boolInt(isCustom))
		if err != nil {
			return nil, fmt.Errorf("insert usage: %w", err)
		}
		refs = append(refs, model.Reflection{ChipID: chipID})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &model.Interaction{
		ID: id, Date: date.UTC(), DurationMin: p.DurationMin, Mood: p.Mood,
		Quality: p.Quality, Note: p.Note, Status: status,
		ParticipantIDs: p.PersonIDs, Reflections: refs,
	}, nil
}

func (s *SQLiteStore) Interactions(ctx context.Context, daysBack int, now time.Time) ([]model.Interaction, error) {
	if daysBack <= 0 {
		daysBack = 90
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	cutoff := now.UTC().AddDate(0, 0, -daysBack).Format(time.RFC3339)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, duration_min, mood, quality, note, status
		 FROM interactions
		 WHERE status = 'completed' AND date >= ?
		 ORDER BY date DESC`, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interactions []model.Interaction
	index := map[string]int{}
	for rows.Next() {
		var i model.Interaction
		var date string
		var mood, note sql.NullString
		if err := rows.Scan(&i.ID, &date, &i.DurationMin, &mood, &i.Quality, &note, &i.Status); err != nil {
			return nil, err
		}
		i.Date, _ = time.Parse(time.RFC3339, date)
		i.Mood = mood.String
		i.Note = note.String
		index[i.ID] = len(interactions)
		interactions = append(interactions, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(interactions) == 0 {
		return interactions, nil
	}

	prows, err := s.db.QueryContext(ctx,
		`SELECT ip.interaction_id, ip.person_id
		 FROM interaction_people ip
		 INNER JOIN interactions i ON i.id = ip.interaction_id
		 WHERE i.status = 'completed' AND i.date >= ?`, cutoff)
	if err != nil {
		return nil, err
	}
	defer prows.Close()
	for prows.Next() {
		var iid, pid string
		if err := prows.Scan(&iid, &pid); err != nil {
			return nil, err
		}
		if idx, ok := index[iid]; ok {
			interactions[idx].ParticipantIDs = append(interactions[idx].ParticipantIDs, pid)
		}
	}
	if err := prows.Err(); err != nil {
		return nil, err
	}

	rrows, err := s.db.QueryContext(ctx,
		`SELECT r.interaction_id, r.chip_id, r.override, r.custom_note
		 FROM reflections r
		 INNER JOIN interactions i ON i.id = r.interaction_id
		 WHERE i.status = 'completed' AND i.date >= ?`, cutoff)
	if err != nil {
		return nil, err
	}
	defer rrows.Close()
	for rrows.Next() {
		var iid string
		var r model.Reflection
		var override, customNote sql.NullString
		if err := rrows.Scan(&iid, &r.ChipID, &override, &customNote); err != nil {
			return nil, err
		}
		r.Override = override.String
		r.CustomNote = customNote.String
		if idx, ok := index[iid]; ok {
			interactions[idx].Reflections = append(interactions[idx].Reflections, r)
		}
	}
	return interactions, rrows.Err()
}

func (s *SQLiteStore) AttachReflections(ctx context.Context, p ReflectParams) error {
	var date string
	err := s.db.QueryRowContext(ctx,
		`SELECT date FROM interactions WHERE id = ?`, p.InteractionID).Scan(&date)
	if err != nil {
		return fmt.Errorf("interaction not found: %s", p.InteractionID)
	}

	var personID string
	s.db.QueryRowContext(ctx,
		`SELECT person_id FROM interaction_people WHERE interaction_id = ? LIMIT 1`,
		p.InteractionID).Scan(&personID)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, chipID := range p.ChipIDs {
		slot, isCustom := s.chipSlot(ctx, chipID)
		note := ""
		if i == 0 {
			note = p.CustomNote
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO reflections (id, interaction_id, chip_id, custom_note) VALUES (?, ?, ?, ?)`,
			s.newID(), p.InteractionID, chipID, nullable(note))
		if err != nil {
			return fmt.Errorf("insert reflection: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO chip_usage (id, chip_id, slot, interaction_id, person_id, at, is_custom)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.newID(), chipID, string(slot), p.InteractionID, nullable(personID),
			date, boolInt(isCustom))
		if err != nil {
			return fmt.Errorf("insert usage: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) RecordUsage(ctx context.Context, p UsageParams) (*model.UsageRecord, error) {
	at := p.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	id := s.newID()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chip_usage (id, chip_id, slot, interaction_id, person_id, at, is_custom)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, p.ChipID, string(p.Slot), nullable(p.InteractionID), nullable(p.PersonID),
		at.UTC().Format(time.RFC3339), boolInt(p.IsCustom))
	if err != nil {
		return nil, fmt.Errorf("insert usage: %w", err)
	}

	return &model.UsageRecord{
		ID: id, ChipID: p.ChipID, Slot: p.Slot, InteractionID: p.InteractionID,
		PersonID: p.PersonID, At: at.UTC(), IsCustom: p.IsCustom,
	}, nil
}

func (s *SQLiteStore) UsageSince(ctx context.Context, since time.Time) ([]model.UsageRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, chip_id, slot, interaction_id, person_id, at, is_custom
		 FROM chip_usage WHERE at >= ? ORDER BY at ASC`,
		since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.UsageRecord
	for rows.Next() {
		var r model.UsageRecord
		var slot, at string
		var interactionID, personID sql.NullString
		var isCustom int
		if err := rows.Scan(&r.ID, &r.ChipID, &slot, &interactionID, &personID, &at, &isCustom); err != nil {
			return nil, err
		}
		r.Slot = model.SlotType(slot)
		r.InteractionID = interactionID.String
		r.PersonID = personID.String
		r.At, _ = time.Parse(time.RFC3339, at)
		r.IsCustom = isCustom != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) AddCustomChip(ctx context.Context, p CustomChipParams) (*model.Chip, error) {
	text := strings.TrimSpace(p.Text)
	if text == "" {
		return nil, fmt.Errorf("chip text is required")
	}
	if !model.ValidSlots[p.Slot] {
		return nil, fmt.Errorf("invalid slot %q", p.Slot)
	}

	now := time.Now().UTC()
	id := s.newID()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO custom_chips (id, slot, text, created_at) VALUES (?, ?, ?, ?)`,
		id, string(p.Slot), text, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert custom chip: %w", err)
	}

	return &model.Chip{
		ID: id, Slot: p.Slot, Template: text, PlainText: text,
		Weight: 5, IsCustom: true,
	}, nil
}

func (s *SQLiteStore) CustomChips(ctx context.Context) ([]model.Chip, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, slot, text FROM custom_chips WHERE deleted_at IS NULL ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chips []model.Chip
	for rows.Next() {
		var id, slot, text string
		if err := rows.Scan(&id, &slot, &text); err != nil {
			return nil, err
		}
		chips = append(chips, model.Chip{
			ID: id, Slot: model.SlotType(slot), Template: text, PlainText: text,
			Weight: 5, IsCustom: true,
		})
	}
	return chips, rows.Err()
}

func (s *SQLiteStore) RemoveCustomChip(ctx context.Context, id string, hard bool) error {
	if hard {
		res, err := s.db.ExecContext(ctx, `DELETE FROM custom_chips WHERE id = ?`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("custom chip not found: %s", id)
		}
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx,
		`UPDATE custom_chips SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, now, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("custom chip not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// chipSlot resolves the slot and custom flag for a chip id. Unknown ids
// fall back to the activity slot rather than failing the write.
func (s *SQLiteStore) chipSlot(ctx context.Context, chipID string) (model.SlotType, bool) {
	var slot string
	err := s.db.QueryRowContext(ctx,
		`SELECT slot FROM custom_chips WHERE id = ? AND deleted_at IS NULL`, chipID).Scan(&slot)
	if err == nil {
		return model.SlotType(slot), true
	}
	if c, ok := catalog.ByID(chipID); ok {
		return c.Slot, false
	}
	return model.SlotActivity, false
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPerson(row scanner) (model.Person, error) {
	var p model.Person
	var tier, createdAt string
	var archetype, vibe sql.NullString

	err := row.Scan(&p.ID, &p.Name, &tier, &archetype, &vibe, &createdAt)
	if err != nil {
		return p, err
	}

	p.Tier = model.Tier(tier)
	p.Archetype = archetype.String
	p.Vibe = vibe.String
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return p, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
