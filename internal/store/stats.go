package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath        string        `json:"db_path"`
	DBSizeBytes   int64         `json:"db_size_bytes"`
	EnergyEntries int           `json:"energy_entries"`
	People        int           `json:"people"`
	Interactions  int           `json:"interactions"`
	UsageRecords  int           `json:"usage_records"`
	CustomChips   int           `json:"custom_chips"`
	PerPerson     []PersonStats `json:"per_person,omitempty"`
}

// PersonStats holds per-person interaction counts.
type PersonStats struct {
	PersonID string `json:"person_id"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM energy_log`).Scan(&st.EnergyEntries)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM people`).Scan(&st.People)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM interactions WHERE status = 'completed'`).Scan(&st.Interactions)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chip_usage`).Scan(&st.UsageRecords)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM custom_chips WHERE deleted_at IS NULL`).Scan(&st.CustomChips)

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, COUNT(ip.interaction_id) AS cnt
		FROM people p
		LEFT JOIN interaction_people ip ON ip.person_id = p.id
		GROUP BY p.id ORDER BY cnt DESC, p.name ASC`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ps PersonStats
		rows.Scan(&ps.PersonID, &ps.Name, &ps.Count)
		st.PerPerson = append(st.PerPerson, ps)
	}

	return st, nil
}
