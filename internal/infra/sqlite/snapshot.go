package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/trainquest/trainquest/internal/domain"
)

// stateKey is the fixed key the whole-state snapshot lives under.
const stateKey = "state"

// SaveSnapshot serializes and upserts the snapshot. The previous row is
// replaced wholesale — the snapshot is the unit of persistence.
func (d *DB) SaveSnapshot(snap *domain.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	_, err = d.db.Exec(
		`INSERT INTO snapshots (key, version, value, saved_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			version=excluded.version,
			value=excluded.value,
			saved_at=excluded.saved_at`,
		stateKey, snap.Version, string(blob), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the stored snapshot. Returns nil (no error) when
// nothing is stored yet or the stored schema version does not match — the
// caller seeds a fresh state in both cases.
func (d *DB) LoadSnapshot() (*domain.Snapshot, error) {
	var version int
	var blob string
	err := d.db.QueryRow(
		`SELECT version, value FROM snapshots WHERE key = ?`, stateKey,
	).Scan(&version, &blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	if version != domain.SnapshotVersion {
		return nil, nil // Version mismatch — discard, caller reseeds
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(blob), &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// SnapshotSavedAt returns when the snapshot was last written (zero time if
// never). Used by the health checker for staleness.
func (d *DB) SnapshotSavedAt() (time.Time, error) {
	var savedAt int64
	err := d.db.QueryRow(
		`SELECT saved_at FROM snapshots WHERE key = ?`, stateKey,
	).Scan(&savedAt)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(savedAt, 0), nil
}
