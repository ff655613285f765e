package snapshot

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"mini-voxel/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Store persists the voxel cell collection to a SQLite file so a
// session can be resumed. Spawn order is preserved: the removal scan's
// first-match semantics depend on it.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS cells (
	id  TEXT PRIMARY KEY,
	seq INTEGER NOT NULL,
	x   REAL NOT NULL,
	y   REAL NOT NULL,
	z   REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty snapshot path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init snapshot schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save replaces the stored snapshot with the world's current cells.
func (s *Store) Save(w *world.World) error {
	cells := w.Cells()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM cells`); err != nil {
		return fmt.Errorf("clear cells: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO cells (id, seq, x, y, z) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range cells {
		if _, err := stmt.Exec(c.ID.String(), i, c.Position.X(), c.Position.Y(), c.Position.Z()); err != nil {
			return fmt.Errorf("insert cell %s: %w", c.ID, err)
		}
	}

	savedAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES ('saved_at', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, savedAt); err != nil {
		return fmt.Errorf("update meta: %w", err)
	}

	return tx.Commit()
}

// Load replaces the world's cells with the stored snapshot, keeping
// identities and spawn order. An empty store yields an empty world.
func (s *Store) Load(w *world.World) error {
	rows, err := s.db.Query(`SELECT id, x, y, z FROM cells ORDER BY seq`)
	if err != nil {
		return fmt.Errorf("query cells: %w", err)
	}
	defer rows.Close()

	var cells []world.Cell
	for rows.Next() {
		var id string
		var x, y, z float64
		if err := rows.Scan(&id, &x, &y, &z); err != nil {
			return fmt.Errorf("scan cell: %w", err)
		}
		cid, err := uuid.Parse(id)
		if err != nil {
			return fmt.Errorf("parse cell id %q: %w", id, err)
		}
		cells = append(cells, world.Cell{
			ID:       cid,
			Position: mgl32.Vec3{float32(x), float32(y), float32(z)},
		})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate cells: %w", err)
	}

	w.Restore(cells)
	return nil
}

// Count returns the number of stored cells.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM cells`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cells: %w", err)
	}
	return n, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
