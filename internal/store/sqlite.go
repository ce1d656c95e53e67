package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/tcxtools/tcxedit/internal/model"
	"github.com/tcxtools/tcxedit/internal/tcx"
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
	CREATE TABLE IF NOT EXISTS activities (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		sport              TEXT NOT NULL,
		start_time         TEXT,
		total_time_seconds REAL NOT NULL,
		distance_meters    REAL NOT NULL,
		calories           INTEGER NOT NULL,
		trackpoints        INTEGER NOT NULL,
		xml                TEXT NOT NULL,
		xml_hash           TEXT NOT NULL UNIQUE,
		created_at         TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_activities_sport ON activities(sport);
	CREATE INDEX IF NOT EXISTS idx_activities_created ON activities(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Import(ctx context.Context, p ImportParams) (*model.StoredActivity, error) {
	doc, err := tcx.Parse(p.XML)
	if err != nil {
		return nil, err
	}
	stats := tcx.ComputeStats(doc)

	sha := sha256.Sum256([]byte(p.XML))
	hash := hex.EncodeToString(sha[:])

	now := time.Now().UTC()
	id := s.newID()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Re-importing the same file replaces the previous entry.
	if _, err := tx.ExecContext(ctx, `DELETE FROM activities WHERE xml_hash = ?`, hash); err != nil {
		return nil, fmt.Errorf("replace existing: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO activities (id, name, sport, start_time, total_time_seconds, distance_meters, calories, trackpoints, xml, xml_hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Name, stats.Sport, stats.StartTime, stats.TotalTimeSeconds,
		stats.TotalDistanceMeters, stats.TotalCalories, stats.TrackpointCount,
		p.XML, hash, now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &model.StoredActivity{
		ID:               id,
		Name:             p.Name,
		Sport:            stats.Sport,
		StartTime:        stats.StartTime,
		TotalTimeSeconds: stats.TotalTimeSeconds,
		DistanceMeters:   stats.TotalDistanceMeters,
		Calories:         stats.TotalCalories,
		Trackpoints:      stats.TrackpointCount,
		XML:              p.XML,
		CreatedAt:        now,
	}, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.StoredActivity, error) {
	query := `SELECT id, name, sport, start_time, total_time_seconds, distance_meters, calories, trackpoints, created_at
	          FROM activities`
	var args []any
	if p.Sport != "" {
		query += ` WHERE sport = ?`
		args = append(args, p.Sport)
	}
	query += ` ORDER BY created_at DESC`
	if p.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, p.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []model.StoredActivity
	for rows.Next() {
		var a model.StoredActivity
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Name, &a.Sport, &a.StartTime, &a.TotalTimeSeconds,
			&a.DistanceMeters, &a.Calories, &a.Trackpoints, &createdAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.StoredActivity, error) {
	var a model.StoredActivity
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, sport, start_time, total_time_seconds, distance_meters, calories, trackpoints, xml, created_at
		 FROM activities WHERE id = ?`, id).
		Scan(&a.ID, &a.Name, &a.Sport, &a.StartTime, &a.TotalTimeSeconds,
			&a.DistanceMeters, &a.Calories, &a.Trackpoints, &a.XML, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("activity %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &a, nil
}

func (s *SQLiteStore) Rm(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("activity %s not found", id)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
