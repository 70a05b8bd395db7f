package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/skilldex-labs/skilldex-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driven"
)

// topSkillLimit caps the leaderboard returned by Stats.
const topSkillLimit = 10

// defaultRecentLimit is used when Recent is called with a non-positive limit.
const defaultRecentLimit = 20

// Store is a SQLite-backed route log.
type Store struct {
	db   *sql.DB
	path string
}

// Interface guard
var _ driven.RouteLogStore = (*Store)(nil)

// NewStore opens the route log database in the specified data directory,
// creating both as needed. If dataDir is empty, defaults to
// ~/.skilldex/data/routes.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".skilldex", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "routes.db")

	// WAL mode lets the MCP server record routes while the CLI reads stats.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate applies every pending .up.sql migration in version order.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// File names carry the version, e.g. "001_route_log.up.sql" -> 1.
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("marking migration %s applied: %w", name, err)
		}
	}

	return nil
}

// Record appends one routing decision and bumps the hit counter of every
// skill it returned, atomically.
func (s *Store) Record(ctx context.Context, rec *domain.RouteRecord) error {
	skillIDsJSON, err := json.Marshal(rec.SkillIDs)
	if err != nil {
		return fmt.Errorf("marshalling skill ids: %w", err)
	}

	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO route_log (id, query, outcome, skill_ids, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, rec.ID, rec.Query, string(rec.Outcome), string(skillIDsJSON), created)
	if err != nil {
		return fmt.Errorf("recording route: %w", err)
	}

	for _, skillID := range rec.SkillIDs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO skill_hits (skill_id, hits, last_hit_at)
			VALUES (?, 1, ?)
			ON CONFLICT(skill_id) DO UPDATE SET
				hits = hits + 1,
				last_hit_at = excluded.last_hit_at
		`, skillID, created)
		if err != nil {
			return fmt.Errorf("counting hit for %s: %w", skillID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Stats aggregates the route log into totals and the busiest skills.
func (s *Store) Stats(ctx context.Context) (*domain.RouteStats, error) {
	stats := &domain.RouteStats{}

	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0)
		FROM route_log
	`, string(domain.OutcomeResolved), string(domain.OutcomeFallback))
	if err := row.Scan(&stats.TotalQueries, &stats.Resolved, &stats.Fallbacks); err != nil {
		return nil, fmt.Errorf("aggregating route log: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT skill_id, hits
		FROM skill_hits
		ORDER BY hits DESC, skill_id ASC
		LIMIT ?
	`, topSkillLimit)
	if err != nil {
		return nil, fmt.Errorf("querying skill hits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var hit domain.SkillHits
		if err := rows.Scan(&hit.SkillID, &hit.Hits); err != nil {
			return nil, fmt.Errorf("scanning skill hits: %w", err)
		}
		stats.TopSkills = append(stats.TopSkills, hit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skill hits: %w", err)
	}

	return stats, nil
}

// Recent returns the newest routing decisions, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.RouteRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query, outcome, skill_ids, created_at
		FROM route_log
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying route log: %w", err)
	}
	defer rows.Close()

	var records []domain.RouteRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var rec domain.RouteRecord
		var outcome, skillIDsJSON string
		if err := rows.Scan(&rec.ID, &rec.Query, &outcome, &skillIDsJSON, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning route record: %w", err)
		}

		rec.Outcome = domain.RouteOutcome(outcome)
		if err := json.Unmarshal([]byte(skillIDsJSON), &rec.SkillIDs); err != nil {
			return nil, fmt.Errorf("unmarshalling skill ids: %w", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating route log: %w", err)
	}

	return records, nil
}
