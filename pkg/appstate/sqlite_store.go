package appstate

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/skillpocket/skillpocket/pkg/db"
)

// SQLiteStore persists the application state in a SQLite database. Saves
// replace the collections wholesale inside one transaction, matching the
// no-partial-writes contract of the Store interface.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens the database at dbPath and applies migrations.
func NewSQLiteStore(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	database, err := db.Open(ctx, dbPath)
	if err != nil {
		return nil, err
	}

	runner := db.NewMigrationRunner(database)
	if err := runner.Run(ctx, stateMigrations()); err != nil {
		database.Close()
		return nil, errors.Wrap(err, "failed to run state migrations")
	}

	return &SQLiteStore{db: database}, nil
}

func stateMigrations() []db.Migration {
	return []db.Migration{
		{
			Version:     20260815120000,
			Description: "Create skills, tags, drafts, and meta tables",
			Up: func(tx *sql.Tx) error {
				statements := []string{
					`CREATE TABLE IF NOT EXISTS skills (
						id TEXT PRIMARY KEY,
						name TEXT NOT NULL,
						description TEXT NOT NULL,
						version TEXT NOT NULL DEFAULT '',
						license TEXT NOT NULL DEFAULT '',
						path TEXT NOT NULL,
						plugin_name TEXT NOT NULL DEFAULT '',
						source TEXT NOT NULL,
						content TEXT NOT NULL,
						tags TEXT NOT NULL,
						cover_svg TEXT NOT NULL DEFAULT '',
						is_favorite INTEGER NOT NULL DEFAULT 0,
						use_count INTEGER NOT NULL DEFAULT 0,
						stale INTEGER NOT NULL DEFAULT 0,
						last_used_at DATETIME,
						installed_at DATETIME NOT NULL,
						updated_at DATETIME NOT NULL
					)`,
					`CREATE TABLE IF NOT EXISTS tags (
						id TEXT PRIMARY KEY,
						name TEXT NOT NULL,
						icon TEXT NOT NULL DEFAULT '',
						color TEXT NOT NULL DEFAULT '',
						parent_id TEXT NOT NULL DEFAULT '',
						sort_order INTEGER NOT NULL DEFAULT 0,
						created_at DATETIME NOT NULL
					)`,
					`CREATE TABLE IF NOT EXISTS drafts (
						id TEXT PRIMARY KEY,
						name TEXT NOT NULL,
						description TEXT NOT NULL DEFAULT '',
						content TEXT NOT NULL DEFAULT '',
						tags TEXT NOT NULL,
						source_url TEXT NOT NULL DEFAULT '',
						created_at DATETIME NOT NULL,
						updated_at DATETIME NOT NULL
					)`,
					`CREATE TABLE IF NOT EXISTS meta (
						key TEXT PRIMARY KEY,
						value TEXT NOT NULL
					)`,
				}
				for _, stmt := range statements {
					if _, err := tx.Exec(stmt); err != nil {
						return errors.Wrap(err, "failed to create state table")
					}
				}
				return nil
			},
		},
	}
}

const metaStateKey = "app_state"

// Load reads the full state. An empty database yields the first-run
// default state.
func (s *SQLiteStore) Load(ctx context.Context) (State, error) {
	var initialized bool
	err := s.db.GetContext(ctx, &initialized, "SELECT COUNT(*) > 0 FROM meta WHERE key = ?", metaStateKey)
	if err != nil {
		return State{}, errors.Wrap(err, "failed to check state metadata")
	}
	if !initialized {
		return NewState(), nil
	}

	state := State{}

	var dbSkills []dbSkill
	if err := s.db.SelectContext(ctx, &dbSkills, "SELECT * FROM skills ORDER BY id"); err != nil {
		return State{}, errors.Wrap(err, "failed to load skills")
	}
	for _, row := range dbSkills {
		state.Skills = append(state.Skills, row.toSkill())
	}

	var dbTags []dbTag
	if err := s.db.SelectContext(ctx, &dbTags, "SELECT * FROM tags ORDER BY parent_id, sort_order, id"); err != nil {
		return State{}, errors.Wrap(err, "failed to load tags")
	}
	for _, row := range dbTags {
		state.Tags = append(state.Tags, row.toTag())
	}

	var dbDrafts []dbDraft
	if err := s.db.SelectContext(ctx, &dbDrafts, "SELECT * FROM drafts ORDER BY created_at, id"); err != nil {
		return State{}, errors.Wrap(err, "failed to load drafts")
	}
	for _, row := range dbDrafts {
		state.Drafts = append(state.Drafts, row.toDraft())
	}

	var metaJSON string
	if err := s.db.GetContext(ctx, &metaJSON, "SELECT value FROM meta WHERE key = ?", metaStateKey); err != nil {
		return State{}, errors.Wrap(err, "failed to load state metadata")
	}
	meta := stateMeta{}
	if err := json.Unmarshal([]byte(metaJSON), &meta); err != nil {
		return State{}, errors.Wrap(err, "failed to unmarshal state metadata")
	}
	state.Preferences = meta.Preferences
	state.LastScanAt = meta.LastScanAt

	return state, nil
}

// stateMeta carries the non-collection parts of State in the meta table.
type stateMeta struct {
	Preferences Preferences `json:"preferences"`
	LastScanAt  *time.Time  `json:"lastScanAt,omitempty"`
}

// Save replaces the persisted state wholesale in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, state State) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	for _, table := range []string{"skills", "tags", "drafts"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return errors.Wrapf(err, "failed to clear %s table", table)
		}
	}

	for _, skill := range state.Skills {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO skills (id, name, description, version, license, path, plugin_name,
				source, content, tags, cover_svg, is_favorite, use_count, stale,
				last_used_at, installed_at, updated_at)
			VALUES (:id, :name, :description, :version, :license, :path, :plugin_name,
				:source, :content, :tags, :cover_svg, :is_favorite, :use_count, :stale,
				:last_used_at, :installed_at, :updated_at)
		`, toDBSkill(skill))
		if err != nil {
			return errors.Wrapf(err, "failed to insert skill %s", skill.ID)
		}
	}

	for _, tag := range state.Tags {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO tags (id, name, icon, color, parent_id, sort_order, created_at)
			VALUES (:id, :name, :icon, :color, :parent_id, :sort_order, :created_at)
		`, toDBTag(tag))
		if err != nil {
			return errors.Wrapf(err, "failed to insert tag %s", tag.ID)
		}
	}

	for _, draft := range state.Drafts {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO drafts (id, name, description, content, tags, source_url, created_at, updated_at)
			VALUES (:id, :name, :description, :content, :tags, :source_url, :created_at, :updated_at)
		`, toDBDraft(draft))
		if err != nil {
			return errors.Wrapf(err, "failed to insert draft %s", draft.ID)
		}
	}

	metaJSON, err := json.Marshal(stateMeta{Preferences: state.Preferences, LastScanAt: state.LastScanAt})
	if err != nil {
		return errors.Wrap(err, "failed to marshal state metadata")
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		metaStateKey, string(metaJSON))
	if err != nil {
		return errors.Wrap(err, "failed to save state metadata")
	}

	return tx.Commit()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
