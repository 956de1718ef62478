// Package state persists per-user affective state, bounded reflection
// history, and the enrichment provenance log in SQLite.
package state

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// #region interfaces

// Store is the persistence collaborator the engine consumes: per-user
// state by key plus read-only bounded history.
type Store interface {
	GetUserState(userID string) (UserState, bool, error)
	PutUserState(us UserState) error
	History(userID string, limit int) ([]HistoryItem, error)
	AppendHistory(userID string, item HistoryItem) error
}

// ProvenanceLogger records one row per enrichment decision.
type ProvenanceLogger interface {
	LogProvenance(entry ProvenanceEntry) error
}

// ProvenanceEntry is a single provenance row.
type ProvenanceEntry struct {
	ReflectionID string
	UserID       string
	Decision     string
	Reason       string
	SignalsJSON  string
	Degraded     bool
	CreatedAt    time.Time
}

// #endregion interfaces

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS user_state (
	user_id        TEXT PRIMARY KEY,
	dynamics_json  TEXT NOT NULL,
	temporal_json  TEXT NOT NULL,
	updated_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reflection_history (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id        TEXT NOT NULL,
	reflection_id  TEXT NOT NULL,
	valence        REAL NOT NULL,
	arousal        REAL NOT NULL,
	event_labels   TEXT,
	tokens         TEXT,
	ts             TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_history_user_ts ON reflection_history(user_id, ts DESC);

CREATE TABLE IF NOT EXISTS provenance_log (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	reflection_id  TEXT NOT NULL,
	user_id        TEXT NOT NULL,
	decision       TEXT NOT NULL,
	reason         TEXT,
	signals_json   TEXT,
	degraded       INTEGER NOT NULL DEFAULT 0,
	created_at     TEXT NOT NULL
);
`

// #endregion schema

// #region sql-store

// SQLStore implements Store and ProvenanceLogger on SQLite.
type SQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLStore opens the database, applies pragmas and migrations.
// logger may be nil.
func NewSQLStore(dbPath string, logger *zap.Logger) (*SQLStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLStore{db: db, logger: logger}, nil
}

// Close closes the underlying database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for inspection tooling.
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

// #endregion sql-store

// #region user-state

// GetUserState reads both persisted states. Malformed persisted JSON is
// state corruption: log a warning, reinitialize to defaults, continue.
func (s *SQLStore) GetUserState(userID string) (UserState, bool, error) {
	var dynJSON, tmpJSON string
	err := s.db.QueryRow(
		`SELECT dynamics_json, temporal_json FROM user_state WHERE user_id = ?`, userID,
	).Scan(&dynJSON, &tmpJSON)
	if err == sql.ErrNoRows {
		return UserState{UserID: userID}, false, nil
	}
	if err != nil {
		return UserState{}, false, fmt.Errorf("get user state %s: %w", userID, err)
	}

	us := UserState{UserID: userID}
	if err := json.Unmarshal([]byte(dynJSON), &us.Dynamics); err != nil {
		s.logger.Warn("corrupt dynamics state, reinitializing",
			zap.String("user_id", userID), zap.Error(err))
		us.Dynamics = DefaultDynamicsState()
	}
	if err := json.Unmarshal([]byte(tmpJSON), &us.Temporal); err != nil {
		s.logger.Warn("corrupt temporal state, reinitializing",
			zap.String("user_id", userID), zap.Error(err))
		us.Temporal = TemporalState{}
	}
	return us, true, nil
}

// PutUserState upserts both states atomically.
func (s *SQLStore) PutUserState(us UserState) error {
	dynJSON, err := json.Marshal(us.Dynamics)
	if err != nil {
		return fmt.Errorf("marshal dynamics: %w", err)
	}
	tmpJSON, err := json.Marshal(us.Temporal)
	if err != nil {
		return fmt.Errorf("marshal temporal: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO user_state (user_id, dynamics_json, temporal_json, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   dynamics_json = excluded.dynamics_json,
		   temporal_json = excluded.temporal_json,
		   updated_at = excluded.updated_at`,
		us.UserID, string(dynJSON), string(tmpJSON), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("put user state: %w", err)
	}
	return nil
}

// #endregion user-state

// #region history

// History returns up to limit items for the user, most recent first.
func (s *SQLStore) History(userID string, limit int) ([]HistoryItem, error) {
	rows, err := s.db.Query(
		`SELECT reflection_id, valence, arousal, event_labels, tokens, ts
		 FROM reflection_history WHERE user_id = ?
		 ORDER BY ts DESC LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history query: %w", err)
	}
	defer rows.Close()

	var items []HistoryItem
	for rows.Next() {
		var it HistoryItem
		var labelsJSON, tokensJSON sql.NullString
		var tsStr string
		if err := rows.Scan(&it.ReflectionID, &it.Valence, &it.Arousal, &labelsJSON, &tokensJSON, &tsStr); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if labelsJSON.Valid {
			if err := json.Unmarshal([]byte(labelsJSON.String), &it.EventLabels); err != nil {
				s.logger.Warn("corrupt history labels, dropping",
					zap.String("user_id", userID), zap.Error(err))
			}
		}
		if tokensJSON.Valid {
			if err := json.Unmarshal([]byte(tokensJSON.String), &it.Tokens); err != nil {
				s.logger.Warn("corrupt history tokens, dropping",
					zap.String("user_id", userID), zap.Error(err))
			}
		}
		it.Timestamp, _ = time.Parse(time.RFC3339Nano, tsStr)
		items = append(items, it)
	}
	return items, rows.Err()
}

// AppendHistory inserts one history row.
func (s *SQLStore) AppendHistory(userID string, it HistoryItem) error {
	labelsJSON, err := json.Marshal(it.EventLabels)
	if err != nil {
		return fmt.Errorf("marshal labels: %w", err)
	}
	tokensJSON, err := json.Marshal(it.Tokens)
	if err != nil {
		return fmt.Errorf("marshal tokens: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO reflection_history (user_id, reflection_id, valence, arousal, event_labels, tokens, ts)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, it.ReflectionID, it.Valence, it.Arousal,
		string(labelsJSON), string(tokensJSON), it.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// #endregion history

// #region provenance

// LogProvenance writes one provenance row.
func (s *SQLStore) LogProvenance(entry ProvenanceEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	degraded := 0
	if entry.Degraded {
		degraded = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO provenance_log (reflection_id, user_id, decision, reason, signals_json, degraded, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ReflectionID, entry.UserID, entry.Decision,
		nullIfEmpty(entry.Reason), nullIfEmpty(entry.SignalsJSON),
		degraded, entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log provenance: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion provenance
