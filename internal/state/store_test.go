package state

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()
	s, err := NewSQLStore(filepath.Join(t.TempDir(), "state.db"), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetUserStateMissing(t *testing.T) {
	s := newTestStore(t)
	us, found, err := s.GetUserState("nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("unknown user should not be found")
	}
	if us.UserID != "nobody" {
		t.Fatalf("unexpected user id %q", us.UserID)
	}
}

func TestUserStateRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ts := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	in := UserState{
		UserID:   "u1",
		Dynamics: DynamicsState{Valence: 0.42, Arousal: 0.61},
		Temporal: TemporalState{
			S: 0.3, B: 0.1, Sigma: 0.2, Z: 1.0, R: 0.25, C: 0.5,
			Regime: RegimeElevated, N: 7, LastUpdateTS: ts,
			CriticalHits: []time.Time{ts.Add(-time.Hour)},
		},
	}
	if err := s.PutUserState(in); err != nil {
		t.Fatalf("put: %v", err)
	}

	out, found, err := s.GetUserState("u1")
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if out.Dynamics != in.Dynamics {
		t.Fatalf("dynamics mismatch: %+v vs %+v", out.Dynamics, in.Dynamics)
	}
	if out.Temporal.Regime != RegimeElevated || out.Temporal.N != 7 {
		t.Fatalf("temporal mismatch: %+v", out.Temporal)
	}
	if !out.Temporal.LastUpdateTS.Equal(ts) {
		t.Fatalf("timestamp mismatch: %v", out.Temporal.LastUpdateTS)
	}
	if len(out.Temporal.CriticalHits) != 1 {
		t.Fatalf("critical hits lost: %+v", out.Temporal.CriticalHits)
	}
}

func TestPutUserStateUpserts(t *testing.T) {
	s := newTestStore(t)
	if err := s.PutUserState(UserState{UserID: "u1", Dynamics: DynamicsState{Valence: 0.1}}); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := s.PutUserState(UserState{UserID: "u1", Dynamics: DynamicsState{Valence: -0.5}}); err != nil {
		t.Fatalf("second put: %v", err)
	}
	out, _, err := s.GetUserState("u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.Dynamics.Valence != -0.5 {
		t.Fatalf("upsert did not overwrite, got %f", out.Dynamics.Valence)
	}
}

func TestCorruptStateReinitializes(t *testing.T) {
	s := newTestStore(t)
	_, err := s.DB().Exec(
		`INSERT INTO user_state (user_id, dynamics_json, temporal_json, updated_at)
		 VALUES ('u1', 'not json', '{', '2025-01-01T00:00:00Z')`)
	if err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	us, found, err := s.GetUserState("u1")
	if err != nil {
		t.Fatalf("corrupt state must not error: %v", err)
	}
	if !found {
		t.Fatal("row exists, should be found")
	}
	if us.Dynamics != DefaultDynamicsState() {
		t.Fatalf("corrupt dynamics should reinitialize to default, got %+v", us.Dynamics)
	}
	if us.Temporal.N != 0 {
		t.Fatalf("corrupt temporal should reinitialize, got %+v", us.Temporal)
	}
}

func TestHistoryOrderAndLimit(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := s.AppendHistory("u1", HistoryItem{
			ReflectionID: string(rune('a' + i)),
			Valence:      float64(i) / 10,
			Arousal:      0.5,
			EventLabels:  []string{"work"},
			Tokens:       []string{"deadline"},
			Timestamp:    base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	items, err := s.History("u1", 3)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].Timestamp.After(items[i-1].Timestamp) {
			t.Fatal("history not most-recent-first")
		}
	}
	if items[0].ReflectionID != "e" {
		t.Fatalf("newest item should come first, got %q", items[0].ReflectionID)
	}
	if len(items[0].EventLabels) != 1 || items[0].EventLabels[0] != "work" {
		t.Fatalf("labels lost: %+v", items[0].EventLabels)
	}
}

func TestHistoryIsolatedPerUser(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC()
	if err := s.AppendHistory("u1", HistoryItem{ReflectionID: "r1", Timestamp: now}); err != nil {
		t.Fatalf("append: %v", err)
	}
	items, err := s.History("u2", 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("u2 should have no history, got %d", len(items))
	}
}

func TestLogProvenance(t *testing.T) {
	s := newTestStore(t)
	err := s.LogProvenance(ProvenanceEntry{
		ReflectionID: "r1",
		UserID:       "u1",
		Decision:     "sadness",
		Reason:       "classified",
		SignalsJSON:  `{"confidence":0.7}`,
		Degraded:     true,
	})
	if err != nil {
		t.Fatalf("log provenance: %v", err)
	}

	var count int
	if err := s.DB().QueryRow(
		`SELECT COUNT(*) FROM provenance_log WHERE user_id = 'u1' AND degraded = 1`,
	).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 provenance row, got %d", count)
	}
}
