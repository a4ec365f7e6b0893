package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
	if s.SessionID() == "" {
		t.Fatal("expected a session id")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSeparateStoresDoNotShareData(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, a.EventRepo().Append(ctx, Activity{Module: ModuleChild, Action: "focus_start"}))

	got, err := b.EventRepo().Recent(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}

func TestAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	actions := []string{"quiz_start", "quiz_answer", "quiz_answer", "quiz_complete"}
	for i, a := range actions {
		err := repo.Append(ctx, Activity{
			Module: ModuleInclusion,
			Action: a,
			Score:  i,
		})
		require.NoError(t, err)
	}
	require.NoError(t, repo.Append(ctx, Activity{Module: ModuleChild, Action: "match_correct", Detail: "red", Score: 10}))

	all, err := repo.Recent(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "match_correct", all[0].Action, "newest first")
	assert.Equal(t, int64(5), all[0].Sequence)
	assert.Equal(t, int64(1), all[4].Sequence)
	assert.Equal(t, s.SessionID(), all[0].SessionID)
	assert.False(t, all[0].Timestamp.IsZero())

	inclusion, err := repo.Recent(ctx, QueryOpts{Module: ModuleInclusion, Limit: 2})
	require.NoError(t, err)
	require.Len(t, inclusion, 2)
	assert.Equal(t, "quiz_complete", inclusion[0].Action)
	assert.Equal(t, 3, inclusion[0].Score)

	window, err := repo.Recent(ctx, QueryOpts{After: 1, Before: 4})
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, int64(3), window[0].Sequence)
	assert.Equal(t, int64(2), window[1].Sequence)
}

func TestRecentTimeFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		err := repo.Append(ctx, Activity{
			Module:    ModuleAssistive,
			Action:    "emergency",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	got, err := repo.Recent(ctx, QueryOpts{From: base.Add(time.Minute), To: base.Add(2 * time.Minute)})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Timestamp.Equal(base.Add(2*time.Minute)))
}

func TestCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, label := range []string{"happy", "sad", "happy", "neutral", "happy"} {
		require.NoError(t, repo.Append(ctx, Activity{Module: ModuleChild, Action: "emotion", Detail: label}))
	}
	require.NoError(t, repo.Append(ctx, Activity{Module: ModuleChild, Action: "focus_complete"}))

	byAction, err := repo.CountByAction(ctx, ModuleChild)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"emotion": 5, "focus_complete": 1}, byAction)

	labels, err := repo.DetailCounts(ctx, ModuleChild, "emotion")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"happy": 3, "sad": 1, "neutral": 1}, labels)

	empty, err := repo.CountByAction(ctx, ModuleAssistive)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 10; i++ {
		n, err := s.seq.Next(ctx)
		require.NoError(t, err)
		assert.Greater(t, n, last)
		last = n
	}
}
