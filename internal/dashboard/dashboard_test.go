package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sahaay/internal/focus"
	"github.com/abhisek/sahaay/internal/lesson"
	"github.com/abhisek/sahaay/internal/matchgame"
	"github.com/abhisek/sahaay/internal/quiz"
	"github.com/abhisek/sahaay/internal/store"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

type zeroSource struct{}

func (zeroSource) IntN(int) int { return 0 }

func testSet(id string, n int) lesson.Set {
	items := make([]lesson.Item, n)
	for i := range items {
		items[i] = lesson.Item{ID: id + string(rune('a'+i)), Label: string(rune('A' + i))}
	}
	return lesson.Set{ID: id, Title: id, Items: items}
}

func openRepo(t *testing.T) store.EventRepo {
	t.Helper()
	s, err := store.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

func TestSnapshotWithoutJournal(t *testing.T) {
	clk := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	agg := New(store.ModuleInclusion, nil, clk.Now)

	sign, err := lesson.ForSet(testSet("sign", 5))
	require.NoError(t, err)
	braille, err := lesson.ForSet(testSet("braille", 5))
	require.NoError(t, err)
	sign.GoNext()
	sign.GoNext()    // 3 of 5 = 60%
	braille.GoNext() // 2 of 5 = 40%

	agg.TrackLesson(testSet("sign", 5), sign)
	agg.TrackLesson(testSet("braille", 5), braille)

	clk.t = clk.t.Add(45 * time.Minute)
	snap, err := agg.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Lessons, 2)
	assert.Equal(t, 60, snap.Lessons[0].Percent)
	assert.Equal(t, 3, snap.Lessons[0].Visited)
	assert.Equal(t, 40, snap.Lessons[1].Percent)
	assert.Equal(t, 50, snap.DailyProgress)
	assert.Equal(t, 45*time.Minute, snap.ActivityTime)
	assert.False(t, snap.Quiz.Tracked)
	assert.Empty(t, snap.Recent)

	// 3 + 2 visited lessons earns the five-lessons badge only
	earned := map[string]bool{}
	for _, a := range snap.Achievements {
		earned[a.ID] = a.Earned
	}
	assert.Equal(t, map[string]bool{
		"first-quiz":    false,
		"five-lessons":  true,
		"perfect-score": false,
		"learner":       false,
	}, earned)
}

func TestSnapshotQuizAndGames(t *testing.T) {
	repo := openRepo(t)
	agg := New(store.ModuleChild, repo, nil)

	r, err := quiz.NewRunner([]quiz.Question{
		{Prompt: "p1", Options: []string{"a", "b"}, Correct: 0},
		{Prompt: "p2", Options: []string{"a", "b"}, Correct: 1},
	})
	require.NoError(t, err)
	agg.TrackQuiz(r)

	r.Start()
	_, err = r.Submit(0)
	require.NoError(t, err)
	_, err = r.Advance()
	require.NoError(t, err)
	_, err = r.Submit(1)
	require.NoError(t, err)
	_, err = r.Advance()
	require.NoError(t, err)

	g := matchgame.New[string]("colors", zeroSource{})
	_, err = g.Start([]string{"red", "blue"})
	require.NoError(t, err)
	_, err = g.Select("red")
	require.NoError(t, err)
	agg.TrackGame("Color Match", ScoreOf(g))

	task := focus.New(&fakeClock{t: time.Unix(0, 0)})
	agg.TrackFocus(task)

	snap, err := agg.Snapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Quiz.Tracked)
	assert.Equal(t, quiz.PhaseCompleted, snap.Quiz.Phase)
	assert.Equal(t, 2, snap.Quiz.Best)
	assert.Equal(t, 100, snap.Quiz.Percent)
	assert.Equal(t, []GameScore{{Name: "Color Match", Score: matchgame.PointsPerMatch}}, snap.Games)
	assert.Equal(t, 0, snap.AttentionScore)

	earned := map[string]bool{}
	for _, a := range snap.Achievements {
		earned[a.ID] = a.Earned
	}
	assert.True(t, earned["first-quiz"])
	assert.True(t, earned["perfect-score"])
}

func TestSnapshotJournalFigures(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()
	agg := New(store.ModuleChild, repo, nil)

	for _, label := range []string{"happy", "happy", "sad", "neutral"} {
		require.NoError(t, repo.Append(ctx, store.Activity{Module: store.ModuleChild, Action: store.ActionEmotion, Detail: label}))
	}
	require.NoError(t, repo.Append(ctx, store.Activity{Module: store.ModuleChild, Action: store.ActionFocusComplete, Score: 10}))
	require.NoError(t, repo.Append(ctx, store.Activity{Module: store.ModuleSpeech, Action: store.ActionSpeak, Detail: "en-US:Hello"}))
	require.NoError(t, repo.Append(ctx, store.Activity{Module: store.ModuleSpeech, Action: store.ActionSpeak, Detail: "en-US:Water"}))
	require.NoError(t, repo.Append(ctx, store.Activity{Module: store.ModuleInclusion, Action: store.ActionQuizComplete}))

	snap, err := agg.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, snap.SpeechScore)
	assert.Equal(t, 1, snap.FocusRuns)
	assert.Equal(t, 0, snap.Quiz.Attempts, "other modules are not counted")
	assert.Equal(t, []EmotionShare{
		{Label: "happy", Count: 2, Percent: 50},
		{Label: "neutral", Count: 1, Percent: 25},
		{Label: "sad", Count: 1, Percent: 25},
	}, snap.Emotions)
	require.Len(t, snap.Recent, 5)
	assert.Equal(t, store.ActionFocusComplete, snap.Recent[0].Action)
}

func TestShares(t *testing.T) {
	assert.Nil(t, Shares(nil))
	assert.Nil(t, Shares(map[string]int{"happy": 0}))

	got := Shares(map[string]int{"happy": 1, "sad": 2})
	assert.Equal(t, []EmotionShare{
		{Label: "sad", Count: 2, Percent: 67},
		{Label: "happy", Count: 1, Percent: 33},
	}, got)
}
