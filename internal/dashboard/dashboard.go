// Package dashboard aggregates engine snapshots and the activity journal into
// the progress views shown to learners and parents.
package dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/abhisek/sahaay/internal/focus"
	"github.com/abhisek/sahaay/internal/lesson"
	"github.com/abhisek/sahaay/internal/matchgame"
	"github.com/abhisek/sahaay/internal/quiz"
	"github.com/abhisek/sahaay/internal/store"
)

// RecentLimit is how many journal rows a snapshot carries.
const RecentLimit = 8

// LessonsForAchievement is the lesson count behind the "5 Lessons" badge.
const LessonsForAchievement = 5

// LessonProgress is the position in one lesson set.
type LessonProgress struct {
	SetID   string
	Title   string
	Visited int // index + 1
	Total   int
	Percent int
}

// QuizProgress summarises the quiz runner.
type QuizProgress struct {
	Tracked  bool
	Phase    quiz.Phase
	Total    int
	Best     int
	HasBest  bool
	Percent  int // best score as a percentage
	Attempts int // completed runs this session
}

// GameScore is the cumulative score of one match game.
type GameScore struct {
	Name  string
	Score int
}

// EmotionShare is one emotion label's share of all readings.
type EmotionShare struct {
	Label   string
	Count   int
	Percent int
}

// Achievement is a badge earned during the session.
type Achievement struct {
	ID     string
	Title  string
	Glyph  string
	Earned bool
}

// Snapshot is everything a progress view renders.
type Snapshot struct {
	Lessons        []LessonProgress
	DailyProgress  int
	Quiz           QuizProgress
	Games          []GameScore
	SpeechScore    int
	AttentionScore int
	FocusRuns      int
	Emotions       []EmotionShare
	ActivityTime   time.Duration
	Achievements   []Achievement
	Recent         []store.Activity
}

type trackedLesson struct {
	set    lesson.Set
	walker *lesson.Walker
}

type trackedGame struct {
	name  string
	score func() int
}

// Aggregator reads the engines registered with it. It never mutates them.
type Aggregator struct {
	module  string
	events  store.EventRepo
	now     func() time.Time
	started time.Time

	lessons []trackedLesson
	quiz    *quiz.Runner
	games   []trackedGame
	focus   *focus.Task
}

// New creates an Aggregator for the given journal module. events may be nil,
// in which case journal-derived figures stay zero. A nil now uses time.Now.
func New(module string, events store.EventRepo, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{module: module, events: events, now: now, started: now()}
}

// TrackLesson registers a lesson walker over set.
func (a *Aggregator) TrackLesson(set lesson.Set, w *lesson.Walker) {
	a.lessons = append(a.lessons, trackedLesson{set: set, walker: w})
}

// TrackQuiz registers the quiz runner.
func (a *Aggregator) TrackQuiz(r *quiz.Runner) {
	a.quiz = r
}

// TrackGame registers a score reader under name.
func (a *Aggregator) TrackGame(name string, score func() int) {
	a.games = append(a.games, trackedGame{name: name, score: score})
}

// TrackFocus registers the focus task.
func (a *Aggregator) TrackFocus(t *focus.Task) {
	a.focus = t
}

// ScoreOf adapts a match game to TrackGame.
func ScoreOf[T comparable](g *matchgame.Game[T]) func() int {
	return func() int { return g.State().Score }
}

// Snapshot builds the current view.
func (a *Aggregator) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	total := 0
	for _, l := range a.lessons {
		c := l.walker.Cursor()
		p := LessonProgress{
			SetID:   l.set.ID,
			Title:   l.set.Title,
			Visited: c.Index + 1,
			Total:   c.Total,
			Percent: l.walker.ProgressPercent(),
		}
		total += p.Percent
		snap.Lessons = append(snap.Lessons, p)
	}
	if len(snap.Lessons) > 0 {
		snap.DailyProgress = int(math.Round(float64(total) / float64(len(snap.Lessons))))
	}

	if a.quiz != nil {
		st := a.quiz.State()
		q := QuizProgress{Tracked: true, Phase: st.Phase, Total: st.QuestionCount}
		q.Best, q.HasBest = a.quiz.Best()
		if q.HasBest {
			q.Percent = quiz.Percent(q.Best, q.Total)
		}
		snap.Quiz = q
	}

	for _, g := range a.games {
		snap.Games = append(snap.Games, GameScore{Name: g.name, Score: g.score()})
	}

	if a.focus != nil {
		snap.AttentionScore = a.focus.State().AttentionScore
	}

	snap.ActivityTime = a.now().Sub(a.started)

	if a.events != nil {
		if err := a.fromJournal(ctx, &snap); err != nil {
			return Snapshot{}, err
		}
	}

	snap.Achievements = achievements(snap)
	return snap, nil
}

func (a *Aggregator) fromJournal(ctx context.Context, snap *Snapshot) error {
	speech, err := a.events.CountByAction(ctx, store.ModuleSpeech)
	if err != nil {
		return fmt.Errorf("count speech: %w", err)
	}
	snap.SpeechScore = speech[store.ActionSpeak]

	actions, err := a.events.CountByAction(ctx, a.module)
	if err != nil {
		return fmt.Errorf("count %s: %w", a.module, err)
	}
	snap.Quiz.Attempts = actions[store.ActionQuizComplete]
	snap.FocusRuns = actions[store.ActionFocusComplete]

	labels, err := a.events.DetailCounts(ctx, a.module, store.ActionEmotion)
	if err != nil {
		return fmt.Errorf("count emotions: %w", err)
	}
	snap.Emotions = Shares(labels)

	recent, err := a.events.Recent(ctx, store.QueryOpts{Module: a.module, Limit: RecentLimit})
	if err != nil {
		return fmt.Errorf("recent activity: %w", err)
	}
	snap.Recent = recent
	return nil
}

// Shares converts label counts into percentages, largest first. Ties are
// ordered by label.
func Shares(counts map[string]int) []EmotionShare {
	sum := 0
	for _, n := range counts {
		sum += n
	}
	if sum == 0 {
		return nil
	}
	out := make([]EmotionShare, 0, len(counts))
	for label, n := range counts {
		out = append(out, EmotionShare{
			Label:   label,
			Count:   n,
			Percent: int(math.Round(100 * float64(n) / float64(sum))),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func achievements(s Snapshot) []Achievement {
	visited := 0
	for _, l := range s.Lessons {
		visited += l.Visited
	}
	perfect := s.Quiz.HasBest && s.Quiz.Total > 0 && s.Quiz.Best == s.Quiz.Total
	learner := len(s.Lessons) > 0
	for _, l := range s.Lessons {
		if l.Percent < 100 {
			learner = false
		}
	}
	return []Achievement{
		{ID: "first-quiz", Title: "First Quiz", Glyph: "🏆", Earned: s.Quiz.HasBest},
		{ID: "five-lessons", Title: "5 Lessons", Glyph: "⭐", Earned: visited >= LessonsForAchievement},
		{ID: "perfect-score", Title: "Perfect Score", Glyph: "🎯", Earned: perfect},
		{ID: "learner", Title: "Learner", Glyph: "📚", Earned: learner},
	}
}
