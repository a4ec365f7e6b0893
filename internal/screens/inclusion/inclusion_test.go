package inclusion

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sahaay/internal/config"
	"github.com/abhisek/sahaay/internal/content"
	"github.com/abhisek/sahaay/internal/quiz"
	"github.com/abhisek/sahaay/internal/router"
	"github.com/abhisek/sahaay/internal/screens"
	"github.com/abhisek/sahaay/internal/screens/summary"
	"github.com/abhisek/sahaay/internal/speech"
	"github.com/abhisek/sahaay/internal/store"
)

func newTestScreen(t *testing.T) (*InclusionScreen, *screens.Deps, *speech.Recorder) {
	t.Helper()
	cat, err := content.Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	rec := &speech.Recorder{}
	deps := &screens.Deps{
		Catalog: cat,
		Config:  config.Default(),
		Events:  st.EventRepo(),
		Speaker: rec,
	}
	s, err := New(deps)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, deps, rec
}

func press(s *InclusionScreen, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyPressMsg
		switch k {
		case "enter":
			msg = tea.KeyPressMsg{Code: tea.KeyEnter}
		case "tab":
			msg = tea.KeyPressMsg{Code: tea.KeyTab}
		case "right":
			msg = tea.KeyPressMsg{Code: tea.KeyRight}
		case "left":
			msg = tea.KeyPressMsg{Code: tea.KeyLeft}
		case "down":
			msg = tea.KeyPressMsg{Code: tea.KeyDown}
		default:
			msg = tea.KeyPressMsg{Code: []rune(k)[0], Text: k}
		}
		_, cmd = s.Update(msg)
	}
	return cmd
}

func TestInclusion_Title(t *testing.T) {
	s, _, _ := newTestScreen(t)
	if s.Title() != "Inclusion Learning" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestInclusion_SignNavigationClamps(t *testing.T) {
	s, _, _ := newTestScreen(t)

	press(s, "left")
	if got := s.sign.walker.Cursor().Index; got != 0 {
		t.Errorf("prev at first lesson should clamp, got %d", got)
	}
	press(s, "right", "right", "right", "right", "right", "right")
	if got := s.sign.walker.Cursor().Index; got != 4 {
		t.Errorf("next should clamp at last lesson, got %d", got)
	}
	if !strings.Contains(s.View(100, 40), "Lesson 5 of 5") {
		t.Error("expected lesson counter in view")
	}
}

func TestInclusion_JumpOutOfRangeShowsHint(t *testing.T) {
	s, _, _ := newTestScreen(t)
	press(s, "3")
	if got := s.sign.walker.Cursor().Index; got != 2 {
		t.Errorf("jump to 3 should select index 2, got %d", got)
	}
	press(s, "9")
	if got := s.sign.walker.Cursor().Index; got != 2 {
		t.Errorf("failed jump must not move cursor, got %d", got)
	}
	if !strings.Contains(s.View(100, 40), "Only 5 lessons") {
		t.Error("expected out-of-range hint")
	}
}

func TestInclusion_WalkersAreIndependent(t *testing.T) {
	s, _, _ := newTestScreen(t)
	press(s, "right", "right")
	press(s, "tab") // braille
	press(s, "right")

	if s.sign.walker.Cursor().Index != 2 || s.braille.walker.Cursor().Index != 1 {
		t.Errorf("sign=%d braille=%d, want 2 and 1",
			s.sign.walker.Cursor().Index, s.braille.walker.Cursor().Index)
	}
}

func TestInclusion_SpeakCurrentItem(t *testing.T) {
	s, _, rec := newTestScreen(t)
	press(s, "s")
	u, ok := rec.Last()
	if !ok {
		t.Fatal("expected an utterance")
	}
	if !strings.HasPrefix(u.Text, "A.") || u.Locale != "en-US" {
		t.Errorf("unexpected utterance %+v", u)
	}
}

func TestInclusion_QuizFlow(t *testing.T) {
	s, deps, _ := newTestScreen(t)
	s.SelectTab(TabQuiz)

	press(s, "enter") // start
	if s.quiz.runner.State().Phase != quiz.PhaseInProgress {
		t.Fatal("expected quiz in progress")
	}

	var last tea.Cmd
	for i, q := range deps.Catalog.Quiz {
		// answer via digit shortcut
		press(s, string(rune('1'+q.Correct)))
		if !s.quiz.runner.State().Answered {
			t.Fatalf("question %d not answered", i)
		}
		last = press(s, "enter")
	}

	st := s.quiz.runner.State()
	if st.Phase != quiz.PhaseCompleted || st.Score != len(deps.Catalog.Quiz) {
		t.Fatalf("expected perfect completed quiz, got %+v", st)
	}
	if last == nil {
		t.Fatal("expected summary push on completion")
	}
	push, ok := last().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", last())
	}
	if _, ok := push.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", push.Screen)
	}

	counts, err := deps.Events.CountByAction(context.Background(), store.ModuleInclusion)
	if err != nil {
		t.Fatal(err)
	}
	if counts[store.ActionQuizAnswer] != len(deps.Catalog.Quiz) || counts[store.ActionQuizComplete] != 1 {
		t.Errorf("unexpected journal counts %v", counts)
	}
	if !strings.Contains(s.Status(), "Best 5/5") {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestInclusion_QuizEnterBeforeAnswerDoesNotAdvance(t *testing.T) {
	s, _, _ := newTestScreen(t)
	s.SelectTab(TabQuiz)
	press(s, "enter") // start
	press(s, "down")  // move cursor
	press(s, "enter") // answer option 1
	press(s, "enter") // advance
	if got := s.quiz.runner.State().QuestionIndex; got != 1 {
		t.Errorf("expected question 2, got index %d", got)
	}
	if s.quiz.runner.State().Score != 0 {
		t.Error("wrong answer must not score")
	}
}

func TestInclusion_ProgressTab(t *testing.T) {
	s, _, _ := newTestScreen(t)
	press(s, "right", "right") // 3 of 5
	s.SelectTab(TabProgress)

	view := s.View(100, 40)
	if !strings.Contains(view, "My Learning Progress") {
		t.Error("expected progress heading")
	}
	if !strings.Contains(view, "3 of 5 lessons viewed") {
		t.Error("expected sign language progress")
	}
	if !strings.Contains(view, "No quiz completed yet") {
		t.Error("expected empty quiz state")
	}
}

func TestInclusion_KeyHintsFollowTab(t *testing.T) {
	s, _, _ := newTestScreen(t)
	if !hasHint(s, "Speak") {
		t.Error("lesson tab should offer Speak")
	}
	s.SelectTab(TabQuiz)
	if !hasHint(s, "Start quiz") {
		t.Error("quiz tab should offer Start quiz")
	}
}

func hasHint(s *InclusionScreen, desc string) bool {
	for _, h := range s.KeyHints() {
		if h.Description == desc {
			return true
		}
	}
	return false
}
