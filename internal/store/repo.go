package store

import (
	"context"
	"time"
)

// Module names used in the journal.
const (
	ModuleInclusion = "inclusion"
	ModuleChild     = "child"
	ModuleAssistive = "assistive"
	ModuleSpeech    = "speech"
)

// Journal actions shared by the screens that write them and the dashboard
// that reads them back.
const (
	ActionLessonView    = "lesson_view"
	ActionSpeak         = "speak"
	ActionQuizStart     = "quiz_start"
	ActionQuizAnswer    = "quiz_answer"
	ActionQuizComplete  = "quiz_complete"
	ActionMatchStart    = "match_start"
	ActionMatchCorrect  = "match_correct"
	ActionMatchWrong    = "match_wrong"
	ActionFocusStart    = "focus_start"
	ActionFocusComplete = "focus_complete"
	ActionFocusCancel   = "focus_cancel"
	ActionEmotion       = "emotion"
	ActionTranslate     = "translate"
	ActionTranscript    = "transcript"
	ActionCaption       = "caption"
	ActionEmergency     = "emergency"
	ActionEmergencySent = "emergency_sent"
)

// QueryOpts configures journal queries with filtering and pagination.
type QueryOpts struct {
	Module string    // exact module match ("" = any)
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Activity is one journaled user transition.
type Activity struct {
	Sequence  int64
	SessionID string
	Module    string
	Action    string
	Detail    string
	Score     int
	Timestamp time.Time
}

// EventRepo provides append and query access to the activity journal.
type EventRepo interface {
	// Append records an activity. Sequence, SessionID and Timestamp are
	// filled in when zero.
	Append(ctx context.Context, a Activity) error

	// Recent returns activities newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]Activity, error)

	// CountByAction returns the number of activities per action for module.
	CountByAction(ctx context.Context, module string) (map[string]int, error)

	// DetailCounts returns how often each detail value was recorded for
	// module/action, e.g. emotion labels.
	DetailCounts(ctx context.Context, module, action string) (map[string]int, error)
}
