package assistive

import "github.com/abhisek/sahaay/internal/recognition"

// transcriptMsg carries a finished (or cancelled) speech-to-text request.
type transcriptMsg struct {
	run    uint64
	result recognition.Result
	err    error
}

// emergencySentMsg confirms an emergency message after the send delay.
type emergencySentMsg struct {
	run uint64
	id  string
}
