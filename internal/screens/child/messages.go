package child

// focusTickMsg drives the focus trainer. run identifies the task run that
// scheduled it; ticks from an older run are dropped.
type focusTickMsg struct {
	run uint64
}

// settleMsg starts the next match round once the settle delay has passed.
type settleMsg struct {
	game  string
	token uint64
}

// emotionTickMsg asks for the next simulated emotion reading.
type emotionTickMsg struct {
	run uint64
}
