package audio

// Nop drops every cue. Used for headless runs and tests.
type Nop struct{}

func (Nop) Play(Cue) {}
