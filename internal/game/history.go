package game

// Round captures one finished round.
type Round struct {
	Secret  int
	Guesses int
}

// History stores finished rounds in memory for quick inspection. The game is
// single-threaded, so no locking is needed.
type History struct {
	rounds []Round
}

// NewHistory creates an empty history optionally pre-sizing storage.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{rounds: make([]Round, 0, capacity)}
}

// Record appends a finished round.
func (h *History) Record(r Round) {
	h.rounds = append(h.rounds, r)
}

// Snapshot returns a copy of the recorded rounds.
func (h *History) Snapshot() []Round {
	out := make([]Round, len(h.rounds))
	copy(out, h.rounds)
	return out
}

// Reset clears all recorded rounds.
func (h *History) Reset() {
	h.rounds = h.rounds[:0]
}
