// Package advisor implements the public-safe console teaser around the trend
// comparator: a consent gate, a hint reveal, and a canned demo.
package advisor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"trendquest/internal/metrics"
	"trendquest/internal/policy"
	"trendquest/internal/signal"
)

// Synthetic demo drifts: internal capability proxy vs environmental
// pressure/opportunity proxy.
var (
	demoSelf = signal.NewWindow(0.0, 0.1, 0.18, 0.25, 0.29)
	demoEnv  = signal.NewWindow(0.0, 0.12, 0.22, 0.31, 0.41)
)

// accepted lists the exact post-normalization answers that open the gate.
var accepted = map[string]bool{
	"y":         true,
	"yes":       true,
	"i promise": true,
	"promise":   true,
}

// Advisor drives the consent gate, hint, and demo over injected IO.
type Advisor struct {
	in         *bufio.Reader
	out        io.Writer
	log        zerolog.Logger
	thresholds policy.Thresholds
}

// New wires an advisor over the given reader and writer.
func New(in io.Reader, out io.Writer, log zerolog.Logger, thresholds policy.Thresholds) *Advisor {
	return &Advisor{
		in:         bufio.NewReader(in),
		out:        out,
		log:        log,
		thresholds: thresholds,
	}
}

// ConsentGate prints the promise prompt and reads one line. Any answer that
// does not normalize to an accepted one prints the refusal and returns false.
func (a *Advisor) ConsentGate() bool {
	fmt.Fprintln(a.out, "Are you sure you want to peek behind the curtain?")
	fmt.Fprintln(a.out, "Promise you'll keep it to yourself or use it for the benefit")
	fmt.Fprintln(a.out, "of your community, your nation, or the planet? (yes/no)")
	fmt.Fprint(a.out, "> ")

	line, _ := a.in.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	if accepted[answer] {
		a.log.Debug().Str("answer", answer).Msg("consent granted")
		return true
	}
	fmt.Fprintln(a.out, "Fair enough. Curiosity is a virtue; responsibility is too.")
	return false
}

// RevealHint prints the safe-to-share teaser shown only after consent.
func (a *Advisor) RevealHint() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Hint (safe-to-share):")
	fmt.Fprintln(a.out, "  The interesting part isn't the comparator; it's learning")
	fmt.Fprintln(a.out, "  what to compare. Imagine a small marketplace of candidate")
	fmt.Fprintln(a.out, "  signals competing for credit under a tight evaluation budget,")
	fmt.Fprintln(a.out, "  with transfer triggers when a candidate generalizes across tasks.")
	fmt.Fprintln(a.out, "  Everything else is redacted.")
}

// Demo classifies the fixed synthetic windows and prints the trends, the
// decision, and its rationale.
func (a *Advisor) Demo() {
	selfTrend := demoSelf.Trend()
	envTrend := demoEnv.Trend()
	act := policy.Classify(demoSelf, demoEnv, a.thresholds)

	metrics.DecisionsTotal.WithLabelValues(string(act)).Inc()
	a.log.Debug().
		Float64("trend_self", selfTrend).
		Float64("trend_env", envTrend).
		Str("action", string(act)).
		Msg("demo decision")

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "[TEASER OUTPUT]")
	fmt.Fprintf(a.out, "  trend(Q_self) = %+.3f\n", selfTrend)
	fmt.Fprintf(a.out, "  trend(Q_env)  = %+.3f\n", envTrend)
	fmt.Fprintf(a.out, "  decision      -> %s\n", act)
	fmt.Fprintf(a.out, "  rationale     -> %s\n", policy.Rationale(act))
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Note:")
	fmt.Fprintln(a.out, "  This is a public teaser. The actual signal discovery and")
	fmt.Fprintln(a.out, "  governance stack is private.")
}
