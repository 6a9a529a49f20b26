// Package game implements the interactive number-guessing loop.
package game

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"trendquest/internal/metrics"
)

// Bounds is the inclusive range the secret is drawn from.
type Bounds struct {
	Min int
	Max int
}

// normalize falls back to 1..100 when the range is unset or inverted.
func (b Bounds) normalize() Bounds {
	if b.Max < b.Min || (b.Min == 0 && b.Max == 0) {
		return Bounds{Min: 1, Max: 100}
	}
	return b
}

// Game runs guessing rounds over injected IO so tests can script a session.
type Game struct {
	in      *bufio.Reader
	out     io.Writer
	log     zerolog.Logger
	rng     *rand.Rand
	bounds  Bounds
	history *History
}

// New wires a game over the given reader and writer. A nil rng falls back to
// a time-seeded source.
func New(in io.Reader, out io.Writer, log zerolog.Logger, rng *rand.Rand, bounds Bounds) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{
		in:      bufio.NewReader(in),
		out:     out,
		log:     log,
		rng:     rng,
		bounds:  bounds.normalize(),
		history: NewHistory(0),
	}
}

// History exposes the finished rounds recorded so far.
func (g *Game) History() *History { return g.history }

// Play loops rounds until the player declines to continue or input runs dry.
func (g *Game) Play() {
	for {
		if !g.playRound() {
			return
		}
		metrics.RoundsTotal.Inc()

		fmt.Fprint(g.out, "Would you like to play again? (yes/no) ")
		line, err := g.in.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(line)) != "yes" {
			fmt.Fprintln(g.out, "Thanks for playing!")
			return
		}
		if err != nil {
			return
		}
	}
}

// playRound draws a secret and consumes guesses until one matches. It reports
// false when input is exhausted mid-round.
func (g *Game) playRound() bool {
	span := g.bounds.Max - g.bounds.Min + 1
	secret := g.bounds.Min + g.rng.Intn(span)
	g.log.Debug().Int("secret", secret).Msg("round started")

	fmt.Fprintln(g.out, "I'm thinking of a number! Try to guess the number I'm thinking of:")
	guesses := 0
	for {
		fmt.Fprint(g.out, "Your guess: ")
		line, err := g.in.ReadString('\n')
		if line == "" && err != nil {
			return false
		}

		guess, ok := parseGuess(line)
		if !ok {
			metrics.GuessesTotal.WithLabelValues("invalid").Inc()
			fmt.Fprintln(g.out, "Please enter a valid number.")
			if err != nil {
				return false
			}
			continue
		}

		guesses++
		switch {
		case guess < secret:
			metrics.GuessesTotal.WithLabelValues("low").Inc()
			fmt.Fprintln(g.out, "Too low! Guess again:")
		case guess > secret:
			metrics.GuessesTotal.WithLabelValues("high").Inc()
			fmt.Fprintln(g.out, "Too high! Guess again:")
		default:
			metrics.GuessesTotal.WithLabelValues("correct").Inc()
			fmt.Fprintln(g.out, "That's it!")
			g.history.Record(Round{Secret: secret, Guesses: guesses})
			g.log.Debug().Int("secret", secret).Int("guesses", guesses).Msg("round won")
			return true
		}
		if err != nil {
			return false
		}
	}
}

// parseGuess accepts only unsigned decimal digits after trimming, mirroring
// the re-prompt-on-anything-else input policy.
func parseGuess(line string) (int, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	return n, true
}
