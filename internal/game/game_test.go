package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// fixedGame builds a game whose secret is pinned by a single-value range.
func fixedGame(secret int, input string) (*Game, *bytes.Buffer) {
	out := &bytes.Buffer{}
	g := New(strings.NewReader(input), out, zerolog.Nop(), nil, Bounds{Min: secret, Max: secret})
	return g, out
}

func TestPlaySingleRound(t *testing.T) {
	g, out := fixedGame(7, "abc\n\n3\n99\n7\nno\n")
	g.Play()

	transcript := out.String()
	if got := strings.Count(transcript, "Please enter a valid number."); got != 2 {
		t.Fatalf("expected 2 invalid-input prompts, got %d\n%s", got, transcript)
	}
	if !strings.Contains(transcript, "Too low! Guess again:") {
		t.Fatalf("missing low feedback:\n%s", transcript)
	}
	if !strings.Contains(transcript, "Too high! Guess again:") {
		t.Fatalf("missing high feedback:\n%s", transcript)
	}
	if got := strings.Count(transcript, "That's it!"); got != 1 {
		t.Fatalf("expected exactly one win line, got %d\n%s", got, transcript)
	}
	if !strings.Contains(transcript, "Thanks for playing!") {
		t.Fatalf("missing farewell:\n%s", transcript)
	}
}

func TestPlayAgainIsCaseInsensitive(t *testing.T) {
	g, out := fixedGame(42, "42\nYES\n42\nNo\n")
	g.Play()

	transcript := out.String()
	if got := strings.Count(transcript, "That's it!"); got != 2 {
		t.Fatalf("expected two winning rounds, got %d\n%s", got, transcript)
	}
	if got := len(g.History().Snapshot()); got != 2 {
		t.Fatalf("expected 2 recorded rounds, got %d", got)
	}
}

func TestPlayEndsOnAnyOtherAnswer(t *testing.T) {
	for _, answer := range []string{"no", "", "maybe"} {
		g, out := fixedGame(5, "5\n"+answer+"\n")
		g.Play()
		if !strings.Contains(out.String(), "Thanks for playing!") {
			t.Fatalf("answer %q should end the session\n%s", answer, out.String())
		}
	}
}

func TestPlayTerminatesWhenInputRunsDry(t *testing.T) {
	// EOF mid-round must not spin on the invalid-input re-prompt.
	g, out := fixedGame(9, "nope")
	g.Play()

	if got := strings.Count(out.String(), "Please enter a valid number."); got != 1 {
		t.Fatalf("expected a single invalid prompt before EOF, got %d", got)
	}
	if len(g.History().Snapshot()) != 0 {
		t.Fatalf("unfinished round must not be recorded")
	}
}

func TestHistoryRecordsGuessCounts(t *testing.T) {
	g, _ := fixedGame(10, "1\n20\n10\nno\n")
	g.Play()

	rounds := g.History().Snapshot()
	if len(rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(rounds))
	}
	if rounds[0].Secret != 10 || rounds[0].Guesses != 3 {
		t.Fatalf("unexpected round record: %+v", rounds[0])
	}
}

func TestBoundsNormalize(t *testing.T) {
	cases := []struct {
		in   Bounds
		want Bounds
	}{
		{Bounds{}, Bounds{Min: 1, Max: 100}},
		{Bounds{Min: 10, Max: 5}, Bounds{Min: 1, Max: 100}},
		{Bounds{Min: 3, Max: 3}, Bounds{Min: 3, Max: 3}},
		{Bounds{Min: 1, Max: 50}, Bounds{Min: 1, Max: 50}},
	}
	for _, tc := range cases {
		if got := tc.in.normalize(); got != tc.want {
			t.Fatalf("normalize(%+v) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseGuess(t *testing.T) {
	cases := []struct {
		line string
		want int
		ok   bool
	}{
		{"42\n", 42, true},
		{"  7  \n", 7, true},
		{"007\n", 7, true},
		{"\n", 0, false},
		{"-5\n", 0, false},
		{"+5\n", 0, false},
		{"4.2\n", 0, false},
		{"abc\n", 0, false},
		{"12a\n", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseGuess(tc.line)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseGuess(%q) = (%d,%v), want (%d,%v)", tc.line, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(2)
	h.Record(Round{Secret: 1, Guesses: 1})
	h.Record(Round{Secret: 2, Guesses: 4})
	if len(h.Snapshot()) != 2 {
		t.Fatalf("expected 2 rounds before reset")
	}
	h.Reset()
	if len(h.Snapshot()) != 0 {
		t.Fatalf("expected empty history after reset")
	}
}
