// internal/game/engine.go
//
// Core game engine for a single guessing session.
// Responsibilities:
//   - Validate raw input lines into guesses within [Min, Max].
//   - Compare guesses against the secret (three-way Hint).
//   - Drive one session over a LineSource/Sink until solved or input ends.
//
// Notes:
//   - The secret is always passed in. Randomness lives in RandomSecret and is
//     only called by the entry point.
//   - Every write is checked; the first failing read or write ends the session.
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

// ParseGuess converts one raw line into a guess.
// The line is trimmed and must be a base-10 unsigned integer within
// [Min, Max], optionally preceded by a single '+'. Anything else (empty,
// negative, fractional, exponent, overflow) reports ok=false.
func ParseGuess(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if len(s) > 1 && s[0] == '+' && isDigit(s[1]) {
		s = s[1:]
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	if n < Min || n > Max {
		return 0, false
	}
	return int(n), true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Compare reports how guess relates to secret.
func Compare(guess, secret int) Hint {
	switch {
	case guess < secret:
		return HintTooLow
	case guess > secret:
		return HintTooHigh
	default:
		return HintCorrect
	}
}

// RandomSecret draws a secret uniformly from [Min, Max].
func RandomSecret() int {
	return Min + rand.Intn(Max-Min+1)
}

// NewSecret validates an externally supplied secret.
func NewSecret(n int) (int, error) {
	if n < Min || n > Max {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrSecretOutOfRange, n, Min, Max)
	}
	return n, nil
}

// Run plays one session against in/out.
//
// It returns OutcomeSolved after a correct guess and OutcomeAbandoned when in
// reports io.EOF. A read error other than io.EOF is returned wrapped in ErrInput;
// a write error is returned wrapped in ErrOutput. Nothing is written after a
// failure. A secret outside [Min, Max] is refused with ErrSecretOutOfRange
// before anything is read or written.
func Run(secret int, in LineSource, out Sink) (Outcome, error) {
	if _, err := NewSecret(secret); err != nil {
		return 0, err
	}

	s := session{secret: secret, out: out}
	if err := s.write(MsgStart); err != nil {
		return 0, err
	}
	if err := s.write(MsgPrompt); err != nil {
		return 0, err
	}

	for {
		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			return OutcomeAbandoned, nil
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInput, err)
		}

		solved, err := s.guess(line)
		if err != nil {
			return 0, err
		}
		if solved {
			return OutcomeSolved, nil
		}
	}
}

// session holds the per-run state of Run.
type session struct {
	secret int
	out    Sink
}

// guess handles one input line and reports whether it matched the secret.
func (s *session) guess(line string) (bool, error) {
	n, ok := ParseGuess(line)
	if !ok {
		return false, s.write(MsgInvalidInput)
	}
	if err := s.write(ackMessage(n)); err != nil {
		return false, err
	}
	hint := Compare(n, s.secret)
	if err := s.write(hint.Message()); err != nil {
		return false, err
	}
	return hint == HintCorrect, nil
}

func (s *session) write(line string) error {
	if err := s.out.WriteLine(line); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}
