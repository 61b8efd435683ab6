// internal/game/types.go
//
// Core type definitions for the guessing game.
// Defines:
//   - Min/Max: the closed range every secret and accepted guess lies in.
//   - Hint: result of comparing a guess to the secret (too low/too high/correct).
//   - Outcome: terminal state of one session (solved/abandoned).
//   - LineSource/Sink: the line-oriented input and output a session runs against.
//   - Error kinds propagated out of Run.

package game

import "errors"

const (
	Min = 1
	Max = 100
)

// Hint represents the three-way comparison of a guess against the secret.
type Hint int

const (
	HintTooLow Hint = iota
	HintTooHigh
	HintCorrect
)

// String reports a short name for logs.
func (h Hint) String() string {
	switch h {
	case HintTooLow:
		return "too_low"
	case HintTooHigh:
		return "too_high"
	case HintCorrect:
		return "correct"
	}
	return "unknown"
}

// Message returns the fixed line shown to the player for h.
func (h Hint) Message() string {
	switch h {
	case HintTooLow:
		return MsgTooLow
	case HintTooHigh:
		return MsgTooHigh
	case HintCorrect:
		return MsgCorrect
	}
	return ""
}

// Outcome is how a session ended.
//   - OutcomeSolved:    a correct guess was made.
//   - OutcomeAbandoned: input ended before a match.
type Outcome int

const (
	OutcomeSolved Outcome = iota + 1
	OutcomeAbandoned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeAbandoned:
		return "abandoned"
	}
	return "unknown"
}

// LineSource yields successive lines of input.
// ReadLine returns io.EOF once the stream is cleanly exhausted; any other error
// is an input fault.
type LineSource interface {
	ReadLine() (string, error)
}

// Sink accepts whole lines of output.
type Sink interface {
	WriteLine(line string) error
}

var (
	// ErrInput wraps a read failure other than clean end-of-stream.
	ErrInput = errors.New("input fault")
	// ErrOutput wraps a failed write to the sink.
	ErrOutput = errors.New("output fault")
	// ErrSecretOutOfRange is returned for secrets outside [Min, Max].
	ErrSecretOutOfRange = errors.New("secret out of range")
)
