// internal/lineio/memory.go
//
// In-memory bindings for game.LineSource and game.Sink.
// Characteristics:
//   - Lines replays a fixed slice, then io.EOF (or an injected error).
//   - Recorder keeps every written line and can fail on a chosen write.
//   - Not safe for concurrent use; a session owns its source and sink.

package lineio

import (
	"errors"
	"io"
)

// ErrInjected is the default failure returned by Lines and Recorder.
var ErrInjected = errors.New("injected failure")

// Lines is a LineSource over a slice.
type Lines struct {
	lines []string
	next  int

	// Err, if set, is returned instead of io.EOF once the lines run out.
	Err error
}

func NewLines(lines ...string) *Lines {
	return &Lines{lines: lines}
}

func (l *Lines) ReadLine() (string, error) {
	if l.next < len(l.lines) {
		s := l.lines[l.next]
		l.next++
		return s, nil
	}
	if l.Err != nil {
		return "", l.Err
	}
	return "", io.EOF
}

// Remaining reports how many lines have not been read yet.
func (l *Lines) Remaining() int { return len(l.lines) - l.next }

// Recorder is a Sink that records lines.
type Recorder struct {
	Lines []string

	// FailOn, if > 0, makes the FailOn-th write (1-based) and every later
	// write fail without recording anything.
	FailOn int
	// Err is the failure returned; ErrInjected when nil.
	Err error

	writes int
}

func (r *Recorder) WriteLine(line string) error {
	r.writes++
	if r.FailOn > 0 && r.writes >= r.FailOn {
		if r.Err != nil {
			return r.Err
		}
		return ErrInjected
	}
	r.Lines = append(r.Lines, line)
	return nil
}

// Writes reports how many writes were attempted, including failed ones.
func (r *Recorder) Writes() int { return r.writes }
