// internal/lineio/stream.go
//
// Stream-backed bindings for game.LineSource and game.Sink.
// Used by the entry point for stdin/stdout; any io.Reader/io.Writer works.

package lineio

import (
	"bufio"
	"errors"
	"io"
)

// Reader reads newline-terminated lines from an io.Reader.
type Reader struct {
	br *bufio.Reader
}

// NewReader wraps r. A final line without a trailing newline is still
// returned before io.EOF.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ReadLine returns the next line including its terminator.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// Writer writes each line followed by '\n' to an io.Writer.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteLine issues a single Write per line so a failing writer never sees a
// line split across calls.
func (w *Writer) WriteLine(line string) error {
	_, err := io.WriteString(w.w, line+"\n")
	return err
}
