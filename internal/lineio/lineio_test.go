package lineio

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderLines(t *testing.T) {
	r := NewReader(strings.NewReader("25\n50\r\nlast"))

	for _, want := range []string{"25\n", "50\r\n", "last"} {
		got, err := r.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderEmpty(t *testing.T) {
	_, err := NewReader(strings.NewReader("")).ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestReaderFault(t *testing.T) {
	boom := errors.New("simulated read error")
	_, err := NewReader(failingReader{boom}).ReadLine()
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteLine("hello"))
	require.NoError(t, w.WriteLine(""))
	assert.Equal(t, "hello\n\n", buf.String())
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriterFault(t *testing.T) {
	boom := errors.New("simulated write error")
	assert.ErrorIs(t, NewWriter(failingWriter{boom}).WriteLine("x"), boom)
}

func TestLines(t *testing.T) {
	l := NewLines("a", "b")
	assert.Equal(t, 2, l.Remaining())

	s, err := l.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a", s)
	s, err = l.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "b", s)

	_, err = l.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
	assert.Zero(t, l.Remaining())
}

func TestLinesInjectedError(t *testing.T) {
	l := NewLines("a")
	l.Err = ErrInjected

	_, err := l.ReadLine()
	require.NoError(t, err)
	_, err = l.ReadLine()
	assert.ErrorIs(t, err, ErrInjected)
}

func TestRecorderFailOn(t *testing.T) {
	r := &Recorder{FailOn: 2}
	require.NoError(t, r.WriteLine("one"))
	assert.ErrorIs(t, r.WriteLine("two"), ErrInjected)
	assert.ErrorIs(t, r.WriteLine("three"), ErrInjected)

	assert.Equal(t, []string{"one"}, r.Lines)
	assert.Equal(t, 3, r.Writes())
}

func TestRecorderCustomError(t *testing.T) {
	boom := errors.New("disk full")
	r := &Recorder{FailOn: 1, Err: boom}
	assert.ErrorIs(t, r.WriteLine("x"), boom)
	assert.Empty(t, r.Lines)
}
