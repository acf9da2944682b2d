package runner

import (
	"bufio"
	"io"
	"strings"
)

// LineSource yields one line of input per call and io.EOF when exhausted.
type LineSource interface {
	ReadLine() (string, error)
}

// LineSink displays one outcome per call.
type LineSink interface {
	WriteLine(text string) error
}

type scannerSource struct {
	scanner *bufio.Scanner
}

func NewLineSource(r io.Reader) LineSource {
	return &scannerSource{scanner: bufio.NewScanner(r)}
}

func (s *scannerSource) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return strings.TrimSuffix(s.scanner.Text(), "\r"), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

type writerSink struct {
	w io.Writer
}

func NewLineSink(w io.Writer) LineSink {
	return &writerSink{w: w}
}

func (s *writerSink) WriteLine(text string) error {
	_, err := io.WriteString(s.w, text+"\n")
	return err
}
