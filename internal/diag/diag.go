package diag

import (
	"fmt"
	"io"
)

// Sink collects parse diagnostics for one input file and mirrors them to an
// output stream. Diagnostics never abort parsing by themselves; callers that
// need stricter behavior check Count after a parse step.
type Sink struct {
	file  string
	out   io.Writer
	count int
}

// NewSink returns a sink for the named file. out may be nil to only count.
func NewSink(file string, out io.Writer) *Sink {
	return &Sink{file: file, out: out}
}

// Reportf records a line-addressed diagnostic in "file:line:message" form.
func (s *Sink) Reportf(line int, format string, args ...any) {
	s.count++
	if s.out != nil {
		fmt.Fprintf(s.out, "%s:%d:%s\n", s.file, line, fmt.Sprintf(format, args...))
	}
}

// Notef records an informational note without a line number.
func (s *Sink) Notef(format string, args ...any) {
	s.count++
	if s.out != nil {
		fmt.Fprintf(s.out, "%s: %s\n", s.file, fmt.Sprintf(format, args...))
	}
}

// Count is the number of diagnostics and notes recorded so far.
func (s *Sink) Count() int {
	return s.count
}

// File is the input file name this sink reports for.
func (s *Sink) File() string {
	return s.file
}
