package scan

import "bytes"

// Scanner splits a byte buffer into newline-delimited records while
// tracking a 1-based record number for diagnostics. A final record
// without a trailing newline is still returned.
type Scanner struct {
	data []byte
	off  int
	line int
}

func New(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Next returns the next record without its trailing '\n'.
// ok is false once the buffer is exhausted.
func (s *Scanner) Next() (text string, ok bool) {
	if s.off >= len(s.data) {
		return "", false
	}
	s.line++
	rest := s.data[s.off:]
	i := bytes.IndexByte(rest, '\n')
	if i < 0 {
		s.off = len(s.data)
		return string(rest), true
	}
	s.off += i + 1
	return string(rest[:i]), true
}

// Line is the 1-based number of the record last returned by Next.
func (s *Scanner) Line() int {
	return s.line
}
