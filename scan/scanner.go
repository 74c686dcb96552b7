// Package scan splits an in-memory text buffer into whitespace-delimited tokens.
//
// A Scanner holds the buffer and a single cursor. Tokens are returned as
// substrings of the buffer, so no token text is copied; they stay valid for
// as long as the caller keeps them, independently of the Scanner.
//
// A Scanner is not safe for concurrent use.
package scan

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/arloliu/tokread/errs"
)

// Scanner walks a buffer token by token. The zero value scans an empty buffer.
type Scanner struct {
	buf string
	pos int
}

// New creates a Scanner positioned at the start of buf.
func New(buf string) *Scanner {
	return &Scanner{buf: buf}
}

// Next returns the next token and advances the cursor just past it.
//
// Next panics with an error wrapping errs.ErrInputExhausted when only
// whitespace remains. Callers that cannot know the input shape in advance
// use TryNext instead.
func (s *Scanner) Next() string {
	tok, ok := s.TryNext()
	if !ok {
		panic(fmt.Errorf("%w: no token after offset %d of %d", errs.ErrInputExhausted, s.pos, len(s.buf)))
	}

	return tok
}

// TryNext is like Next but reports exhaustion with ok == false instead of
// panicking. The cursor does not move when no token is found.
func (s *Scanner) TryNext() (tok string, ok bool) {
	start := skipSpace(s.buf, s.pos)
	if start == len(s.buf) {
		return "", false
	}

	end := skipToken(s.buf, start)
	s.pos = end

	return s.buf[start:end], true
}

// Done reports whether only whitespace remains after the cursor.
func (s *Scanner) Done() bool {
	return skipSpace(s.buf, s.pos) == len(s.buf)
}

// Pos returns the byte offset of the cursor.
func (s *Scanner) Pos() int {
	return s.pos
}

// Len returns the length of the buffer in bytes.
func (s *Scanner) Len() int {
	return len(s.buf)
}

// Remaining returns the unscanned tail of the buffer, including any leading whitespace.
func (s *Scanner) Remaining() string {
	return s.buf[s.pos:]
}

func skipSpace(buf string, i int) int {
	for i < len(buf) {
		c := buf[i]
		if c < utf8.RuneSelf {
			if !asciiSpace[c] {
				return i
			}
			i++

			continue
		}

		r, size := utf8.DecodeRuneInString(buf[i:])
		if !unicode.IsSpace(r) {
			return i
		}
		i += size
	}

	return i
}

func skipToken(buf string, i int) int {
	for i < len(buf) {
		c := buf[i]
		if c < utf8.RuneSelf {
			if asciiSpace[c] {
				return i
			}
			i++

			continue
		}

		r, size := utf8.DecodeRuneInString(buf[i:])
		if unicode.IsSpace(r) {
			return i
		}
		i += size
	}

	return i
}

var asciiSpace = [utf8.RuneSelf]bool{'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true}
