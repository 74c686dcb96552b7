// Package tokread reads typed values from whitespace-delimited text.
//
// A Reader wraps one in-memory buffer and hands out its tokens in order,
// converting each one into whatever type the caller asks for. It is built
// for batch input whose shape the caller already knows, such as the stdin
// of a competitive programming problem.
//
// # Basic Usage
//
//	r, err := tokread.FromStdin()
//	if err != nil {
//	    return err
//	}
//
//	tests := tokread.Read[int](r)
//	for range tests {
//	    var ncm [3]int
//	    tokread.ReadArray(r, ncm[:])
//	    levels := tokread.ReadSlice[int](r, ncm[2])
//	    fmt.Println(ncm, levels)
//	}
//
// Heterogeneous records are read as tuples:
//
//	t, ok := tokread.ReadTuple3[int32, string, bool](r)
//	if ok {
//	    id, name, active := t.Unpack()
//	    ...
//	}
//
// # Failure Model
//
// Two kinds of failure are fatal and panic with an error value:
//   - requesting a token when only whitespace remains (errs.ErrInputExhausted)
//   - Read of a token that does not parse as the requested type (errs.ErrParse)
//
// Both mean the program and its input disagree about the input shape. A
// caller that prefers an error can defer Recover at its boundary.
// ReadOption and the ReadTuple functions report parse failure with a false
// result instead. Failing to acquire the input at all (FromReader, FromStdin)
// is an ordinary returned error.
//
// # Custom Types
//
// Any type whose pointer implements parse.TokenUnmarshaler or
// encoding.TextUnmarshaler can be read directly; for one-off conversions
// pass a parse.Parser to ReadWith.
//
// # Package Structure
//
// The scan package does the tokenization, parse resolves parsers, source
// acquires and decompresses input, and symbol interns tokens into ids. This
// package ties them together.
package tokread

import (
	"io"
	"os"

	"github.com/arloliu/tokread/scan"
	"github.com/arloliu/tokread/source"
)

// Reader extracts typed values from a text buffer, left to right.
//
// The buffer is never modified. A Reader is not safe for concurrent use;
// callers sharing one across goroutines must synchronize access themselves.
type Reader struct {
	sc *scan.Scanner
}

// New creates a Reader over buf, positioned at its first byte.
func New(buf string) *Reader {
	return &Reader{sc: scan.New(buf)}
}

// NewBytes creates a Reader over a copy of buf, so later changes to buf do
// not affect tokens.
func NewBytes(buf []byte) *Reader {
	return New(string(buf))
}

// FromReader reads all of r and creates a Reader over it.
//
// Input may be compressed; see source.WithCompression. Acquisition failures
// are returned as errors wrapping errs.ErrSourceRead (or one of the other
// source errors) and never panic.
func FromReader(r io.Reader, opts ...source.Option) (*Reader, error) {
	text, err := source.Load(r, opts...)
	if err != nil {
		return nil, err
	}

	return New(text), nil
}

// FromStdin reads all of standard input and creates a Reader over it.
func FromStdin(opts ...source.Option) (*Reader, error) {
	return FromReader(os.Stdin, opts...)
}

// Token returns the next raw token. It panics with errs.ErrInputExhausted
// when no token is left.
func (r *Reader) Token() string {
	return r.sc.Next()
}

// TryToken returns the next raw token, or false when no token is left.
func (r *Reader) TryToken() (string, bool) {
	return r.sc.TryNext()
}

// Done reports whether all tokens have been consumed.
func (r *Reader) Done() bool {
	return r.sc.Done()
}

// Pos returns the byte offset of the cursor within the buffer.
func (r *Reader) Pos() int {
	return r.sc.Pos()
}

// Remaining returns the unread part of the buffer, including any leading
// whitespace. It is a view of the buffer, not a copy.
func (r *Reader) Remaining() string {
	return r.sc.Remaining()
}
