package tokread

import (
	"errors"
	"fmt"

	"github.com/arloliu/tokread/errs"
	"github.com/arloliu/tokread/parse"
	"github.com/arloliu/tokread/symbol"
)

// Read consumes one token and parses it as T.
//
// It panics with an error wrapping errs.ErrParse if the token is not a
// valid T, errs.ErrInputExhausted if no token is left, and
// errs.ErrUnsupportedType (before consuming anything) if T has no parser.
func Read[T any](r *Reader) T {
	return ReadWith(r, parse.Must[T]())
}

// ReadWith consumes one token and converts it with p. Failures panic as in Read.
func ReadWith[T any](r *Reader, p parse.Parser[T]) T {
	tok := r.Token()
	v, err := p(tok)
	if err != nil {
		panic(parseFailure[T](tok, err))
	}

	return v
}

// ReadOption consumes one token and parses it as T, reporting false instead
// of panicking when the token is not a valid T. The token is consumed either
// way. Running out of input still panics.
func ReadOption[T any](r *Reader) (T, bool) {
	return readOptionWith(r, parse.Must[T]())
}

func readOptionWith[T any](r *Reader, p parse.Parser[T]) (T, bool) {
	v, err := p(r.Token())
	if err != nil {
		var zero T
		return zero, false
	}

	return v, true
}

// ReadArray fills dst with the next len(dst) values, in input order.
// Pass arr[:] to fill a fixed-size array.
func ReadArray[T any](r *Reader, dst []T) {
	p := parse.Must[T]()
	for i := range dst {
		dst[i] = ReadWith(r, p)
	}
}

// ReadSlice reads the next n values into a new slice, in input order.
// With n == 0 it returns an empty slice and consumes nothing; a negative n
// panics with errs.ErrNegativeCount.
func ReadSlice[T any](r *Reader, n int) []T {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", errs.ErrNegativeCount, n))
	}

	out := make([]T, n)
	ReadArray(r, out)

	return out
}

// ReadSymbol consumes one token and returns its id in t.
func ReadSymbol(r *Reader, t *symbol.Table) int {
	return t.Intern(r.Token())
}

// IsFatal reports whether err is one of the failures a Reader panics with.
func IsFatal(err error) bool {
	return errors.Is(err, errs.ErrInputExhausted) ||
		errors.Is(err, errs.ErrParse) ||
		errors.Is(err, errs.ErrUnsupportedType) ||
		errors.Is(err, errs.ErrNegativeCount)
}

// Recover converts a fatal Reader panic into an error stored in *errp.
// It must be deferred directly:
//
//	func solve(r *tokread.Reader) (err error) {
//	    defer tokread.Recover(&err)
//	    ...
//	}
//
// Panics that did not come from a Reader are re-raised unchanged.
func Recover(errp *error) {
	rec := recover()
	if rec == nil {
		return
	}

	err, ok := rec.(error)
	if !ok || !IsFatal(err) {
		panic(rec)
	}
	*errp = err
}

// parseFailure makes sure errors from caller-supplied parsers carry errs.ErrParse.
func parseFailure[T any](tok string, err error) error {
	if errors.Is(err, errs.ErrParse) {
		return err
	}

	return fmt.Errorf("%w %q as %s: %w", errs.ErrParse, tok, parse.TypeName[T](), err)
}
