package parse

import (
	"errors"
	"math/big"
	"reflect"
	"strconv"
	"strings"
)

// Signed is the set of sized signed integer kinds.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of sized unsigned integer kinds.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Floating is the set of floating point kinds.
type Floating interface {
	~float32 | ~float64
}

var errBool = errors.New(`expected "true" or "false"`)

// String returns the token unchanged. It never fails.
func String(token string) (string, error) {
	return token, nil
}

// Bytes returns a copy of the token.
func Bytes(token string) ([]byte, error) {
	return []byte(token), nil
}

// Bool accepts exactly "true" and "false".
func Bool(token string) (bool, error) {
	b, err := parseBool(token)
	if err != nil {
		return false, failure[bool](token, err)
	}

	return b, nil
}

// Int parses a base-10 int of the platform width.
func Int(token string) (int, error) {
	n, err := strconv.ParseInt(token, 10, strconv.IntSize)
	if err != nil {
		return 0, failure[int](token, numErr(err))
	}

	return int(n), nil
}

// Uint parses a base-10 uint of the platform width.
func Uint(token string) (uint, error) {
	n, err := parseUint(token, strconv.IntSize)
	if err != nil {
		return 0, failure[uint](token, numErr(err))
	}

	return uint(n), nil
}

// SignedOf parses a base-10 integer that must fit in T.
func SignedOf[T Signed](token string) (T, error) {
	n, err := strconv.ParseInt(token, 10, bitSize[T]())
	if err != nil {
		return 0, failure[T](token, numErr(err))
	}

	return T(n), nil
}

// UnsignedOf parses a base-10 unsigned integer that must fit in T.
// A leading '+' is accepted, a leading '-' is not.
func UnsignedOf[T Unsigned](token string) (T, error) {
	n, err := parseUint(token, bitSize[T]())
	if err != nil {
		return 0, failure[T](token, numErr(err))
	}

	return T(n), nil
}

// FloatOf parses a decimal or scientific floating point number.
//
// "inf", "infinity" and "nan" are accepted in any case. Go literal forms
// (hexadecimal mantissas, digit separators) are not.
func FloatOf[T Floating](token string) (T, error) {
	if goLiteral(token) {
		return 0, failure[T](token, strconv.ErrSyntax)
	}
	f, err := strconv.ParseFloat(token, bitSize[T]())
	if err != nil {
		return 0, failure[T](token, numErr(err))
	}

	return T(f), nil
}

// Complex parses a complex number in Go syntax, e.g. "1+2i".
func Complex(token string) (complex128, error) {
	c, err := strconv.ParseComplex(token, 128)
	if err != nil {
		return 0, failure[complex128](token, numErr(err))
	}

	return c, nil
}

// BigInt parses an arbitrary precision base-10 integer.
func BigInt(token string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(token, 10)
	if !ok {
		return nil, failure[*big.Int](token, strconv.ErrSyntax)
	}

	return n, nil
}

func parseBool(token string) (bool, error) {
	switch token {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errBool
	}
}

// parseUint is strconv.ParseUint plus an optional leading '+'.
func parseUint(token string, bits int) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, bits)
}

func bitSize[T Signed | Unsigned | Floating]() int {
	return reflect.TypeFor[T]().Bits()
}

// goLiteral reports whether token uses float syntax only Go source accepts.
func goLiteral(token string) bool {
	if strings.IndexByte(token, '_') >= 0 {
		return true
	}
	digits := strings.TrimLeft(token, "+-")

	return len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X')
}

// numErr strips the strconv.NumError wrapper, whose message repeats the token.
func numErr(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}

	return err
}
