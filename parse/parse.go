// Package parse defines how a token turns into a typed value.
//
// A Parser[T] is the whole contract: it receives the token text and returns
// the value or an error. For resolves the Parser for a type: built-in scalar
// kinds are handled directly, and any other type takes part by implementing
// TokenUnmarshaler (or encoding.TextUnmarshaler) on its pointer receiver.
//
// All errors produced here wrap errs.ErrParse or errs.ErrUnsupportedType.
package parse

import (
	"encoding"
	"fmt"
	"math/big"
	"reflect"
	"strconv"

	"github.com/arloliu/tokread/errs"
)

// Parser converts one token into a value of type T.
type Parser[T any] func(token string) (T, error)

// TokenUnmarshaler is implemented by types that parse themselves from a token.
//
// UnmarshalToken must not retain token past the call unless the caller is
// known to keep the underlying buffer alive.
type TokenUnmarshaler interface {
	UnmarshalToken(token string) error
}

// For returns the Parser for T.
//
// Resolution order: built-in kinds (string, bool, sized ints, floats,
// complex numbers, *big.Int), then *T implementing TokenUnmarshaler, then
// *T implementing encoding.TextUnmarshaler. Named types whose underlying
// kind is built-in (type Weight int) are handled as that kind.
func For[T any]() (Parser[T], error) {
	var zero T
	switch any(zero).(type) {
	case string:
		return cast[T](String), nil
	case []byte:
		return cast[T](Bytes), nil
	case bool:
		return cast[T](Bool), nil
	case int:
		return cast[T](Int), nil
	case int8:
		return cast[T](SignedOf[int8]), nil
	case int16:
		return cast[T](SignedOf[int16]), nil
	case int32:
		return cast[T](SignedOf[int32]), nil
	case int64:
		return cast[T](SignedOf[int64]), nil
	case uint:
		return cast[T](Uint), nil
	case uint8:
		return cast[T](UnsignedOf[uint8]), nil
	case uint16:
		return cast[T](UnsignedOf[uint16]), nil
	case uint32:
		return cast[T](UnsignedOf[uint32]), nil
	case uint64:
		return cast[T](UnsignedOf[uint64]), nil
	case float32:
		return cast[T](FloatOf[float32]), nil
	case float64:
		return cast[T](FloatOf[float64]), nil
	case complex128:
		return cast[T](Complex), nil
	case *big.Int:
		return cast[T](BigInt), nil
	}

	if _, ok := any(&zero).(TokenUnmarshaler); ok {
		return unmarshalerParser[T], nil
	}
	if _, ok := any(&zero).(encoding.TextUnmarshaler); ok {
		return textUnmarshalerParser[T], nil
	}

	if p, ok := underlyingParser[T](); ok {
		return p, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedType, TypeName[T]())
}

// Must is like For but panics when T has no parser.
func Must[T any]() Parser[T] {
	p, err := For[T]()
	if err != nil {
		panic(err)
	}

	return p
}

// TypeName returns a readable name of T for diagnostics.
func TypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// cast adapts a Parser of a concrete type to T. The caller guarantees that
// T and U are the same type.
func cast[T, U any](p func(string) (U, error)) Parser[T] {
	return func(token string) (T, error) {
		v, err := p(token)
		return any(v).(T), err
	}
}

func unmarshalerParser[T any](token string) (T, error) {
	var v T
	if err := any(&v).(TokenUnmarshaler).UnmarshalToken(token); err != nil {
		return v, failure[T](token, err)
	}

	return v, nil
}

func textUnmarshalerParser[T any](token string) (T, error) {
	var v T
	if err := any(&v).(encoding.TextUnmarshaler).UnmarshalText([]byte(token)); err != nil {
		return v, failure[T](token, err)
	}

	return v, nil
}

// underlyingParser handles named types over a built-in kind through reflection.
func underlyingParser[T any]() (Parser[T], bool) {
	typ := reflect.TypeFor[T]()

	var conv func(string) (reflect.Value, error)
	switch typ.Kind() {
	case reflect.String:
		conv = func(s string) (reflect.Value, error) { return reflect.ValueOf(s), nil }
	case reflect.Bool:
		conv = func(s string) (reflect.Value, error) {
			b, err := parseBool(s)
			return reflect.ValueOf(b), err
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := typ.Bits()
		conv = func(s string) (reflect.Value, error) {
			n, err := strconv.ParseInt(s, 10, bits)
			return reflect.ValueOf(n), err
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		bits := typ.Bits()
		conv = func(s string) (reflect.Value, error) {
			n, err := parseUint(s, bits)
			return reflect.ValueOf(n), err
		}
	case reflect.Float32, reflect.Float64:
		bits := typ.Bits()
		conv = func(s string) (reflect.Value, error) {
			f, err := strconv.ParseFloat(s, bits)
			return reflect.ValueOf(f), err
		}
	default:
		return nil, false
	}

	return func(token string) (T, error) {
		var zero T
		rv, err := conv(token)
		if err != nil {
			return zero, failure[T](token, numErr(err))
		}

		return rv.Convert(typ).Interface().(T), nil
	}, true
}

func failure[T any](token string, cause error) error {
	return fmt.Errorf("%w %q as %s: %w", errs.ErrParse, token, TypeName[T](), cause)
}
