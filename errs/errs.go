// Package errs defines the sentinel errors shared by tokread packages.
//
// Callers match them with errors.Is; every error produced by the reader,
// the parsers and the input sources wraps exactly one of these values.
package errs

import "errors"

var (
	// ErrInputExhausted is raised when a token is requested but only whitespace
	// (or nothing) remains in the buffer.
	ErrInputExhausted = errors.New("expected more input")

	// ErrParse is raised when a token cannot be converted to the requested type.
	ErrParse = errors.New("could not parse token")

	// ErrUnsupportedType is raised when no parser is known for the requested type.
	ErrUnsupportedType = errors.New("unsupported token type")

	// ErrNegativeCount is raised when a negative number of values is requested.
	ErrNegativeCount = errors.New("negative value count")

	// ErrSourceRead is returned when the input source cannot be fully read.
	ErrSourceRead = errors.New("failed to read input source")

	// ErrInputTooLarge is returned when the input exceeds the configured maximum size.
	ErrInputTooLarge = errors.New("input exceeds maximum size")

	// ErrInvalidCompression is returned for unknown compression types or corrupt payloads.
	ErrInvalidCompression = errors.New("invalid compression")

	// ErrInvalidOption is returned when an option value is out of range.
	ErrInvalidOption = errors.New("invalid option")
)
