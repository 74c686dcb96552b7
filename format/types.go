package format

import (
	"bytes"
	"fmt"
	"strings"
)

type CompressionType uint8

const (
	CompressionAuto CompressionType = 0x0 // CompressionAuto detects the codec from the payload magic.
	CompressionNone CompressionType = 0x1 // CompressionNone represents plain text input.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard frame.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2/Snappy stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame.
)

var (
	zstdMagic   = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic    = []byte{0x04, 0x22, 0x4d, 0x18}
	s2Magic     = []byte("\xff\x06\x00\x00S2sTwO")
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
)

func (c CompressionType) String() string {
	switch c {
	case CompressionAuto:
		return "Auto"
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Set implements pflag.Value so a CompressionType can be bound to a flag.
func (c *CompressionType) Set(s string) error {
	v, err := ParseCompression(s)
	if err != nil {
		return err
	}
	*c = v

	return nil
}

// Type implements pflag.Value.
func (c *CompressionType) Type() string {
	return "compression"
}

// ParseCompression converts a case-insensitive name into a CompressionType.
func ParseCompression(s string) (CompressionType, error) {
	switch strings.ToLower(s) {
	case "auto":
		return CompressionAuto, nil
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return CompressionNone, fmt.Errorf("unknown compression %q, supported: %s", s, strings.Join(CompressionNames(), ", "))
	}
}

// CompressionNames lists the names accepted by ParseCompression.
func CompressionNames() []string {
	return []string{"auto", "none", "zstd", "s2", "lz4"}
}

// Detect inspects the leading magic bytes of data and reports which codec
// produced it. Data without a known magic is reported as CompressionNone.
func Detect(data []byte) CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return CompressionLZ4
	case bytes.HasPrefix(data, s2Magic), bytes.HasPrefix(data, snappyMagic):
		return CompressionS2
	default:
		return CompressionNone
	}
}
