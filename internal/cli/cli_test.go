package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/tokread/errs"
	"github.com/arloliu/tokread/format"
)

const sampleInput = "3\n4 3 2\n3 4 5\n5 1 2 3 4 5\n"

func run(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := Command(bytes.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestTokens_Stdin(t *testing.T) {
	out, _, err := run(t, []byte("a  b\n\tc "), "tokens")

	require.NoError(t, err)
	require.Equal(t, "a\nb\nc\n", out)
}

func TestTokens_LimitAndOffsets(t *testing.T) {
	out, _, err := run(t, []byte(" ab cd ef"), "tokens", "--limit", "2", "--offsets")

	require.NoError(t, err)
	require.Equal(t, "1\tab\n4\tcd\n", out)
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) { return 0, errBrokenPipe }

var errBrokenPipe = errors.New("broken pipe")

func TestTokens_FlushError(t *testing.T) {
	var stderr bytes.Buffer
	cmd := Command(strings.NewReader("a b c"), brokenPipe{}, &stderr)
	cmd.SetArgs([]string{"tokens"})

	require.ErrorIs(t, cmd.Execute(), errBrokenPipe)
}

func TestTokens_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("x y"), 0o600))

	out, _, err := run(t, nil, "tokens", path)

	require.NoError(t, err)
	require.Equal(t, "x\ny\n", out)
}

func TestTokens_MissingFile(t *testing.T) {
	_, _, err := run(t, nil, "tokens", filepath.Join(t.TempDir(), "missing"))

	require.ErrorContains(t, err, "opening input")
}

func TestStats(t *testing.T) {
	out, stderr, err := run(t, []byte(sampleInput+"x x\n"), "stats")

	require.NoError(t, err)
	assert.Contains(t, out, "bytes=30")
	assert.Contains(t, out, "tokens=15")
	assert.Contains(t, out, "distinct=6")
	assert.Contains(t, out, "integers=13")
	assert.Contains(t, out, "longest=1")
	assert.Contains(t, out, "hash_collision=false")
	assert.Contains(t, stderr, "level=info")
	assert.Contains(t, stderr, `msg="collected input stats"`)
}

func TestStats_DigestIgnoresCompression(t *testing.T) {
	plain, _, err := run(t, []byte(sampleInput), "stats")
	require.NoError(t, err)

	packed, _, err := run(t, []byte(sampleInput), "pack", "--codec", "s2")
	require.NoError(t, err)

	fromPacked, _, err := run(t, []byte(packed), "stats")
	require.NoError(t, err)

	require.Equal(t, plain, fromPacked)
}

func TestPack_RoundTrip(t *testing.T) {
	for _, codec := range []string{"none", "zstd", "s2", "lz4"} {
		t.Run(codec, func(t *testing.T) {
			packed, _, err := run(t, []byte(sampleInput), "pack", "--codec", codec)
			require.NoError(t, err)

			out, _, err := run(t, []byte(packed), "tokens")
			require.NoError(t, err)
			require.Equal(t, strings.Join(strings.Fields(sampleInput), "\n")+"\n", out)
		})
	}
}

func TestPack_DefaultCodecIsZstd(t *testing.T) {
	packed, stderr, err := run(t, []byte(sampleInput), "pack")

	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, format.Detect([]byte(packed)))
	require.Contains(t, stderr, "codec=Zstd")
}

func TestPack_RejectsAuto(t *testing.T) {
	_, _, err := run(t, []byte(sampleInput), "pack", "--codec", "auto")

	require.ErrorContains(t, err, "must name a codec")
}

func TestGlobalFlags(t *testing.T) {
	t.Run("invalid compression", func(t *testing.T) {
		_, _, err := run(t, []byte(sampleInput), "tokens", "--compression", "gzip")
		require.ErrorContains(t, err, "unknown compression")
	})

	t.Run("forced codec mismatch", func(t *testing.T) {
		_, _, err := run(t, []byte(sampleInput), "tokens", "--compression", "lz4")
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("max size", func(t *testing.T) {
		_, _, err := run(t, []byte(sampleInput), "stats", "--max-size", "5")
		require.ErrorIs(t, err, errs.ErrInputTooLarge)
	})

	t.Run("debug logging", func(t *testing.T) {
		_, stderr, err := run(t, []byte(sampleInput), "tokens", "--log.level", "debug")
		require.NoError(t, err)
		require.Contains(t, stderr, `msg="input loaded"`)
	})

	t.Run("error level hides info", func(t *testing.T) {
		_, stderr, err := run(t, []byte(sampleInput), "stats", "--log.level", "error")
		require.NoError(t, err)
		require.Empty(t, stderr)
	})
}
