package source

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/tokread/compress"
	"github.com/arloliu/tokread/errs"
	"github.com/arloliu/tokread/format"
)

const sample = "3\n4 3 2\n3 4 5\n5 1 2 3 4 5\n"

func pack(t *testing.T, ct format.CompressionType, text string) []byte {
	t.Helper()

	codec, err := compress.GetCodec(ct)
	require.NoError(t, err)
	packed, err := codec.Compress([]byte(text))
	require.NoError(t, err)

	return packed
}

func TestLoad_Plain(t *testing.T) {
	text, err := Load(strings.NewReader(sample))

	require.NoError(t, err)
	require.Equal(t, sample, text)
}

func TestLoad_Empty(t *testing.T) {
	text, err := Load(strings.NewReader(""))

	require.NoError(t, err)
	require.Empty(t, text)
}

func TestLoad_SmallReads(t *testing.T) {
	big := strings.Repeat(sample, 500)

	text, err := Load(iotest.HalfReader(strings.NewReader(big)), WithInitialCapacity(1))

	require.NoError(t, err)
	require.Equal(t, big, text)
}

func TestLoad_Compressed(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String()+"/auto", func(t *testing.T) {
			text, err := Load(bytes.NewReader(pack(t, ct, sample)))
			require.NoError(t, err)
			require.Equal(t, sample, text)
		})

		t.Run(ct.String()+"/explicit", func(t *testing.T) {
			text, err := Load(bytes.NewReader(pack(t, ct, sample)), WithCompression(ct))
			require.NoError(t, err)
			require.Equal(t, sample, text)
		})
	}
}

func TestLoad_ForcedNoneKeepsBytes(t *testing.T) {
	packed := pack(t, format.CompressionZstd, sample)

	text, err := Load(bytes.NewReader(packed), WithCompression(format.CompressionNone))

	require.NoError(t, err)
	require.Equal(t, string(packed), text)
}

func TestLoad_WrongCodec(t *testing.T) {
	_, err := Load(strings.NewReader(sample), WithCompression(format.CompressionZstd))

	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestLoad_ReadError(t *testing.T) {
	boom := errors.New("device gone")
	r := io.MultiReader(strings.NewReader("1 2 "), iotest.ErrReader(boom))

	_, err := Load(r)

	require.ErrorIs(t, err, errs.ErrSourceRead)
	require.ErrorIs(t, err, boom)
}

func TestLoad_MaxSize(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		text, err := Load(strings.NewReader(sample), WithMaxSize(int64(len(sample))))
		require.NoError(t, err)
		require.Equal(t, sample, text)
	})

	t.Run("raw input over limit", func(t *testing.T) {
		_, err := Load(strings.NewReader(sample), WithMaxSize(4))
		require.ErrorIs(t, err, errs.ErrInputTooLarge)
	})

	t.Run("decompressed input over limit", func(t *testing.T) {
		big := strings.Repeat("1 ", 10000)
		packed := pack(t, format.CompressionZstd, big)
		require.Less(t, len(packed), 1000)

		_, err := Load(bytes.NewReader(packed), WithMaxSize(1000))
		require.ErrorIs(t, err, errs.ErrInputTooLarge)
	})
}

func TestLoad_MaxSizeBoundsDecompression(t *testing.T) {
	const limit = 1 << 20
	big := strings.Repeat("0 ", 32<<20)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			packed := pack(t, ct, big)
			require.Less(t, len(packed), limit)

			var before, after runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&before)

			_, err := Load(bytes.NewReader(packed), WithMaxSize(limit))

			runtime.ReadMemStats(&after)
			require.ErrorIs(t, err, errs.ErrInputTooLarge)
			require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(len(big)/2))
		})
	}
}

func TestLoad_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"negative max size", WithMaxSize(-1)},
		{"negative capacity", WithInitialCapacity(-5)},
		{"unknown compression", WithCompression(format.CompressionType(0x7f))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(sample), tt.opt)
			require.ErrorIs(t, err, errs.ErrInvalidOption)
		})
	}
}

func TestLoad_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogfmtLogger(&buf)

	_, err := Load(bytes.NewReader(pack(t, format.CompressionLZ4, sample)), WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "level=debug")
	require.Contains(t, out, `msg="input loaded"`)
	require.Contains(t, out, "compression=LZ4")
	require.Contains(t, out, "bytes=26")
}

func TestLoad_NilLogger(t *testing.T) {
	text, err := Load(strings.NewReader("x"), WithLogger(nil))

	require.NoError(t, err)
	require.Equal(t, "x", text)
}
