package compress

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tokread/errs"
	"github.com/arloliu/tokread/format"
)

func sampleInput(lines int) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", lines)
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&sb, "%d %d %d\n", i, i*7, i%13)
	}

	return []byte(sb.String())
}

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func TestCodec_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"small":  []byte("1 hi false"),
		"medium": sampleInput(100),
		"large":  sampleInput(20000),
	}

	for _, ct := range allTypes {
		for name, input := range inputs {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				codec, err := GetCodec(ct)
				require.NoError(t, err)

				packed, err := codec.Compress(input)
				require.NoError(t, err)

				plain, err := codec.Decompress(packed)
				require.NoError(t, err)
				require.True(t, bytes.Equal(input, plain))
			})
		}
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct)
			require.NoError(t, err)

			packed, err := codec.Compress(nil)
			require.NoError(t, err)

			plain, err := codec.Decompress(packed)
			require.NoError(t, err)
			require.Empty(t, plain)
		})
	}
}

func TestCodec_OutputIsDetectable(t *testing.T) {
	input := sampleInput(50)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			packed, err := codec.Compress(input)
			require.NoError(t, err)
			require.Equal(t, ct, format.Detect(packed))
		})
	}

	require.Equal(t, format.CompressionNone, format.Detect(input))
}

func TestCodec_CorruptPayload(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			packed, err := codec.Compress(sampleInput(200))
			require.NoError(t, err)

			truncated := packed[:len(packed)/2]
			_, err = codec.Decompress(truncated)
			require.ErrorIs(t, err, errs.ErrInvalidCompression)
		})
	}
}

func TestCodec_DecompressLimit(t *testing.T) {
	input := bytes.Repeat([]byte("0 "), 1<<22)

	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			packed, err := codec.Compress(input)
			require.NoError(t, err)

			out, err := codec.DecompressLimit(packed, 1024)
			require.NoError(t, err)
			require.Len(t, out, 1025)
			require.True(t, bytes.Equal(input[:1025], out))

			out, err = codec.DecompressLimit(packed, int64(len(input)))
			require.NoError(t, err)
			require.True(t, bytes.Equal(input, out))

			out, err = codec.DecompressLimit(packed, 0)
			require.NoError(t, err)
			require.Len(t, out, len(input))
		})
	}
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionAuto)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = CreateCodec(format.CompressionType(0xff))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = GetCodec(format.CompressionType(0xff))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	data := []byte("7 8 9")
	c := NewNoOpCompressor()

	out, err := c.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])

	out, err = c.Decompress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}
