package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/arloliu/tokread/compress"
	"github.com/arloliu/tokread/format"
	"github.com/arloliu/tokread/source"
)

func packCommand(g *globalFlags) *cobra.Command {
	p := &inputPacker{
		codec: format.CompressionZstd,
	}

	cmd := &cobra.Command{
		Use:   "pack [flags] [file]",
		Short: "Compress token input for later reading",
		Long: `The pack subcommand decodes the input (honouring --compression) and
writes it to stdout compressed with --codec. The result can be read back by
any tokread reader without extra flags, since the codec is detected from the
payload.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if path := inputArg(args); path != "" && path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("opening input: %w", err)
				}
				defer f.Close()
				in = f
			}

			return p.Run(in, cmd.OutOrStdout(), g, g.logger(cmd.ErrOrStderr()))
		},
	}

	cmd.Flags().Var(&p.codec, "codec", fmt.Sprintf("Codec for the output. Supported values: %s.", strings.Join(format.CompressionNames()[1:], ", ")))

	return cmd
}

type inputPacker struct {
	codec format.CompressionType
}

func (p *inputPacker) Run(in io.Reader, out io.Writer, g *globalFlags, logger log.Logger) error {
	if p.codec == format.CompressionAuto {
		return fmt.Errorf("--codec must name a codec, not %s", p.codec)
	}

	text, err := source.Load(in,
		source.WithCompression(g.compression),
		source.WithMaxSize(g.maxSize),
		source.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	codec, err := compress.CreateCodec(p.codec)
	if err != nil {
		return err
	}
	packed, err := codec.Compress([]byte(text))
	if err != nil {
		return fmt.Errorf("compressing input: %w", err)
	}

	level.Info(logger).Log("msg", "packed input", "codec", p.codec, "bytes", len(text), "packed_bytes", len(packed))

	_, err = out.Write(packed)

	return err
}
