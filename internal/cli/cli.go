// Package cli implements the tokread command line tool.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/arloliu/tokread"
	"github.com/arloliu/tokread/format"
	"github.com/arloliu/tokread/source"
)

// globalFlags are shared by every subcommand that reads token input.
type globalFlags struct {
	logLevel    string
	compression format.CompressionType
	maxSize     int64
}

// Command builds the root command. Input, output and diagnostics go to the
// given streams so the commands can be driven from tests.
func Command(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	g := &globalFlags{
		logLevel:    "info",
		compression: format.CompressionAuto,
	}

	cmd := &cobra.Command{
		Use:   "tokread [global options] <subcommand>",
		Short: "Inspect and prepare whitespace-delimited token input",

		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Usage()
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&g.logLevel, "log.level", g.logLevel, "Log level. Supported values: debug, info, warn, error.")
	cmd.PersistentFlags().Var(&g.compression, "compression", fmt.Sprintf("Compression of the input. Supported values: %s.", strings.Join(format.CompressionNames(), ", ")))
	cmd.PersistentFlags().Int64Var(&g.maxSize, "max-size", g.maxSize, "Maximum input size in bytes after decompression, 0 for unlimited.")

	cmd.AddCommand(
		tokensCommand(g),
		statsCommand(g),
		packCommand(g),
	)

	return cmd
}

func (g *globalFlags) logger(w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, levelOption(g.logLevel))

	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

// levelOption maps a --log.level value to a filter; unknown values fall back to info.
func levelOption(lvl string) level.Option {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// openReader loads the named file, or stdin when path is empty or "-".
func (g *globalFlags) openReader(cmd *cobra.Command, path string, logger log.Logger) (*tokread.Reader, error) {
	opts := []source.Option{
		source.WithCompression(g.compression),
		source.WithMaxSize(g.maxSize),
		source.WithLogger(logger),
	}

	if path == "" || path == "-" {
		return tokread.FromReader(cmd.InOrStdin(), opts...)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	return tokread.FromReader(f, opts...)
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}
