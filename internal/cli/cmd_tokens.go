package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/tokread"
)

func tokensCommand(g *globalFlags) *cobra.Command {
	t := &tokensDump{}

	cmd := &cobra.Command{
		Use:   "tokens [flags] [file]",
		Short: "Print the tokens of the input, one per line",
		Long: `The tokens subcommand splits the input at whitespace and prints every
token on its own line, exactly as a reader would return it. Compressed
input is decoded first.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.openReader(cmd, inputArg(args), g.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := t.Run(r, w); err != nil {
				return err
			}

			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&t.limit, "limit", t.limit, "Stop after this many tokens, 0 for all.")
	cmd.Flags().BoolVar(&t.offsets, "offsets", t.offsets, "Prefix each token with its byte offset in the decoded input.")

	return cmd
}

type tokensDump struct {
	limit   int
	offsets bool
}

func (t *tokensDump) Run(r *tokread.Reader, w io.Writer) error {
	for n := 0; t.limit == 0 || n < t.limit; n++ {
		tok, ok := r.TryToken()
		if !ok {
			return nil
		}

		var err error
		if t.offsets {
			_, err = fmt.Fprintf(w, "%d\t%s\n", r.Pos()-len(tok), tok)
		} else {
			_, err = fmt.Fprintln(w, tok)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
