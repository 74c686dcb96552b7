package cli

import (
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/arloliu/tokread"
	"github.com/arloliu/tokread/internal/hash"
	"github.com/arloliu/tokread/parse"
	"github.com/arloliu/tokread/symbol"
)

func statsCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Summarize the tokens of the input",
		Long: `The stats subcommand reports how many tokens the input holds, how many
of them are distinct, how many parse as integers, and an xxHash64 digest of
the decoded input, which identifies a test case regardless of how it was
compressed.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			logger := g.logger(cmd.ErrOrStderr())
			r, err := g.openReader(cmd, inputArg(args), logger)
			if err != nil {
				return err
			}

			st := collectStats(r)
			level.Info(logger).Log("msg", "collected input stats", "tokens", st.tokens, "distinct", st.distinct)

			return st.write(cmd.OutOrStdout())
		},
	}

	return cmd
}

type inputStats struct {
	bytes     int
	tokens    int
	distinct  int
	integers  int
	longest   int
	digest    uint64
	collision bool
}

func collectStats(r *tokread.Reader) inputStats {
	tbl := symbol.NewTable()
	st := inputStats{}

	remaining := r.Remaining()
	for {
		tok, ok := r.TryToken()
		if !ok {
			break
		}
		st.tokens++
		tbl.Intern(tok)
		if _, err := parse.Int(tok); err == nil {
			st.integers++
		}
		st.longest = max(st.longest, len(tok))
	}

	st.bytes = len(remaining)
	st.distinct = tbl.Len()
	st.collision = tbl.HasCollision()
	st.digest = hash.ID(remaining)

	return st
}

func (st inputStats) write(w io.Writer) error {
	logger := log.NewLogfmtLogger(w)

	return logger.Log(
		"bytes", st.bytes,
		"tokens", st.tokens,
		"distinct", st.distinct,
		"integers", st.integers,
		"longest", st.longest,
		"xxhash", fmt.Sprintf("%016x", st.digest),
		"hash_collision", st.collision,
	)
}
