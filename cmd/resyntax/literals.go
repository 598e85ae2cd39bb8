package main

import (
	"fmt"
	"io"

	"github.com/coregx/resyntax/literal"
	"github.com/spf13/cobra"
)

func newLiteralsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "literals <pattern>",
		Short: "Show the literals extracted from a pattern",
		Long: `Show the literals extracted from a pattern.

  prefixes   one of these starts every match
  suffixes   one of these ends every match
  exact      every string the pattern matches, when that set is finite
  prefilter  the searcher built from the prefixes

Literals marked (incomplete) are only the beginning (or end) of a match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parsePattern(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			writeSeq(w, "prefixes", p.Prefixes())
			writeSeq(w, "suffixes", p.Suffixes())
			writeSeq(w, "exact", p.Exact())

			strategy := "none"
			if pf := p.Prefilter(); pf != nil {
				strategy = pf.String()
			}
			_, err = fmt.Fprintf(w, "prefilter: %s\n", strategy)
			return err
		},
	}

	return cmd
}

func writeSeq(w io.Writer, name string, seq *literal.Seq) {
	if seq.IsEmpty() {
		fmt.Fprintf(w, "%s: none\n", name)
		return
	}
	fmt.Fprintf(w, "%s:\n", name)
	for _, lit := range seq.Literals() {
		if lit.Complete {
			fmt.Fprintf(w, "  %q\n", lit.Bytes)
		} else {
			fmt.Fprintf(w, "  %q (incomplete)\n", lit.Bytes)
		}
	}
}
