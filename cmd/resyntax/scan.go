package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/coregx/resyntax"
	"github.com/spf13/cobra"
)

// maxLineLen bounds the length of a single scanned line.
const maxLineLen = 1 << 20

func newScanCmd(a *app) *cobra.Command {
	var (
		countOnly      bool
		candidatesOnly bool
	)

	cmd := &cobra.Command{
		Use:   "scan <pattern> [file...]",
		Short: "List lines that contain a match",
		Long: `List the lines of the input that contain a match of the pattern.

Lines are first checked for one of the pattern's prefix literals and then
matched in full. With --candidates only the literal check is done, so the
output may include lines that do not match.

Reads standard input when no file is given, or when a file is "-".
Output lines are "line:text", prefixed with "file:" when scanning
more than one input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parsePattern(args[0])
			if err != nil {
				return err
			}
			if candidatesOnly && p.Prefilter() == nil {
				a.logger.Warn("pattern has no required literal; every line is a candidate",
					"pattern", args[0])
			}

			files := args[1:]
			if len(files) == 0 {
				files = []string{"-"}
			}

			w := cmd.OutOrStdout()
			total := 0
			for _, name := range files {
				prefix := ""
				if len(files) > 1 {
					prefix = name + ":"
				}

				n, err := a.scanInput(cmd, p, name, prefix, countOnly, candidatesOnly)
				if err != nil {
					return err
				}
				total += n
			}

			if countOnly {
				fmt.Fprintln(w, total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the number of matching lines")
	cmd.Flags().BoolVar(&candidatesOnly, "candidates", false, "report prefilter candidates without matching")

	return cmd
}

func (a *app) scanInput(cmd *cobra.Command, p *resyntax.Pattern, name, prefix string, countOnly, candidatesOnly bool) (int, error) {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return 0, fmt.Errorf("open %s: %w", name, err)
		}
		defer f.Close()
		r = f
	}

	var out io.Writer = cmd.OutOrStdout()
	if countOnly {
		out = io.Discard
	}

	accept := p.Match
	if candidatesOnly {
		accept = func(line []byte) bool { return p.FindCandidate(line, 0) >= 0 }
	}

	n, lines, err := scanLines(r, accept, out, prefix)
	if err != nil {
		return n, fmt.Errorf("scan %s: %w", name, err)
	}
	a.logger.Debug("input scanned", "input", name, "lines", lines, "reported", n)
	return n, nil
}

// scanLines writes every line of r accepted by accept as
// "prefix line:text". It returns the number of reported lines and the
// number of lines read.
func scanLines(r io.Reader, accept func([]byte) bool, w io.Writer, prefix string) (reported, lines int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)

	for scanner.Scan() {
		lines++
		line := scanner.Bytes()
		if !accept(line) {
			continue
		}
		reported++
		if _, err := fmt.Fprintf(w, "%s%d:%s\n", prefix, lines, line); err != nil {
			return reported, lines, err
		}
	}
	return reported, lines, scanner.Err()
}
