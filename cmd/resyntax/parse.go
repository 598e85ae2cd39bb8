package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/coregx/resyntax/syntax"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <pattern>",
		Short: "Parse a pattern and print its syntax tree",
		Long: `Parse a pattern and print its syntax tree.

Output formats:
  tree   compact form, e.g. Seq([Char('a'), Plus(Char('b'))])
  json   {"op":"Seq","sub":[...]}
  pp     pretty-printed Go structure

On a syntax error the message is printed with the pattern and a caret
under the offending character, and the exit status is 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]

			p, err := a.parsePattern(pattern)
			if err != nil {
				var pe *syntax.ParseError
				if errors.As(err, &pe) {
					writeParseError(cmd.ErrOrStderr(), pattern, pe)
					return errReported
				}
				return err
			}

			return writeTree(cmd.OutOrStdout(), p.Tree(), outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json, pp)")

	return cmd
}

func writeTree(w io.Writer, tree *syntax.Node, format string) error {
	switch format {
	case "tree":
		_, err := fmt.Fprintln(w, tree)
		return err
	case "json":
		data, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "pp":
		printer := pp.New()
		printer.SetColoringEnabled(false)
		_, err := printer.Fprintln(w, tree)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeParseError prints the error followed by the pattern and a caret.
// Errors without a position point just past the end of the pattern.
//
//	ParseError: invalid escape: pos = 2, char = 'd'
//	  a\d
//	    ^
func writeParseError(w io.Writer, pattern string, pe *syntax.ParseError) {
	col := utf8.RuneCountInString(pattern)
	if pe.HasPos() {
		col = pe.Pos
	}
	fmt.Fprintln(w, pe)
	fmt.Fprintf(w, "  %s\n", pattern)
	fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", col))
}
