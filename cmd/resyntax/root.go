package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/coregx/resyntax"
	"github.com/spf13/cobra"
)

// errReported is returned by commands that already printed a diagnostic.
// It only sets the exit status.
var errReported = errors.New("error reported")

// app holds the state shared by all subcommands.
type app struct {
	// Global flags
	cfgFile string
	verbose bool

	config resyntax.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{config: resyntax.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "resyntax",
		Short: "Parse regular-expression patterns into syntax trees",
		Long: `Resyntax parses patterns written in a small regular-expression language
(literal characters, + * ?, |, grouping and backslash escapes) and reports:
  - the syntax tree, as text, JSON or a pretty-printed structure
  - the literals every match must start or end with
  - which lines of an input could contain a match`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file path (YAML)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newParseCmd(a))
	cmd.AddCommand(newLiteralsCmd(a))
	cmd.AddCommand(newScanCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// init sets up logging and loads the configuration file, if any.
func (a *app) init(logOut io.Writer) error {
	a.logger = newLogger(logOut, a.verbose)

	config, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	a.config = config

	if a.cfgFile != "" {
		a.logger.Debug("configuration loaded",
			"path", a.cfgFile,
			"extract_literals", config.ExtractLiterals,
			"enable_prefilter", config.EnablePrefilter,
			"max_literals", config.MaxLiterals,
			"max_literal_len", config.MaxLiteralLen,
			"max_depth", config.MaxDepth,
		)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// parsePattern parses pattern with the loaded configuration and logs what
// was derived from it.
func (a *app) parsePattern(pattern string) (*resyntax.Pattern, error) {
	p, err := resyntax.ParseWithConfig(pattern, a.config)
	if err != nil {
		return nil, err
	}

	strategy := "none"
	if pf := p.Prefilter(); pf != nil {
		strategy = pf.String()
	}
	a.logger.Debug("pattern parsed",
		"pattern", pattern,
		"prefixes", p.Prefixes().Len(),
		"suffixes", p.Suffixes().Len(),
		"literal", p.IsLiteral(),
		"prefilter", strategy,
	)
	return p, nil
}
