package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/harrison/pathsearch/internal/config"
	"github.com/harrison/pathsearch/internal/display"
	"github.com/harrison/pathsearch/internal/logger"
	"github.com/harrison/pathsearch/internal/matcher"
	"github.com/harrison/pathsearch/internal/scanner"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// options holds the raw flag values for one invocation.
type options struct {
	color      config.ColorMode
	regex      bool
	logLevel   string
	configPath string
}

// NewRootCommand creates and returns the root cobra command for pathsearch
func NewRootCommand() *cobra.Command {
	opts := &options{color: config.ColorAuto}

	cmd := &cobra.Command{
		Use:   "pathsearch [flags] [pattern]",
		Short: "Look for files in PATH",
		Long: `pathsearch lists the executables in your PATH whose names match a pattern.

Directories are searched in PATH order, so the first line for a name is the
file the shell would run. Later files with the same name are shadowed and
are shown dimmed when color is enabled.

Without a pattern every executable in PATH is listed. The pattern is a
case-sensitive substring unless --regex is given.

Exit codes:
  0  at least one match was found
  1  no matches
  2  invalid usage, configuration or regular expression`,
		Version:       Version,
		Args:          maxOnePattern,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.regex, "regex", "r", false, "Interpret pattern as a regular expression")
	flags.Var(&opts.color, "color", "Control color output (auto, always, never)")
	flags.StringVar(&opts.logLevel, "log-level", logger.DefaultLevel, "Diagnostic verbosity (trace, debug, info, warn, error)")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/pathsearch/config.yaml)")
	flags.BoolP("version", "V", false, "Print version")

	cmd.SetVersionTemplate("pathsearch {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	return cmd
}

// Execute runs pathsearch with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	reportError(stderr, err, root.UsageString())
	return ExitCode(err)
}

func maxOnePattern(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return usageErrorf("multiple patterns provided: %q", args)
	}
	return nil
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := resolveConfig(cmd.Flags(), opts)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	pattern := matcher.MatchAll()
	if len(args) == 1 {
		pattern, err = matcher.Parse(args[0], cfg.Regex)
		if err != nil {
			return err
		}
	}
	log.LogDebug(fmt.Sprintf("pattern: %s", pattern))

	dirs, err := scanner.SearchPathFromEnv()
	if errors.Is(err, scanner.ErrMissingPath) {
		log.LogWarn("PATH is unset or empty, nothing to search")
		return ErrNoMatch
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	outFile, _ := out.(*os.File)
	printer := display.NewPrinter(out, cfg.Color.Enabled(outFile))

	sc := scanner.New(pattern, scanner.WithLogger(log))
	summary, err := sc.Scan(dirs, printer.Print)
	if err != nil {
		log.LogError(fmt.Sprintf("write output failed after %d matches: %v", summary.Matches, err))
		return fmt.Errorf("write output: %w", err)
	}

	log.LogInfo(fmt.Sprintf("scanned %d directories (%d skipped): %d matches, %d shadowed",
		summary.Dirs, summary.Skipped, summary.Matches, summary.Shadowed))

	if summary.Matches == 0 {
		return ErrNoMatch
	}
	return nil
}

// resolveConfig loads the config file and applies explicitly set flags.
func resolveConfig(flags *pflag.FlagSet, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, &UsageError{Err: err}
	}

	var color *config.ColorMode
	var regex *bool
	var logLevel *string
	if flags.Changed("color") {
		color = &opts.color
	}
	if flags.Changed("regex") {
		regex = &opts.regex
	}
	if flags.Changed("log-level") {
		logLevel = &opts.logLevel
	}
	cfg.MergeWithFlags(color, regex, logLevel)

	if err := cfg.Validate(); err != nil {
		return nil, &UsageError{Err: err}
	}
	return cfg, nil
}
