package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/fznnorm/internal/app"
	"github.com/specialistvlad/fznnorm/internal/config"
	"github.com/specialistvlad/fznnorm/internal/report"
	"github.com/specialistvlad/fznnorm/internal/resolve"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("fznnorm", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
fznnorm - Rebuilds the output variables of a FlatZinc model from raw solver output.

Usage:
  fznnorm [options] SOLUTION_FILE FZN_FILE

Arguments:
  SOLUTION_FILE
    Solver result, one "name value" pair per line.
  FZN_FILE
    FlatZinc model the solver was run on.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file.")
	formatFlag := flagSet.String("format", "dzn", "Output format. Options: 'dzn' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "auto", "Log output format. Options: 'auto', 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	maxDepthFlag := flagSet.Int("max-depth", resolve.DefaultMaxDepth, "Maximum alias/composition depth followed while resolving.")
	defaultFlag := flagSet.String("default", resolve.DefaultValue, "Literal used for values that cannot be resolved.")
	objectiveFlag := flagSet.Bool("objective", false, "Append the solver objective as _objective.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() < 2 {
		slog.Debug("Missing input paths, printing usage.", "args", flagSet.NArg())
		flagSet.Usage()
		return nil, false, &ExitError{Code: 1, Message: "expected SOLUTION_FILE and FZN_FILE"}
	}

	cfg := app.Config{
		SolutionPath: flagSet.Arg(0),
		ModelPath:    flagSet.Arg(1),
		Format:       *formatFlag,
		Objective:    *objectiveFlag,
		LogFormat:    *logFormatFlag,
		LogLevel:     *logLevelFlag,
		MaxDepth:     *maxDepthFlag,
		DefaultValue: *defaultFlag,
	}

	if *configFlag != "" {
		file, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		applyFile(&cfg, file, explicitFlags(flagSet))
		slog.Debug("Settings file applied.", "path", *configFlag)
	}

	if err := validate(&cfg); err != nil {
		return nil, false, err
	}
	slog.Debug("CLI parameter validation complete.")

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}

// explicitFlags returns the names of the flags present on the command line.
func explicitFlags(flagSet *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFile copies settings from the file unless the matching flag was given.
func applyFile(cfg *app.Config, file *config.File, explicit map[string]bool) {
	if file.LogLevel != nil && !explicit["log-level"] {
		cfg.LogLevel = *file.LogLevel
	}
	if file.LogFormat != nil && !explicit["log-format"] {
		cfg.LogFormat = *file.LogFormat
	}
	if file.Format != nil && !explicit["format"] {
		cfg.Format = *file.Format
	}
	if file.Objective != nil && !explicit["objective"] {
		cfg.Objective = *file.Objective
	}
	if r := file.Resolve; r != nil {
		if r.MaxDepth != nil && !explicit["max-depth"] {
			cfg.MaxDepth = *r.MaxDepth
		}
		if r.DefaultValue != nil && !explicit["default"] {
			cfg.DefaultValue = *r.DefaultValue
		}
	}
	if file.Declarations != nil {
		cfg.OutputMarkers = file.Declarations.OutputMarkers
	}
	if file.Solution != nil {
		cfg.ReservedKeys = file.Solution.ReservedKeys
	}
}

func validate(cfg *app.Config) error {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "auto", "text", "json":
		// valid
	default:
		return &ExitError{Code: 2, Message: "invalid log-format: must be 'auto', 'text' or 'json'"}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	cfg.Format = string(format)

	if cfg.MaxDepth <= 0 {
		return &ExitError{Code: 2, Message: "invalid max-depth: must be positive"}
	}
	if cfg.DefaultValue == "" {
		return &ExitError{Code: 2, Message: "invalid default: cannot be empty"}
	}
	return nil
}
