// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/byteland/experiment"
	"github.com/katalvlaran/byteland/internal/app"
	"github.com/katalvlaran/byteland/treegen"
)

// Environment variables consulted for flag defaults.
const (
	EnvLogLevel  = "BYTELAND_LOG_LEVEL"
	EnvLogFormat = "BYTELAND_LOG_FORMAT"
	EnvLimit     = "BYTELAND_EXPERIMENT_LIMIT"
)

const defaultEnvFile = ".env"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("byteland", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
Byteland - counts the union rounds needed to merge a tree of cities into one.

Usage:
  byteland [options] [INPUT]
  byteland -gen SHAPE -n N [-seed S]

Arguments:
  INPUT
    Protocol document to read. Standard input is used when omitted or "-".

Shapes:
  %s

Environment:
  %s, %s, %s
    Defaults for -log-level, -log-format and -limit, also read from the .env file.

Options:
`, strings.Join(treegen.Shapes(), ", "), EnvLogLevel, EnvLogFormat, EnvLimit)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the protocol document.")
	iFlag := flagSet.String("i", "", "Path to the protocol document (shorthand).")
	envFileFlag := flagSet.String("env-file", defaultEnvFile, "File with KEY=VALUE defaults. A missing default file is ignored.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	limitFlag := flagSet.Int("limit", experiment.MaxExperiments, "Exclusive upper bound of the experiment count.")
	inspectFlag := flagSet.Bool("inspect", false, "Log a structural report for every experiment.")
	genFlag := flagSet.String("gen", "", "Generate a document for the named tree shape instead of reading one.")
	nFlag := flagSet.Int("n", 10, "Number of cities for -gen.")
	seedFlag := flagSet.Int64("seed", 1, "Random seed for -gen random.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	env, err := readEnv(*envFileFlag, set["env-file"])
	if err != nil {
		return nil, false, err
	}
	if !set["log-level"] {
		if v, ok := env.lookup(EnvLogLevel); ok {
			*logLevelFlag = v
		}
	}
	if !set["log-format"] {
		if v, ok := env.lookup(EnvLogFormat); ok {
			*logFormatFlag = v
		}
	}
	if !set["limit"] {
		if v, ok := env.lookup(EnvLimit); ok {
			n, convErr := strconv.Atoi(v)
			if convErr != nil {
				return nil, false, usageError("invalid %s %q: not an integer", EnvLimit, v)
			}
			*limitFlag = n
		}
	}

	path := ""
	if *inputFlag != "" {
		path = *inputFlag
	} else if *iFlag != "" {
		path = *iFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, usageError("too many arguments: %v", flagSet.Args())
	}
	slog.Debug("Input path determined.", "path", path)

	config, err := app.NewConfig(app.Config{
		Input:     path,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
		Limit:     *limitFlag,
		Inspect:   *inspectFlag,
		Gen:       strings.ToLower(*genFlag),
		N:         *nFlag,
		Seed:      *seedFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// environment resolves variables from the process first, then the .env file.
type environment struct {
	file map[string]string
}

func (e environment) lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v, true
	}
	v, ok := e.file[key]
	return v, ok && v != ""
}

// readEnv reads path without touching the process environment. A missing
// file is only an error when it was requested explicitly.
func readEnv(path string, explicit bool) (environment, error) {
	if path == "" {
		return environment{}, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return environment{}, nil
		}
		return environment{}, usageError("failed to read env file: %v", err)
	}
	slog.Debug("Env file loaded.", "path", path, "keys", len(values))

	return environment{file: values}, nil
}
