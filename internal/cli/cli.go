package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

type Options struct {
	ConfigPath    string
	InputPath     string
	QuantumBudget int
	LogLevel      slog.Level
}

// Parse processes command-line arguments. It returns the options, a boolean
// indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("fcfs-simulator", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
fcfs-simulator - First-Come-First-Served CPU scheduling simulator.

Usage:
  fcfs-simulator [options]

Without -input the HTTP API is served on the configured port.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "./", "Directory containing config.yaml.")
	inputFlag := flagSet.String("input", "", "JSON file with jobs to simulate once and print.")
	budgetFlag := flagSet.Int("budget", 0, "Quantum budget override. 0 keeps the configured value.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	var level slog.Level
	switch strings.ToLower(*logLevelFlag) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *budgetFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid budget: must not be negative"}
	}

	return &Options{
		ConfigPath:    *configFlag,
		InputPath:     *inputFlag,
		QuantumBudget: *budgetFlag,
		LogLevel:      level,
	}, false, nil
}
