package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"fcfs-simulator/api"
	"fcfs-simulator/config"
	"fcfs-simulator/internal/cli"
	"fcfs-simulator/internal/printer"
	"fcfs-simulator/internal/requests"
	"fcfs-simulator/internal/schedulers"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: opts.LogLevel,
	})))

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.QuantumBudget > 0 {
		cfg.QuantumBudget = opts.QuantumBudget
	}

	if opts.InputPath != "" {
		return simulateFile(outW, opts.InputPath, cfg)
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api.Register(app, api.NewSchedulerHandlerImpl(cfg))

	slog.Info("listening", "port", cfg.Port, "budget", cfg.QuantumBudget)
	return app.Listen(fmt.Sprintf(":%d", cfg.Port))
}

func simulateFile(outW io.Writer, path string, cfg *config.SchedulerConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	var request requests.ScheduleRequests
	if err := json.Unmarshal(data, &request); err != nil {
		return fmt.Errorf("parsing input %s: %w", path, err)
	}

	response, err := schedulers.ScheduleFirstComeFirstServe(request, cfg)
	if err != nil {
		return err
	}
	printer.PrintSchedule(outW, "First-come, first-serve", response)
	return nil
}
