package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultPort          = 9095
	DefaultQuantumBudget = 100
	DefaultChunkSize     = 10
)

type SchedulerConfig struct {
	Port          int
	QuantumBudget int
	ChunkSize     int
}

func Default() *SchedulerConfig {
	return &SchedulerConfig{
		Port:          DefaultPort,
		QuantumBudget: DefaultQuantumBudget,
		ChunkSize:     DefaultChunkSize,
	}
}

// Load reads config.yaml from path. A missing file is not an error; the
// defaults and any FCFS_ environment overrides apply instead.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	v.SetDefault("port", DefaultPort)
	v.SetDefault("scheduler.fcfs.quantum_budget", DefaultQuantumBudget)
	v.SetDefault("scheduler.fcfs.chunk_size", DefaultChunkSize)

	v.SetEnvPrefix("fcfs")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		slog.Debug("no config file found, using defaults", "path", path)
	}

	return &SchedulerConfig{
		Port:          v.GetInt("port"),
		QuantumBudget: v.GetInt("scheduler.fcfs.quantum_budget"),
		ChunkSize:     v.GetInt("scheduler.fcfs.chunk_size"),
	}, nil
}
