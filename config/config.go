package config

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	RoundRobinTimeQuantum int
	SwitchCost            int
	ReportDetails         bool
}

// LoadSchedulerConfig reads the configuration from path, or from config.yaml
// in the working directory when path is empty.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "warn")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.switch_cost", 1)
	v.SetDefault("report.details", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		log.Debug("no config.yaml found, using defaults")
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log.level"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		SwitchCost:            v.GetInt("scheduler.switch_cost"),
		ReportDetails:         v.GetBool("report.details"),
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", cfg.RoundRobinTimeQuantum)
	}
	if cfg.SwitchCost < 0 {
		return nil, fmt.Errorf("scheduler.switch_cost must not be negative, got %d", cfg.SwitchCost)
	}
	return cfg, nil
}
