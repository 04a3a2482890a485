package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Validate checks configuration values before any trial starts. It returns
// the first violation found.
func Validate() error {
	if trials := viper.GetInt("trials"); trials < 1 {
		return fmt.Errorf("invalid config: trials must be >= 1, got %d", trials)
	}

	if sweeps := viper.GetInt("sweeps"); sweeps < 1 {
		return fmt.Errorf("invalid config: sweeps must be >= 1, got %d", sweeps)
	}

	if timeout := viper.GetDuration("timeout"); timeout < 0 {
		return fmt.Errorf("invalid config: timeout must be >= 0, got %s", timeout)
	}

	if threshold := viper.GetFloat64("threshold"); threshold <= 0 || threshold > 1000 {
		return fmt.Errorf("invalid config: threshold must be in (0, 1000], got %v", threshold)
	}

	switch backend := viper.GetString("history.backend"); backend {
	case "", "sqlite", "sqlite3", "postgres", "postgresql":
	default:
		return fmt.Errorf("invalid config: unknown history backend %q", backend)
	}

	if port := viper.GetInt("metrics_port"); port < 0 || port > 65535 {
		return fmt.Errorf("invalid config: metrics_port must be in [0, 65535], got %d", port)
	}

	return nil
}
