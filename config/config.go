// Package config loads optional overrides for the planner's static
// limits and search timeout. Defaults come from core.DefaultLimits;
// a config file or ROVERPLAN_-prefixed environment variables can
// override them. Command-line flags do not override individual values.
package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/elektrokombinacija/roverplan/internal/core"
)

// Config bundles the planner's tunable, non-domain parameters.
type Config struct {
	Limits  core.Limits
	Timeout time.Duration
}

// Default returns the reference implementation's static limits with a
// generous search timeout.
func Default() Config {
	return Config{
		Limits:  core.DefaultLimits(),
		Timeout: 600 * time.Second,
	}
}

// Load reads overrides from configPath (if non-empty) and the
// ROVERPLAN_-prefixed environment, layered over Default.
func Load(configPath string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("ROVERPLAN")
	v.AutomaticEnv()
	v.SetDefault("limits.max_rovers", cfg.Limits.MaxRovers)
	v.SetDefault("limits.max_waypoints", cfg.Limits.MaxWaypoints)
	v.SetDefault("limits.max_cameras", cfg.Limits.MaxCameras)
	v.SetDefault("limits.max_stores", cfg.Limits.MaxStores)
	v.SetDefault("limits.max_objectives", cfg.Limits.MaxObjectives)
	v.SetDefault("limits.max_modes", cfg.Limits.MaxModes)
	v.SetDefault("timeout_seconds", int(cfg.Timeout.Seconds()))

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	cfg.Limits = core.Limits{
		MaxRovers:     v.GetInt("limits.max_rovers"),
		MaxWaypoints:  v.GetInt("limits.max_waypoints"),
		MaxCameras:    v.GetInt("limits.max_cameras"),
		MaxStores:     v.GetInt("limits.max_stores"),
		MaxObjectives: v.GetInt("limits.max_objectives"),
		MaxModes:      v.GetInt("limits.max_modes"),
	}
	cfg.Timeout = time.Duration(v.GetInt("timeout_seconds")) * time.Second

	return cfg, nil
}
