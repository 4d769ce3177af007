// Package config loads the solver's Rules (§6 "Rules") and CLI defaults
// through viper, the way the teacher layers flags, env vars and config
// files into one Config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/cardspan/kspider/rules"
)

// DefaultTimeoutSeconds is the CLI's positional timeoutSeconds default
// (§6 "CLI surface").
const DefaultTimeoutSeconds = 30

// Config bundles the Rules a Game is dealt under and the per-deck solve
// budget.
type Config struct {
	Rules          rules.Rules
	TimeoutSeconds float64
}

// Load reads an optional rules file (YAML, TOML or JSON, whatever viper's
// file-extension sniffing picks) from rulesPath, falling back to
// rules.Default() for anything unset, then applies timeoutSeconds if
// positive.
func Load(rulesPath string, timeoutSeconds float64) (Config, error) {
	v := viper.New()
	v.SetDefault("drawSize", rules.DefaultDrawSize)
	v.SetDefault("tableauSize", rules.DefaultTableauSize)

	if rulesPath != "" {
		v.SetConfigFile(rulesPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading rules file %q: %w", rulesPath, err)
		}
	}

	r := rules.Rules{
		DrawSize:    v.GetInt("drawSize"),
		TableauSize: v.GetInt("tableauSize"),
	}
	if err := r.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid rules: %w", err)
	}

	if timeoutSeconds <= 0 {
		timeoutSeconds = DefaultTimeoutSeconds
	}

	return Config{Rules: r, TimeoutSeconds: timeoutSeconds}, nil
}
