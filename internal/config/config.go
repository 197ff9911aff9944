// Package config resolves startup options from CLI flags and the
// environment. Flags win over environment variables; an optional env
// file is loaded first so packaged launchers can ship defaults.
package config

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"quickcalc/internal/models"
)

// CLI is the kong flag grammar.
type CLI struct {
	LogLevel string `help:"Log verbosity." enum:"debug,info,warn,error" default:"info" env:"QUICKCALC_LOG_LEVEL"`
	EnvFile  string `help:"Optional env file loaded before flag parsing." type:"path" optional:""`
	Theme    string `help:"Theme variant override." enum:"system,light,dark" default:"system" env:"QUICKCALC_THEME"`
	DigitCap int    `help:"Maximum digits per numeral." default:"16" env:"QUICKCALC_DIGIT_CAP"`
}

// Config is the resolved application configuration.
type Config struct {
	LogLevel zerolog.Level
	Theme    models.ThemeVariant
	DigitCap int
}

// Load parses args (without the program name) into a Config.
func Load(args []string) (*Config, error) {
	// A leading --env-file has to be honored before kong reads env
	// tags, so peek for it first.
	if path := peekEnvFile(args); path != "" {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", path, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("quickcalc"),
		kong.Description("Desktop keypad calculator."))
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(cli.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := &Config{
		LogLevel: level,
		Theme:    models.ThemeVariant(cli.Theme),
		DigitCap: cli.DigitCap,
	}
	if cfg.DigitCap <= 0 {
		cfg.DigitCap = models.DefaultDigitCap
	}
	return cfg, nil
}

func peekEnvFile(args []string) string {
	for i, arg := range args {
		if arg == "--env-file" && i+1 < len(args) {
			return args[i+1]
		}
		if len(arg) > len("--env-file=") && arg[:len("--env-file=")] == "--env-file=" {
			return arg[len("--env-file="):]
		}
	}
	return ""
}
