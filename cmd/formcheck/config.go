package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formvalidator/pkg/report"
)

const (
	envPrefix       = "FORMCHECK"
	defaultFormat   = "text"
	defaultLogLevel = "warn"
)

// Config is the resolved CLI configuration. Flags override environment
// variables, which override the config file.
type Config struct {
	Format   report.Format
	LogLevel log.Level
}

func (a *app) configure(cmd *cobra.Command) error {
	v := a.v
	v.SetDefault("format", defaultFormat)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("format", flags.Lookup("format")); err != nil {
		return fmt.Errorf("bind format flag: %w", err)
	}
	if err := v.BindPFlag("log_level", flags.Lookup("log-level")); err != nil {
		return fmt.Errorf("bind log-level flag: %w", err)
	}

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}

	format, err := report.ParseFormat(v.GetString("format"))
	if err != nil {
		return err
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(v.GetString("log_level"))))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", v.GetString("log_level"), err)
	}
	a.cfg = Config{Format: format, LogLevel: level}

	a.logger = log.NewWithOptions(a.stderr, log.Options{
		Prefix: "formcheck",
		Level:  level,
	})
	a.logger.Debug("configuration loaded", "format", format, "log_level", level.String(), "config", a.cfgFile)
	return nil
}
