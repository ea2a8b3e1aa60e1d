package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

// app carries per-invocation state so commands can be built repeatedly in
// tests.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	logger  *log.Logger
	stderr  io.Writer
}

func newApp(stderr io.Writer) *app {
	if stderr == nil {
		stderr = os.Stderr
	}
	return &app{v: viper.New(), stderr: stderr}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "formcheck",
		Short: "Validate form values against control constraints",
		Long: titleStyle.Render("formcheck") + ` checks the values of a form against the constraints its
controls declare: required, minlength, maxlength, min, max, step and the
email/url control types.

Forms are described in JSON or YAML, or derived from the request body of an
OpenAPI operation.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	root.PersistentFlags().String("format", defaultFormat, "report format: text, json or html")
	root.PersistentFlags().String("log-level", defaultLogLevel, "log level: debug, info, warn or error")

	root.AddCommand(newValidateCommand(a))
	root.AddCommand(newPromptCommand(a))
	root.AddCommand(newOperationsCommand(a))
	return root
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

func execute() int {
	a := newApp(os.Stderr)
	if err := fang.Execute(
		context.Background(),
		newRootCommand(a),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		return 1
	}
	return 0
}
