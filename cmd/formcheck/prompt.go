package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formvalidator/pkg/prompt"
)

func newPromptCommand(a *app) *cobra.Command {
	var (
		src         sourceFlags
		maxAttempts int
	)
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill a form interactively",
		Long: `Prompt asks for the value of every field in the terminal and asks again
until the field satisfies its constraints. The final report is printed once
every field is valid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			static, err := a.loadForm(cmd, src)
			if err != nil {
				return err
			}
			session, err := prompt.NewSession(static,
				prompt.WithDriver(prompt.NewSurveyDriver(cmd.ErrOrStderr())),
				prompt.WithMaxAttempts(maxAttempts),
			)
			if err != nil {
				return err
			}
			if err := session.Run(cmd.Context()); err != nil {
				if errors.Is(err, prompt.ErrAborted) {
					return &ExitError{Code: 130, Err: err}
				}
				return err
			}
			return a.check(cmd, static)
		},
	}
	src.register(cmd, false)
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "give up after this many invalid answers for one field (0 means no limit)")
	return cmd
}
