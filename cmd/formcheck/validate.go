package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	formvalidator "github.com/goliatone/go-formvalidator"
	"github.com/goliatone/go-formvalidator/pkg/form"
	"github.com/goliatone/go-formvalidator/pkg/report"
	"github.com/goliatone/go-formvalidator/pkg/validator"
)

// errInvalid is the error carried by the exit code of an invalid form.
var errInvalid = errors.New("form is invalid")

type sourceFlags struct {
	form      string
	values    string
	openapi   string
	operation string
}

func (s *sourceFlags) register(cmd *cobra.Command, withValues bool) {
	cmd.Flags().StringVar(&s.form, "form", "", "form definition file (JSON or YAML)")
	cmd.Flags().StringVar(&s.openapi, "openapi", "", "OpenAPI document to derive the form from")
	cmd.Flags().StringVar(&s.operation, "operation", "", "operation id used with --openapi")
	if withValues {
		cmd.Flags().StringVar(&s.values, "values", "", "values file (JSON or YAML) applied to the form")
	}
	cmd.MarkFlagsMutuallyExclusive("form", "openapi")
	cmd.MarkFlagsOneRequired("form", "openapi")
	cmd.MarkFlagsRequiredTogether("openapi", "operation")
}

func (a *app) loadForm(cmd *cobra.Command, src sourceFlags) (*form.Static, error) {
	if src.openapi != "" {
		a.logger.Debug("loading openapi form", "path", src.openapi, "operation", src.operation)
		return formvalidator.LoadOpenAPIForm(cmd.Context(), src.openapi, src.operation, src.values)
	}
	a.logger.Debug("loading form", "path", src.form, "values", src.values)
	return formvalidator.LoadForm(src.form, src.values)
}

func newValidateCommand(a *app) *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate form values and print a report",
		Long: `Validate loads a form, applies an optional values file and runs the
constraint chain of every field. The command exits with status 1 when any
field is invalid.`,
		Example: `  formcheck validate --form signup.yaml --values submitted.json
  formcheck validate --openapi api.yaml --operation createMember --values body.json --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			static, err := a.loadForm(cmd, src)
			if err != nil {
				return err
			}
			return a.check(cmd, static)
		},
	}
	src.register(cmd, true)
	return cmd
}

func (a *app) check(cmd *cobra.Command, f form.Form) error {
	result, err := formvalidator.Check(f, validator.WithLogger(a.logger))
	if err != nil {
		return err
	}
	if err := report.Write(cmd.OutOrStdout(), result, a.cfg.Format); err != nil {
		return err
	}
	if !result.Valid {
		a.logger.Info("validation failed", "invalid_fields", len(result.Errors()))
		return &ExitError{Code: 1, Err: fmt.Errorf("%w: %d field(s) failed", errInvalid, len(result.Errors()))}
	}
	return nil
}
