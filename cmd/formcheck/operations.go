package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formvalidator/pkg/form/openapi"
)

func newOperationsCommand(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List the operations of an OpenAPI document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			ids, err := openapi.Operations(cmd.Context(), data)
			if err != nil {
				return err
			}
			a.logger.Debug("operations listed", "path", path, "count", len(ids))
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "openapi", "", "OpenAPI document (JSON or YAML)")
	_ = cmd.MarkFlagRequired("openapi")
	return cmd
}
