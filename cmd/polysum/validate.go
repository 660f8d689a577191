package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/polysum/internal/schemas"
)

const defaultResponseSchema = "schemas/summarize_response.schema.json"

var validateSchemaPath string

var validateCmd = &cobra.Command{
	Use:   "validate <response.json>",
	Short: "Validate a saved summarize response against its JSON Schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to JSON Schema file (defaults to "+defaultResponseSchema+")")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	schemaPath := validateSchemaPath
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(filepath.FromSlash(defaultResponseSchema))
		if schemaPath == "" {
			return fmt.Errorf("schema file not found: %s", defaultResponseSchema)
		}
	}

	if err := schemas.ValidateJSON(schemaPath, args[0]); err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Validation failed")
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return nil
}
