package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/prisma-class-validator-go/cli/internal/ui"
	"github.com/satishbabariya/prisma-class-validator-go/generator"
	"github.com/satishbabariya/prisma-class-validator-go/generator/codegen"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

func newPreviewCmd() *cobra.Command {
	var (
		schemaPath string
		raw        bool
	)

	cmd := &cobra.Command{
		Use:   "preview <name> [schema-path]",
		Short: "Show the file generated for one model or enum",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(cmd, schemaPath, args[1:], nil)
			if err != nil {
				return err
			}
			gen, err := newGenerator(in)
			if err != nil {
				return err
			}
			plan, err := gen.Plan(cmd.Context())
			if err != nil {
				return err
			}
			file, err := findPlannedFile(plan, args[0])
			if err != nil {
				return err
			}

			if raw {
				_, err = cmd.OutOrStdout().Write(file.Content())
				return err
			}
			return ui.PrintMarkdown(previewMarkdown(file))
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Path to schema file")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the file without markdown rendering")
	return cmd
}

// findPlannedFile returns the model or enum file declaring name. Models
// win over enums; names are unique across both after validation.
func findPlannedFile(plan *generator.Plan, name string) (codegen.GeneratedFile, error) {
	for _, f := range plan.Models {
		if f.Path == codegen.ModelPath(name) {
			return f, nil
		}
	}
	for _, f := range plan.Enums {
		if f.Path == codegen.EnumPath(name) {
			return f, nil
		}
	}
	return codegen.GeneratedFile{}, errors.WithHint(
		errors.Newf("no model or enum named %q", name),
		"names are case-sensitive; run validate to list the models",
	)
}

func previewMarkdown(file codegen.GeneratedFile) string {
	return fmt.Sprintf("# %s\n\n```ts\n%s```\n", file.Path, file.Content())
}
