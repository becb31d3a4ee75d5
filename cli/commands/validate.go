package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/prisma-class-validator-go/cli/internal/ui"
	"github.com/satishbabariya/prisma-class-validator-go/dmmf"
)

func newValidateCmd() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate [schema-path]",
		Short: "Check a schema without writing files",
		Long: `Check a schema without writing files.

This command will:
- Parse the schema file
- Check for duplicate names and unknown type references
- Resolve every field to its TypeScript type and annotations
- Display a summary`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, schemaPath)
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Path to schema file")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string, schemaPath string) error {
	ui.PrintHeader("prisma-class-validator", "Validate Schema")

	in, err := loadInput(cmd, schemaPath, args, nil)
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

	ui.PrintSuccess("Schema is valid: %s", in.Path)
	fmt.Println()

	ui.PrintSection("Summary")
	ui.PrintTable([]string{"Item", "Count"}, summaryRows(in.Doc, len(plan.Files())))

	if len(in.Doc.Datamodel.Models) > 0 {
		fmt.Println()
		ui.PrintSection("Models")
		rows := make([][]string, 0, len(in.Doc.Datamodel.Models))
		for _, m := range in.Doc.Datamodel.Models {
			rows = append(rows, []string{m.Name, strconv.Itoa(len(m.Fields)), strconv.Itoa(countKind(m, dmmf.KindRelation))})
		}
		ui.PrintTable([]string{"Model", "Fields", "Relations"}, rows)
	}
	return nil
}

func summaryRows(doc *dmmf.Document, files int) [][]string {
	var fields, relations, enumFields int
	for _, m := range doc.Datamodel.Models {
		fields += len(m.Fields)
		relations += countKind(m, dmmf.KindRelation)
		enumFields += countKind(m, dmmf.KindEnum)
	}
	return [][]string{
		{"Models", strconv.Itoa(len(doc.Datamodel.Models))},
		{"Enums", strconv.Itoa(len(doc.Datamodel.Enums))},
		{"Fields", strconv.Itoa(fields)},
		{"Relation fields", strconv.Itoa(relations)},
		{"Enum fields", strconv.Itoa(enumFields)},
		{"Files to generate", strconv.Itoa(files)},
	}
}

func countKind(m dmmf.Model, kind dmmf.FieldKind) int {
	n := 0
	for _, f := range m.Fields {
		if f.Kind == kind {
			n++
		}
	}
	return n
}
