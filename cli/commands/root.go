// Package commands implements the prisma-class-validator command line.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/prisma-class-validator-go/cli/internal/version"
	"github.com/satishbabariya/prisma-class-validator-go/internal/debug"
)

const rootLong = `Generate class-validator TypeScript classes from a Prisma schema.

Reads a schema.prisma file (or a DMMF .json/.yaml document) and writes
one annotated class per model, one TypeScript enum per enum, and barrel
files that re-export them.

Settings are read from .prisma-class-validator.yaml, PCV_* environment
variables and the schema's generator block:

  generator validators {
    provider    = "prisma-class-validator-generator"
    output      = "../src/generated"
    decimalType = "number"
  }`

func newRootCmd() *cobra.Command {
	var debugEnabled bool

	cmd := &cobra.Command{
		Use:           "prisma-class-validator",
		Short:         "Generate class-validator classes from a Prisma schema",
		Long:          rootLong,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.Init(debugEnabled)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&debugEnabled, "debug", false, "Write debug logs to stderr")
	cmd.PersistentFlags().String("config", "", "Config file (default .prisma-class-validator.yaml in ., $HOME or ~/.config/prisma-class-validator)")

	cmd.AddCommand(
		newGenerateCmd(),
		newValidateCmd(),
		newPreviewCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute is the main entry point for the CLI
func Execute(ctx context.Context, args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
