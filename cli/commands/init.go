package commands

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/prisma-class-validator-go/cli/internal/config"
	"github.com/satishbabariya/prisma-class-validator-go/cli/internal/ui"
	"github.com/satishbabariya/prisma-class-validator-go/generator/codegen"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

// askOne is replaced in tests.
var askOne = survey.AskOne

type initOptions struct {
	path  string
	yes   bool
	force bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a .prisma-class-validator.yaml config file",
		Long: `Write a .prisma-class-validator.yaml config file.

Prompts for the schema location, the output directory, the Decimal
representation and pruning. Use --yes to accept the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.path, "path", config.FileName+".yaml", "Where to write the config file")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Accept the defaults without prompting")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	ui.PrintHeader("prisma-class-validator", "Initialize")

	exists, err := afero.Exists(config.AppFs, opts.path)
	if err != nil {
		return errors.Wrapf(err, "stat %s", opts.path)
	}
	if exists && !opts.force {
		return errors.WithHint(
			errors.Newf("config file already exists: %s", opts.path),
			"pass --force to overwrite it",
		)
	}

	cfg, err := config.Load(configFileFlag(cmd))
	if err != nil {
		return err
	}
	if cfg.SchemaPath == "" {
		cfg.SchemaPath = findSchemaFile()
		if cfg.SchemaPath == "" {
			cfg.SchemaPath = commonSchemaPaths[0]
		}
	}

	if !opts.yes {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	path, err := config.Save(cfg, opts.path)
	if err != nil {
		return err
	}

	ui.PrintSuccess("Wrote %s", path)
	fmt.Println()
	ui.PrintSection("Next Steps")
	ui.PrintList([]string{
		"Review " + path,
		"Run: prisma-class-validator generate",
		"Import the classes from " + cfg.Output,
	})
	return nil
}

func promptConfig(cfg *config.Config) error {
	workers := strconv.Itoa(cfg.Workers)
	questions := []struct {
		prompt survey.Prompt
		answer any
		opts   []survey.AskOpt
	}{
		{
			prompt: &survey.Input{Message: "Schema path:", Default: cfg.SchemaPath},
			answer: &cfg.SchemaPath,
			opts:   []survey.AskOpt{survey.WithValidator(survey.Required)},
		},
		{
			prompt: &survey.Input{Message: "Output directory:", Default: cfg.Output},
			answer: &cfg.Output,
			opts:   []survey.AskOpt{survey.WithValidator(survey.Required)},
		},
		{
			prompt: &survey.Select{
				Message: "Decimal fields as:",
				Options: []string{codegen.DecimalTypeDecimal, codegen.DecimalTypeNumber},
				Default: cfg.DecimalType,
			},
			answer: &cfg.DecimalType,
		},
		{
			prompt: &survey.Confirm{Message: "Emit schema documentation as JSDoc?", Default: cfg.EmitDocs},
			answer: &cfg.EmitDocs,
		},
		{
			prompt: &survey.Confirm{Message: "Delete generated files that are no longer in the schema?", Default: cfg.Prune},
			answer: &cfg.Prune,
		},
		{
			prompt: &survey.Input{Message: "Workers (0 uses every CPU):", Default: workers},
			answer: &workers,
			opts:   []survey.AskOpt{survey.WithValidator(validateWorkers)},
		},
	}

	for _, q := range questions {
		if err := askOne(q.prompt, q.answer, q.opts...); err != nil {
			return errors.Wrap(err, "prompt")
		}
	}

	n, err := strconv.Atoi(workers)
	if err != nil {
		return errors.Wrapf(err, "workers %q", workers)
	}
	cfg.Workers = n
	return nil
}

func validateWorkers(ans any) error {
	s, _ := ans.(string)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return errors.New("enter a whole number, 0 or more")
	}
	return nil
}
