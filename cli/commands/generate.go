package commands

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/prisma-class-validator-go/cli/internal/config"
	"github.com/satishbabariya/prisma-class-validator-go/cli/internal/ui"
	"github.com/satishbabariya/prisma-class-validator-go/cli/internal/watch"
	"github.com/satishbabariya/prisma-class-validator-go/generator"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

type generateOptions struct {
	schema      string
	output      string
	decimalType string
	prune       bool
	workers     int
	watch       bool
	dryRun      bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [schema-path]",
		Short: "Generate class-validator classes",
		Long: `Generate class-validator classes from your Prisma schema.

This command will:
- Parse the schema (or load a DMMF .json/.yaml document)
- Check names and type references
- Write models/, enums/ and the barrel files to the output directory`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.schema, "schema", "s", "", "Path to schema file")
	flags.StringVarP(&opts.output, "output", "o", "", "Output directory")
	flags.StringVar(&opts.decimalType, "decimal-type", "", `Decimal representation: "Decimal" or "number"`)
	flags.BoolVar(&opts.prune, "prune", false, "Delete generated files no longer in the schema")
	flags.IntVar(&opts.workers, "workers", 0, "Parallel workers (0 uses GOMAXPROCS)")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "Watch schema file for changes")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Print the files that would be written")
	return cmd
}

// apply overlays the flags the user actually set.
func (o *generateOptions) apply(cmd *cobra.Command) func(*config.Config) {
	return func(cfg *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("output") {
			cfg.Output = o.output
		}
		if flags.Changed("decimal-type") {
			cfg.DecimalType = o.decimalType
		}
		if flags.Changed("prune") {
			cfg.Prune = o.prune
		}
		if flags.Changed("workers") {
			cfg.Workers = o.workers
		}
	}
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	if opts.watch {
		return runGenerateWatch(cmd, args, opts)
	}

	ui.PrintHeader("prisma-class-validator", "Generate")
	in, err := loadInput(cmd, opts.schema, args, opts.apply(cmd))
	if err != nil {
		return err
	}

	info := pterm.Info.WithPrefix(pterm.Prefix{
		Text:  "INFO",
		Style: pterm.NewStyle(pterm.FgBlue),
	})
	info.Println(fmt.Sprintf("Schema: %s", in.Path))
	info.Println(fmt.Sprintf("Output: %s", in.Config.Output))
	if in.Config.ConfigFile != "" {
		info.Println(fmt.Sprintf("Config: %s", in.Config.ConfigFile))
	}
	fmt.Println()

	if opts.dryRun {
		return printPlan(cmd, in)
	}

	report, err := generateOnce(cmd, in)
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}

func generateOnce(cmd *cobra.Command, in *input) (*generator.Report, error) {
	gen, err := newGenerator(in)
	if err != nil {
		return nil, err
	}

	spinner, _ := ui.PrintSpinner("Generating classes...")
	report, err := gen.Run(cmd.Context())
	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		return nil, errors.Wrap(err, "generate")
	}

	absPath, _ := filepath.Abs(in.Config.Output)
	ui.PrintSuccess("Generated %d files at %s", len(report.Files), absPath)
	return report, nil
}

func printReport(report *generator.Report) {
	fmt.Println()
	ui.PrintSection("Files")
	for _, path := range report.Written {
		ui.PrintFileStatus(ui.StatusWritten, path)
	}
	for _, path := range report.Unchanged {
		ui.PrintFileStatus(ui.StatusUnchanged, path)
	}
	for _, path := range report.Pruned {
		ui.PrintFileStatus(ui.StatusPruned, path)
	}
}

func printPlan(cmd *cobra.Command, in *input) error {
	gen, err := newGenerator(in)
	if err != nil {
		return err
	}
	plan, err := gen.Plan(cmd.Context())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(plan.Files()))
	for _, f := range plan.Files() {
		rows = append(rows, []string{f.Path, strconv.Itoa(len(f.Content())), ui.FormatStatus(ui.StatusPlanned)})
	}
	ui.PrintTable([]string{"File", "Bytes", "Status"}, rows)
	ui.PrintInfo("Dry run: nothing was written")
	return nil
}

func runGenerateWatch(cmd *cobra.Command, args []string, opts *generateOptions) error {
	ui.PrintHeader("prisma-class-validator", "Watch Mode")

	cfg, err := config.Load(configFileFlag(cmd))
	if err != nil {
		return err
	}
	schemaPath, err := getSchemaPath(opts.schema, args, cfg)
	if err != nil {
		return err
	}

	first := true
	regenerate := func() error {
		initial := first
		first = false
		if !initial {
			ui.PrintInfo("Schema changed, regenerating...")
		}

		err := regenerateOnce(cmd, schemaPath, opts)
		if err != nil && !initial {
			// The first failure is returned to the caller instead.
			ui.PrintError("%v", err)
			ui.PrintHints(errors.GetAllHints(err))
		}
		return err
	}

	watcher, err := watch.NewWatcher(schemaPath, regenerate)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		return err
	}

	ui.PrintSuccess("Watching %s for changes... (Press Ctrl+C to stop)", schemaPath)
	<-cmd.Context().Done()

	ui.PrintInfo("Stopping watch mode...")
	return nil
}

func regenerateOnce(cmd *cobra.Command, schemaPath string, opts *generateOptions) error {
	in, err := loadInput(cmd, schemaPath, nil, opts.apply(cmd))
	if err != nil {
		return err
	}
	report, err := generateOnce(cmd, in)
	if err != nil {
		return err
	}
	ui.PrintInfo("%d written, %d unchanged, %d pruned",
		len(report.Written), len(report.Unchanged), len(report.Pruned))
	return nil
}
