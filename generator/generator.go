// Package generator turns a Prisma datamodel into a tree of TypeScript
// class-validator files.
package generator

import (
	"context"
	"runtime"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/satishbabariya/prisma-class-validator-go/dmmf"
	"github.com/satishbabariya/prisma-class-validator-go/generator/codegen"
	"github.com/satishbabariya/prisma-class-validator-go/internal/debug"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

// Config controls a generation run.
type Config struct {
	// Output is the directory the tree is written under.
	Output  string          `mapstructure:"output" validate:"required"`
	Options codegen.Options `mapstructure:",squash" validate:"-"`
	// Workers bounds emission and write parallelism. Zero means GOMAXPROCS.
	Workers int `mapstructure:"workers" validate:"min=0"`
	// Prune removes model and enum files under Output that the run did not produce.
	Prune bool `mapstructure:"prune"`
}

// DefaultConfig returns a Config writing to output with default options.
func DefaultConfig(output string) Config {
	return Config{
		Output:  output,
		Options: codegen.DefaultOptions(),
	}
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the config, including its emission options.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return errors.WithHint(
			errors.Wrap(err, "invalid generator config"),
			"output is required and workers must not be negative",
		)
	}
	return c.Options.Validate()
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Plan is the complete, in-memory output of a run. Nothing is written until
// the plan is complete.
type Plan struct {
	Enums   []codegen.GeneratedFile
	Models  []codegen.GeneratedFile
	Barrels []codegen.GeneratedFile
}

// Files returns every file in the plan: enums, then models, then barrels.
func (p *Plan) Files() []codegen.GeneratedFile {
	files := make([]codegen.GeneratedFile, 0, len(p.Enums)+len(p.Models)+len(p.Barrels))
	files = append(files, p.Enums...)
	files = append(files, p.Models...)
	return append(files, p.Barrels...)
}

// Option configures a Generator.
type Option func(*Generator)

// WithFs sets the filesystem the tree is written to. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

// WithPhaseHook registers fn to be called on every phase transition.
func WithPhaseHook(fn func(Phase)) Option {
	return func(g *Generator) {
		g.hooks = append(g.hooks, fn)
	}
}

// Generator drives a run through its phases:
// init, emit-enums, emit-models, emit-barrels, then done or failed.
type Generator struct {
	doc   *dmmf.Document
	cfg   Config
	fs    afero.Fs
	hooks []func(Phase)

	mu    sync.Mutex
	phase Phase
}

// New creates a Generator for doc.
func New(doc *dmmf.Document, cfg Config, opts ...Option) (*Generator, error) {
	if doc == nil {
		return nil, errors.New("generator: nil document")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		doc: doc,
		cfg: cfg,
		fs:  afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(g)
	}
	debug.Debug("Creating new generator",
		"output", cfg.Output,
		"models", len(doc.Datamodel.Models),
		"enums", len(doc.Datamodel.Enums),
		"workers", cfg.workers(),
	)
	return g, nil
}

// Phase returns the current phase.
func (g *Generator) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

func (g *Generator) enter(p Phase) {
	g.mu.Lock()
	g.phase = p
	g.mu.Unlock()
	debug.Debug("Generator phase", "phase", p.String())
	for _, hook := range g.hooks {
		hook(p)
	}
}

func (g *Generator) fail(err error) error {
	debug.Error("Generation failed", "phase", g.Phase().String(), "error", err)
	g.enter(PhaseFailed)
	return err
}

// Plan renders every file without touching the filesystem.
func (g *Generator) Plan(ctx context.Context) (*Plan, error) {
	g.enter(PhaseInit)
	if err := validateDatamodel(g.doc); err != nil {
		return nil, g.fail(err)
	}

	opts := g.cfg.Options
	plan := &Plan{}

	g.enter(PhaseEmitEnums)
	enums, err := emitAll(ctx, g.cfg.workers(), g.doc.Datamodel.Enums, func(en dmmf.Enum) (codegen.GeneratedFile, error) {
		return codegen.EmitEnum(en, opts), nil
	})
	if err != nil {
		return nil, g.fail(err)
	}
	plan.Enums = enums

	// Model emission only starts once every enum is known.
	g.enter(PhaseEmitModels)
	emitter := codegen.NewClassEmitter(opts, codegen.NewEnumSet(g.doc.Datamodel.Enums))
	models, err := emitAll(ctx, g.cfg.workers(), g.doc.Datamodel.Models, emitter.Emit)
	if err != nil {
		return nil, g.fail(err)
	}
	plan.Models = models

	g.enter(PhaseEmitBarrels)
	if err := ctx.Err(); err != nil {
		return nil, g.fail(err)
	}
	modelNames := make([]string, len(g.doc.Datamodel.Models))
	for i, m := range g.doc.Datamodel.Models {
		modelNames[i] = m.Name
	}
	enumNames := make([]string, len(g.doc.Datamodel.Enums))
	for i, e := range g.doc.Datamodel.Enums {
		enumNames[i] = e.Name
	}
	plan.Barrels = []codegen.GeneratedFile{
		codegen.ModelBarrel(modelNames),
		codegen.EnumBarrel(enumNames),
		codegen.RootBarrel(),
	}

	g.enter(PhaseDone)
	debug.Info("Generation planned",
		"enums", len(plan.Enums),
		"models", len(plan.Models),
		"barrels", len(plan.Barrels),
	)
	return plan, nil
}

// Run plans the tree and writes it under the configured output directory.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	plan, err := g.Plan(ctx)
	if err != nil {
		return nil, err
	}
	w := NewWriter(g.fs, g.cfg.Output, g.cfg.workers(), g.cfg.Prune)
	report, err := w.Write(ctx, plan.Files())
	if err != nil {
		return report, err
	}
	debug.Info("Generation completed",
		"output", g.cfg.Output,
		"written", len(report.Written),
		"unchanged", len(report.Unchanged),
		"pruned", len(report.Pruned),
	)
	return report, nil
}

// emitAll runs emit over items with at most workers in flight. Results keep
// the order of items, and so do the joined errors.
func emitAll[T any](ctx context.Context, workers int, items []T, emit func(T) (codegen.GeneratedFile, error)) ([]codegen.GeneratedFile, error) {
	files := make([]codegen.GeneratedFile, len(items))
	errs := make([]error, len(items))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, item := range items {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files[i], errs[i] = emit(item)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return files, nil
}
