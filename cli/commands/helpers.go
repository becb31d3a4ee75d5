package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/prisma-class-validator-go/cli/internal/config"
	"github.com/satishbabariya/prisma-class-validator-go/dmmf"
	"github.com/satishbabariya/prisma-class-validator-go/generator"
	"github.com/satishbabariya/prisma-class-validator-go/internal/debug"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
	"github.com/satishbabariya/prisma-class-validator-go/psl"
)

// commonSchemaPaths are tried, in order, when no schema path is given.
var commonSchemaPaths = []string{
	"schema.prisma",
	"prisma/schema.prisma",
}

// getSchemaPath returns the schema path using consistent logic:
// 1. Use explicit flag value if set
// 2. Use first argument if provided
// 3. Use the configured schema_path
// 4. Look in the common locations
func getSchemaPath(flagValue string, args []string, cfg *config.Config) (string, error) {
	switch {
	case flagValue != "":
		return flagValue, nil
	case len(args) > 0:
		return args[0], nil
	case cfg.SchemaPath != "":
		return cfg.SchemaPath, nil
	}
	if path := findSchemaFile(); path != "" {
		return path, nil
	}
	return "", errors.WithHint(
		errors.New("no schema file found"),
		"pass a path to a .prisma schema or a DMMF .json/.yaml document",
	)
}

// findSchemaFile attempts to find a schema file in common locations
func findSchemaFile() string {
	for _, path := range commonSchemaPaths {
		if _, err := config.AppFs.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// input is a loaded schema with the configuration that applies to it.
type input struct {
	Path   string
	Doc    *dmmf.Document
	Config *config.Config
}

// loadInput resolves the configuration and the schema for a command. Flag
// overrides are applied by apply, after the schema's generator block.
func loadInput(cmd *cobra.Command, schemaFlag string, args []string, apply func(*config.Config)) (*input, error) {
	cfg, err := config.Load(configFileFlag(cmd))
	if err != nil {
		return nil, err
	}
	path, err := getSchemaPath(schemaFlag, args, cfg)
	if err != nil {
		return nil, err
	}

	doc, err := loadDocument(path, cfg)
	if err != nil {
		return nil, err
	}
	if apply != nil {
		apply(cfg)
	}
	return &input{Path: path, Doc: doc, Config: cfg}, nil
}

// loadDocument reads a .prisma schema or a serialized DMMF document.
func loadDocument(path string, cfg *config.Config) (*dmmf.Document, error) {
	if _, err := config.AppFs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithHint(
				errors.Newf("schema file not found: %s", path),
				"run from your project root or pass the schema path",
			)
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	var doc *dmmf.Document
	switch {
	case psl.IsSchemaPath(path):
		schema, err := psl.ParseFile(config.AppFs, path)
		if err != nil {
			return nil, err
		}
		if props, ok := schema.GeneratorConfig(config.Provider); ok {
			if err := cfg.ApplyGeneratorBlock(props, filepath.Dir(path)); err != nil {
				return nil, err
			}
		}
		if doc, err = schema.Datamodel(); err != nil {
			return nil, errors.Wrapf(err, "build datamodel from %s", path)
		}
	case dmmf.IsDocumentPath(path):
		var err error
		if doc, err = dmmf.LoadFile(config.AppFs, path); err != nil {
			return nil, err
		}
	default:
		return nil, errors.WithHint(
			errors.Newf("unsupported input %s", path),
			"pass a .prisma schema or a DMMF .json/.yaml document",
		)
	}

	if err := dmmf.CheckVersion(doc); err != nil {
		return nil, err
	}
	debug.Debug("Input loaded",
		"path", path,
		"models", len(doc.Datamodel.Models),
		"enums", len(doc.Datamodel.Enums),
	)
	return doc, nil
}

// newGenerator builds a generator over the command filesystem.
func newGenerator(in *input, opts ...generator.Option) (*generator.Generator, error) {
	cfg, err := in.Config.Generator()
	if err != nil {
		return nil, err
	}
	opts = append([]generator.Option{generator.WithFs(config.AppFs)}, opts...)
	return generator.New(in.Doc, cfg, opts...)
}

func configFileFlag(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
