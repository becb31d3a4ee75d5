// Package psl reads Prisma schema files and turns them into the datamodel
// document the generator consumes.
package psl

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/satishbabariya/prisma-class-validator-go/internal/debug"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
	"github.com/satishbabariya/prisma-class-validator-go/psl/ast"
	"github.com/satishbabariya/prisma-class-validator-go/psl/parser"
)

// Extension is the file extension of Prisma schema files.
const Extension = ".prisma"

// Schema is a parsed Prisma schema.
type Schema struct {
	AST *ast.Schema
}

// Parse parses a schema read from r.
func Parse(filename string, r io.Reader) (*Schema, error) {
	tree, err := parser.Parse(filename, r)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "parse %s", filename),
			"only datasource, generator, model, view, type and enum blocks are understood",
		)
	}
	debug.Debug("Schema parsed",
		"file", filename,
		"models", len(tree.Models()),
		"enums", len(tree.Enums()),
	)
	return &Schema{AST: tree}, nil
}

// ParseString parses a schema held in a string.
func ParseString(filename, src string) (*Schema, error) {
	return Parse(filename, strings.NewReader(src))
}

// ParseFile reads and parses the schema at path.
func ParseFile(fs afero.Fs, path string) (*Schema, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open schema %s", path)
	}
	defer f.Close()
	return Parse(filepath.Base(path), f)
}

// IsSchemaPath reports whether path names a Prisma schema file.
func IsSchemaPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

// GeneratorConfig returns the properties of the first generator block whose
// provider is provider. String and constant values are returned as written;
// arrays and calls are rendered in schema syntax.
func (s *Schema) GeneratorConfig(provider string) (map[string]string, bool) {
	for _, gen := range s.AST.Generators() {
		prop := gen.Property("provider")
		if prop == nil {
			continue
		}
		if value, ok := ast.StringOf(prop.Value); !ok || value != provider {
			continue
		}
		props := make(map[string]string, len(gen.Properties))
		for _, p := range gen.Properties {
			if value, ok := ast.StringOf(p.Value); ok {
				props[p.GetName()] = value
			} else {
				props[p.GetName()] = p.Value.String()
			}
		}
		debug.Debug("Generator block found", "name", gen.GetName(), "provider", provider)
		return props, true
	}
	return nil, false
}
