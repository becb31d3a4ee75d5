package codegen

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/satishbabariya/prisma-class-validator-go/dmmf"
)

// Output layout, relative to the output root.
const (
	ModelsDir = "models"
	EnumsDir  = "enums"
	IndexFile = "index.ts"

	ModelSuffix = ".model"
	EnumSuffix  = ".enum"
)

// ModelPath returns the output path of a model file.
func ModelPath(name string) string {
	return path.Join(ModelsDir, name+ModelSuffix+".ts")
}

// EnumPath returns the output path of an enum file.
func EnumPath(name string) string {
	return path.Join(EnumsDir, name+EnumSuffix+".ts")
}

// Annotation is one validation decorator attached to a property.
type Annotation struct {
	Name      string
	Arguments []any
}

// String renders the decorator, e.g. @IsIn(["A", "B"]).
func (a Annotation) String() string {
	args := make([]string, len(a.Arguments))
	for i, arg := range a.Arguments {
		args[i] = literal(arg)
	}
	return "@" + a.Name + "(" + strings.Join(args, ", ") + ")"
}

func literal(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	case []string:
		items := make([]string, len(v))
		for i, s := range v {
			items[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// ImportSource says where an imported symbol comes from. It also fixes the
// order of import statements in a file.
type ImportSource int

const (
	// SourceValidator is the annotation library.
	SourceValidator ImportSource = iota
	// SourceRuntime provides auxiliary scalar types (JsonValue, Decimal).
	SourceRuntime
	// SourceEnum is the enum barrel.
	SourceEnum
	// SourceModel is a sibling model file; imported as type-only.
	SourceModel
)

// Import is a single symbol a field needs.
type Import struct {
	Symbol string
	Module string
	Source ImportSource
}

// TypeExpr is the resolved type of a field.
type TypeExpr struct {
	// Base is the type without the null marker, list notation included.
	Base string
	// Optional adds "| null" to the rendered type.
	Optional bool
}

// String renders the full type expression.
func (t TypeExpr) String() string {
	if t.Optional {
		return t.Base + " | null"
	}
	return t.Base
}

// ResolvedField is the computed output for one field. It is never mutated
// after resolution.
type ResolvedField struct {
	Name          string
	Type          TypeExpr
	Annotations   []Annotation
	Imports       []Import
	Documentation string
}

// Declaration renders the property line without indentation, e.g.
// "name?: string | null;".
func (f ResolvedField) Declaration() string {
	marker := "!"
	if f.Type.Optional {
		marker = "?"
	}
	return f.Name + marker + ": " + f.Type.String() + ";"
}

// EnumSet maps enum names to their ordered member names. It is built once
// after all enums are emitted and only read afterwards.
type EnumSet map[string][]string

// NewEnumSet indexes the given enums.
func NewEnumSet(enums []dmmf.Enum) EnumSet {
	set := make(EnumSet, len(enums))
	for _, e := range enums {
		set[e.Name] = e.ValueNames()
	}
	return set
}
