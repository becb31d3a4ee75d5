package codegen

import (
	"github.com/satishbabariya/prisma-class-validator-go/dmmf"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

// Runtime-provided auxiliary types.
const (
	JSONValueType = "JsonValue"
	DecimalClass  = "Decimal"
)

// scalarRule is one row of the scalar mapping table.
type scalarRule struct {
	tsType     string
	annotation string // empty when the scalar has no type annotation
	runtime    bool   // tsType is imported from the runtime module
}

// lookupScalar is the scalar table. It is a switch rather than a map so
// there is no package state to share.
func lookupScalar(name string, opts Options) (scalarRule, bool) {
	switch name {
	case "Int":
		return scalarRule{tsType: "number", annotation: "IsInt"}, true
	case "Float":
		return scalarRule{tsType: "number", annotation: "IsNumber"}, true
	case "String":
		return scalarRule{tsType: "string", annotation: "IsString"}, true
	case "Boolean":
		return scalarRule{tsType: "boolean", annotation: "IsBoolean"}, true
	case "DateTime":
		return scalarRule{tsType: "Date", annotation: "IsDate"}, true
	case "BigInt":
		return scalarRule{tsType: "bigint", annotation: "IsInt"}, true
	case "Decimal":
		if opts.DecimalType == DecimalTypeNumber {
			return scalarRule{tsType: "number", annotation: "IsNumber"}, true
		}
		return scalarRule{tsType: DecimalClass, annotation: "IsNumber", runtime: true}, true
	case "Bytes":
		return scalarRule{tsType: "Buffer"}, true
	case "Json":
		return scalarRule{tsType: JSONValueType, annotation: "IsJSON", runtime: true}, true
	default:
		return scalarRule{}, false
	}
}

// ResolveType maps a field shape to its type expression and the symbols the
// type needs imported. Enum and relation imports are reported for every
// field; dropping a model's import of itself is left to AggregateImports.
func ResolveType(model string, f dmmf.Field, opts Options) (TypeExpr, []Import, error) {
	var (
		base    string
		imports []Import
	)

	switch f.Kind {
	case dmmf.KindScalar:
		rule, ok := lookupScalar(f.Type, opts)
		if !ok {
			return TypeExpr{}, nil, &UnsupportedFieldTypeError{Model: model, Field: f.Name, Type: f.Type}
		}
		base = rule.tsType
		if rule.runtime {
			imports = append(imports, Import{Symbol: rule.tsType, Module: opts.RuntimeModule, Source: SourceRuntime})
		}
	case dmmf.KindEnum:
		base = f.Type
		imports = append(imports, Import{Symbol: f.Type, Module: EnumBarrelModule, Source: SourceEnum})
	case dmmf.KindRelation:
		base = f.Type
		imports = append(imports, Import{Symbol: f.Type, Module: ModelModule(f.Type), Source: SourceModel})
	default:
		return TypeExpr{}, nil, errors.Newf("field %s.%s has invalid kind %v", model, f.Name, f.Kind)
	}

	if f.IsList {
		base += "[]"
	}
	return TypeExpr{Base: base, Optional: !f.IsRequired}, imports, nil
}

// IsSupportedScalar reports whether name is in the scalar table.
func IsSupportedScalar(name string) bool {
	_, ok := lookupScalar(name, DefaultOptions())
	return ok
}
