package codegen

import (
	"github.com/satishbabariya/prisma-class-validator-go/dmmf"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

// Annotation names emitted into generated files.
const (
	IsDefined  = "IsDefined"
	IsOptional = "IsOptional"
	IsInt      = "IsInt"
	IsNumber   = "IsNumber"
	IsString   = "IsString"
	IsBoolean  = "IsBoolean"
	IsDate     = "IsDate"
	IsJSON     = "IsJSON"
	IsIn       = "IsIn"
)

// ResolveAnnotations returns the ordered decorators for a field: the
// presence marker first, then the type annotation. Relation fields get no
// decorators; the referenced model validates itself.
//
// A list field carries the same annotation as its element type. Per-element
// validation is not expressed.
func ResolveAnnotations(model string, f dmmf.Field, enums EnumSet, opts Options) ([]Annotation, error) {
	var typed *Annotation

	switch f.Kind {
	case dmmf.KindRelation:
		return nil, nil
	case dmmf.KindScalar:
		rule, ok := lookupScalar(f.Type, opts)
		if !ok {
			return nil, &UnsupportedFieldTypeError{Model: model, Field: f.Name, Type: f.Type}
		}
		if rule.annotation != "" {
			typed = &Annotation{Name: rule.annotation}
		}
	case dmmf.KindEnum:
		values, ok := enums[f.Type]
		if !ok {
			return nil, &MissingTypeReferenceError{Model: model, Field: f.Name, Kind: "enum", Type: f.Type}
		}
		members := make([]string, len(values))
		copy(members, values)
		typed = &Annotation{Name: IsIn, Arguments: []any{members}}
	default:
		return nil, errors.Newf("field %s.%s has invalid kind %v", model, f.Name, f.Kind)
	}

	presence := Annotation{Name: IsOptional}
	if f.IsRequired {
		presence = Annotation{Name: IsDefined}
	}

	out := []Annotation{presence}
	if typed != nil {
		out = append(out, *typed)
	}
	return out, nil
}

// annotationImports lists the validator-module symbols the annotations use.
func annotationImports(annotations []Annotation, opts Options) []Import {
	imports := make([]Import, 0, len(annotations))
	for _, a := range annotations {
		imports = append(imports, Import{Symbol: a.Name, Module: opts.ValidatorModule, Source: SourceValidator})
	}
	return imports
}
