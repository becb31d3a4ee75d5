package generator

import (
	"github.com/satishbabariya/prisma-class-validator-go/dmmf"
	"github.com/satishbabariya/prisma-class-validator-go/generator/codegen"
	"github.com/satishbabariya/prisma-class-validator-go/internal/debug"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

// validateDatamodel checks the structural invariants generation relies on
// and returns every violation found, joined.
func validateDatamodel(doc *dmmf.Document) error {
	var errs []error

	models := make(map[string]struct{}, len(doc.Datamodel.Models))
	for _, m := range doc.Datamodel.Models {
		if _, exists := models[m.Name]; exists {
			errs = append(errs, &DuplicateDeclarationNameError{Category: "model", Name: m.Name})
		}
		models[m.Name] = struct{}{}
	}

	enums := make(map[string]struct{}, len(doc.Datamodel.Enums))
	for _, e := range doc.Datamodel.Enums {
		if _, exists := enums[e.Name]; exists {
			errs = append(errs, &DuplicateDeclarationNameError{Category: "enum", Name: e.Name})
		} else if _, clash := models[e.Name]; clash {
			// Both land in the root barrel under the same name.
			errs = append(errs, &DuplicateDeclarationNameError{Category: "model/enum", Name: e.Name})
		}
		enums[e.Name] = struct{}{}
	}

	for _, m := range doc.Datamodel.Models {
		for _, f := range m.Fields {
			switch f.Kind {
			case dmmf.KindScalar:
				if !codegen.IsSupportedScalar(f.Type) {
					errs = append(errs, &codegen.UnsupportedFieldTypeError{Model: m.Name, Field: f.Name, Type: f.Type})
				}
			case dmmf.KindEnum:
				if _, ok := enums[f.Type]; !ok {
					errs = append(errs, &codegen.MissingTypeReferenceError{Model: m.Name, Field: f.Name, Kind: "enum", Type: f.Type})
				}
			case dmmf.KindRelation:
				if _, ok := models[f.Type]; !ok {
					errs = append(errs, &codegen.MissingTypeReferenceError{Model: m.Name, Field: f.Name, Kind: "relation", Type: f.Type})
				}
			default:
				errs = append(errs, errors.Newf("%s.%s has invalid kind %v", m.Name, f.Name, f.Kind))
			}
		}
	}

	if len(errs) == 0 {
		debug.Debug("Datamodel validation passed", "models", len(models), "enums", len(enums))
		return nil
	}
	for _, err := range errs {
		debug.Error("Datamodel validation failed", "error", err)
	}
	return errors.WithHint(
		errors.Join(errs...),
		"fix the schema and run generate again; no files were written",
	)
}
