package psl

import (
	"sort"

	"github.com/satishbabariya/prisma-class-validator-go/dmmf"
	"github.com/satishbabariya/prisma-class-validator-go/internal/debug"
	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
	"github.com/satishbabariya/prisma-class-validator-go/psl/ast"
)

// Datamodel builds the datamodel document for the schema.
//
// A field is an enum field when its type names a declared enum, a relation
// when it names a declared model or view, and a scalar otherwise; scalar
// support is checked later, during generation. Unsupported("...") fields are
// left out, as the Prisma client does.
func (s *Schema) Datamodel() (*dmmf.Document, error) {
	enums := map[string]bool{}
	models := map[string]bool{}
	composites := map[string]bool{}
	for _, e := range s.AST.Enums() {
		enums[e.GetName()] = true
	}
	for _, m := range s.AST.Models() {
		if m.IsCompositeType() {
			composites[m.GetName()] = true
		} else {
			models[m.GetName()] = true
		}
	}

	doc := &dmmf.Document{}
	for _, e := range s.AST.Enums() {
		doc.Datamodel.Enums = append(doc.Datamodel.Enums, convertEnum(e))
	}

	var errs []error
	for _, m := range s.AST.Models() {
		if m.IsCompositeType() {
			debug.Debug("Skipping composite type", "type", m.GetName())
			continue
		}
		model := dmmf.Model{
			Name:          m.GetName(),
			DBName:        blockMappedName(m.BlockAttribute("map")),
			Documentation: m.GetDocumentation(),
			Fields:        make([]dmmf.Field, 0, len(m.Fields)),
		}
		for _, f := range m.Fields {
			if f.Type.IsUnsupported() {
				debug.Debug("Skipping unsupported field", "model", model.Name, "field", f.GetName(), "type", f.Type.String())
				continue
			}
			typeName := f.Type.Name
			if composites[typeName] {
				errs = append(errs, errors.Newf("%s.%s uses composite type %q, which has no class-validator rendering",
					model.Name, f.GetName(), typeName))
				continue
			}

			field := dmmf.Field{
				Name:            f.GetName(),
				Type:            typeName,
				IsRequired:      !f.Optional,
				IsList:          f.List,
				IsID:            f.Attribute("id") != nil,
				IsUnique:        f.Attribute("unique") != nil,
				HasDefaultValue: f.Attribute("default") != nil,
				DBName:          mappedName(f.Attribute("map")),
				Documentation:   f.GetDocumentation(),
			}
			switch {
			case enums[typeName]:
				field.Kind = dmmf.KindEnum
			case models[typeName]:
				field.Kind = dmmf.KindRelation
				field.RelationName = relationName(model.Name, typeName, f.Attribute("relation"))
			default:
				field.Kind = dmmf.KindScalar
			}
			model.Fields = append(model.Fields, field)
		}
		doc.Datamodel.Models = append(doc.Datamodel.Models, model)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return doc, nil
}

func convertEnum(e *ast.Enum) dmmf.Enum {
	out := dmmf.Enum{
		Name:          e.GetName(),
		DBName:        blockMappedName(e.BlockAttribute("map")),
		Documentation: e.GetDocumentation(),
		Values:        make([]dmmf.EnumValue, 0, len(e.Values)),
	}
	for _, v := range e.Values {
		out.Values = append(out.Values, dmmf.EnumValue{
			Name:   v.GetName(),
			DBName: mappedName(v.Attribute("map")),
		})
	}
	return out
}

// mappedName returns the name given by @map("x") or @map(name: "x").
func mappedName(attr *ast.Attribute) string {
	if attr == nil {
		return ""
	}
	return stringArg(attr.Arguments, "name")
}

// blockMappedName returns the name given by @@map("x").
func blockMappedName(attr *ast.BlockAttribute) string {
	if attr == nil {
		return ""
	}
	return stringArg(attr.Arguments, "name")
}

// relationName returns the explicit @relation name, or Prisma's default:
// both model names sorted and joined with "To".
func relationName(model, target string, attr *ast.Attribute) string {
	if attr != nil {
		if name := stringArg(attr.Arguments, "name"); name != "" {
			return name
		}
	}
	names := []string{model, target}
	sort.Strings(names)
	return names[0] + "To" + names[1]
}

// stringArg returns the first positional string argument, or the named one.
func stringArg(args *ast.ArgumentsList, name string) string {
	if v, ok := args.Positional(0).(*ast.StringValue); ok {
		return v.Value
	}
	if v, ok := args.Named(name).(*ast.StringValue); ok {
		return v.Value
	}
	return ""
}
