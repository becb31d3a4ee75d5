package codegen

import (
	"strings"

	"github.com/satishbabariya/prisma-class-validator-go/dmmf"
	"github.com/satishbabariya/prisma-class-validator-go/internal/debug"
)

// ClassEmitter renders model declarations. It only reads its state and is
// safe for concurrent use once constructed.
type ClassEmitter struct {
	opts  Options
	enums EnumSet
}

// NewClassEmitter creates an emitter. enums must hold the final member lists
// of every enum the models reference.
func NewClassEmitter(opts Options, enums EnumSet) *ClassEmitter {
	return &ClassEmitter{opts: opts, enums: enums}
}

// Resolve computes the type, decorators and imports of one field.
func (e *ClassEmitter) Resolve(model string, f dmmf.Field) (ResolvedField, error) {
	typ, typeImports, err := ResolveType(model, f, e.opts)
	if err != nil {
		return ResolvedField{}, err
	}
	annotations, err := ResolveAnnotations(model, f, e.enums, e.opts)
	if err != nil {
		return ResolvedField{}, err
	}

	imports := annotationImports(annotations, e.opts)
	imports = append(imports, typeImports...)

	return ResolvedField{
		Name:          f.Name,
		Type:          typ,
		Annotations:   annotations,
		Imports:       imports,
		Documentation: f.Documentation,
	}, nil
}

// Emit renders the file for one model.
func (e *ClassEmitter) Emit(m dmmf.Model) (GeneratedFile, error) {
	fields := make([]ResolvedField, 0, len(m.Fields))
	for _, f := range m.Fields {
		rf, err := e.Resolve(m.Name, f)
		if err != nil {
			return GeneratedFile{}, &FieldError{Model: m.Name, Field: f.Name, Cause: err}
		}
		fields = append(fields, rf)
	}

	var b strings.Builder
	if e.opts.EmitDocs {
		writeDoc(&b, "", m.Documentation)
	}
	b.WriteString("export class " + m.Name + " {\n")
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		if e.opts.EmitDocs {
			writeDoc(&b, "  ", f.Documentation)
		}
		for _, a := range f.Annotations {
			b.WriteString("  " + a.String() + "\n")
		}
		b.WriteString("  " + f.Declaration() + "\n")
	}
	b.WriteString("}\n")

	file := GeneratedFile{
		Path:    ModelPath(m.Name),
		Imports: AggregateImports(m.Name, fields),
		Body:    b.String(),
	}
	debug.Debug("Emitted model", "model", m.Name, "fields", len(fields), "imports", len(file.Imports))
	return file, nil
}
