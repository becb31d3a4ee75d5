package codegen

import (
	"strconv"
	"strings"

	"github.com/satishbabariya/prisma-class-validator-go/dmmf"
)

// EmitEnum renders the file for one enum. Members keep declaration order and
// their declared names; a value's mapped database name is ignored.
func EmitEnum(en dmmf.Enum, opts Options) GeneratedFile {
	var b strings.Builder
	if opts.EmitDocs {
		writeDoc(&b, "", en.Documentation)
	}
	b.WriteString("export enum " + en.Name + " {\n")
	for _, v := range en.Values {
		b.WriteString("  " + v.Name + " = " + strconv.Quote(v.Name) + ",\n")
	}
	b.WriteString("}\n")

	return GeneratedFile{
		Path: EnumPath(en.Name),
		Body: b.String(),
	}
}
