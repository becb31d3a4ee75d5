package codegen

import (
	"path"
	"strings"
)

// ModelBarrel re-exports every model, in the given order.
func ModelBarrel(names []string) GeneratedFile {
	return barrel(path.Join(ModelsDir, IndexFile), names, ModelSuffix)
}

// EnumBarrel re-exports every enum, in the given order.
func EnumBarrel(names []string) GeneratedFile {
	return barrel(path.Join(EnumsDir, IndexFile), names, EnumSuffix)
}

// RootBarrel re-exports both category barrels.
func RootBarrel() GeneratedFile {
	body := "export * from \"./" + ModelsDir + "\";\n" +
		"export * from \"./" + EnumsDir + "\";\n"
	return GeneratedFile{Path: IndexFile, Body: body}
}

func barrel(p string, names []string, suffix string) GeneratedFile {
	if len(names) == 0 {
		// Keeps the file a module so `export *` from it stays valid.
		return GeneratedFile{Path: p, Body: "export {};\n"}
	}
	var b strings.Builder
	for _, name := range names {
		b.WriteString("export { " + name + " } from \"./" + name + suffix + "\";\n")
	}
	return GeneratedFile{Path: p, Body: b.String()}
}
