package codegen

import (
	"sort"
	"strings"
)

// EnumBarrelModule is the specifier model files use to import enums.
const EnumBarrelModule = "../" + EnumsDir

// ModelModule returns the specifier a model file uses to import a sibling model.
func ModelModule(name string) string {
	return "./" + name + ModelSuffix
}

// ImportGroup is one import statement: every symbol needed from a module.
type ImportGroup struct {
	Module   string
	Symbols  []string
	Source   ImportSource
	TypeOnly bool
}

// String renders the import statement.
func (g ImportGroup) String() string {
	keyword := "import"
	if g.TypeOnly {
		keyword = "import type"
	}
	return keyword + " { " + strings.Join(g.Symbols, ", ") + " } from \"" + g.Module + "\";"
}

// AggregateImports collapses the imports of all fields of one file into one
// group per module. Symbols are deduplicated and sorted; groups are ordered
// by source then module path. A model never imports itself.
func AggregateImports(self string, fields []ResolvedField) []ImportGroup {
	type key struct {
		module string
		source ImportSource
	}
	symbols := make(map[key]map[string]struct{})

	for _, f := range fields {
		for _, imp := range f.Imports {
			if imp.Source == SourceModel && imp.Symbol == self {
				continue
			}
			k := key{module: imp.Module, source: imp.Source}
			if symbols[k] == nil {
				symbols[k] = make(map[string]struct{})
			}
			symbols[k][imp.Symbol] = struct{}{}
		}
	}

	groups := make([]ImportGroup, 0, len(symbols))
	for k, set := range symbols {
		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		sort.Strings(names)
		groups = append(groups, ImportGroup{
			Module:   k.module,
			Symbols:  names,
			Source:   k.source,
			TypeOnly: k.source == SourceModel,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Source != groups[j].Source {
			return groups[i].Source < groups[j].Source
		}
		return groups[i].Module < groups[j].Module
	})
	return groups
}
