package codegen

import (
	"strings"
)

// Header is the first line of every generated file.
const Header = "// Code generated by prisma-class-validator. DO NOT EDIT."

// GeneratedFile is one output file. Path is slash-separated and relative to
// the output root.
type GeneratedFile struct {
	Path    string
	Imports []ImportGroup
	Body    string
}

// Content renders the complete file.
func (f GeneratedFile) Content() []byte {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n\n")
	if len(f.Imports) > 0 {
		for _, g := range f.Imports {
			b.WriteString(g.String())
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	b.WriteString(f.Body)
	return []byte(b.String())
}

// writeDoc writes text as a JSDoc block at the given indentation.
func writeDoc(b *strings.Builder, indent, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	text = strings.ReplaceAll(text, "*/", "*\\/")
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		b.WriteString(indent + "/** " + lines[0] + " */\n")
		return
	}
	b.WriteString(indent + "/**\n")
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			b.WriteString(indent + " *\n")
			continue
		}
		b.WriteString(indent + " * " + line + "\n")
	}
	b.WriteString(indent + " */\n")
}
