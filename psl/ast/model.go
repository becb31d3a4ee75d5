package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Model is a model, view or composite type block.
type Model struct {
	Pos             lexer.Position
	Documentation   *CommentBlock     `@@?`
	Keyword         string            `@("model" | "view" | "type")`
	Name            *Identifier       `@@`
	Fields          []*Field          `"{" @@*`
	BlockAttributes []*BlockAttribute `@@* "}"`
}

// GetName returns the block name.
func (m *Model) GetName() string {
	return m.Name.String()
}

// IsCompositeType reports whether the block is a "type" declaration.
func (m *Model) IsCompositeType() bool {
	return m.Keyword == "type"
}

// GetDocumentation returns the block documentation.
func (m *Model) GetDocumentation() string {
	return m.Documentation.GetText()
}

// BlockAttribute finds a block attribute (@@name) by name.
func (m *Model) BlockAttribute(name string) *BlockAttribute {
	for _, attr := range m.BlockAttributes {
		if attr.GetName() == name {
			return attr
		}
	}
	return nil
}

// FieldType is the declared type of a field.
type FieldType struct {
	Pos         lexer.Position
	Unsupported *string `  "Unsupported" "(" @String ")"`
	Name        string  `| @Ident`
}

// IsUnsupported reports whether the type is Unsupported("...").
func (t *FieldType) IsUnsupported() bool {
	return t.Unsupported != nil
}

// String returns the type as written.
func (t *FieldType) String() string {
	if t.Unsupported != nil {
		return `Unsupported("` + *t.Unsupported + `")`
	}
	return t.Name
}

// Field is a model field.
type Field struct {
	Pos           lexer.Position
	Documentation *CommentBlock `@@?`
	Name          *Identifier   `@@`
	Type          *FieldType    `@@`
	List          bool          `@("[" "]")?`
	Optional      bool          `@"?"?`
	Attributes    []*Attribute  `@@*`
}

// GetName returns the field name.
func (f *Field) GetName() string {
	return f.Name.String()
}

// GetDocumentation returns the field documentation.
func (f *Field) GetDocumentation() string {
	return f.Documentation.GetText()
}

// Attribute finds a field attribute (@name) by name.
func (f *Field) Attribute(name string) *Attribute {
	for _, attr := range f.Attributes {
		if attr.GetName() == name {
			return attr
		}
	}
	return nil
}
