package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Enum is an enum block.
type Enum struct {
	Pos             lexer.Position
	Documentation   *CommentBlock     `@@?`
	Keyword         string            `@"enum"`
	Name            *Identifier       `@@`
	Values          []*EnumValue      `"{" @@*`
	BlockAttributes []*BlockAttribute `@@* "}"`
}

// GetName returns the enum name.
func (e *Enum) GetName() string {
	return e.Name.String()
}

// GetDocumentation returns the enum documentation.
func (e *Enum) GetDocumentation() string {
	return e.Documentation.GetText()
}

// BlockAttribute finds a block attribute (@@name) by name.
func (e *Enum) BlockAttribute(name string) *BlockAttribute {
	for _, attr := range e.BlockAttributes {
		if attr.GetName() == name {
			return attr
		}
	}
	return nil
}

// EnumValue is one enum member.
type EnumValue struct {
	Pos           lexer.Position
	Documentation *CommentBlock `@@?`
	Name          *Identifier   `@@`
	Attributes    []*Attribute  `@@*`
}

// GetName returns the member name.
func (v *EnumValue) GetName() string {
	return v.Name.String()
}

// Attribute finds an attribute (@name) by name.
func (v *EnumValue) Attribute(name string) *Attribute {
	for _, attr := range v.Attributes {
		if attr.GetName() == name {
			return attr
		}
	}
	return nil
}
