package ast

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Attribute is a field or enum value attribute (@name(args)).
type Attribute struct {
	Pos       lexer.Position
	Name      *Identifier    `"@" @@`
	Arguments *ArgumentsList `("(" @@ ")")?`
}

// GetName returns the attribute name without the "@".
func (a *Attribute) GetName() string {
	return a.Name.String()
}

// String returns the attribute as written.
func (a *Attribute) String() string {
	return "@" + a.GetName() + a.Arguments.parenthesized()
}

// BlockAttribute is a block-level attribute (@@name(args)).
type BlockAttribute struct {
	Pos       lexer.Position
	Name      *Identifier    `"@@" @@`
	Arguments *ArgumentsList `("(" @@ ")")?`
}

// GetName returns the attribute name without the "@@".
func (b *BlockAttribute) GetName() string {
	return b.Name.String()
}

// String returns the attribute as written.
func (b *BlockAttribute) String() string {
	return "@@" + b.GetName() + b.Arguments.parenthesized()
}

// ArgumentsList is a parenthesized argument list.
type ArgumentsList struct {
	Pos           lexer.Position
	Arguments     []*Argument `(@@ ("," @@)*)?`
	TrailingComma bool        `@","?`
}

// String returns the arguments joined by commas.
func (a *ArgumentsList) String() string {
	if a == nil || len(a.Arguments) == 0 {
		return ""
	}
	parts := make([]string, len(a.Arguments))
	for i, arg := range a.Arguments {
		parts[i] = arg.String()
	}
	return strings.Join(parts, ", ")
}

func (a *ArgumentsList) parenthesized() string {
	if a == nil {
		return ""
	}
	return "(" + a.String() + ")"
}

// Positional returns the i-th unnamed argument.
func (a *ArgumentsList) Positional(i int) Expression {
	if a == nil {
		return nil
	}
	n := 0
	for _, arg := range a.Arguments {
		if arg.Name != nil {
			continue
		}
		if n == i {
			return arg.Value
		}
		n++
	}
	return nil
}

// Named returns the value of the argument called name.
func (a *ArgumentsList) Named(name string) Expression {
	if a == nil {
		return nil
	}
	for _, arg := range a.Arguments {
		if arg.Name != nil && arg.Name.Name == name {
			return arg.Value
		}
	}
	return nil
}

// Argument is a named (name: value) or positional argument.
type Argument struct {
	Pos   lexer.Position
	Name  *Identifier `(@@ ":")?`
	Value Expression  `@@`
}

// String returns the argument as written.
func (a *Argument) String() string {
	if a.Name != nil {
		return a.Name.Name + ": " + a.Value.String()
	}
	return a.Value.String()
}
