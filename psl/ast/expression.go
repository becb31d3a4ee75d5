package ast

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Expression is an attribute argument or config property value.
type Expression interface {
	isExpression()
	Span() lexer.Position
	String() string
}

// StringValue is a string literal. Value is already unquoted.
type StringValue struct {
	Pos   lexer.Position
	Value string `@String`
}

// NumericValue is an integer or decimal literal.
type NumericValue struct {
	Pos   lexer.Position
	Value string `@Number`
}

// ConstantValue is a bare identifier: true, false, an enum member or a field reference.
type ConstantValue struct {
	Pos   lexer.Position
	Value string `@Ident`
}

// FunctionCall is a call such as env("DATABASE_URL") or autoincrement().
type FunctionCall struct {
	Pos       lexer.Position
	Name      string         `@Ident`
	Arguments *ArgumentsList `"(" @@? ")"`
}

// ArrayExpression is a bracketed list.
type ArrayExpression struct {
	Pos      lexer.Position
	Elements []Expression `"[" (@@ ("," @@)*)? ","? "]"`
}

func (*StringValue) isExpression()     {}
func (*NumericValue) isExpression()    {}
func (*ConstantValue) isExpression()   {}
func (*FunctionCall) isExpression()    {}
func (*ArrayExpression) isExpression() {}

func (s *StringValue) Span() lexer.Position     { return s.Pos }
func (n *NumericValue) Span() lexer.Position    { return n.Pos }
func (c *ConstantValue) Span() lexer.Position   { return c.Pos }
func (f *FunctionCall) Span() lexer.Position    { return f.Pos }
func (a *ArrayExpression) Span() lexer.Position { return a.Pos }

func (s *StringValue) String() string   { return strconv.Quote(s.Value) }
func (n *NumericValue) String() string  { return n.Value }
func (c *ConstantValue) String() string { return c.Value }

func (f *FunctionCall) String() string {
	return f.Name + "(" + f.Arguments.String() + ")"
}

func (a *ArrayExpression) String() string {
	parts := make([]string, len(a.Elements))
	for i, elem := range a.Elements {
		parts[i] = elem.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// StringOf returns the literal text of a string or constant expression.
func StringOf(e Expression) (string, bool) {
	switch v := e.(type) {
	case *StringValue:
		return v.Value, true
	case *ConstantValue:
		return v.Value, true
	case *NumericValue:
		return v.Value, true
	default:
		return "", false
	}
}
