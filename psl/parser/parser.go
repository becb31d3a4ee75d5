// Package parser parses Prisma schema files with participle.
package parser

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/prisma-class-validator-go/psl/ast"
)

// rawSchema is the parse tree as the grammar produces it.
type rawSchema struct {
	Pos   lexer.Position
	Items []*topLevelItem `@@*`
}

type topLevelItem struct {
	Pos    lexer.Position
	Model  *ast.Model       `  @@`
	Enum   *ast.Enum        `| @@`
	Config *ast.ConfigBlock `| @@`
}

func (t *topLevelItem) toTop() ast.Top {
	switch {
	case t.Model != nil:
		return t.Model
	case t.Enum != nil:
		return t.Enum
	case t.Config != nil:
		return t.Config
	default:
		return nil
	}
}

var parser = participle.MustBuild[rawSchema](
	participle.Lexer(PrismaLexer),
	participle.Elide("Whitespace", "Newline", "Comment", "MultiLineComment"),
	participle.Unquote("String"),
	participle.UseLookahead(10),
	participle.Union[ast.Expression](
		&ast.FunctionCall{},
		&ast.ArrayExpression{},
		&ast.StringValue{},
		&ast.NumericValue{},
		&ast.ConstantValue{},
	),
)

// Parse parses a schema from r. filename is used in error positions.
func Parse(filename string, r io.Reader) (*ast.Schema, error) {
	raw, err := parser.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	schema := &ast.Schema{
		Filename: filename,
		Tops:     make([]ast.Top, 0, len(raw.Items)),
	}
	for _, item := range raw.Items {
		if top := item.toTop(); top != nil {
			schema.Tops = append(schema.Tops, top)
		}
	}
	return schema, nil
}

// ParseString parses a schema held in a string.
func ParseString(filename, input string) (*ast.Schema, error) {
	return Parse(filename, strings.NewReader(input))
}
