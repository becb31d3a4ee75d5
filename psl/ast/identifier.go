package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Identifier is a name, possibly dotted (db.VarChar). Keywords are accepted
// so that fields may be called "type" or "model".
type Identifier struct {
	Pos  lexer.Position
	Name string `(@Ident | @Keyword) ("." (@Ident | @Keyword))*`
}

// String returns the identifier name.
func (i *Identifier) String() string {
	if i == nil {
		return ""
	}
	return i.Name
}
