package ast

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Comment is one "///" documentation line.
type Comment struct {
	Pos  lexer.Position
	Text string `@DocComment`
}

// CommentBlock is a run of consecutive documentation lines.
type CommentBlock struct {
	Comments []*Comment `@@+`
}

// GetText returns the documentation with the "///" markers and surrounding
// blanks removed, one line per comment.
func (c *CommentBlock) GetText() string {
	if c == nil || len(c.Comments) == 0 {
		return ""
	}
	lines := make([]string, len(c.Comments))
	for i, comment := range c.Comments {
		lines[i] = strings.TrimSpace(strings.TrimPrefix(comment.Text, "///"))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
