package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ConfigBlock is a generator or datasource block.
type ConfigBlock struct {
	Pos           lexer.Position
	Documentation *CommentBlock          `@@?`
	Keyword       string                 `@("generator" | "datasource")`
	Name          *Identifier            `@@`
	Properties    []*ConfigBlockProperty `"{" @@* "}"`
}

// GetName returns the block name.
func (c *ConfigBlock) GetName() string {
	return c.Name.String()
}

// Property finds a property by name.
func (c *ConfigBlock) Property(name string) *ConfigBlockProperty {
	for _, prop := range c.Properties {
		if prop.GetName() == name {
			return prop
		}
	}
	return nil
}

// ConfigBlockProperty is a key = value line.
type ConfigBlockProperty struct {
	Pos   lexer.Position
	Name  *Identifier `@@`
	Value Expression  `"=" @@`
}

// GetName returns the property key.
func (p *ConfigBlockProperty) GetName() string {
	return p.Name.String()
}
