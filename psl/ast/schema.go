// Package ast defines the syntax tree for the subset of Prisma Schema
// Language the generator reads.
package ast

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Top is a top-level declaration.
type Top interface {
	isTop()
	GetName() string
	TopPos() lexer.Position
}

func (m *Model) isTop()                 {}
func (m *Model) TopPos() lexer.Position { return m.Pos }

func (e *Enum) isTop()                 {}
func (e *Enum) TopPos() lexer.Position { return e.Pos }

func (c *ConfigBlock) isTop()                 {}
func (c *ConfigBlock) TopPos() lexer.Position { return c.Pos }

// Schema is a parsed schema file.
type Schema struct {
	Filename string
	Tops     []Top
}

// Models returns all model, view and composite type blocks in declaration order.
func (s *Schema) Models() []*Model {
	var result []*Model
	for _, top := range s.Tops {
		if m, ok := top.(*Model); ok {
			result = append(result, m)
		}
	}
	return result
}

// Enums returns all enum blocks in declaration order.
func (s *Schema) Enums() []*Enum {
	var result []*Enum
	for _, top := range s.Tops {
		if e, ok := top.(*Enum); ok {
			result = append(result, e)
		}
	}
	return result
}

// Generators returns all generator blocks.
func (s *Schema) Generators() []*ConfigBlock {
	return s.configBlocks("generator")
}

// Datasources returns all datasource blocks.
func (s *Schema) Datasources() []*ConfigBlock {
	return s.configBlocks("datasource")
}

func (s *Schema) configBlocks(keyword string) []*ConfigBlock {
	var result []*ConfigBlock
	for _, top := range s.Tops {
		if c, ok := top.(*ConfigBlock); ok && c.Keyword == keyword {
			result = append(result, c)
		}
	}
	return result
}
