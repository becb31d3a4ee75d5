// Package dmmf defines the normalized data model the generator consumes.
//
// The shape follows the Prisma DMMF datamodel (models, fields, enums) so that
// documents produced by the Prisma toolchain can be decoded directly.
package dmmf

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FieldKind classifies what a field's type name refers to.
type FieldKind int

const (
	// KindScalar is a primitive type such as Int or String.
	KindScalar FieldKind = iota + 1
	// KindEnum refers to an enum declared in the same datamodel.
	KindEnum
	// KindRelation refers to another model in the same datamodel.
	KindRelation
)

// String returns the DMMF spelling of the kind.
func (k FieldKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindEnum:
		return "enum"
	case KindRelation:
		return "object"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// ParseFieldKind parses a DMMF kind. Both "object" and "relation" name a relation.
func ParseFieldKind(s string) (FieldKind, error) {
	switch s {
	case "scalar":
		return KindScalar, nil
	case "enum":
		return KindEnum, nil
	case "object", "relation":
		return KindRelation, nil
	default:
		return 0, fmt.Errorf("unknown field kind %q", s)
	}
}

// MarshalJSON implements json.Marshaler.
func (k FieldKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *FieldKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseFieldKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (k FieldKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *FieldKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseFieldKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*k = parsed
	return nil
}

// Field is one field of a model.
type Field struct {
	Name            string    `json:"name" yaml:"name"`
	Kind            FieldKind `json:"kind" yaml:"kind"`
	Type            string    `json:"type" yaml:"type"`
	IsRequired      bool      `json:"isRequired" yaml:"isRequired"`
	IsList          bool      `json:"isList" yaml:"isList"`
	IsID            bool      `json:"isId" yaml:"isId"`
	IsUnique        bool      `json:"isUnique" yaml:"isUnique"`
	HasDefaultValue bool      `json:"hasDefaultValue" yaml:"hasDefaultValue"`
	RelationName    string    `json:"relationName,omitempty" yaml:"relationName,omitempty"`
	DBName          string    `json:"dbName,omitempty" yaml:"dbName,omitempty"`
	Documentation   string    `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// Model is a model declaration. DBName is carried but never used for emitted identifiers.
type Model struct {
	Name          string  `json:"name" yaml:"name"`
	DBName        string  `json:"dbName,omitempty" yaml:"dbName,omitempty"`
	Fields        []Field `json:"fields" yaml:"fields"`
	Documentation string  `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// EnumValue is a single enum member.
type EnumValue struct {
	Name   string `json:"name" yaml:"name"`
	DBName string `json:"dbName,omitempty" yaml:"dbName,omitempty"`
}

// Enum is an enum declaration.
type Enum struct {
	Name          string      `json:"name" yaml:"name"`
	Values        []EnumValue `json:"values" yaml:"values"`
	DBName        string      `json:"dbName,omitempty" yaml:"dbName,omitempty"`
	Documentation string      `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// ValueNames returns the member names in declaration order.
func (e Enum) ValueNames() []string {
	names := make([]string, len(e.Values))
	for i, v := range e.Values {
		names[i] = v.Name
	}
	return names
}

// Datamodel holds the ordered models and enums of one schema.
type Datamodel struct {
	Models []Model `json:"models" yaml:"models"`
	Enums  []Enum  `json:"enums" yaml:"enums"`
}

// Document is the root of a DMMF document.
type Document struct {
	PrismaVersion string    `json:"prismaVersion,omitempty" yaml:"prismaVersion,omitempty"`
	Datamodel     Datamodel `json:"datamodel" yaml:"datamodel"`
}

// Model returns the model with the given name.
func (d *Document) Model(name string) (Model, bool) {
	for _, m := range d.Datamodel.Models {
		if m.Name == name {
			return m, true
		}
	}
	return Model{}, false
}

// Enum returns the enum with the given name.
func (d *Document) Enum(name string) (Enum, bool) {
	for _, e := range d.Datamodel.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return Enum{}, false
}
