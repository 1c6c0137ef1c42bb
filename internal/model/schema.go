package model

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

type Schema struct {
	Required    []string                     `yaml:"required"`
	Type        TypeSet                      `yaml:"type"`
	Format      string                       `yaml:"format"`
	Description string                       `yaml:"description"`
	Nullable    bool                         `yaml:"nullable"`
	Properties  map[string]*MaybeRef[Schema] `yaml:"properties"`

	// Items lists the permissible element schemas of an array. A single
	// schema in the source document decodes into a one-element list.
	Items SchemaList `yaml:"items"`
}

// IsRequired reports whether the named property is listed in required.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeNull    SchemaType = "null"
)

func (t SchemaType) valid() bool {
	switch t {
	case TypeString, TypeNumber, TypeInteger, TypeBoolean, TypeArray, TypeObject, TypeNull:
		return true
	}
	return false
}

// TypeSet is the schema's type tag set. It decodes from either a single
// string or a list of strings.
type TypeSet []SchemaType

func (ts *TypeSet) UnmarshalYAML(node *yaml.Node) error {
	var tags []string
	switch node.Kind {
	case yaml.ScalarNode:
		tags = []string{node.Value}
	case yaml.SequenceNode:
		if err := node.Decode(&tags); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %d: type must be a string or a list of strings", node.Line)
	}

	set := make(TypeSet, 0, len(tags))
	for _, tag := range tags {
		t := SchemaType(tag)
		if !t.valid() {
			return fmt.Errorf("line %d: unknown schema type %q", node.Line, tag)
		}
		set = append(set, t)
	}
	*ts = set
	return nil
}

type SchemaList []*MaybeRef[Schema]

func (l *SchemaList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		item := &MaybeRef[Schema]{}
		if err := node.Decode(item); err != nil {
			return err
		}
		*l = SchemaList{item}
		return nil
	case yaml.SequenceNode:
		var items []*MaybeRef[Schema]
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("line %d: items must be a schema or a list of schemas", node.Line)
	}
}

// Format values with a defined mapping onto a native type.
const (
	FormatInt32    = "int32"
	FormatInt64    = "int64"
	FormatFloat    = "float"
	FormatDouble   = "double"
	FormatByte     = "byte"
	FormatBinary   = "binary"
	FormatDate     = "date"
	FormatDateTime = "date-time"
	FormatPassword = "password"
)
