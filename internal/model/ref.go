package model

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Reference is a pointer into the components registry, e.g. "#/components/schemas/Pet".
type Reference string

// MaybeRef holds either a concrete T or a Reference to one. Exactly one of the
// two forms is active; the zero value is the concrete zero T.
type MaybeRef[T any] struct {
	value *T
	ref   Reference
	isRef bool
}

// Concrete wraps an inline value.
func Concrete[T any](v T) MaybeRef[T] {
	return MaybeRef[T]{value: &v}
}

// Ref wraps a pointer string.
func Ref[T any](pointer string) MaybeRef[T] {
	return MaybeRef[T]{ref: Reference(pointer), isRef: true}
}

func (m MaybeRef[T]) IsRef() bool {
	return m.isRef
}

// Value returns the concrete value, or false when m is a reference.
func (m MaybeRef[T]) Value() (*T, bool) {
	if m.isRef {
		return nil, false
	}
	if m.value == nil {
		var zero T
		return &zero, true
	}
	return m.value, true
}

// Reference returns the pointer string, or false when m is concrete.
func (m MaybeRef[T]) Reference() (Reference, bool) {
	if !m.isRef {
		return "", false
	}
	return m.ref, true
}

// UnmarshalYAML picks the reference form whenever the mapping carries a $ref key.
func (m *MaybeRef[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value != "$ref" {
				continue
			}
			target := node.Content[i+1]
			if target.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: $ref must be a string", target.Line)
			}
			*m = Ref[T](target.Value)
			return nil
		}
	}

	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*m = Concrete(v)
	return nil
}
