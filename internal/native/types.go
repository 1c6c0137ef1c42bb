package native

import (
	"maps"
	"slices"
	"strings"

	"github.com/kolah/flatapi/internal/model"
)

type Kind int

const (
	KindI32 Kind = iota
	KindI64
	KindF32
	KindF64
	KindBool
	KindString
	KindDate
	KindDateTime
	KindNamed
	KindArray
	KindOptional
	KindAnonymous
)

var kindNames = [...]string{
	KindI32:       "I32",
	KindI64:       "I64",
	KindF32:       "F32",
	KindF64:       "F64",
	KindBool:      "Bool",
	KindString:    "String",
	KindDate:      "Date",
	KindDateTime:  "DateTime",
	KindNamed:     "Named",
	KindArray:     "Array",
	KindOptional:  "Optional",
	KindAnonymous: "Anonymous",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Type is a value shape inferred from a schema. Kind selects the variant;
// only the fields belonging to that variant are set:
//
//	KindNamed      Name
//	KindArray      Elems (at least one)
//	KindOptional   Inner
//	KindAnonymous  Schema
type Type struct {
	Kind   Kind
	Name   string
	Elems  []Type
	Inner  *Type
	Schema *model.Schema
}

var (
	I32      = Type{Kind: KindI32}
	I64      = Type{Kind: KindI64}
	F32      = Type{Kind: KindF32}
	F64      = Type{Kind: KindF64}
	Bool     = Type{Kind: KindBool}
	String   = Type{Kind: KindString}
	Date     = Type{Kind: KindDate}
	DateTime = Type{Kind: KindDateTime}
)

func Named(name string) Type {
	return Type{Kind: KindNamed, Name: name}
}

func Array(elems ...Type) Type {
	return Type{Kind: KindArray, Elems: elems}
}

func Optional(inner Type) Type {
	return Type{Kind: KindOptional, Inner: &inner}
}

func Anonymous(schema *model.Schema) Type {
	return Type{Kind: KindAnonymous, Schema: schema}
}

// IsOptional reports whether t is wrapped in Optional.
func (t Type) IsOptional() bool {
	return t.Kind == KindOptional
}

// Base strips an Optional wrapper, if any.
func (t Type) Base() Type {
	if t.Kind == KindOptional && t.Inner != nil {
		return *t.Inner
	}
	return t
}

// String renders t in a canonical form, e.g. "Optional<Array<Named<Pet>>>".
func (t Type) String() string {
	switch t.Kind {
	case KindNamed:
		return "Named<" + t.Name + ">"
	case KindArray:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = e.String()
		}
		return "Array<" + strings.Join(parts, " | ") + ">"
	case KindOptional:
		if t.Inner == nil {
			return "Optional<?>"
		}
		return "Optional<" + t.Inner.String() + ">"
	case KindAnonymous:
		return "Anonymous" + anonymousFields(t.Schema)
	default:
		return t.Kind.String()
	}
}

// anonymousFields lists the property names of an anonymous schema, marking
// the ones not listed as required with "?".
func anonymousFields(s *model.Schema) string {
	if s == nil || len(s.Properties) == 0 {
		return ""
	}
	names := slices.Sorted(maps.Keys(s.Properties))
	for i, name := range names {
		if !s.IsRequired(name) {
			names[i] = name + "?"
		}
	}
	return "{" + strings.Join(names, ", ") + "}"
}
