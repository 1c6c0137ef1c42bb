package native

import (
	"github.com/kolah/flatapi/internal/errs"
	"github.com/kolah/flatapi/internal/model"
	"github.com/kolah/flatapi/internal/resolver"
)

type formatMapping struct {
	typ    model.SchemaType
	native Type
}

// formats maps each known format onto the only schema type it may refine.
// Formats outside this table leave the declared type alone.
var formats = map[string]formatMapping{
	model.FormatInt32:    {model.TypeInteger, I32},
	model.FormatInt64:    {model.TypeInteger, I64},
	model.FormatFloat:    {model.TypeNumber, F32},
	model.FormatDouble:   {model.TypeNumber, F64},
	model.FormatByte:     {model.TypeString, String},
	model.FormatBinary:   {model.TypeString, String},
	model.FormatPassword: {model.TypeString, String},
	model.FormatDate:     {model.TypeString, Date},
	model.FormatDateTime: {model.TypeString, DateTime},
}

// Infer converts a schema into a native Type, wrapped in Optional unless
// required is set.
//
// A referenced schema becomes Named after the last segment of its pointer;
// the components registry is never consulted, so component schemas act as
// nominal types. Schemas without a type tag, and object schemas, become
// Anonymous and carry the raw schema.
func Infer(schema model.MaybeRef[model.Schema], required bool) (Type, error) {
	t, err := inferBase(schema, required)
	if err != nil {
		return Type{}, err
	}
	if !required {
		return Optional(t), nil
	}
	return t, nil
}

func inferBase(schema model.MaybeRef[model.Schema], required bool) (Type, error) {
	if ref, ok := schema.Reference(); ok {
		name, err := resolver.ParsePointer(ref)
		if err != nil {
			return Type{}, err
		}
		return Named(name), nil
	}

	s, _ := schema.Value()

	switch len(s.Type) {
	case 0:
		return Anonymous(s), nil
	case 1:
	default:
		return Type{}, &errs.TypeError{Kind: errs.ErrAmbiguousTypeArray, Types: typeNames(s.Type)}
	}

	tag := s.Type[0]
	var t Type
	switch tag {
	case model.TypeBoolean:
		t = Bool
	case model.TypeInteger:
		t = I64
	case model.TypeNumber:
		t = F64
	case model.TypeString:
		t = String
	case model.TypeObject:
		t = Anonymous(s)
	case model.TypeArray:
		elems, err := inferItems(s.Items, required)
		if err != nil {
			return Type{}, err
		}
		t = Array(elems...)
	case model.TypeNull:
		return Type{}, &errs.TypeError{Kind: errs.ErrNullTypeUnsupported, Types: typeNames(s.Type)}
	}

	return refine(t, tag, s.Format)
}

func inferItems(items model.SchemaList, required bool) ([]Type, error) {
	if len(items) == 0 {
		return nil, &errs.TypeError{Kind: errs.ErrMissingItems}
	}
	elems := make([]Type, 0, len(items))
	for _, item := range items {
		if item == nil {
			return nil, &errs.TypeError{Kind: errs.ErrMissingItems}
		}
		elem, err := Infer(*item, required)
		if err != nil {
			if _, ok := err.(*errs.ReferenceError); ok {
				return nil, &errs.TypeError{Kind: errs.ErrItemReference, Cause: err}
			}
			return nil, err
		}
		elems = append(elems, elem)
	}
	return elems, nil
}

func refine(t Type, tag model.SchemaType, format string) (Type, error) {
	m, ok := formats[format]
	if !ok {
		return t, nil
	}
	if m.typ != tag {
		return Type{}, &errs.TypeError{
			Kind:   errs.ErrFormatTypeMismatch,
			Types:  []string{string(tag)},
			Format: format,
		}
	}
	return m.native, nil
}

func typeNames(ts model.TypeSet) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = string(t)
	}
	return names
}
