package golang

import (
	"github.com/kolah/flatapi/internal/model"
	"github.com/kolah/flatapi/internal/native"
)

// GoType renders t as a Go type expression. Optional values become pointers
// unless the underlying Go type is already nilable.
func (n *Namer) GoType(t native.Type) string {
	switch t.Kind {
	case native.KindI32:
		return "int32"
	case native.KindI64:
		return "int64"
	case native.KindF32:
		return "float32"
	case native.KindF64:
		return "float64"
	case native.KindBool:
		return "bool"
	case native.KindString:
		return "string"
	case native.KindDate, native.KindDateTime:
		return "time.Time"
	case native.KindNamed:
		return n.Identifier(t.Name)
	case native.KindArray:
		if len(t.Elems) != 1 {
			return "[]any"
		}
		return "[]" + n.GoType(t.Elems[0])
	case native.KindOptional:
		if t.Inner == nil {
			return "any"
		}
		inner := n.GoType(*t.Inner)
		if nilable(*t.Inner) {
			return inner
		}
		return "*" + inner
	case native.KindAnonymous:
		return anonymousGoType(t.Schema)
	default:
		return "any"
	}
}

func nilable(t native.Type) bool {
	switch t.Kind {
	case native.KindArray, native.KindAnonymous, native.KindOptional:
		return true
	}
	return false
}

func anonymousGoType(s *model.Schema) string {
	if s == nil || len(s.Properties) == 0 {
		return "map[string]any"
	}
	return "any"
}
