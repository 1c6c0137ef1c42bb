package resolver

import (
	"strings"

	"github.com/kolah/flatapi/internal/errs"
	"github.com/kolah/flatapi/internal/model"
)

// Registry is one kind-specific slice of the components registry. A nil
// Registry means no registry was supplied at all.
type Registry[T any] map[string]model.MaybeRef[T]

// RegistryOf returns m as a Registry that is present even when m is nil.
func RegistryOf[T any](m map[string]model.MaybeRef[T]) Registry[T] {
	if m == nil {
		return Registry[T]{}
	}
	return Registry[T](m)
}

// Resolve returns the concrete value behind value. Concrete values are
// returned without consulting registry. References are followed exactly one
// level: a registry entry that is itself a reference is an error.
func Resolve[T any](value model.MaybeRef[T], registry Registry[T]) (*T, error) {
	if v, ok := value.Value(); ok {
		return v, nil
	}

	ref, _ := value.Reference()
	if registry == nil {
		return nil, errs.NewNotConcrete(string(ref))
	}

	name, err := ParsePointer(ref)
	if err != nil {
		return nil, err
	}

	target, ok := registry[name]
	if !ok {
		return nil, errs.NewNotFound(string(ref), name)
	}
	v, ok := target.Value()
	if !ok {
		return nil, errs.NewRecursiveReference(string(ref), name)
	}
	return v, nil
}

// ParsePointer returns the registry key of a pointer such as
// "#/components/schemas/Pet": the segment after the last separator.
// The rest of the pointer is not validated.
func ParsePointer(ref model.Reference) (string, error) {
	idx := strings.LastIndex(string(ref), "/")
	if idx < 0 || idx == len(ref)-1 {
		return "", errs.NewInvalidPointer(string(ref))
	}
	return string(ref[idx+1:]), nil
}
