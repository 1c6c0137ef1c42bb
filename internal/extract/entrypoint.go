package extract

import (
	"github.com/kolah/flatapi/internal/model"
	"github.com/kolah/flatapi/internal/native"
)

// Entrypoint is one callable operation with fully inferred arguments and
// responses.
type Entrypoint struct {
	Route       string
	Method      model.Method
	OperationID string
	Summary     string
	Tags        []string
	Deprecated  bool
	Args        []Arg
	Body        *Body
	Responses   []Response
	Security    []model.SecurityRequirement
}

// PathArg returns the path argument named name.
func (e *Entrypoint) PathArg(name string) (Arg, bool) {
	for _, a := range e.Args {
		if a.Location == model.LocationPath && a.Name == name {
			return a, true
		}
	}
	return Arg{}, false
}

type Arg struct {
	Name     string
	Type     native.Type
	Location model.ParameterLocation
}

// Body is the request body. Type is nil when the body declares no schema.
type Body struct {
	ContentType string
	Type        *native.Type
	Required    bool
}

// Response is one status code entry. A response without content has neither
// Type nor ContentType.
type Response struct {
	Status      string
	ContentType string
	Type        *native.Type
	Headers     []Header
	Examples    map[string]any
}

// HasBody reports whether the response carries a typed payload.
func (r Response) HasBody() bool {
	return r.Type != nil
}

type Header struct {
	Name string
	Type native.Type
}
