package golang

import (
	"strconv"
	"strings"

	"github.com/kolah/flatapi/internal/extract"
	"github.com/kolah/flatapi/internal/native"
)

// Signature renders ep as a Go function signature, e.g.
//
//	ShowPetByID(petID string) (Pet, error)
//
// Arguments keep their declared order and the request body, if any, comes
// last as "body". The result is the first 2xx response that carries a type.
func (n *Namer) Signature(ep extract.Entrypoint) string {
	hasBody := ep.Body != nil && ep.Body.Type != nil

	used := make(map[string]bool, len(ep.Args)+1)
	if hasBody {
		used["body"] = true
	}

	params := make([]string, 0, len(ep.Args)+1)
	for _, a := range ep.Args {
		name := n.paramName(a, used)
		params = append(params, name+" "+n.GoType(a.Type))
	}
	if hasBody {
		params = append(params, "body "+n.GoType(*ep.Body.Type))
	}

	var b strings.Builder
	b.WriteString(n.Identifier(ep.OperationID))
	b.WriteString("(")
	b.WriteString(strings.Join(params, ", "))
	b.WriteString(") ")

	if result, ok := successType(ep.Responses); ok {
		b.WriteString("(" + n.GoType(result) + ", error)")
	} else {
		b.WriteString("error")
	}
	return b.String()
}

// paramName names a, suffixing its location when the plain name is taken,
// e.g. a query "id" next to a path "id" becomes "idQuery".
func (n *Namer) paramName(a extract.Arg, used map[string]bool) string {
	name := n.Param(a.Name)
	if used[name] {
		name = n.Param(a.Name + "_" + string(a.Location))
	}
	base := name
	for i := 2; used[name]; i++ {
		name = base + strconv.Itoa(i)
	}
	used[name] = true
	return name
}

func successType(responses []extract.Response) (native.Type, bool) {
	for _, r := range responses {
		if strings.HasPrefix(r.Status, "2") && r.HasBody() {
			return *r.Type, true
		}
	}
	return native.Type{}, false
}
