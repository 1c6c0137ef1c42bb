package extract

import (
	"regexp"
	"slices"
	"strings"
)

var placeholder = regexp.MustCompile(`^\{(.+)\}$`)

// routeArgs returns the sorted, de-duplicated placeholder names of route.
// Only a segment made entirely of "{name}" counts; "x{bogus}x" is literal.
func routeArgs(route string) []string {
	var names []string
	for _, segment := range strings.Split(route, "/") {
		m := placeholder.FindStringSubmatch(segment)
		if m == nil {
			continue
		}
		names = append(names, m[1])
	}
	slices.Sort(names)
	return slices.Compact(names)
}
