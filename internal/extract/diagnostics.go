package extract

import (
	"fmt"
	"strings"

	"github.com/kolah/flatapi/internal/model"
)

type Severity string

const (
	// SeverityError marks a dropped operation, parameter, request body or response.
	SeverityError Severity = "error"
	// SeverityWarning marks a dropped header or example, or a route placeholder
	// that no path parameter binds.
	SeverityWarning Severity = "warning"
)

// Diagnostic records one item that was dropped during extraction.
type Diagnostic struct {
	Severity    Severity
	Route       string
	Method      model.Method
	OperationID string
	Item        string
	Err         error
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", d.Method, d.Route)
	if d.OperationID != "" {
		fmt.Fprintf(&b, " (%s)", d.OperationID)
	}
	if d.Item != "" {
		b.WriteString(": ")
		b.WriteString(d.Item)
	}
	if d.Err != nil {
		b.WriteString(": ")
		b.WriteString(d.Err.Error())
	}
	return b.String()
}

// Result is the output of Extract.
type Result struct {
	Entrypoints []Entrypoint
	Diagnostics []Diagnostic
}

// Errors returns the number of error-severity diagnostics.
func (r *Result) Errors() int {
	return r.count(SeverityError)
}

// Warnings returns the number of warning-severity diagnostics.
func (r *Result) Warnings() int {
	return r.count(SeverityWarning)
}

func (r *Result) count(sev Severity) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// scope collects diagnostics for one operation.
type scope struct {
	route       string
	method      model.Method
	operationID string
	diagnostics []Diagnostic
}

func (s *scope) report(sev Severity, item string, err error) {
	s.diagnostics = append(s.diagnostics, Diagnostic{
		Severity:    sev,
		Route:       s.route,
		Method:      s.method,
		OperationID: s.operationID,
		Item:        item,
		Err:         err,
	})
}

func (s *scope) fail(item string, err error) {
	s.report(SeverityError, item, err)
}

func (s *scope) warn(item string, err error) {
	s.report(SeverityWarning, item, err)
}
