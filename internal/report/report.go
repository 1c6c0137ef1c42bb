// Package report renders extraction results as text, YAML or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kolah/flatapi/internal/config"
	"github.com/kolah/flatapi/internal/extract"
	"github.com/kolah/flatapi/internal/golang"
	"github.com/kolah/flatapi/internal/model"
	"go.yaml.in/yaml/v4"
)

// Document is the serializable view of one extraction run.
type Document struct {
	Title       string       `json:"title" yaml:"title"`
	Version     string       `json:"version" yaml:"version"`
	OpenAPI     string       `json:"openapi" yaml:"openapi"`
	Entrypoints []Entrypoint `json:"entrypoints" yaml:"entrypoints"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

type Entrypoint struct {
	OperationID string                      `json:"operationId" yaml:"operationId"`
	Method      string                      `json:"method" yaml:"method"`
	Route       string                      `json:"route" yaml:"route"`
	Summary     string                      `json:"summary,omitempty" yaml:"summary,omitempty"`
	Tags        []string                    `json:"tags,omitempty" yaml:"tags,omitempty"`
	Deprecated  bool                        `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Signature   string                      `json:"signature" yaml:"signature"`
	Args        []Arg                       `json:"args,omitempty" yaml:"args,omitempty"`
	Body        *Body                       `json:"body,omitempty" yaml:"body,omitempty"`
	Responses   []Response                  `json:"responses,omitempty" yaml:"responses,omitempty"`
	Security    []model.SecurityRequirement `json:"security,omitempty" yaml:"security,omitempty"`
}

type Arg struct {
	Name string `json:"name" yaml:"name"`
	In   string `json:"in" yaml:"in"`
	Type string `json:"type" yaml:"type"`
}

type Body struct {
	ContentType string `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Required    bool   `json:"required" yaml:"required"`
}

type Response struct {
	Status      string         `json:"status" yaml:"status"`
	ContentType string         `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	Type        string         `json:"type,omitempty" yaml:"type,omitempty"`
	Headers     []Header       `json:"headers,omitempty" yaml:"headers,omitempty"`
	Examples    map[string]any `json:"examples,omitempty" yaml:"examples,omitempty"`
}

type Header struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

type Diagnostic struct {
	Severity    string `json:"severity" yaml:"severity"`
	Method      string `json:"method" yaml:"method"`
	Route       string `json:"route" yaml:"route"`
	OperationID string `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Item        string `json:"item,omitempty" yaml:"item,omitempty"`
	Error       string `json:"error" yaml:"error"`
}

// Build converts an extraction result into its serializable view. Types are
// rendered in their canonical form; namer renders the Go signatures.
func Build(doc *model.Document, result *extract.Result, namer *golang.Namer) *Document {
	out := &Document{
		Title:       doc.Info.Title,
		Version:     doc.Info.Version,
		OpenAPI:     doc.OpenAPI,
		Entrypoints: make([]Entrypoint, 0, len(result.Entrypoints)),
	}

	for _, ep := range result.Entrypoints {
		out.Entrypoints = append(out.Entrypoints, buildEntrypoint(ep, namer))
	}

	for _, d := range result.Diagnostics {
		var msg string
		if d.Err != nil {
			msg = d.Err.Error()
		}
		out.Diagnostics = append(out.Diagnostics, Diagnostic{
			Severity:    string(d.Severity),
			Method:      string(d.Method),
			Route:       d.Route,
			OperationID: d.OperationID,
			Item:        d.Item,
			Error:       msg,
		})
	}

	return out
}

func buildEntrypoint(ep extract.Entrypoint, namer *golang.Namer) Entrypoint {
	out := Entrypoint{
		OperationID: ep.OperationID,
		Method:      string(ep.Method),
		Route:       ep.Route,
		Summary:     ep.Summary,
		Tags:        ep.Tags,
		Deprecated:  ep.Deprecated,
		Signature:   namer.Signature(ep),
		Security:    ep.Security,
	}

	for _, a := range ep.Args {
		out.Args = append(out.Args, Arg{Name: a.Name, In: string(a.Location), Type: a.Type.String()})
	}

	if ep.Body != nil {
		out.Body = &Body{ContentType: ep.Body.ContentType, Required: ep.Body.Required}
		if ep.Body.Type != nil {
			out.Body.Type = ep.Body.Type.String()
		}
	}

	for _, r := range ep.Responses {
		resp := Response{Status: r.Status, ContentType: r.ContentType, Examples: r.Examples}
		if r.Type != nil {
			resp.Type = r.Type.String()
		}
		for _, h := range r.Headers {
			resp.Headers = append(resp.Headers, Header{Name: h.Name, Type: h.Type.String()})
		}
		out.Responses = append(out.Responses, resp)
	}

	return out
}

// Write renders doc to w in format.
func Write(w io.Writer, doc *Document, format string) error {
	var data []byte
	var err error

	switch format {
	case config.FormatText:
		return writeText(w, doc)
	case config.FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	case config.FormatYAML:
		data, err = yaml.Marshal(doc)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}

	if _, err := fmt.Fprintln(w, strings.TrimRight(string(data), "\n")); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
