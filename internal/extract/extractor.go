// Package extract walks an OpenAPI document and flattens every operation
// into an Entrypoint with inferred argument and response types.
package extract

import (
	"fmt"
	"maps"
	"slices"

	"github.com/kolah/flatapi/internal/errs"
	"github.com/kolah/flatapi/internal/model"
	"github.com/kolah/flatapi/internal/native"
	"github.com/kolah/flatapi/internal/resolver"
	"golang.org/x/sync/errgroup"
)

type registries struct {
	parameters    resolver.Registry[model.Parameter]
	requestBodies resolver.Registry[model.RequestBody]
	responses     resolver.Registry[model.Response]
	headers       resolver.Registry[model.Header]
	examples      resolver.Registry[model.Example]
}

func newRegistries(c *model.Components) registries {
	if c == nil {
		c = &model.Components{}
	}
	return registries{
		parameters:    resolver.RegistryOf(c.Parameters),
		requestBodies: resolver.RegistryOf(c.RequestBodies),
		responses:     resolver.RegistryOf(c.Responses),
		headers:       resolver.RegistryOf(c.Headers),
		examples:      resolver.RegistryOf(c.Examples),
	}
}

type extractor struct {
	opts     *options
	reg      registries
	security []model.SecurityRequirement
}

// Extract flattens doc into entrypoints. Paths are visited in ascending route
// order and methods in GET, POST, PUT, PATCH, DELETE order; HEAD, OPTIONS and
// TRACE are never visited. Items that fail to resolve or infer are dropped
// and recorded as diagnostics; Extract itself never fails.
func Extract(doc *model.Document, opts ...Option) *Result {
	result := &Result{}
	if doc == nil {
		return result
	}

	x := &extractor{
		opts:     newOptions(opts...),
		reg:      newRegistries(doc.Components),
		security: doc.Security,
	}

	routes := slices.Sorted(maps.Keys(doc.Paths))
	parts := make([]*Result, len(routes))

	var g errgroup.Group
	g.SetLimit(x.opts.concurrency)
	for i, route := range routes {
		path := doc.Paths[route]
		g.Go(func() error {
			parts[i] = x.extractPath(route, &path)
			return nil
		})
	}
	_ = g.Wait()

	for _, part := range parts {
		result.Entrypoints = append(result.Entrypoints, part.Entrypoints...)
		result.Diagnostics = append(result.Diagnostics, part.Diagnostics...)
	}
	return result
}

func (x *extractor) extractPath(route string, path *model.Path) *Result {
	result := &Result{}

	methods := []struct {
		method model.Method
		op     *model.Operation
	}{
		{model.MethodGet, path.Get},
		{model.MethodPost, path.Post},
		{model.MethodPut, path.Put},
		{model.MethodPatch, path.Patch},
		{model.MethodDelete, path.Delete},
	}

	for _, m := range methods {
		if m.op == nil || x.opts.skip(m.op) {
			continue
		}
		s := &scope{route: route, method: m.method, operationID: m.op.OperationID}
		ep, ok := x.extractOperation(s, path, m.op)
		for _, d := range s.diagnostics {
			x.opts.logger.Debug("dropped item",
				"severity", d.Severity,
				"method", d.Method,
				"route", d.Route,
				"item", d.Item,
				"error", d.Err)
		}
		result.Diagnostics = append(result.Diagnostics, s.diagnostics...)
		if !ok {
			continue
		}
		x.opts.logger.Debug("extracted entrypoint",
			"method", ep.Method,
			"route", ep.Route,
			"operationId", ep.OperationID,
			"args", len(ep.Args),
			"responses", len(ep.Responses))
		result.Entrypoints = append(result.Entrypoints, ep)
	}
	return result
}

func (x *extractor) extractOperation(s *scope, path *model.Path, op *model.Operation) (Entrypoint, bool) {
	if op.OperationID == "" {
		s.fail("operation", &errs.ExtractionError{
			Kind:   errs.ErrMissingOperationID,
			Route:  s.route,
			Method: string(s.method),
		})
		return Entrypoint{}, false
	}

	ep := Entrypoint{
		Route:       s.route,
		Method:      s.method,
		OperationID: op.OperationID,
		Summary:     op.Summary,
		Tags:        op.Tags,
		Deprecated:  op.Deprecated,
		Security:    op.Security,
	}
	if ep.Security == nil {
		ep.Security = x.security
	}

	ep.Args = x.args(s, path, op)
	x.checkPlaceholders(s, &ep)

	if op.RequestBody != nil {
		ep.Body = x.body(s, *op.RequestBody)
	}

	for _, status := range slices.Sorted(maps.Keys(op.Responses)) {
		if resp, ok := x.response(s, status, op.Responses[status]); ok {
			ep.Responses = append(ep.Responses, resp)
		}
	}

	return ep, true
}

// parameters merges path-level and operation-level parameters. An operation
// parameter replaces a path parameter with the same name and location.
func (x *extractor) parameters(s *scope, path *model.Path, op *model.Operation) []*model.Parameter {
	var params []*model.Parameter
	add := func(p *model.Parameter) {
		for i, have := range params {
			if have.Name == p.Name && have.In == p.In {
				params[i] = p
				return
			}
		}
		params = append(params, p)
	}

	for _, list := range [][]model.MaybeRef[model.Parameter]{path.Parameters, op.Parameters} {
		for _, mr := range list {
			p, err := resolver.Resolve(mr, x.reg.parameters)
			if err != nil {
				s.fail(itemName("parameter", mr), err)
				continue
			}
			add(p)
		}
	}
	return params
}

func (x *extractor) args(s *scope, path *model.Path, op *model.Operation) []Arg {
	var args []Arg
	for _, p := range x.parameters(s, path, op) {
		t, err := inferField(p.Schema, p.Content, p.Required)
		if err != nil {
			s.fail("parameter "+p.Name, err)
			continue
		}
		args = append(args, Arg{Name: p.Name, Type: t, Location: p.In})
	}
	return args
}

func (x *extractor) checkPlaceholders(s *scope, ep *Entrypoint) {
	for _, name := range routeArgs(ep.Route) {
		if _, ok := ep.PathArg(name); !ok {
			s.warn("route placeholder {"+name+"}", fmt.Errorf("no path parameter named %q", name))
		}
	}
}

func (x *extractor) body(s *scope, mr model.MaybeRef[model.RequestBody]) *Body {
	rb, err := resolver.Resolve(mr, x.reg.requestBodies)
	if err != nil {
		s.fail(itemName("request body", mr), err)
		return nil
	}

	body := &Body{Required: rb.Required}
	ct, media, ok := firstContent(rb.Content)
	if !ok {
		return body
	}
	body.ContentType = ct
	if media.Schema == nil {
		return body
	}
	t, err := native.Infer(*media.Schema, rb.Required)
	if err != nil {
		s.fail("request body", err)
		return nil
	}
	body.Type = &t
	return body
}

func (x *extractor) response(s *scope, status string, mr model.MaybeRef[model.Response]) (Response, bool) {
	item := "response " + status
	r, err := resolver.Resolve(mr, x.reg.responses)
	if err != nil {
		s.fail(item, err)
		return Response{}, false
	}

	resp := Response{Status: status}
	if ct, media, ok := firstContent(r.Content); ok {
		resp.ContentType = ct
		if media.Schema != nil {
			t, err := native.Infer(*media.Schema, true)
			if err != nil {
				s.fail(item, err)
				return Response{}, false
			}
			resp.Type = &t
		}
		resp.Examples = x.examples(s, item, media)
	}
	resp.Headers = x.headers(s, item, r.Headers)
	return resp, true
}

func (x *extractor) headers(s *scope, item string, headers map[string]model.MaybeRef[model.Header]) []Header {
	var out []Header
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		hitem := item + " header " + name
		h, err := resolver.Resolve(headers[name], x.reg.headers)
		if err != nil {
			s.warn(hitem, err)
			continue
		}
		t, err := inferField(h.Schema, h.Content, h.Required)
		if err != nil {
			s.warn(hitem, err)
			continue
		}
		out = append(out, Header{Name: name, Type: t})
	}
	return out
}

func (x *extractor) examples(s *scope, item string, media model.MediaType) map[string]any {
	if len(media.Examples) == 0 {
		return nil
	}
	out := make(map[string]any, len(media.Examples))
	for _, name := range slices.Sorted(maps.Keys(media.Examples)) {
		ex, err := resolver.Resolve(media.Examples[name], x.reg.examples)
		if err != nil {
			s.warn(item+" example "+name, err)
			continue
		}
		out[name] = plainValue(ex.Value)
	}
	return out
}

// plainValue rewrites decoded YAML so every mapping has string keys.
// Mappings such as {1: one} otherwise decode to map[any]any, which
// encoding/json cannot marshal.
func plainValue(v any) any {
	switch v := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = plainValue(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = plainValue(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = plainValue(val)
		}
		return out
	default:
		return v
	}
}

// inferField infers the type of a parameter or header, which carries its
// schema either directly or through the first of its content entries.
func inferField(schema *model.MaybeRef[model.Schema], content map[string]model.MediaType, required bool) (native.Type, error) {
	if schema == nil {
		if _, media, ok := firstContent(content); ok {
			schema = media.Schema
		}
	}
	if schema == nil {
		return native.Type{}, &errs.TypeError{Kind: errs.ErrNoTypeSpecified}
	}
	return native.Infer(*schema, required)
}

// firstContent returns the content entry with the lowest media type key.
func firstContent(content map[string]model.MediaType) (string, model.MediaType, bool) {
	if len(content) == 0 {
		return "", model.MediaType{}, false
	}
	ct := slices.Min(slices.Collect(maps.Keys(content)))
	return ct, content[ct], true
}

// itemName names a failed item for diagnostics by its pointer when it is a
// reference.
func itemName[T any](kind string, mr model.MaybeRef[T]) string {
	if ref, ok := mr.Reference(); ok {
		return kind + " " + string(ref)
	}
	return kind
}
