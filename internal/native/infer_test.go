package native

import (
	"testing"

	"github.com/kolah/flatapi/internal/errs"
	"github.com/kolah/flatapi/internal/model"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func schemaOf(t *testing.T, src string) model.MaybeRef[model.Schema] {
	t.Helper()
	var s model.MaybeRef[model.Schema]
	require.NoError(t, yaml.Unmarshal([]byte(src), &s))
	return s
}

func TestInfer(t *testing.T) {
	tests := []struct {
		name     string
		schema   string
		required bool
		expected Type
	}{
		{"boolean", "type: boolean", true, Bool},
		{"integer", "type: integer", true, I64},
		{"integer int32", "type: integer\nformat: int32", true, I32},
		{"integer int64", "type: integer\nformat: int64", true, I64},
		{"optional integer int64", "type: integer\nformat: int64", false, Optional(I64)},
		{"number", "type: number", true, F64},
		{"number float", "type: number\nformat: float", true, F32},
		{"number double", "type: number\nformat: double", true, F64},
		{"string", "type: string", true, String},
		{"string byte", "type: string\nformat: byte", true, String},
		{"string binary", "type: string\nformat: binary", true, String},
		{"string password", "type: string\nformat: password", true, String},
		{"string date", "type: string\nformat: date", true, Date},
		{"string date-time", "type: string\nformat: date-time", true, DateTime},
		{"string unknown format", "type: string\nformat: uuid", true, String},
		{"ref", "$ref: '#/components/schemas/Pet'", true, Named("Pet")},
		{"optional ref", "$ref: '#/components/schemas/Pet'", false, Optional(Named("Pet"))},
		{"array single items", "type: array\nitems: {type: string}", true, Array(String)},
		{"array items list", "type: array\nitems: [{type: string}]", true, Array(String)},
		{"array multiple items", "type: array\nitems: [{type: string}, {$ref: '#/components/schemas/Pet'}]", true, Array(String, Named("Pet"))},
		{"optional array", "type: array\nitems: {type: integer, format: int32}", false, Optional(Array(Optional(I32)))},
		{"nested array", "type: array\nitems: {type: array, items: {type: boolean}}", true, Array(Array(Bool))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(schemaOf(t, tt.schema), tt.required)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestInferAnonymous(t *testing.T) {
	tests := []struct {
		name   string
		schema string
	}{
		{"object", "type: object\nproperties: {id: {type: integer}}"},
		{"untyped", "properties: {id: {type: integer}}"},
		{"empty", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := schemaOf(t, tt.schema)
			raw, _ := schema.Value()

			got, err := Infer(schema, true)
			require.NoError(t, err)
			require.Equal(t, KindAnonymous, got.Kind)
			require.Same(t, raw, got.Schema)

			got, err = Infer(schema, false)
			require.NoError(t, err)
			require.True(t, got.IsOptional())
			require.Equal(t, KindAnonymous, got.Base().Kind)
		})
	}
}

func TestInferErrors(t *testing.T) {
	tests := []struct {
		name    string
		schema  string
		wantErr error
	}{
		{"ambiguous", "type: [string, integer]", errs.ErrAmbiguousTypeArray},
		{"nullable type list", "type: [string, 'null']", errs.ErrAmbiguousTypeArray},
		{"null alone", "type: 'null'", errs.ErrNullTypeUnsupported},
		{"array without items", "type: array", errs.ErrMissingItems},
		{"array with empty items", "type: array\nitems: []", errs.ErrMissingItems},
		{"integer with date", "type: integer\nformat: date", errs.ErrFormatTypeMismatch},
		{"string with int32", "type: string\nformat: int32", errs.ErrFormatTypeMismatch},
		{"number with int64", "type: number\nformat: int64", errs.ErrFormatTypeMismatch},
		{"boolean with double", "type: boolean\nformat: double", errs.ErrFormatTypeMismatch},
		{"nested item error", "type: array\nitems: {type: [string, integer]}", errs.ErrAmbiguousTypeArray},
		{"invalid pointer", "$ref: Pet", errs.ErrInvalidPointer},
		{"invalid pointer in items", "type: array\nitems: {$ref: Pet}", errs.ErrInvalidPointer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, required := range []bool{true, false} {
				_, err := Infer(schemaOf(t, tt.schema), required)
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestInferItemReferenceCause(t *testing.T) {
	_, err := Infer(schemaOf(t, "type: array\nitems: {$ref: Pet}"), true)

	var typeErr *errs.TypeError
	require.ErrorAs(t, err, &typeErr)
	require.ErrorIs(t, typeErr.Kind, errs.ErrItemReference)
	require.ErrorIs(t, err, errs.ErrType)

	var refErr *errs.ReferenceError
	require.ErrorAs(t, err, &refErr)
	require.Equal(t, "Pet", refErr.Ref)
	require.EqualError(t, err, "array item reference: invalid pointer: Pet")
}

func TestInferNeverConsultsRegistry(t *testing.T) {
	// A reference with no backing component still infers to its name.
	got, err := Infer(model.Ref[model.Schema]("#/components/schemas/Nowhere"), true)
	require.NoError(t, err)
	require.Equal(t, Named("Nowhere"), got)
}

func TestArraysAreNeverEmpty(t *testing.T) {
	for _, src := range []string{
		"type: array\nitems: {type: string}",
		"type: array\nitems: [{type: string}, {type: integer}]",
	} {
		got, err := Infer(schemaOf(t, src), true)
		require.NoError(t, err)
		require.Equal(t, KindArray, got.Kind)
		require.NotEmpty(t, got.Elems)
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{I32, "I32"},
		{DateTime, "DateTime"},
		{Named("Pet"), "Named<Pet>"},
		{Optional(Array(Named("Pet"))), "Optional<Array<Named<Pet>>>"},
		{Array(String, I64), "Array<String | I64>"},
		{Anonymous(nil), "Anonymous"},
		{Anonymous(&model.Schema{
			Required: []string{"id"},
			Properties: map[string]*model.MaybeRef[model.Schema]{
				"tag": nil,
				"id":  nil,
			},
		}), "Anonymous{id, tag?}"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.typ.String())
		})
	}
}

func TestTypeBase(t *testing.T) {
	require.Equal(t, I64, Optional(I64).Base())
	require.Equal(t, I64, I64.Base())
	require.False(t, I64.IsOptional())
}
