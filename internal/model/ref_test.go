package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestMaybeRefUnmarshal(t *testing.T) {
	t.Run("reference", func(t *testing.T) {
		var m MaybeRef[Schema]
		require.NoError(t, yaml.Unmarshal([]byte(`$ref: "#/components/schemas/Pet"`), &m))

		require.True(t, m.IsRef())
		ref, ok := m.Reference()
		require.True(t, ok)
		require.Equal(t, Reference("#/components/schemas/Pet"), ref)

		_, ok = m.Value()
		require.False(t, ok)
	})

	t.Run("reference wins over siblings", func(t *testing.T) {
		var m MaybeRef[Schema]
		require.NoError(t, yaml.Unmarshal([]byte("description: a pet\n$ref: '#/components/schemas/Pet'"), &m))
		require.True(t, m.IsRef())
	})

	t.Run("concrete", func(t *testing.T) {
		var m MaybeRef[Schema]
		require.NoError(t, yaml.Unmarshal([]byte("type: integer\nformat: int64"), &m))

		require.False(t, m.IsRef())
		s, ok := m.Value()
		require.True(t, ok)
		require.Equal(t, TypeSet{TypeInteger}, s.Type)
		require.Equal(t, FormatInt64, s.Format)

		_, ok = m.Reference()
		require.False(t, ok)
	})

	t.Run("non-string ref", func(t *testing.T) {
		var m MaybeRef[Schema]
		require.Error(t, yaml.Unmarshal([]byte("$ref: {a: b}"), &m))
	})
}

func TestMaybeRefZeroValue(t *testing.T) {
	var m MaybeRef[Parameter]
	require.False(t, m.IsRef())

	p, ok := m.Value()
	require.True(t, ok)
	require.NotNil(t, p)
	require.Empty(t, p.Name)
}

func TestSchemaUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTypes TypeSet
		wantItems int
		wantErr   string
	}{
		{name: "single type", input: "type: string", wantTypes: TypeSet{TypeString}},
		{name: "type list", input: "type: [string, 'null']", wantTypes: TypeSet{TypeString, TypeNull}},
		{name: "no type", input: "properties: {a: {type: string}}", wantTypes: nil},
		{name: "items mapping", input: "type: array\nitems: {type: string}", wantTypes: TypeSet{TypeArray}, wantItems: 1},
		{name: "items list", input: "type: array\nitems: [{type: string}, {$ref: '#/components/schemas/Pet'}]", wantTypes: TypeSet{TypeArray}, wantItems: 2},
		{name: "unknown type", input: "type: decimal", wantErr: "unknown schema type"},
		{name: "bad type node", input: "type: {a: b}", wantErr: "type must be"},
		{name: "bad items node", input: "type: array\nitems: nope", wantErr: "items must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Schema
			err := yaml.Unmarshal([]byte(tt.input), &s)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantTypes, s.Type)
			require.Len(t, s.Items, tt.wantItems)
		})
	}
}

func TestSchemaIsRequired(t *testing.T) {
	s := Schema{Required: []string{"id", "name"}}
	require.True(t, s.IsRequired("id"))
	require.False(t, s.IsRequired("tag"))
}

func TestDocumentUnmarshal(t *testing.T) {
	src := `
openapi: 3.0.0
info:
  title: Petstore
  version: 1.0.0
  termsOfService: https://example.com/tos
paths:
  /pets/{petId}:
    parameters:
      - $ref: '#/components/parameters/PetID'
    get:
      operationId: showPetById
      responses:
        '200':
          description: ok
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
        default:
          $ref: '#/components/responses/Error'
components:
  parameters:
    PetID:
      name: petId
      in: path
      required: true
      allowEmptyValue: false
      schema: {type: string}
  requestBodies:
    PetBody:
      required: true
      content:
        application/json:
          schema: {$ref: '#/components/schemas/Pet'}
  securitySchemes:
    api_key: {type: apiKey, name: api_key, in: header}
`
	var doc Document
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	require.Equal(t, "3.0.0", doc.OpenAPI)
	require.Equal(t, "https://example.com/tos", doc.Info.TermsOfService)

	path, ok := doc.Paths["/pets/{petId}"]
	require.True(t, ok)
	require.Len(t, path.Parameters, 1)
	require.True(t, path.Parameters[0].IsRef())
	require.NotNil(t, path.Get)
	require.Equal(t, "showPetById", path.Get.OperationID)
	require.Nil(t, path.Post)

	ok200 := path.Get.Responses["200"]
	resp, ok := ok200.Value()
	require.True(t, ok)
	require.Contains(t, resp.Content, "application/json")
	require.True(t, path.Get.Responses["default"].IsRef())

	require.NotNil(t, doc.Components)
	param, ok := doc.Components.Parameters["PetID"].Value()
	require.True(t, ok)
	require.Equal(t, LocationPath, param.In)
	require.True(t, param.Required)

	body, ok := doc.Components.RequestBodies["PetBody"].Value()
	require.True(t, ok)
	require.True(t, body.Required)
	require.Contains(t, doc.Components.SecuritySchemes, "api_key")
}

func TestOperationHasTag(t *testing.T) {
	op := Operation{Tags: []string{"pets", "admin"}}
	require.True(t, op.HasTag("admin"))
	require.True(t, op.HasTag("store", "pets"))
	require.False(t, op.HasTag("store"))
	require.False(t, op.HasTag())
}
