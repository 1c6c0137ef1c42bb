package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := RootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

const brokenSpec = `
openapi: 3.0.0
info: {title: Broken, version: '2'}
paths:
  /items/{id}:
    get:
      operationId: getItem
      parameters:
        - $ref: '#/components/parameters/Missing'
      responses:
        '200': {description: ok}
`

func writeSpec(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestExtractText(t *testing.T) {
	stdout, stderr, err := run(t, "extract", "testdata/petstore.yaml")
	require.NoError(t, err)

	require.Contains(t, stderr, "Loaded OpenAPI 3.0.0: Swagger Petstore v1.0.0")
	require.Contains(t, stderr, "Entrypoints: 3")
	require.Contains(t, stdout, "func ListPets(limit *int32) (Pets, error)")
	require.Contains(t, stdout, "func ShowPetByID(petID string) (Pet, error)")
	require.Contains(t, stdout, "3 entrypoints, 0 errors, 0 warnings")
}

func TestExtractJSON(t *testing.T) {
	stdout, _, err := run(t, "extract", "--spec", "testdata/petstore.yaml", "--format", "json", "-j", "4")
	require.NoError(t, err)

	var decoded struct {
		Title       string `json:"title"`
		Entrypoints []struct {
			OperationID string `json:"operationId"`
		} `json:"entrypoints"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	require.Equal(t, "Swagger Petstore", decoded.Title)
	require.Len(t, decoded.Entrypoints, 3)
	require.Equal(t, "listPets", decoded.Entrypoints[0].OperationID)
}

func TestExtractOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.yaml")
	stdout, stderr, err := run(t, "extract", "testdata/petstore.yaml", "-f", "yaml", "-o", out)
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Written: "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "operationId: createPets")
}

func TestExtractTagFilter(t *testing.T) {
	stdout, stderr, err := run(t, "extract", "testdata/petstore.yaml", "--exclude-tags", "pets")
	require.NoError(t, err)
	require.Contains(t, stderr, "Entrypoints: 0")
	require.Contains(t, stdout, "0 entrypoints")
}

func TestExtractDiagnostics(t *testing.T) {
	path := writeSpec(t, brokenSpec)

	_, stderr, err := run(t, "extract", path)
	require.NoError(t, err)
	require.Contains(t, stderr, "Error: GET /items/{id} (getItem): parameter #/components/parameters/Missing")
	require.Contains(t, stderr, "Warning: GET /items/{id} (getItem): route placeholder {id}")

	_, _, err = run(t, "extract", path, "--strict")
	require.ErrorIs(t, err, ErrDropped)
}

func TestExtractVerbose(t *testing.T) {
	_, stderr, err := run(t, "extract", "testdata/petstore.yaml", "--verbose")
	require.NoError(t, err)
	require.Contains(t, stderr, "extracted entrypoint")
}

func TestExtractErrors(t *testing.T) {
	_, _, err := run(t, "extract")
	require.ErrorContains(t, err, "spec file is required")

	_, _, err = run(t, "extract", "testdata/missing.yaml")
	require.ErrorContains(t, err, "loading spec")

	_, _, err = run(t, "extract", "testdata/petstore.yaml", "--format", "xml")
	require.ErrorContains(t, err, "invalid format")
}
