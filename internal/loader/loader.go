// Package loader reads an OpenAPI document from disk or memory into the
// document model consumed by the extractor.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kolah/flatapi/internal/model"
	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel"
	"go.yaml.in/yaml/v4"
)

var (
	ErrMissingVersion = errors.New("missing openapi version")
	ErrMissingPaths   = errors.New("missing paths")
)

type Result struct {
	Document *model.Document
	Version  string
	Warnings []string
	RawData  []byte
}

func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	// Only local "#/components/..." pointers are resolved, so references to
	// other files are never followed.
	config := &datamodel.DocumentConfiguration{
		BasePath: filepath.Dir(absPath),
	}

	return loadWithConfig(data, config)
}

// Load reads a YAML or JSON document from data.
func Load(data []byte) (*Result, error) {
	return loadWithConfig(data, nil)
}

func loadWithConfig(data []byte, config *datamodel.DocumentConfiguration) (*Result, error) {
	version, err := sniffVersion(data, config)
	if err != nil {
		return nil, err
	}

	var doc model.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding OpenAPI document: %w", err)
	}
	if doc.Paths == nil {
		return nil, fmt.Errorf("decoding OpenAPI document: %w", ErrMissingPaths)
	}

	result := &Result{
		Document: &doc,
		Version:  version,
		RawData:  data,
	}

	if !strings.HasPrefix(version, "3.0") {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("OpenAPI %s detected; only the 3.0 feature set is extracted", version))
	}

	return result, nil
}

func sniffVersion(data []byte, config *datamodel.DocumentConfiguration) (string, error) {
	var doc libopenapi.Document
	var err error

	if config != nil {
		doc, err = libopenapi.NewDocumentWithConfiguration(data, config)
	} else {
		doc, err = libopenapi.NewDocument(data)
	}
	if err != nil {
		if missingVersion(data) {
			return "", fmt.Errorf("parsing OpenAPI document: %w: %w", ErrMissingVersion, err)
		}
		return "", fmt.Errorf("parsing OpenAPI document: %w", err)
	}

	version := doc.GetVersion()
	if !strings.HasPrefix(version, "3.") {
		return "", fmt.Errorf("unsupported OpenAPI version: %s (only 3.x supported)", version)
	}
	return version, nil
}

// missingVersion reports whether data is a mapping with neither an openapi
// nor a swagger version key.
func missingVersion(data []byte) bool {
	var header struct {
		OpenAPI string `yaml:"openapi"`
		Swagger string `yaml:"swagger"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return false
	}
	return header.OpenAPI == "" && header.Swagger == ""
}
