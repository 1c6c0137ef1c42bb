package model

// Document is an OpenAPI 3.0 document as decoded from YAML or JSON.
type Document struct {
	OpenAPI      string                `yaml:"openapi"`
	Info         Info                  `yaml:"info"`
	Servers      []Server              `yaml:"servers"`
	Paths        map[string]Path       `yaml:"paths"`
	Components   *Components           `yaml:"components"`
	Security     []SecurityRequirement `yaml:"security"`
	Tags         []Tag                 `yaml:"tags"`
	ExternalDocs *ExternalDocs         `yaml:"externalDocs"`
}

type Info struct {
	Title          string   `yaml:"title"`
	Description    string   `yaml:"description"`
	TermsOfService string   `yaml:"termsOfService"`
	Contact        *Contact `yaml:"contact"`
	License        *License `yaml:"license"`
	Version        string   `yaml:"version"`
}

type Contact struct {
	Name  string `yaml:"name"`
	URL   string `yaml:"url"`
	Email string `yaml:"email"`
}

type License struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Server struct {
	URL         string                    `yaml:"url"`
	Description string                    `yaml:"description"`
	Variables   map[string]ServerVariable `yaml:"variables"`
}

type ServerVariable struct {
	Enum        []string `yaml:"enum"`
	Default     string   `yaml:"default"`
	Description string   `yaml:"description"`
}

type Tag struct {
	Name         string        `yaml:"name"`
	Description  string        `yaml:"description"`
	ExternalDocs *ExternalDocs `yaml:"externalDocs"`
}

type ExternalDocs struct {
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// Components is the registry of reusable objects that $ref pointers resolve
// against, one mapping per object kind.
type Components struct {
	Schemas         map[string]MaybeRef[Schema]         `yaml:"schemas"`
	Responses       map[string]MaybeRef[Response]       `yaml:"responses"`
	Parameters      map[string]MaybeRef[Parameter]      `yaml:"parameters"`
	Examples        map[string]MaybeRef[Example]        `yaml:"examples"`
	RequestBodies   map[string]MaybeRef[RequestBody]    `yaml:"requestBodies"`
	Headers         map[string]MaybeRef[Header]         `yaml:"headers"`
	SecuritySchemes map[string]MaybeRef[SecurityScheme] `yaml:"securitySchemes"`
	Links           map[string]MaybeRef[Link]           `yaml:"links"`
	Callbacks       map[string]MaybeRef[Callback]       `yaml:"callbacks"`
}
