package model

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
)

type Path struct {
	Ref         string                `yaml:"$ref"`
	Summary     string                `yaml:"summary"`
	Description string                `yaml:"description"`
	Get         *Operation            `yaml:"get"`
	Put         *Operation            `yaml:"put"`
	Post        *Operation            `yaml:"post"`
	Delete      *Operation            `yaml:"delete"`
	Options     *Operation            `yaml:"options"`
	Head        *Operation            `yaml:"head"`
	Patch       *Operation            `yaml:"patch"`
	Trace       *Operation            `yaml:"trace"`
	Servers     []Server              `yaml:"servers"`
	Parameters  []MaybeRef[Parameter] `yaml:"parameters"`
}

type Operation struct {
	Tags         []string                      `yaml:"tags"`
	Summary      string                        `yaml:"summary"`
	Description  string                        `yaml:"description"`
	ExternalDocs *ExternalDocs                 `yaml:"externalDocs"`
	OperationID  string                        `yaml:"operationId"`
	Parameters   []MaybeRef[Parameter]         `yaml:"parameters"`
	RequestBody  *MaybeRef[RequestBody]        `yaml:"requestBody"`
	Responses    map[string]MaybeRef[Response] `yaml:"responses"`
	Callbacks    map[string]MaybeRef[Callback] `yaml:"callbacks"`
	Deprecated   bool                          `yaml:"deprecated"`
	Security     []SecurityRequirement         `yaml:"security"`
	Servers      []Server                      `yaml:"servers"`
}

// HasTag reports whether the operation is tagged with any of tags.
func (o *Operation) HasTag(tags ...string) bool {
	for _, have := range o.Tags {
		for _, want := range tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

type ParameterLocation string

const (
	LocationPath   ParameterLocation = "path"
	LocationQuery  ParameterLocation = "query"
	LocationHeader ParameterLocation = "header"
	LocationCookie ParameterLocation = "cookie"
)

type Parameter struct {
	Name            string                       `yaml:"name"`
	In              ParameterLocation            `yaml:"in"`
	Description     string                       `yaml:"description"`
	Required        bool                         `yaml:"required"`
	Deprecated      bool                         `yaml:"deprecated"`
	AllowEmptyValue bool                         `yaml:"allowEmptyValue"`
	Style           string                       `yaml:"style"`
	Explode         bool                         `yaml:"explode"`
	AllowReserved   bool                         `yaml:"allowReserved"`
	Schema          *MaybeRef[Schema]            `yaml:"schema"`
	Example         any                          `yaml:"example"`
	Examples        map[string]MaybeRef[Example] `yaml:"examples"`
	Content         map[string]MediaType         `yaml:"content"`
}

type RequestBody struct {
	Description string               `yaml:"description"`
	Content     map[string]MediaType `yaml:"content"`
	Required    bool                 `yaml:"required"`
}

type Response struct {
	Description string                      `yaml:"description"`
	Headers     map[string]MaybeRef[Header] `yaml:"headers"`
	Content     map[string]MediaType        `yaml:"content"`
	Links       map[string]MaybeRef[Link]   `yaml:"links"`
}

type MediaType struct {
	Schema   *MaybeRef[Schema]            `yaml:"schema"`
	Example  any                          `yaml:"example"`
	Examples map[string]MaybeRef[Example] `yaml:"examples"`
}

type Header struct {
	Description string               `yaml:"description"`
	Required    bool                 `yaml:"required"`
	Deprecated  bool                 `yaml:"deprecated"`
	Schema      *MaybeRef[Schema]    `yaml:"schema"`
	Content     map[string]MediaType `yaml:"content"`
}

type Example struct {
	Summary       string `yaml:"summary"`
	Description   string `yaml:"description"`
	Value         any    `yaml:"value"`
	ExternalValue string `yaml:"externalValue"`
}

// Callback maps runtime expressions to the path items invoked for them.
type Callback map[string]Path

// SecurityRequirement maps scheme names to the scopes they require.
type SecurityRequirement map[string][]string

// Link and SecurityScheme are carried opaquely; nothing downstream inspects them.
type (
	Link           = map[string]any
	SecurityScheme = map[string]any
)
