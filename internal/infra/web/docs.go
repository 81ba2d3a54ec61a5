package web

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

type OpenAPI struct {
	OpenAPI string              `json:"openapi" yaml:"openapi"`
	Info    Info                `json:"info" yaml:"info"`
	Servers []Server            `json:"servers" yaml:"servers"`
	Paths   map[string]PathItem `json:"paths" yaml:"paths"`
}

type Info struct {
	Title       string  `json:"title" yaml:"title"`
	Version     string  `json:"version" yaml:"version"`
	Description string  `json:"description" yaml:"description"`
	Contact     Contact `json:"contact" yaml:"contact"`
	License     License `json:"license" yaml:"license"`
}

type Contact struct {
	Name string `json:"name" yaml:"name"`
}

type License struct {
	Name string `json:"name" yaml:"name"`
}

type Server struct {
	URL string `json:"url" yaml:"url"`
}

type PathItem struct {
	Get *Operation `json:"get,omitempty" yaml:"get,omitempty"`
}

type Operation struct {
	Summary     string              `json:"summary" yaml:"summary"`
	Description string              `json:"description" yaml:"description"`
	Parameters  []Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
}

type Parameter struct {
	Name        string             `json:"name" yaml:"name"`
	In          string             `json:"in" yaml:"in"`
	Description string             `json:"description" yaml:"description"`
	Required    bool               `json:"required" yaml:"required"`
	Schema      Schema             `json:"schema" yaml:"schema"`
	Examples    map[string]Example `json:"examples,omitempty" yaml:"examples,omitempty"`
}

type Example struct {
	Summary string `json:"summary" yaml:"summary"`
	Value   any    `json:"value" yaml:"value"`
}

type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

type MediaType struct {
	Schema Schema `json:"schema" yaml:"schema"`
}

type Schema struct {
	Type       string            `json:"type" yaml:"type"`
	Enum       []string          `json:"enum,omitempty" yaml:"enum,omitempty"`
	Items      *Schema           `json:"items,omitempty" yaml:"items,omitempty"`
	Properties map[string]Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// APIDocs serves the OpenAPI description of /weather and a Swagger UI page.
type APIDocs struct {
	Spec OpenAPI
}

func NewAPIDocs(serverURL string) *APIDocs {
	return &APIDocs{Spec: weatherSpec(serverURL)}
}

func (d *APIDocs) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", d.uiHandler)
	router.Get("/openapi.json", d.jsonHandler)
	router.Get("/openapi.yaml", d.yamlHandler)
	return router
}

func (d *APIDocs) YAML() ([]byte, error) {
	return yaml.Marshal(d.Spec)
}

func (d *APIDocs) jsonHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.Spec)
}

func (d *APIDocs) yamlHandler(w http.ResponseWriter, r *http.Request) {
	out, err := d.YAML()
	if err != nil {
		http.Error(w, "error encoding api docs: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.Write(out)
}

var swaggerPage = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function () {
      SwaggerUIBundle({url: "{{.SpecURL}}", dom_id: "#swagger-ui"});
    };
  </script>
</body>
</html>
`))

func (d *APIDocs) uiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	swaggerPage.Execute(w, map[string]string{
		"Title":   d.Spec.Info.Title,
		"SpecURL": "/api-docs/openapi.json",
	})
}

func weatherSpec(serverURL string) OpenAPI {
	coordinate := func(name, axis string, example float64) Parameter {
		return Parameter{
			Name:        name,
			In:          "query",
			Description: fmt.Sprintf("The %s to retrieve the current weather for.", axis),
			Required:    true,
			Schema:      Schema{Type: "number"},
			Examples: map[string]Example{
				"Fargo": {Summary: fmt.Sprintf("%s for Fargo, ND", axis), Value: example},
			},
		}
	}
	errorBody := map[string]MediaType{
		"application/json": {Schema: Schema{
			Type:       "object",
			Properties: map[string]Schema{"message": {Type: "string"}},
		}},
	}

	return OpenAPI{
		OpenAPI: "3.0.1",
		Info: Info{
			Title:       "Weather Assignment",
			Version:     "1.0.0",
			Description: "Returns a simplified current weather report for a location using the OpenWeather one-call api.",
			Contact:     Contact{Name: "Brian Nelson"},
			License:     License{Name: "ISC"},
		},
		Servers: []Server{{URL: serverURL}},
		Paths: map[string]PathItem{
			"/weather": {Get: &Operation{
				Summary: "Retrieve the weather report for a given latitude & longitude.",
				Description: "Takes the latitude(lat) and longitude(lon) in parameters. " +
					"Returns a json object containing the current weather information for the location.",
				Parameters: []Parameter{
					coordinate("lat", "Latitude", 46.8772),
					coordinate("lon", "Longitude", 96.7898),
				},
				Responses: map[string]Response{
					"200": {
						Description: "Weather information object.",
						Content: map[string]MediaType{
							"application/json": {Schema: Schema{
								Type: "object",
								Properties: map[string]Schema{
									"forecast": {Type: "string"},
									"temp":     {Type: "string", Enum: []string{"hot", "moderate", "cold"}},
									"alerts":   {Type: "array", Items: &Schema{Type: "string"}},
								},
							}},
						},
					},
					"422": {Description: "lat or lon is not a number.", Content: errorBody},
					"500": {Description: "The provider response could not be interpreted.", Content: errorBody},
					"502": {Description: "The weather provider failed or returned an error status.", Content: errorBody},
				},
			}},
			"/health": {Get: &Operation{
				Summary:     "Liveness check.",
				Description: "Returns ok while the process is serving.",
				Responses:   map[string]Response{"200": {Description: "Service is up."}},
			}},
		},
	}
}
