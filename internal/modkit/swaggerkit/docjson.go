//go:build swag

package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"padala/internal/platform/config"

	docs "padala/internal/services/api/docs"
)

// SpecMutator lets modules tweak the parsed swagger spec before it is served
type SpecMutator func(map[string]any)

// mutators is the in process registry for spec mutators
var mutators []SpecMutator

// docReader is a seam so tests can inject invalid JSON without patching swagger
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator for swagger JSON
// call this from module init so it is wired automatically
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// serveDocJSON parses the generated doc, applies global fixups and any
// registered mutators, and serves the result
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		// OAS3 keeps the base url in servers, not BasePath
		ensureServers(spec, "/api/v1")

		cfg := config.New().Prefix("CORE_API_")
		if suffix := cfg.MayString("DOCS_TITLE_SUFFIX", ""); suffix != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + suffix
				}
			}
		}

		ensureErrorResponseDefinition(spec)
		injectDefaultResponse(spec, "500", errorResponseExample(
			"Internal Server Error", 500, "PANIC", "panic recovered"))
		injectDefaultResponse(spec, "400", errorResponseExample(
			"Bad Request", 400, "VALIDATION", "region must be one of [ncr luzon visayas mindanao]"))

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureMap returns parent[key] as a map, inserting an empty one when the
// key is missing or holds a different type.
func ensureMap(parent map[string]any, key string) map[string]any {
	if m, ok := parent[key].(map[string]any); ok {
		return m
	}
	m := map[string]any{}
	parent[key] = m
	return m
}

// ensureServers normalizes the spec to OAS 3.0 and guarantees a servers array.
// The swagger http ui cannot render 3.1 yet, so 3.1 specs are downconverted.
func ensureServers(spec map[string]any, url string) {
	delete(spec, "swagger")

	// anything that is not already a renderable 3.0.x version gets pinned
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}

	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponseDefinition adds the error envelope model when the
// generated doc lacks it; kept minimal so it does not drift from the wire
func ensureErrorResponseDefinition(spec map[string]any) {
	schemas := ensureMap(ensureMap(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	props := map[string]any{
		"status_code": map[string]any{"type": "integer", "format": "int32"},
	}
	for _, name := range []string{"status", "code", "error", "request_id"} {
		props[name] = map[string]any{"type": "string"}
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties":  props,
		"required":    []any{"status_code", "status"},
	}
}

// errorResponseExample builds an OAS3 response body referencing ErrorResponse
func errorResponseExample(statusText string, statusCode int, code, msg string) map[string]any {
	return map[string]any{
		"description": statusText,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": statusCode,
					"status":      statusText,
					"code":        code,
					"error":       msg,
					"request_id":  "9c41ab7e12d0/pad-000001",
				},
			},
		},
	}
}

// eachOperation visits every operation object under every path
func eachOperation(spec map[string]any, visit func(op map[string]any)) {
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, item := range node {
			if op, ok := item.(map[string]any); ok {
				visit(op)
			}
		}
	}
}

// injectDefaultResponse adds resp under status on every operation that does
// not already declare that status
func injectDefaultResponse(spec map[string]any, status string, resp map[string]any) {
	eachOperation(spec, func(op map[string]any) {
		responses := ensureMap(op, "responses")
		if _, exists := responses[status]; !exists {
			responses[status] = resp
		}
	})
}
