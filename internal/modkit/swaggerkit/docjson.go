package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"sync"
)

//go:embed openapi.json
var openapiDoc []byte

// SpecMutator lets the composition root tweak the spec before it is served
type SpecMutator func(map[string]any)

var (
	mutMu    sync.Mutex
	mutators []SpecMutator
)

// Register adds a spec mutator
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mutMu.Lock()
	mutators = append(mutators, m)
	mutMu.Unlock()
}

// Spec returns the served document: the embedded spec with a servers entry,
// the ErrorResponse schema, default 400/500 responses and all mutators applied
func Spec() (map[string]any, error) {
	var spec map[string]any
	if err := json.Unmarshal(openapiDoc, &spec); err != nil {
		return nil, err
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": "/api/v1"}}
	}
	ensureErrorResponse(spec)
	addDefaultResponse(spec, "400", "Bad Request", map[string]any{
		"status_code": 400,
		"status":      "Bad Request",
		"code":        4,
		"error":       "position must be at least 0",
		"field":       "position",
	})
	addDefaultResponse(spec, "500", "Internal Server Error", map[string]any{
		"status_code": 500,
		"status":      "Internal Server Error",
		"code":        1,
		"error":       "panic recovered",
	})

	mutMu.Lock()
	defer mutMu.Unlock()
	for _, m := range mutators {
		m(spec)
	}
	return spec, nil
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		spec, err := Spec()
		if err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureErrorResponse mirrors the runtime error envelope
func ensureErrorResponse(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error envelope",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultResponse injects status into every operation that does not declare it
func addDefaultResponse(spec map[string]any, status, desc string, example map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			if _, exists := resps[status]; exists {
				continue
			}
			resps[status] = map[string]any{
				"description": desc,
				"content": map[string]any{
					"application/json": map[string]any{
						"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
						"example": example,
					},
				},
			}
		}
	}
}
