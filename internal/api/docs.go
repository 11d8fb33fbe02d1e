package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

const DocsPath = "/openapi.json"

//go:embed openapi.yaml
var specYAML []byte

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(specYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

// RegisterDocsRoutes serves the document as JSON. It is rendered once.
func RegisterDocsRoutes(mux *http.ServeMux, doc *openapi3.T) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to render openapi document: %w", err)
	}

	mux.HandleFunc("GET "+DocsPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
	return nil
}
