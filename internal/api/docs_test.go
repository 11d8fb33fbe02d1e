package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fidelopez89/cashea-backend-relojteca/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSpec(t *testing.T) {
	doc, err := api.LoadSpec(t.Context())
	require.NoError(t, err)

	confirm := doc.Paths.Find("/api/confirmar-cashea")
	require.NotNil(t, confirm)
	require.NotNil(t, confirm.Post)
	assert.Equal(t, "confirmPayment", confirm.Post.OperationID)
	assert.NotNil(t, confirm.Post.Responses.Status(http.StatusMultiStatus))

	req := doc.Components.Schemas["ConfirmationRequest"]
	require.NotNil(t, req)
	assert.ElementsMatch(t, []string{"idNumber", "amount", "lineItems", "customer"}, req.Value.Required)
}

func TestRegisterDocsRoutes(t *testing.T) {
	doc, err := api.LoadSpec(t.Context())
	require.NoError(t, err)

	mux := http.NewServeMux()
	require.NoError(t, api.RegisterDocsRoutes(mux, doc))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, api.DocsPath, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "3.0.3", body["openapi"])
	assert.Contains(t, body["paths"], "/healthz")
}
