package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwaggerDocumentIsValid(t *testing.T) {
	doc, err := Swagger()
	require.NoError(t, err)
	require.Equal(t, "Labscout Intake API", doc.Info.Title)
}

// The document and the router are maintained by hand, so pin them together.
func TestSwaggerDocumentCoversRoutes(t *testing.T) {
	doc, err := Swagger()
	require.NoError(t, err)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/healthz"},
		{http.MethodGet, "/v1/catalog"},
		{http.MethodPost, "/v1/triage"},
		{http.MethodPost, "/v1/specification"},
		{http.MethodPut, "/v1/sessions/{sessionID}/answers/{field}"},
		{http.MethodPost, "/v1/sessions/{sessionID}/complete"},
		{http.MethodDelete, "/v1/sessions/{sessionID}/"},
	}
	for _, route := range routes {
		item := doc.Paths.Find(route.path)
		require.NotNil(t, item, "path %s missing from openapi.yaml", route.path)
		require.NotNil(t, item.GetOperation(route.method),
			"%s %s missing from openapi.yaml", route.method, route.path)
	}
}

func TestSpecEndpoint(t *testing.T) {
	rec := doJSON(t, newTestHandler(t), http.MethodGet, "/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "Labscout Intake API")
}

func TestSwaggerUIEndpoint(t *testing.T) {
	rec := doJSON(t, newTestHandler(t), http.MethodGet, "/swagger", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "SwaggerUIBundle")
	require.Contains(t, rec.Body.String(), "/openapi.yaml")
}
