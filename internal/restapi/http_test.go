package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"bmidash.org/internal/app"
	"bmidash.org/internal/appconf"
	"bmidash.org/internal/dashboard"
	"bmidash.org/internal/dataset"
	"bmidash.org/internal/logging"
	"bmidash.org/internal/models"
)

// createTestApi creates a new restAPI instance backed by the BMI.csv fixture.
func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithDataset(t, &dataset.CSVSource{
		Path:   models.GetFixturePath(t, "BMI.csv"),
		Logger: slog.Default(),
	})
}

func createTestApiWithDataset(t *testing.T, source dataset.Source) *RestAPI {
	t.Helper()

	app := &app.Application{
		Config: appconf.Config{
			Env:       appconf.EnvFlagToEnvironment("test"),
			ApiKeys:   []string{"TEST"},
			RateLimit: -1,
		},
		Dataset:    source,
		Controller: dashboard.NewController(),
	}

	api := NewRestAPI(app)
	t.Cleanup(api.Shutdown)
	return api
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	var response models.ResponseModel
	resp := serveApiAndDecode(t, api, endpoint, &response)
	return resp, response
}

// serveApiAndDecode decodes the body into v, for responses that are not envelopes.
func serveApiAndDecode(t *testing.T, api *RestAPI, endpoint string, v interface{}) *http.Response {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	err = json.NewDecoder(resp.Body).Decode(v)
	require.NoError(t, err)

	return resp
}

func entryFrom(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	return entry
}

func referencedCategories(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	refs, ok := data["references"].(map[string]interface{})
	require.True(t, ok)
	categories, ok := refs["categories"].([]interface{})
	require.True(t, ok)
	return categories
}

func listFrom(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, false, data["limitExceeded"])
	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	return list
}
