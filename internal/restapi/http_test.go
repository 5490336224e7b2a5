package restapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/DvijDesai0102/CSC210-Project/internal/app"
	"github.com/DvijDesai0102/CSC210-Project/internal/appconf"
	"github.com/DvijDesai0102/CSC210-Project/internal/logging"
	"github.com/DvijDesai0102/CSC210-Project/internal/models"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
)

func testConfig() appconf.Config {
	config := appconf.Default()
	config.Env = appconf.EnvFlagToEnvironment("test")
	config.ApiKeys = []string{"TEST"}
	config.RateLimit = -1
	return config
}

// createTestApi creates a new restAPI instance backed by the built-in sample network.
func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithConfig(t, testConfig())
}

func createTestApiWithConfig(t *testing.T, config appconf.Config) *RestAPI {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application, err := app.New(context.Background(), config, logger)
	require.NoError(t, err)
	return NewRestAPI(application)
}

// createTestApiWithNetwork loads a network definition written to a temporary file.
func createTestApiWithNetwork(t *testing.T, definition string) *RestAPI {
	t.Helper()
	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, []byte(definition), 0o600))

	config := testConfig()
	config.NetworkFile = path
	return createTestApiWithConfig(t, config)
}

func testRouter(api *RestAPI) http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	return router
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	resp, body := serveApiAndRetrieveBody(t, api, endpoint)

	var response models.ResponseModel
	err := json.Unmarshal(body, &response)
	require.NoError(t, err)

	return resp, response
}

func serveApiAndRetrieveBody(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	server := httptest.NewServer(testRouter(api))
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func fieldErrorsOf(t *testing.T, body []byte) map[string][]string {
	t.Helper()
	var response struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(body, &response))
	return response.FieldErrors
}

// entryOf decodes data.entry of a response into out.
func entryOf(t *testing.T, model models.ResponseModel, out interface{}) {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be an object")
	raw, err := json.Marshal(data["entry"])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// listOf decodes data.list of a response into out.
func listOf(t *testing.T, model models.ResponseModel, out interface{}) {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be an object")
	raw, err := json.Marshal(data["list"])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func referencesOf(t *testing.T, model models.ResponseModel) models.ReferencesModel {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be an object")
	raw, err := json.Marshal(data["references"])
	require.NoError(t, err)
	var refs models.ReferencesModel
	require.NoError(t, json.Unmarshal(raw, &refs))
	return refs
}
