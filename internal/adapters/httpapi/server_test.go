package httpapi_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MasWag/hyppau-fixtures/internal/adapters/httpapi"
	"github.com/MasWag/hyppau-fixtures/internal/adapters/redis"
	"github.com/MasWag/hyppau-fixtures/internal/logging"
	"github.com/MasWag/hyppau-fixtures/pkg/automaton"
)

func newTestServer(t *testing.T, cache *redis.Cache) *httptest.Server {
	t.Helper()
	handler := httpapi.NewHandler(logging.NewNop(), cache, prometheus.NewRegistry())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func postGenerate(t *testing.T, srv *httptest.Server, kind, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/generate/"+kind, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestGenerate_Stuttering(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postGenerate(t, srv, "stuttering", `{"actions": ["a", "b"], "outputs": [0, 1]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	doc, err := automaton.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 22, doc.NumStates())
	assert.NoError(t, automaton.Validate(doc))
}

func TestGenerate_UnknownKind(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postGenerate(t, srv, "bogus", `{}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGenerate_InvalidParams(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postGenerate(t, srv, "stuttering", `{"actions": [], "outputs": [0]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postGenerate(t, srv, "dimensions", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	postGenerate(t, srv, "dimensions", `{"dimensions": 2}`)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body strings.Builder
	_, err = io.Copy(&body, resp.Body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), `hyppau_fixtures_generated_total{kind="dimensions"} 1`)
}

func TestGenerate_Cached(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	cache := redis.NewFromClient(client)
	t.Cleanup(func() { cache.Close() })

	srv := newTestServer(t, cache)

	body := `{"actions": ["a"], "outputs": [0, 1]}`
	first := readAll(t, postGenerate(t, srv, "stuttering", body))
	second := readAll(t, postGenerate(t, srv, "stuttering", body))
	assert.Equal(t, first, second, "cache hits must be byte-identical")

	keys, err := cache.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, keys, 1)

	resp, err := http.Get(srv.URL + "/fixtures")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	var sb strings.Builder
	_, err := io.Copy(&sb, resp.Body)
	require.NoError(t, err)
	return sb.String()
}
