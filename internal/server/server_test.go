package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoscope/catalog"
	"github.com/katalvlaran/algoscope/internal/metrics"
	"github.com/katalvlaran/algoscope/internal/server"
)

func newServer(t *testing.T) (*httptest.Server, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	ts := httptest.NewServer(server.NewHandler(server.WithMetrics(m)))
	t.Cleanup(ts.Close)
	return ts, m
}

func do(t *testing.T, ts *httptest.Server, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func TestHealth(t *testing.T) {
	ts, _ := newServer(t)
	resp, body := do(t, ts, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var got map[string]string
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "ok", got["status"])
}

func TestListAlgorithms(t *testing.T) {
	ts, _ := newServer(t)
	resp, body := do(t, ts, http.MethodGet, "/v1/algorithms", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []server.Summary
	require.NoError(t, json.Unmarshal(body, &got))
	ids := make([]string, len(got))
	for i, s := range got {
		ids[i] = s.ID
	}
	assert.Equal(t, catalog.IDs(), ids)
	assert.Equal(t, server.Summary{ID: "bfs", Name: "Breadth-First Search", Family: catalog.FamilyGraph}, got[3])
}

func TestGetAlgorithm(t *testing.T) {
	ts, _ := newServer(t)
	resp, body := do(t, ts, http.MethodGet, "/v1/algorithms/quick-sort", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		ID      string `json:"id"`
		Profile struct {
			Complexity struct {
				Time string `json:"time"`
			} `json:"complexity"`
		} `json:"profile"`
		Sources map[string]struct {
			Code   string         `json:"code"`
			Labels map[string]int `json:"labels"`
		} `json:"sources"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "quick-sort", got.ID)
	assert.NotEmpty(t, got.Profile.Complexity.Time)
	require.Len(t, got.Sources, 3)
	for lang, src := range got.Sources {
		assert.NotContains(t, src.Code, "@label", lang)
		assert.Contains(t, src.Labels, "pick_pivot", lang)
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	ts, _ := newServer(t)
	for _, path := range []string{"/v1/algorithms/nope", "/v1/algorithms/nope/sample"} {
		resp, _ := do(t, ts, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
	resp, _ := do(t, ts, http.MethodPost, "/v1/algorithms/nope/run", "{}")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRun_Sorting(t *testing.T) {
	ts, _ := newServer(t)
	resp, body := do(t, ts, http.MethodPost, "/v1/algorithms/bubble-sort/run", `{"values": [3, 1, 2]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got struct {
		Family string `json:"family"`
		Total  int    `json:"total"`
		Steps  []struct {
			State     []int  `json:"state"`
			CodeLabel string `json:"codeLabel"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "sorting", got.Family)
	assert.Equal(t, 9, got.Total)
	require.Len(t, got.Steps, 9)
	assert.Equal(t, []int{1, 2, 3}, got.Steps[8].State)
	assert.Equal(t, "compare", got.Steps[1].CodeLabel)
}

func TestRun_EmptyBody(t *testing.T) {
	ts, _ := newServer(t)
	resp, body := do(t, ts, http.MethodPost, "/v1/algorithms/avl/run", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"ready"`)
}

func TestRun_SampleRoundTrip(t *testing.T) {
	ts, _ := newServer(t)
	for _, id := range catalog.IDs() {
		resp, sample := do(t, ts, http.MethodGet, "/v1/algorithms/"+id+"/sample?seed=7", "")
		require.Equal(t, http.StatusOK, resp.StatusCode, id)

		resp, body := do(t, ts, http.MethodPost, "/v1/algorithms/"+id+"/run", string(sample))
		assert.Equal(t, http.StatusOK, resp.StatusCode, "%s: %s", id, body)
	}
}

func TestSample_BadSeed(t *testing.T) {
	ts, _ := newServer(t)
	resp, _ := do(t, ts, http.MethodGet, "/v1/algorithms/bfs/sample?seed=x", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := do(t, ts, http.MethodGet, "/v1/algorithms/bfs/sample?seed=1&shape=hexagon", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "unknown sample shape")
}

func TestSample_Shape(t *testing.T) {
	ts, _ := newServer(t)
	resp, body := do(t, ts, http.MethodGet, "/v1/algorithms/dfs/sample?seed=1&shape=grid", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var in catalog.Input
	require.NoError(t, json.Unmarshal(body, &in))
	assert.Equal(t, "0,0", in.Start)
}

func TestRun_Errors(t *testing.T) {
	graph := `{"nodes": [{"id": "A"}, {"id": "B"}], "edges": [{"id": "e", "source": "A", "target": "B"}]}`
	tests := []struct {
		name string
		id   string
		body string
		code int
	}{
		{"not json", "bubble-sort", `{"values": [`, http.StatusBadRequest},
		{"schema", "bubble-sort", `{"values": ["a"]}`, http.StatusBadRequest},
		{"unknown field", "bfs", `{"graph": ` + graph + `, "from": "A"}`, http.StatusBadRequest},
		{"missing graph", "bfs", `{}`, http.StatusUnprocessableEntity},
		{"bad start", "dijkstra", `{"graph": ` + graph + `, "start": "Z"}`, http.StatusUnprocessableEntity},
		{"dangling edge", "dfs", `{"graph": {"nodes": [{"id": "A"}], "edges": [{"id": "e", "source": "A", "target": "Q"}]}}`, http.StatusUnprocessableEntity},
		{"bad kind", "avl", `{"operation": {"kind": "rotate", "value": 1}}`, http.StatusUnprocessableEntity},
		{"map modify", "go-map", `{"operation": {"kind": "modify", "key": "a"}}`, http.StatusUnprocessableEntity},
		{"negative weight", "dijkstra", `{"graph": {"nodes": [{"id": "A"}, {"id": "B"}], "edges": [{"id": "e", "source": "A", "target": "B", "weight": -3}]}, "start": "A"}`, http.StatusUnprocessableEntity},
		{"fractional key", "avl", `{"operation": {"kind": "insert", "value": 42.9}}`, http.StatusBadRequest},
	}
	ts, _ := newServer(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := do(t, ts, http.MethodPost, "/v1/algorithms/"+tc.id+"/run", tc.body)
			assert.Equal(t, tc.code, resp.StatusCode, string(body))

			var e struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(body, &e))
			assert.NotEmpty(t, e.Error)
		})
	}
}

func TestRun_SchemaViolationsListed(t *testing.T) {
	ts, _ := newServer(t)
	resp, body := do(t, ts, http.MethodPost, "/v1/algorithms/bfs/run",
		`{"graph": {"nodes": [{"id": "A", "status": "lost"}]}}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), `"violations"`)
}

func TestRun_TooLarge(t *testing.T) {
	big := `{"values": [` + strings.Repeat("1,", server.MaxBodyBytes) + `1]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/algorithms/bubble-sort/run", bytes.NewBufferString(big))
	rr := httptest.NewRecorder()

	server.NewHandler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

type brokenBody struct{}

func (brokenBody) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestRun_BodyReadError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/algorithms/bubble-sort/run", brokenBody{})
	rr := httptest.NewRecorder()

	server.NewHandler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "unexpected EOF")
}

func TestSchemas(t *testing.T) {
	ts, _ := newServer(t)
	resp, body := do(t, ts, http.MethodGet, "/v1/schemas/graph", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, json.Valid(body))

	resp, _ = do(t, ts, http.MethodGet, "/v1/schemas/other", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	ts, _ := newServer(t)
	do(t, ts, http.MethodPost, "/v1/algorithms/go-map/run", `{"operation": {"kind": "insert", "key": "a", "value": "1"}}`)
	do(t, ts, http.MethodPost, "/v1/algorithms/bfs/run", `{}`)

	resp, body := do(t, ts, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	text := string(body)
	assert.Contains(t, text, `algoscope_runs_total{algorithm="go-map",outcome="ok"} 1`)
	assert.Contains(t, text, `algoscope_runs_total{algorithm="bfs",outcome="error"} 1`)
	assert.Contains(t, text, `algoscope_http_requests_total{code="200",method="POST",route="/v1/algorithms/{id}/run"} 1`)
	assert.Contains(t, text, `algoscope_http_requests_total{code="422",method="POST",route="/v1/algorithms/{id}/run"} 1`)
}

func TestNoMetricsRoute(t *testing.T) {
	ts := httptest.NewServer(server.NewHandler())
	defer ts.Close()
	resp, _ := do(t, ts, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
