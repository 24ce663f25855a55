package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/dotwalk/pkg/observability"
	"github.com/matzehuels/dotwalk/pkg/pipeline"
	"github.com/matzehuels/dotwalk/pkg/render"
)

const document = `
root = "web"

[objects.web]
attrs = { label = "web" }
points_to = [{ to = "db", attrs = { label = "sql" } }]

[objects.db]
attrs = { label = "db" }
`

// copyRenderer writes the DOT text it receives to the output path.
type copyRenderer struct{}

func (copyRenderer) Name() string { return "copy" }

func (copyRenderer) Render(_ context.Context, dot []byte, _, outPath string, _ io.Writer) error {
	return os.WriteFile(outPath, dot, 0o644)
}

func newTestServer(t *testing.T, rd render.Renderer, opts ...Option) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(pipeline.WithRenderer(rd), pipeline.WithLogger(logger))
	ts := httptest.NewServer(New(runner, logger, opts...).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Post(url, "application/toml", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(data)
}

func decodeError(t *testing.T, body string) errorResponse {
	t.Helper()
	var e errorResponse
	if err := json.Unmarshal([]byte(body), &e); err != nil {
		t.Fatalf("error body %q is not JSON: %v", body, err)
	}
	return e
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, copyRenderer{})

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var h healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		t.Fatal(err)
	}
	if h.Status != "ok" || h.Build.Version == "" {
		t.Errorf("healthz = %+v", h)
	}
}

func TestDot(t *testing.T) {
	ts := newTestServer(t, copyRenderer{})

	resp, body := post(t, ts.URL+"/v1/dot", document)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	want := "digraph {\n" +
		"  \"0\" [label=\"web\"];\n" +
		"  \"1\" [label=\"db\"];\n" +
		"  \"0\" -> \"1\" [label=\"sql\"];\n" +
		"}"
	if body != want {
		t.Errorf("body =\n%s\nwant\n%s", body, want)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/vnd.graphviz") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestGraph(t *testing.T) {
	ts := newTestServer(t, copyRenderer{})

	resp, body := post(t, ts.URL+"/v1/graph", document)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	var got struct {
		Nodes []struct {
			ID int `json:"id"`
		} `json:"nodes"`
		Edges []struct {
			From  int               `json:"from"`
			To    int               `json:"to"`
			Attrs map[string]string `json:"attrs"`
		} `json:"edges"`
	}
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Nodes) != 2 || len(got.Edges) != 1 {
		t.Fatalf("graph = %+v", got)
	}
	if e := got.Edges[0]; e.From != 0 || e.To != 1 || e.Attrs["label"] != "sql" {
		t.Errorf("edge = %+v", e)
	}
}

func TestDot_Errors(t *testing.T) {
	ts := newTestServer(t, copyRenderer{})

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"bad toml", "root = ", http.StatusBadRequest, "INVALID_INPUT"},
		{"undefined object", "root = \"a\"\n[objects.a]\npoints_to = [\"b\"]", http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown attribute", "root = \"a\"\n[objects.a]\nattrs = { colour = \"red\" }", http.StatusUnprocessableEntity, "UNKNOWN_ATTRIBUTE"},
		{"type mismatch", "root = \"a\"\n[objects.a]\nattrs = { peripheries = \"two\" }", http.StatusUnprocessableEntity, "TYPE_MISMATCH"},
		{"duplicate id", "root = \"a\"\n[objects.a]\nid = 1\npoints_to = [\"b\"]\n[objects.b]\nid = 1", http.StatusUnprocessableEntity, "DUPLICATE_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, ts.URL+"/v1/dot", tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d (body %s)", resp.StatusCode, tt.status, body)
			}
			e := decodeError(t, body)
			if e.Code != tt.code {
				t.Errorf("code = %q, want %q", e.Code, tt.code)
			}
			if e.RequestID == "" || e.RequestID != resp.Header.Get(RequestIDHeader) {
				t.Errorf("request_id = %q, header %q", e.RequestID, resp.Header.Get(RequestIDHeader))
			}
		})
	}
}

func TestDot_BodyTooLarge(t *testing.T) {
	ts := newTestServer(t, copyRenderer{}, WithMaxBodyBytes(16))

	resp, _ := post(t, ts.URL+"/v1/dot", document)
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", resp.StatusCode)
	}
}

func TestRequestID(t *testing.T) {
	ts := newTestServer(t, copyRenderer{})

	resp, _ := post(t, ts.URL+"/v1/dot", document)
	if _, err := uuid.Parse(resp.Header.Get(RequestIDHeader)); err != nil {
		t.Errorf("generated request ID %q is not a UUID", resp.Header.Get(RequestIDHeader))
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request ID = %q, want echoed abc-123", got)
	}
}

func TestRender(t *testing.T) {
	ts := newTestServer(t, copyRenderer{})

	resp, body := post(t, ts.URL+"/v1/render/svg", document)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(body, "digraph {") {
		t.Errorf("body = %q, want renderer output", body)
	}
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name     string
		renderer render.Renderer
		format   string
		status   int
	}{
		{"unknown format", copyRenderer{}, "bmp", http.StatusBadRequest},
		{"renderer missing", &render.ExecRenderer{Path: "dotwalk-no-such-renderer"}, "svg", http.StatusServiceUnavailable},
		{"unsupported by engine", render.EmbeddedRenderer{}, "pdf", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, tt.renderer)
			resp, body := post(t, ts.URL+"/v1/render/"+tt.format, document)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d (body %s)", resp.StatusCode, tt.status, body)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, copyRenderer{})

	resp, err := http.Get(ts.URL + "/v1/dot")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET /v1/dot status = %d, want 405", resp.StatusCode)
	}
}

type recordingHTTPHooks struct {
	mu        sync.Mutex
	requests  int
	responses []int
}

func (h *recordingHTTPHooks) OnRequest(context.Context, string, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests++
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responses = append(h.responses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	ts := newTestServer(t, copyRenderer{})
	post(t, ts.URL+"/v1/dot", document)
	post(t, ts.URL+"/v1/dot", "root = ")

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if hooks.requests != 2 {
		t.Errorf("requests = %d, want 2", hooks.requests)
	}
	if len(hooks.responses) != 2 || hooks.responses[0] != 200 || hooks.responses[1] != 400 {
		t.Errorf("responses = %v, want [200 400]", hooks.responses)
	}
}

func TestListenAndServe_Shutdown(t *testing.T) {
	runner := pipeline.NewRunner(pipeline.WithLogger(log.New(io.Discard)))
	s := New(runner, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("ListenAndServe() error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
