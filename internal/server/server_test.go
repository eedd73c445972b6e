package server

import (
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screenforge/internal/codegen"
	"screenforge/internal/scene"
)

func do(t *testing.T, srv *Server, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func createScene(t *testing.T, srv *Server) string {
	t.Helper()
	resp := do(t, srv, http.MethodPost, "/api/scenes", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.ID)
	return out.ID
}

func TestHealth(t *testing.T) {
	resp := do(t, New(), http.MethodGet, "/health/live", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"alive"}`, readBody(t, resp))
}

func TestGenerate(t *testing.T) {
	srv := New()

	resp := do(t, srv, http.MethodPost, "/api/generate",
		`{"elements":[{"kind":"button","content":"Go"}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/javascript")
	code := readBody(t, resp)
	assert.Contains(t, code, "<Text style={styles.button_1Text}>Go</Text>")
	assert.Zero(t, srv.Sessions().Len())
}

func TestGenerate_EmptyBody(t *testing.T) {
	resp := do(t, New(), http.MethodPost, "/api/generate", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, codegen.EmptyPlaceholder, readBody(t, resp))
}

func TestGenerate_YAML(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader("elements:\n  - kind: switch\n    style: {isOn: false}\n"))
	req.Header.Set("Content-Type", "application/yaml")
	resp, err := New().App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "useState(false)")
}

func TestGenerate_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"elements":`},
		{"unknown kind", `{"elements":[{"kind":"slider"}]}`},
		{"unknown field", `{"elements":[{"kind":"text","colour":"red"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, New(), http.MethodPost, "/api/generate", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var out map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.NotEmpty(t, out["error"])
		})
	}
}

func TestSceneLifecycle(t *testing.T) {
	srv := New()
	id := createScene(t, srv)
	base := "/api/scenes/" + id

	resp := do(t, srv, http.MethodPost, base+"/elements", `{"kind":"Button"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var el scene.Element
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&el))
	assert.Equal(t, "button_1", el.ID)
	assert.Equal(t, scene.Button, el.Kind)

	resp = do(t, srv, http.MethodPatch, base+"/elements/button_1", `{"content":"Sign in"}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, srv, http.MethodPatch, base+"/elements/button_1/style", `{"x":10,"backgroundColor":"#10b981"}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got sceneResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Elements, 1)
	assert.Equal(t, "Sign in", *got.Elements[0].Content)
	assert.Equal(t, 10, got.Elements[0].Style.X)
	assert.Equal(t, 100, got.Elements[0].Style.Y)
	require.NotNil(t, got.SelectedID)
	assert.Equal(t, "button_1", *got.SelectedID)

	resp = do(t, srv, http.MethodGet, base+"/code", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Content-Disposition"))
	code := readBody(t, resp)
	assert.Contains(t, code, "left: 10,")
	assert.Contains(t, code, "backgroundColor: '#10b981',")

	resp = do(t, srv, http.MethodDelete, base+"/elements/button_1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, base+"/code", "")
	assert.Equal(t, codegen.EmptyPlaceholder, readBody(t, resp))

	resp = do(t, srv, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = do(t, srv, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateScene_FromManifest(t *testing.T) {
	srv := New()
	resp := do(t, srv, http.MethodPost, "/api/scenes",
		`{"elements":[{"kind":"text"},{"kind":"input"}]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	resp = do(t, srv, http.MethodPost, "/api/scenes/"+out.ID+"/elements", `{"kind":"icon"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var el scene.Element
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&el))
	assert.Equal(t, "icon_3", el.ID)
}

func TestSelection(t *testing.T) {
	srv := New()
	id := createScene(t, srv)
	base := "/api/scenes/" + id

	do(t, srv, http.MethodPost, base+"/elements", `{"kind":"text"}`)
	do(t, srv, http.MethodPost, base+"/elements", `{"kind":"card"}`)

	resp := do(t, srv, http.MethodGet, base+"/selection", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var el scene.Element
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&el))
	assert.Equal(t, "card_2", el.ID)

	resp = do(t, srv, http.MethodPut, base+"/selection", `{"id":"text_1"}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = do(t, srv, http.MethodGet, base+"/selection", "")
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&el))
	assert.Equal(t, "text_1", el.ID)

	resp = do(t, srv, http.MethodPut, base+"/selection", `{"id":null}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = do(t, srv, http.MethodGet, base+"/selection", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestUnknownElementIsNoOp(t *testing.T) {
	srv := New()
	id := createScene(t, srv)
	base := "/api/scenes/" + id
	do(t, srv, http.MethodPost, base+"/elements", `{"kind":"text"}`)

	resp := do(t, srv, http.MethodPatch, base+"/elements/ghost_9", `{"content":"x"}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = do(t, srv, http.MethodDelete, base+"/elements/ghost_9", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	sess, err := srv.Sessions().Get(id)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.Store.Len())
	assert.Equal(t, uint64(1), sess.Store.Revision())
}

func TestAddElement_BadRequests(t *testing.T) {
	srv := New()
	id := createScene(t, srv)

	resp := do(t, srv, http.MethodPost, "/api/scenes/"+id+"/elements", `{"kind":"slider"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, srv, http.MethodPost, "/api/scenes/"+id+"/elements", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, srv, http.MethodPost, "/api/scenes/"+id+"/elements", `{"kind":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownSession(t *testing.T) {
	srv := New()
	paths := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/scenes/nope", ""},
		{http.MethodDelete, "/api/scenes/nope", ""},
		{http.MethodPost, "/api/scenes/nope/elements", `{"kind":"text"}`},
		{http.MethodGet, "/api/scenes/nope/code", ""},
		{http.MethodGet, "/api/scenes/nope/preview.png", ""},
	}
	for _, p := range paths {
		resp := do(t, srv, p.method, p.path, p.body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "%s %s", p.method, p.path)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, ErrSessionNotFound.Error(), out["error"])
	}
}

func TestCode_Download(t *testing.T) {
	srv := New()
	id := createScene(t, srv)

	resp := do(t, srv, http.MethodGet, "/api/scenes/"+id+"/code?download=1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="Screen.js"`, resp.Header.Get("Content-Disposition"))
}

func TestPreview(t *testing.T) {
	srv := New()
	id := createScene(t, srv)
	do(t, srv, http.MethodPost, "/api/scenes/"+id+"/elements", `{"kind":"switch"}`)

	resp := do(t, srv, http.MethodGet, "/api/scenes/"+id+"/preview.png", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	cfg, err := png.DecodeConfig(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 375, cfg.Width)
	assert.Equal(t, 812, cfg.Height)
}
