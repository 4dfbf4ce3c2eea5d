package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/chunkviz/internal/config"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/manifest"
	"github.com/DjordjeVuckovic/chunkviz/internal/viz/record"
	pkgserver "github.com/DjordjeVuckovic/chunkviz/pkg/server"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRun(t *testing.T, root string, ctx record.Context) *manifest.Manifest {
	t.Helper()
	dir := filepath.Join(root, ctx.Filename, ctx.EmbeddingModel, "k="+ctx.KValue+"&threshold="+ctx.Threshold)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "metric_bar"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "metric_bar", "mrr_bar.png"), []byte("png-bytes"), 0644))

	m := manifest.New(ctx, "png", []string{"mrr"}, []string{"by_page"})
	m.Add(manifest.Chart{Kind: manifest.KindBar, Name: "mrr_bar", Path: "metric_bar/mrr_bar.png", Metric: "mrr"})
	_, err := m.Write(dir)
	require.NoError(t, err)
	return m
}

func newTestServer(t *testing.T, root string) *Server {
	t.Helper()
	cfg := &Config{Port: "8080", CorsOrigins: []string{"*"}, ResultDir: root}
	s := New(cfg, pkgserver.NewDirHealthChecker(root)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks(HealthPath)
	NewRunsRouter(s.Echo, root).Bind()
	return s
}

func get(s *Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	root := t.TempDir()

	rec := get(newTestServer(t, root), HealthPath)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = get(newTestServer(t, filepath.Join(root, "missing")), HealthPath)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListRuns(t *testing.T) {
	root := t.TempDir()
	fubon := writeRun(t, root, record.Context{Filename: "fubon", EmbeddingModel: "small", KValue: "3", Threshold: "0.5"})
	writeRun(t, root, record.Context{Filename: "acme", EmbeddingModel: "large", KValue: "5", Threshold: "0.7"})
	s := newTestServer(t, root)

	t.Run("all runs", func(t *testing.T) {
		rec := get(s, "/api/runs")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp RunsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, root, resp.Root)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "acme/large/k=5&threshold=0.7", resp.Items[0].Dir)
		assert.Equal(t, "fubon/small/k=3&threshold=0.5", resp.Items[1].Dir)
	})

	t.Run("filtered", func(t *testing.T) {
		rec := get(s, "/api/runs?filename=fubon")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp RunsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, fubon.RunID, resp.Items[0].Manifest.RunID)

		rec = get(s, "/api/runs?model=none")
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Items)
	})

	t.Run("paged", func(t *testing.T) {
		rec := get(s, "/api/runs?page=2&size=1")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp RunsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "fubon/small/k=3&threshold=0.5", resp.Items[0].Dir)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, 2, resp.Page)
		assert.False(t, resp.HasMore)

		rec = get(s, "/api/runs?page=2305843009213693953&size=4")
		require.Equal(t, http.StatusOK, rec.Code)
		resp = RunsResponse{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Items)
		assert.Equal(t, 2, resp.Total)
		assert.False(t, resp.HasMore)

		rec = get(s, "/api/runs?page=abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("broken manifest", func(t *testing.T) {
		broken := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(broken, manifest.FileName), []byte("{"), 0644))

		rec := get(newTestServer(t, broken), "/api/runs")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetRun(t *testing.T) {
	root := t.TempDir()
	m := writeRun(t, root, record.Context{Filename: "fubon", EmbeddingModel: "small", KValue: "3", Threshold: "0.5"})
	s := newTestServer(t, root)

	rec := get(s, "/api/runs/"+m.RunID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	var entry manifest.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, m.RunID, entry.Manifest.RunID)

	rec = get(s, "/api/runs/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(s, "/api/runs/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error")
}

func TestStaticCharts(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, record.Context{Filename: "fubon", EmbeddingModel: "small", KValue: "3", Threshold: "0.5"})
	s := newTestServer(t, root)

	rec := get(s, "/charts/fubon/small/k=3&threshold=0.5/metric_bar/mrr_bar.png")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())

	rec = get(s, "/charts/fubon/missing.png")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewConfig(t *testing.T) {
	base := &config.Config{Port: "8080", ResultDir: "data/result"}

	sc, err := NewConfig(base, "", "")
	require.NoError(t, err)
	assert.Equal(t, "8080", sc.Port)
	assert.Equal(t, "data/result", sc.ResultDir)
	assert.Equal(t, []string{"*"}, sc.CorsOrigins)

	sc, err = NewConfig(base, "/srv/charts", "9000")
	require.NoError(t, err)
	assert.Equal(t, "9000", sc.Port)
	assert.Equal(t, "/srv/charts", sc.ResultDir)

	_, err = NewConfig(base, "", "99999")
	assert.ErrorContains(t, err, "invalid port")
}
