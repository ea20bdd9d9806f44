package arxiv_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperqa-backend/internal/bootstrap"
	"paperqa-backend/internal/shared/config"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(config.Config{CORSAllowOrigin: []string{"http://localhost:3000"}})
	require.NoError(t, err)
	return app.Router
}

func TestSearchEndpoint(t *testing.T) {
	router := newRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/arxiv/search?q=computer+vision", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var papers []struct {
		ID         string   `json:"id"`
		Title      string   `json:"title"`
		Categories []string `json:"categories"`
		PDFURL     string   `json:"pdfUrl"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&papers))
	require.GreaterOrEqual(t, len(papers), 3)
	require.LessOrEqual(t, len(papers), 5)
	for _, p := range papers {
		assert.Contains(t, p.Categories, "cs.CV")
		assert.Contains(t, p.Title, "computer vision")
		assert.Equal(t, "https://arxiv.org/pdf/"+p.ID+".pdf", p.PDFURL)
	}
}

func TestSearchEndpointRequiresQuery(t *testing.T) {
	router := newRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/arxiv/search", nil))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestImportEndpointAddsToLibrary(t *testing.T) {
	router := newRouter(t)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/arxiv/papers/2401.1234/import", nil))
	require.Equal(t, http.StatusCreated, resp.Code)

	var doc struct {
		ID         string `json:"id"`
		FileName   string `json:"filename"`
		Vectorized bool   `json:"vectorized"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "1", doc.ID)
	assert.Equal(t, "arxiv-2401.1234.pdf", doc.FileName)
	assert.True(t, doc.Vectorized)

	list := httptest.NewRecorder()
	router.ServeHTTP(list, httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil))
	var docs []map[string]any
	require.NoError(t, json.NewDecoder(list.Body).Decode(&docs))
	assert.Len(t, docs, 1)
}
