package tools

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/proxy"
)

func newToolRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, proxy.NewForwarder(server.URL, zap.NewNop()))
	return router
}

func TestGetToolRemaps404(t *testing.T) {
	router := newToolRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"tool row not found in database"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/tools/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Tool not found"}`, w.Body.String())
}

func TestListToolRoomsDefaultsToActiveOnly(t *testing.T) {
	var gotQuery string
	router := newToolRouter(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"items":[],"total":0}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/tool-rooms", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "active_only=true", gotQuery)
}
