package cities

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/proxy"
)

func newCityRouter(t *testing.T, gotQuery *string) *gin.Engine {
	t.Helper()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[],"total":0}`))
	}))
	t.Cleanup(upstream.Close)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, proxy.NewForwarder(upstream.URL, zap.NewNop()))
	return router
}

func TestListCitiesDefaultsToActiveOnly(t *testing.T) {
	var gotQuery string
	router := newCityRouter(t, &gotQuery)

	req := httptest.NewRequest(http.MethodGet, "/api/cities", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "active_only=true", gotQuery)
}

func TestGetCityRemaps404(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"city row not found in database"}`))
	}))
	defer upstream.Close()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, proxy.NewForwarder(upstream.URL, zap.NewNop()))

	req := httptest.NewRequest(http.MethodGet, "/api/cities/missing-id", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"City not found"}`, w.Body.String())
}

func TestListCitiesHonorsExplicitActiveOnly(t *testing.T) {
	var gotQuery string
	router := newCityRouter(t, &gotQuery)

	req := httptest.NewRequest(http.MethodGet, "/api/cities?active_only=false", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "active_only=false", gotQuery)
}
