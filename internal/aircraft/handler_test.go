package aircraft

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

func newAircraftRouter(t *testing.T) *gin.Engine {
	t.Helper()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"aircraft row not found in database"}`))
	}))
	t.Cleanup(upstream.Close)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, proxy.NewForwarder(upstream.URL, zap.NewNop()))
	return router
}

func TestAircraftRoutesRemap404(t *testing.T) {
	router := newAircraftRouter(t)
	id := uuid.NewString()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/aircraft/"+id, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"detail":"Aircraft not found"}`, w.Body.String())
		})
	}
}
