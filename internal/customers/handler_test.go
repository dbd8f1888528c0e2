package customers

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

func newCustomerRouter(t *testing.T) *gin.Engine {
	t.Helper()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"customer row not found in database"}`))
	}))
	t.Cleanup(upstream.Close)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, proxy.NewForwarder(upstream.URL, zap.NewNop()))
	return router
}

func TestCustomerRoutesRemap404(t *testing.T) {
	router := newCustomerRouter(t)
	customerID := uuid.NewString()
	aircraftID := uuid.NewString()

	routes := []struct {
		name   string
		method string
		path   string
	}{
		{"get customer", http.MethodGet, "/api/customers/" + customerID},
		{"update customer", http.MethodPut, "/api/customers/" + customerID},
		{"delete customer", http.MethodDelete, "/api/customers/" + customerID},
		{"list linked aircraft", http.MethodGet, "/api/customers/" + customerID + "/aircraft"},
		{"link aircraft", http.MethodPost, "/api/customers/" + customerID + "/aircraft/" + aircraftID},
		{"unlink aircraft", http.MethodDelete, "/api/customers/" + customerID + "/aircraft/" + aircraftID},
		{"set primary", http.MethodPut, "/api/customers/" + customerID + "/aircraft/" + aircraftID + "/primary"},
	}

	for _, tt := range routes {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"detail":"Customer not found"}`, w.Body.String())
		})
	}
}
