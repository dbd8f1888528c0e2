package cities

import (
	"github.com/gin-gonic/gin"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/proxy"
)

type Handler struct {
	Proxy *proxy.Forwarder
}

func RegisterRoutes(router *gin.Engine, f *proxy.Forwarder) {
	handler := Handler{Proxy: f}

	router.GET("/api/cities", handler.ListCities)
	router.GET("/api/cities/:id", handler.GetCity)
}

// ListCities forwards the city list. Inactive cities are excluded
// unless the caller asks for them.
func (h *Handler) ListCities(c *gin.Context) {
	query := c.Request.URL.Query()
	if _, ok := query["active_only"]; !ok {
		query.Set("active_only", "true")
		c.Request.URL.RawQuery = query.Encode()
	}
	h.Proxy.Forward(c, "/cities", proxy.Options{})
}

func (h *Handler) GetCity(c *gin.Context) {
	h.Proxy.Forward(c, "/cities/"+c.Param("id"), proxy.Options{
		NotFoundDetail: "City not found",
	})
}
