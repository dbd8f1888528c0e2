package aircraft

import (
	"github.com/gin-gonic/gin"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/proxy"
)

type Handler struct {
	Proxy *proxy.Forwarder
}

func RegisterRoutes(router *gin.Engine, f *proxy.Forwarder) {
	handler := Handler{Proxy: f}

	router.GET("/api/aircraft", handler.ListAircraft)
	router.POST("/api/aircraft", handler.CreateAircraft)
	router.GET("/api/aircraft/:id", handler.GetAircraft)
	router.PUT("/api/aircraft/:id", handler.UpdateAircraft)
	router.DELETE("/api/aircraft/:id", handler.DeleteAircraft)
}

func (h *Handler) ListAircraft(c *gin.Context) {
	h.Proxy.Forward(c, "/aircraft", proxy.Options{})
}

func (h *Handler) CreateAircraft(c *gin.Context) {
	h.Proxy.Forward(c, "/aircraft", proxy.Options{})
}

func (h *Handler) GetAircraft(c *gin.Context) {
	h.Proxy.Forward(c, "/aircraft/"+c.Param("id"), proxy.Options{
		NotFoundDetail: "Aircraft not found",
	})
}

func (h *Handler) UpdateAircraft(c *gin.Context) {
	h.Proxy.Forward(c, "/aircraft/"+c.Param("id"), proxy.Options{
		NotFoundDetail: "Aircraft not found",
	})
}

func (h *Handler) DeleteAircraft(c *gin.Context) {
	h.Proxy.Forward(c, "/aircraft/"+c.Param("id"), proxy.Options{
		NotFoundDetail:     "Aircraft not found",
		NoContentOnSuccess: true,
	})
}
