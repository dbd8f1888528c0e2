package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/proxy"
)

type Handler struct {
	Proxy *proxy.Forwarder
}

func RegisterRoutes(router *gin.Engine, f *proxy.Forwarder) {
	handler := Handler{Proxy: f}

	router.GET("/api/dashboard/work-order-counts-by-city", handler.GetWorkOrderCountsByCity)
}

func (h *Handler) GetWorkOrderCountsByCity(c *gin.Context) {
	h.Proxy.Forward(c, "/dashboard/work-order-counts-by-city", proxy.Options{})
}
