package audit

import (
	"github.com/gin-gonic/gin"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/proxy"
)

type Handler struct {
	Proxy *proxy.Forwarder
}

func RegisterRoutes(router *gin.Engine, f *proxy.Forwarder) {
	handler := Handler{Proxy: f}

	router.GET("/api/audit/work-order/:workOrderId/combined", handler.GetCombinedHistory)
	router.GET("/api/audit/:entityType/:entityId", handler.GetEntityHistory)
}

// GetCombinedHistory returns the merged audit trail of a work order
// and its items, paginated.
func (h *Handler) GetCombinedHistory(c *gin.Context) {
	query := c.Request.URL.Query()
	if query.Get("page") == "" {
		query.Set("page", "1")
	}
	if query.Get("page_size") == "" {
		query.Set("page_size", "50")
	}
	c.Request.URL.RawQuery = query.Encode()

	h.Proxy.Forward(c, "/audit/work-order/"+c.Param("workOrderId")+"/combined", proxy.Options{
		ErrorDetailFallback: "Failed to fetch combined audit history",
	})
}

func (h *Handler) GetEntityHistory(c *gin.Context) {
	h.Proxy.Forward(c, "/audit/"+c.Param("entityType")+"/"+c.Param("entityId"), proxy.Options{})
}
