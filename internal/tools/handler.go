package tools

import (
	"github.com/gin-gonic/gin"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/proxy"
)

type Handler struct {
	Proxy *proxy.Forwarder
}

func RegisterRoutes(router *gin.Engine, f *proxy.Forwarder) {
	handler := Handler{Proxy: f}

	router.GET("/api/tools", handler.ListTools)
	router.GET("/api/tools/:id", handler.GetTool)
	router.GET("/api/tool-rooms", handler.ListToolRooms)
}

// ListTools forwards the tool list; city_id, tool_room_id, kit_filter,
// calib_due, search, paging and sorting all pass through.
func (h *Handler) ListTools(c *gin.Context) {
	h.Proxy.Forward(c, "/tools", proxy.Options{})
}

func (h *Handler) GetTool(c *gin.Context) {
	h.Proxy.Forward(c, "/tools/"+c.Param("id"), proxy.Options{
		NotFoundDetail: "Tool not found",
	})
}

// ListToolRooms forwards the tool room list for a city. Inactive rooms
// are excluded unless the caller asks for them.
func (h *Handler) ListToolRooms(c *gin.Context) {
	query := c.Request.URL.Query()
	if _, ok := query["active_only"]; !ok {
		query.Set("active_only", "true")
		c.Request.URL.RawQuery = query.Encode()
	}
	h.Proxy.Forward(c, "/tool-rooms", proxy.Options{})
}
