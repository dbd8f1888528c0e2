package workorders

import (
	"github.com/gin-gonic/gin"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/proxy"
)

type Handler struct {
	Proxy *proxy.Forwarder
}

func RegisterRoutes(router *gin.Engine, f *proxy.Forwarder) {
	handler := Handler{Proxy: f}

	router.GET("/api/work-orders", handler.ListWorkOrders)
	router.POST("/api/work-orders", handler.CreateWorkOrder)
	router.GET("/api/work-orders/:id", handler.GetWorkOrder)
	router.PUT("/api/work-orders/:id", handler.UpdateWorkOrder)
	router.DELETE("/api/work-orders/:id", handler.DeleteWorkOrder)

	router.GET("/api/work-orders/:id/items", handler.ListItems)
	router.POST("/api/work-orders/:id/items", handler.CreateItem)
	router.GET("/api/work-orders/:id/items/:itemId", handler.GetItem)
	router.PUT("/api/work-orders/:id/items/:itemId", handler.UpdateItem)
	router.DELETE("/api/work-orders/:id/items/:itemId", handler.DeleteItem)
}

// ListWorkOrders forwards the paginated list. city_id, page,
// page_size, search, status, sort_by and sort_order all travel through
// untouched; filtering is upstream's job.
func (h *Handler) ListWorkOrders(c *gin.Context) {
	h.Proxy.Forward(c, "/work-orders", proxy.Options{})
}

func (h *Handler) CreateWorkOrder(c *gin.Context) {
	h.Proxy.Forward(c, "/work-orders", proxy.Options{})
}

func (h *Handler) GetWorkOrder(c *gin.Context) {
	h.Proxy.Forward(c, "/work-orders/"+c.Param("id"), proxy.Options{
		NotFoundDetail: "Work order not found",
	})
}

func (h *Handler) UpdateWorkOrder(c *gin.Context) {
	h.Proxy.Forward(c, "/work-orders/"+c.Param("id"), proxy.Options{
		NotFoundDetail: "Work order not found",
	})
}

func (h *Handler) DeleteWorkOrder(c *gin.Context) {
	h.Proxy.Forward(c, "/work-orders/"+c.Param("id"), proxy.Options{
		NotFoundDetail:     "Work order not found",
		NoContentOnSuccess: true,
	})
}

func (h *Handler) ListItems(c *gin.Context) {
	h.Proxy.Forward(c, "/work-orders/"+c.Param("id")+"/items", proxy.Options{
		NotFoundDetail: "Work order not found",
	})
}

func (h *Handler) CreateItem(c *gin.Context) {
	h.Proxy.Forward(c, "/work-orders/"+c.Param("id")+"/items", proxy.Options{
		NotFoundDetail: "Work order not found",
	})
}

func (h *Handler) GetItem(c *gin.Context) {
	h.Proxy.Forward(c, "/work-orders/"+c.Param("id")+"/items/"+c.Param("itemId"), proxy.Options{
		NotFoundDetail: "Item not found",
	})
}

func (h *Handler) UpdateItem(c *gin.Context) {
	h.Proxy.Forward(c, "/work-orders/"+c.Param("id")+"/items/"+c.Param("itemId"), proxy.Options{
		NotFoundDetail: "Item not found",
	})
}

func (h *Handler) DeleteItem(c *gin.Context) {
	h.Proxy.Forward(c, "/work-orders/"+c.Param("id")+"/items/"+c.Param("itemId"), proxy.Options{
		NotFoundDetail:     "Item not found",
		NoContentOnSuccess: true,
	})
}
