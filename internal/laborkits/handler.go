package laborkits

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/middleware"
	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/proxy"
)

type Handler struct {
	Proxy *proxy.Forwarder
}

func RegisterRoutes(router *gin.Engine, f *proxy.Forwarder) {
	handler := Handler{Proxy: f}

	router.GET("/api/labor-kits", handler.ListKits)
	router.POST("/api/labor-kits", handler.CreateKit)
	router.GET("/api/labor-kits/:id", handler.GetKit)
	router.PUT("/api/labor-kits/:id", handler.UpdateKit)
	router.DELETE("/api/labor-kits/:id", handler.DeleteKit)

	router.GET("/api/labor-kits/:id/items", handler.ListItems)
	router.POST("/api/labor-kits/:id/items", handler.CreateItem)
	router.GET("/api/labor-kits/:id/items/:itemId", handler.GetItem)
	router.PUT("/api/labor-kits/:id/items/:itemId", handler.UpdateItem)
	router.DELETE("/api/labor-kits/:id/items/:itemId", handler.DeleteItem)

	router.POST("/api/labor-kits/:id/apply/:workOrderId", handler.ApplyKit)
}

func (h *Handler) ListKits(c *gin.Context) {
	h.Proxy.Forward(c, "/labor-kits", proxy.Options{})
}

func (h *Handler) CreateKit(c *gin.Context) {
	h.Proxy.Forward(c, "/labor-kits", proxy.Options{})
}

func (h *Handler) GetKit(c *gin.Context) {
	h.Proxy.Forward(c, "/labor-kits/"+c.Param("id"), proxy.Options{
		NotFoundDetail: "Labor kit not found",
	})
}

func (h *Handler) UpdateKit(c *gin.Context) {
	h.Proxy.Forward(c, "/labor-kits/"+c.Param("id"), proxy.Options{
		NotFoundDetail: "Labor kit not found",
	})
}

func (h *Handler) DeleteKit(c *gin.Context) {
	h.Proxy.Forward(c, "/labor-kits/"+c.Param("id"), proxy.Options{
		NotFoundDetail:     "Labor kit not found",
		NoContentOnSuccess: true,
	})
}

func (h *Handler) ListItems(c *gin.Context) {
	h.Proxy.Forward(c, "/labor-kits/"+c.Param("id")+"/items", proxy.Options{
		NotFoundDetail: "Labor kit not found",
	})
}

func (h *Handler) CreateItem(c *gin.Context) {
	h.Proxy.Forward(c, "/labor-kits/"+c.Param("id")+"/items", proxy.Options{
		NotFoundDetail: "Labor kit not found",
	})
}

func (h *Handler) GetItem(c *gin.Context) {
	h.Proxy.Forward(c, "/labor-kits/"+c.Param("id")+"/items/"+c.Param("itemId"), proxy.Options{
		NotFoundDetail: "Item not found",
	})
}

func (h *Handler) UpdateItem(c *gin.Context) {
	h.Proxy.Forward(c, "/labor-kits/"+c.Param("id")+"/items/"+c.Param("itemId"), proxy.Options{
		NotFoundDetail: "Item not found",
	})
}

func (h *Handler) DeleteItem(c *gin.Context) {
	h.Proxy.Forward(c, "/labor-kits/"+c.Param("id")+"/items/"+c.Param("itemId"), proxy.Options{
		NotFoundDetail:     "Item not found",
		NoContentOnSuccess: true,
	})
}

// ApplyKit asks upstream to copy every kit item into the target work
// order. created_by must come from the query string; a decoded bearer
// identity fills it in when the caller omitted it.
func (h *Handler) ApplyKit(c *gin.Context) {
	createdBy := c.Query("created_by")
	if createdBy == "" {
		if identity, ok := middleware.GetIdentity(c); ok {
			createdBy = identity.Principal
		}
	}
	if createdBy == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"detail": "created_by parameter is required",
		})
		return
	}
	c.Request.URL.RawQuery = url.Values{"created_by": {createdBy}}.Encode()

	h.Proxy.Forward(c, "/labor-kits/"+c.Param("id")+"/apply/"+c.Param("workOrderId"), proxy.Options{
		NotFoundDetail: "Labor kit not found",
	})
}
