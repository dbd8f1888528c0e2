package customers

import (
	"github.com/gin-gonic/gin"

	"github.com/ryantate314/cant-believe-its-not-ebis-sub000/internal/proxy"
)

type Handler struct {
	Proxy *proxy.Forwarder
}

func RegisterRoutes(router *gin.Engine, f *proxy.Forwarder) {
	handler := Handler{Proxy: f}

	router.GET("/api/customers", handler.ListCustomers)
	router.POST("/api/customers", handler.CreateCustomer)
	router.GET("/api/customers/:id", handler.GetCustomer)
	router.PUT("/api/customers/:id", handler.UpdateCustomer)
	router.DELETE("/api/customers/:id", handler.DeleteCustomer)

	// Customer to aircraft linking. The join is owned upstream; these
	// just ride along on the customer surface.
	router.GET("/api/customers/:id/aircraft", handler.ListAircraft)
	router.PUT("/api/customers/:id/aircraft", handler.ReplaceAircraft)
	router.POST("/api/customers/:id/aircraft/:aircraftId", handler.LinkAircraft)
	router.DELETE("/api/customers/:id/aircraft/:aircraftId", handler.UnlinkAircraft)
	router.PUT("/api/customers/:id/aircraft/:aircraftId/primary", handler.SetPrimaryAircraft)
}

func (h *Handler) ListCustomers(c *gin.Context) {
	h.Proxy.Forward(c, "/customers", proxy.Options{})
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	h.Proxy.Forward(c, "/customers", proxy.Options{})
}

func (h *Handler) GetCustomer(c *gin.Context) {
	h.Proxy.Forward(c, "/customers/"+c.Param("id"), proxy.Options{
		NotFoundDetail: "Customer not found",
	})
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	h.Proxy.Forward(c, "/customers/"+c.Param("id"), proxy.Options{
		NotFoundDetail: "Customer not found",
	})
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	h.Proxy.Forward(c, "/customers/"+c.Param("id"), proxy.Options{
		NotFoundDetail:     "Customer not found",
		NoContentOnSuccess: true,
	})
}

func (h *Handler) ListAircraft(c *gin.Context) {
	h.Proxy.Forward(c, "/customers/"+c.Param("id")+"/aircraft", proxy.Options{
		NotFoundDetail: "Customer not found",
	})
}

func (h *Handler) ReplaceAircraft(c *gin.Context) {
	h.Proxy.Forward(c, "/customers/"+c.Param("id")+"/aircraft", proxy.Options{
		NotFoundDetail: "Customer not found",
	})
}

func (h *Handler) LinkAircraft(c *gin.Context) {
	h.Proxy.Forward(c, "/customers/"+c.Param("id")+"/aircraft/"+c.Param("aircraftId"), proxy.Options{
		NotFoundDetail: "Customer not found",
	})
}

func (h *Handler) UnlinkAircraft(c *gin.Context) {
	h.Proxy.Forward(c, "/customers/"+c.Param("id")+"/aircraft/"+c.Param("aircraftId"), proxy.Options{
		NotFoundDetail:     "Customer not found",
		NoContentOnSuccess: true,
	})
}

func (h *Handler) SetPrimaryAircraft(c *gin.Context) {
	h.Proxy.Forward(c, "/customers/"+c.Param("id")+"/aircraft/"+c.Param("aircraftId")+"/primary", proxy.Options{
		NotFoundDetail: "Customer not found",
	})
}
