package routes

import (
	"tiembanh_mousse/internal/adapter/http/handlers"
	"tiembanh_mousse/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group("/orders")

	orders.GET("", h.ListOrders)
	orders.POST("", h.CreateOrder)
	orders.GET("/aggregations/daily-counts", h.DailyCounts)
	orders.GET("/aggregations/shifts", h.ShiftBreakdown)
	orders.GET("/:id", h.GetOrder)
	orders.PUT("/:id", h.UpdateOrder)
	orders.PATCH("/:id/state", h.UpdateOrderState)
	orders.DELETE("/:id", h.DeleteOrder)
}

func addPreOrderRoutes(rg *gin.RouterGroup, h *handlers.PreOrderHandler) {
	preOrders := rg.Group("/preorders")

	preOrders.GET("", h.ListPreOrders)
	preOrders.POST("", h.CreatePreOrder)
	preOrders.GET("/:id", h.GetPreOrder)
	preOrders.PUT("/:id", h.UpdatePreOrder)
	preOrders.PATCH("/:id/status", h.UpdatePreOrderStatus)
	preOrders.DELETE("/:id", h.DeletePreOrder)
}

func addCatalogRoutes(
	rg *gin.RouterGroup,
	customers *handlers.CatalogHandler[entities.Customer],
	products *handlers.CatalogHandler[entities.Product],
	employees *handlers.CatalogHandler[entities.Employee],
) {
	addCatalogGroup(rg, "/customers", customers)
	addCatalogGroup(rg, "/products", products)
	addCatalogGroup(rg, "/employees", employees)
}

func addCatalogGroup[T any](rg *gin.RouterGroup, path string, h *handlers.CatalogHandler[T]) {
	g := rg.Group(path)

	g.GET("", h.ListRecords)
	g.POST("", h.CreateRecord)
	g.GET("/:id", h.GetRecord)
	g.PUT("/:id", h.UpdateRecord)
	g.DELETE("/:id", h.DeleteRecord)
}

func addDraftRoutes(rg *gin.RouterGroup, h *handlers.DraftHandler) {
	drafts := rg.Group("/drafts")

	drafts.GET("/:namespace", h.GetDraft)
	drafts.PUT("/:namespace", h.SaveDraft)
	drafts.DELETE("/:namespace", h.DiscardDraft)
}

func addMetricsRoutes(rg *gin.RouterGroup, h *handlers.MetricsHandler) {
	rg.GET("/metrics/:name", h.GetMetric)
}
