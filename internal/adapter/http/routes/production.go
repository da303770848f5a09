package routes

import (
	"printdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathColumns  = "/columns"
	PathBoard    = "/board"
	PathProducts = "/products"
	PathPricing  = "/pricing"
)

func addProductionRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, columnHandler *handlers.ColumnHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.PATCH("/status", orderHandler.BulkMove)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
		orders.PATCH("/:id/status", orderHandler.MoveOrder)
		orders.POST("/:id/proofs", orderHandler.UploadProof)
		orders.POST("/:id/proofs/response", orderHandler.RespondToProof)
		orders.GET("/:id/feedback", orderHandler.RefiningFeedback)
		orders.POST("/:id/issue", orderHandler.ReportIssue)
		orders.POST("/:id/issue/resolve", orderHandler.ResolveIssue)
	}

	rg.GET(PathBoard, orderHandler.Board)

	columns := rg.Group(PathColumns)
	{
		columns.GET("", columnHandler.ListColumns)
		columns.PUT("", columnHandler.SaveColumns)
		columns.POST("", columnHandler.AddColumn)
		columns.PATCH("/:id", columnHandler.RenameColumn)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", pricingHandler.ListProducts)
		products.GET("/:id", pricingHandler.GetProduct)
	}

	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/calculate", pricingHandler.Calculate)
		pricing.POST("/cart-items", pricingHandler.BuildCartItem)
	}
}
