package routes

import (
	"printdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathBundles = "/bundles"

func addMarketingRoutes(rg *gin.RouterGroup, bundleHandler *handlers.BundleHandler) {
	bundles := rg.Group(PathBundles)
	{
		bundles.GET("", bundleHandler.ListBundles)
		bundles.POST("", bundleHandler.CreateBundle)
		bundles.GET("/:id", bundleHandler.GetBundle)
		bundles.DELETE("/:id", bundleHandler.DeleteBundle)
	}
}
