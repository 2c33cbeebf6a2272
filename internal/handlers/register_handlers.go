package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/padgame/pad_backend/cmd/docs"
	portsrepo "github.com/padgame/pad_backend/internal/core/ports/repositories"
	portssvc "github.com/padgame/pad_backend/internal/core/ports/services"
	"github.com/padgame/pad_backend/internal/platform/config"
)

// RegisterJournalServiceRoutes sets up all routes of the journal service.
func RegisterJournalServiceRoutes(
	r *gin.Engine,
	cfg *config.Config,
	journalService portssvc.JournalSvcFacade,
	healthRepo portsrepo.HealthRepository,
) {
	RegisterJournalRoutes(r, journalService)
	RegisterHealthRoutes(r, healthRepo, "Journal Service Go")
	registerNoRoute(r)
	setupSwaggerRoutes(r, cfg)
}

// RegisterShopServiceRoutes sets up all routes of the shop service.
func RegisterShopServiceRoutes(
	r *gin.Engine,
	cfg *config.Config,
	itemService portssvc.ItemSvcFacade,
	healthRepo portsrepo.HealthRepository,
) {
	RegisterItemRoutes(r, itemService)
	RegisterHealthRoutes(r, healthRepo, "Shop Service Go")
	registerNoRoute(r)
	setupSwaggerRoutes(r, cfg)
}

// registerNoRoute installs the catch-all 404 used for unknown endpoints.
func registerNoRoute(r *gin.Engine) {
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
