package routes

import (
	"github.com/gin-gonic/gin"

	cataloghandlers "eduhub/internal/interfaces/http/handlers/catalog"
	"eduhub/internal/interfaces/http/middleware"
	"eduhub/internal/shared/authorization"
)

type CatalogRouteConfig struct {
	CatalogHandler *cataloghandlers.CatalogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupCatalogRoutes(engine *gin.Engine, config *CatalogRouteConfig) {
	catalog := engine.Group("/catalog")
	catalog.Use(config.AuthMiddleware.RequireAuth())
	{
		catalog.GET("/classes",
			config.CatalogHandler.ListClasses)
		catalog.POST("/classes",
			authorization.RequireAdmin(),
			config.CatalogHandler.CreateClass)
		catalog.GET("/classes/:id/subjects",
			config.CatalogHandler.ListSubjects)
		catalog.PUT("/classes/:id",
			authorization.RequireAdmin(),
			config.CatalogHandler.UpdateClass)
		catalog.DELETE("/classes/:id",
			authorization.RequireAdmin(),
			config.CatalogHandler.DeleteClass)

		catalog.POST("/subjects",
			authorization.RequireAdmin(),
			config.CatalogHandler.CreateSubject)
		catalog.GET("/subjects/:id/books",
			config.CatalogHandler.ListBooks)
		catalog.GET("/subjects/:id/videos",
			config.CatalogHandler.ListVideos)
		catalog.PUT("/subjects/:id",
			authorization.RequireAdmin(),
			config.CatalogHandler.UpdateSubject)
		catalog.DELETE("/subjects/:id",
			authorization.RequireAdmin(),
			config.CatalogHandler.DeleteSubject)

		catalog.POST("/books",
			authorization.RequireAdmin(),
			config.CatalogHandler.CreateBook)
		catalog.DELETE("/books/:id",
			authorization.RequireAdmin(),
			config.CatalogHandler.DeleteBook)

		catalog.POST("/videos",
			authorization.RequireAdmin(),
			config.CatalogHandler.CreateVideo)
		catalog.DELETE("/videos/:id",
			authorization.RequireAdmin(),
			config.CatalogHandler.DeleteVideo)
	}
}
