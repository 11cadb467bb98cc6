package routes

import (
	"github.com/gin-gonic/gin"

	noticehandlers "eduhub/internal/interfaces/http/handlers/notice"
	"eduhub/internal/interfaces/http/middleware"
	"eduhub/internal/shared/authorization"
)

type NoticeRouteConfig struct {
	NoticeHandler  *noticehandlers.NoticeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupNoticeRoutes(engine *gin.Engine, config *NoticeRouteConfig) {
	notices := engine.Group("/notices")
	notices.Use(config.AuthMiddleware.RequireAuth())
	{
		notices.GET("",
			config.NoticeHandler.ListNotices)
		notices.POST("",
			authorization.RequireAdmin(),
			config.NoticeHandler.CreateNotice)

		notices.POST("/:id/publish",
			authorization.RequireAdmin(),
			config.NoticeHandler.PublishNotice)

		notices.GET("/:id",
			config.NoticeHandler.GetNotice)
		notices.PUT("/:id",
			authorization.RequireAdmin(),
			config.NoticeHandler.UpdateNotice)
		notices.DELETE("/:id",
			authorization.RequireAdmin(),
			config.NoticeHandler.DeleteNotice)
	}
}
