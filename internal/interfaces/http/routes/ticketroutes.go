package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "eduhub/internal/interfaces/http/handlers/ticket"
	"eduhub/internal/interfaces/http/middleware"
	"eduhub/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
	SubmitLimiter  *middleware.RateLimiter
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		tickets.POST("",
			config.SubmitLimiter.Limit(),
			config.TicketHandler.SubmitTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.POST("/:id/replies",
			config.TicketHandler.AddReply)
		tickets.POST("/:id/close",
			config.TicketHandler.CloseTicket)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.DELETE("/:id",
			authorization.RequireAdmin(),
			config.TicketHandler.DeleteTicket)
	}
}
