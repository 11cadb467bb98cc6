package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authapp "eduhub/internal/application/auth"
	catalogapp "eduhub/internal/application/catalog"
	noticeapp "eduhub/internal/application/notice"
	ticketusecases "eduhub/internal/application/ticket/usecases"
	"eduhub/internal/infrastructure/auth"
	"eduhub/internal/infrastructure/config"
	"eduhub/internal/infrastructure/email"
	"eduhub/internal/infrastructure/ratelimit"
	"eduhub/internal/infrastructure/repository"
	authhandlers "eduhub/internal/interfaces/http/handlers/auth"
	cataloghandlers "eduhub/internal/interfaces/http/handlers/catalog"
	noticehandlers "eduhub/internal/interfaces/http/handlers/notice"
	tickethandlers "eduhub/internal/interfaces/http/handlers/ticket"
	"eduhub/internal/interfaces/http/middleware"
	"eduhub/internal/interfaces/http/routes"
	"eduhub/internal/shared/db"
	"eduhub/internal/shared/logger"
	"eduhub/internal/shared/services/markdown"
)

// Router wires application services, handlers, and middleware into a gin engine.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	ticketHandler  *tickethandlers.TicketHandler
	authHandler    *authhandlers.AuthHandler
	catalogHandler *cataloghandlers.CatalogHandler
	noticeHandler  *noticehandlers.NoticeHandler
	authMiddleware *middleware.AuthMiddleware
	authLimiter    *middleware.RateLimiter
	submitLimiter  *middleware.RateLimiter
}

// NewRouter builds the full dependency graph. redisClient may be nil, in
// which case rate limiting is disabled.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log.Named("http")))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	// Infrastructure
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	txManager := db.NewTransactionManager(database)

	var mailer email.Service = email.NewNoopService()
	if cfg.Email.Enabled {
		mailer = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
	}

	var limiter ratelimit.RateLimiter = ratelimit.NewNoopLimiter()
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}
	limits := ratelimit.Limits{
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		RequestsPerHour:   cfg.RateLimit.RequestsPerHour,
		RequestsPerDay:    cfg.RateLimit.RequestsPerDay,
	}

	// Repositories
	userRepo := repository.NewUserRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	replyRepo := repository.NewReplyRepository(database)
	classRepo := repository.NewClassRepository(database)
	subjectRepo := repository.NewSubjectRepository(database)
	bookRepo := repository.NewBookRepository(database)
	videoRepo := repository.NewVideoRepository(database)
	noticeRepo := repository.NewNoticeRepository(database)

	// Application services
	authService := authapp.NewService(userRepo, hasher, jwtService, mailer, limiter, limits, log.Named("auth"))
	catalogService := catalogapp.NewService(classRepo, subjectRepo, bookRepo, videoRepo, log.Named("catalog"))
	noticeService := noticeapp.NewService(noticeRepo, markdown.NewService(), log.Named("notice"))

	notifier := email.NewTicketNotifier(mailer)
	ticketLog := log.Named("ticket")
	submitTicketUC := ticketusecases.NewSubmitTicketUseCase(ticketRepo, ticketLog)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, replyRepo, ticketLog)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, ticketLog)
	addReplyUC := ticketusecases.NewAddReplyUseCase(ticketRepo, replyRepo, userRepo, txManager, notifier, ticketLog)
	closeTicketUC := ticketusecases.NewCloseTicketUseCase(ticketRepo, ticketLog)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, ticketLog)

	// Handlers
	ticketHandler := tickethandlers.NewTicketHandler(
		submitTicketUC,
		getTicketUC,
		listTicketsUC,
		addReplyUC,
		closeTicketUC,
		deleteTicketUC,
		ticketLog,
	)
	authHandler := authhandlers.NewAuthHandler(authService, log.Named("auth"))
	catalogHandler := cataloghandlers.NewCatalogHandler(catalogService, log.Named("catalog"))
	noticeHandler := noticehandlers.NewNoticeHandler(noticeService, log.Named("notice"))

	return &Router{
		engine:         engine,
		cfg:            cfg,
		ticketHandler:  ticketHandler,
		authHandler:    authHandler,
		catalogHandler: catalogHandler,
		noticeHandler:  noticeHandler,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log.Named("auth")),
		authLimiter:    middleware.NewRateLimiter(limiter, limits, "auth", log.Named("ratelimit")),
		submitLimiter:  middleware.NewRateLimiter(limiter, limits, "ticket-submit", log.Named("ratelimit")),
	}
}

// SetupRoutes registers all route groups on the engine.
func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		RateLimiter: r.authLimiter,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
		SubmitLimiter:  r.submitLimiter,
	})

	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{
		CatalogHandler: r.catalogHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupNoticeRoutes(r.engine, &routes.NoticeRouteConfig{
		NoticeHandler:  r.noticeHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
