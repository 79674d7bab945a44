package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"busline/internal/handler"
	"busline/internal/middleware"
	"busline/internal/session"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	WizardHandler       *handler.WizardHandler
	TicketHandler       *handler.TicketHandler
	LoyaltyHandler      *handler.LoyaltyHandler
	NotificationHandler *handler.NotificationHandler
	ChatHandler         *handler.ChatHandler
	SessionHandler      *handler.SessionHandler
	SessionStore        *session.Store
	RedisClient         *redis.Client
	NewRelicApp         *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.SessionMiddleware(deps.SessionStore))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Session and UI preference routes.
		v1.POST("/session", deps.SessionHandler.Create)
		v1.GET("/session", deps.SessionHandler.Get)
		v1.PUT("/session/preferences", deps.SessionHandler.UpdatePreferences)
		v1.DELETE("/session", deps.SessionHandler.Delete)
		v1.GET("/i18n", deps.SessionHandler.Messages)
		v1.GET("/i18n/locales", deps.SessionHandler.Locales)

		// Booking wizard routes.
		wizard := v1.Group("/wizard")
		{
			wizard.POST("", deps.WizardHandler.Start)
			wizard.GET("/prefill", deps.WizardHandler.Prefill)
			wizard.GET("/:id", deps.WizardHandler.Get)
			wizard.DELETE("/:id", deps.WizardHandler.Discard)
			wizard.POST("/:id/seats", deps.WizardHandler.ToggleSeat)
			wizard.POST("/:id/next", deps.WizardHandler.Advance)
			wizard.POST("/:id/back", deps.WizardHandler.Back)
			wizard.PUT("/:id/details", deps.WizardHandler.UpdateDetails)
			wizard.POST("/:id/cargo", deps.WizardHandler.SetCargo)
			wizard.POST("/:id/points/apply", deps.WizardHandler.ApplyPoints)
			wizard.POST("/:id/points/cancel", deps.WizardHandler.CancelPoints)
			wizard.POST("/:id/submit", middleware.SubmitGuardMiddleware(deps.RedisClient), deps.WizardHandler.Submit)
		}
		v1.GET("/cargos", deps.WizardHandler.Cargos)
		v1.GET("/payment-methods", deps.WizardHandler.PaymentMethods)

		// Ticket routes.
		tickets := v1.Group("/tickets")
		{
			tickets.GET("", deps.TicketHandler.Search)
			tickets.GET("/mine", deps.TicketHandler.Mine)
			tickets.GET("/:id", deps.TicketHandler.Detail)
		}

		// Loyalty routes.
		v1.GET("/loyalty", deps.LoyaltyHandler.Balance)
		v1.GET("/loyalty/report", deps.LoyaltyHandler.Report)

		// Notification routes.
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", deps.NotificationHandler.List)
			notifications.POST("", deps.NotificationHandler.Add)
			notifications.GET("/recent", deps.NotificationHandler.Recent)
			notifications.GET("/unread", deps.NotificationHandler.Unread)
			notifications.GET("/unread/count", deps.NotificationHandler.UnreadCount)
			notifications.PUT("/:id", deps.NotificationHandler.Update)
			notifications.PUT("/:id/mark-as-read", deps.NotificationHandler.MarkRead)
			notifications.DELETE("/:id", deps.NotificationHandler.Delete)
		}

		// Chat routes.
		chats := v1.Group("/chats")
		{
			chats.POST("", deps.ChatHandler.Start)
			chats.GET("/:id/messages", deps.ChatHandler.Messages)
			chats.POST("/:id/send", deps.ChatHandler.Send)
		}
	}

	return router
}
