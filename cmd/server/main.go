package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"busline/internal/app"
	"busline/internal/backendapi"
	"busline/internal/cache"
	"busline/internal/config"
	"busline/internal/handler"
	"busline/internal/repository/memory"
	"busline/internal/service"
	"busline/internal/session"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST so Redis can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server, drafts := wireServer(redisClient, nrApp, cfg)

	// Sweep abandoned wizard drafts in the background.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweepDrafts(sweepCtx, drafts, cfg.Booking.DraftTTL)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server plus the
// draft repository for the background sweep.
func wireServer(redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) (*http.Server, *memory.DraftRepository) {
	// Backend API client and stores.
	backend := backendapi.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	queryCache := cache.NewStore(redisClient)
	sessionStore := session.NewStore(redisClient)
	draftRepo := memory.NewDraftRepository()

	// Initialize services.
	wizardService := service.NewWizardService(backend, queryCache, draftRepo, cfg.Booking.MaxSeatSelect)
	ticketService := service.NewTicketService(backend)
	loyaltyService := service.NewLoyaltyService(backend, queryCache)
	notificationService := service.NewNotificationService(backend, queryCache)
	chatService := service.NewChatService(backend, cfg.Chat.DefaultStaff)

	// Initialize handlers.
	wizardHandler := handler.NewWizardHandler(wizardService)
	ticketHandler := handler.NewTicketHandler(ticketService)
	loyaltyHandler := handler.NewLoyaltyHandler(loyaltyService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	chatHandler := handler.NewChatHandler(chatService)
	sessionHandler := handler.NewSessionHandler(sessionStore, notificationService, cfg.Booking.NotificationPollInterval)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		WizardHandler:       wizardHandler,
		TicketHandler:       ticketHandler,
		LoyaltyHandler:      loyaltyHandler,
		NotificationHandler: notificationHandler,
		ChatHandler:         chatHandler,
		SessionHandler:      sessionHandler,
		SessionStore:        sessionStore,
		RedisClient:         redisClient,
		NewRelicApp:         nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, draftRepo
}

// sweepDrafts removes abandoned wizard drafts once per TTL interval.
func sweepDrafts(ctx context.Context, drafts *memory.DraftRepository, ttl time.Duration) {
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := drafts.DeleteExpired(ctx, time.Now().Add(-ttl)); removed > 0 {
				log.Printf("swept %d expired drafts", removed)
			}
		}
	}
}
