// File: premierlodge/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"premierlodge/config"
	"premierlodge/cron"
	"premierlodge/database"
	transactionsRepo "premierlodge/database/repository/transactions"
	"premierlodge/handlers"
	"premierlodge/middleware"
	"premierlodge/routes"
	"premierlodge/services/apiclient"
	"premierlodge/services/booking"
	"premierlodge/services/events"
	"premierlodge/services/notification"
	"premierlodge/services/payment"
	"premierlodge/services/pms"
	"premierlodge/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCredentialsCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	txnRepo := transactionsRepo.NewMongoTransactionRepo()

	// services.
	tokenStore := utils.NewRedisTokenStore(utils.GetCredentialsCacheClient())
	apiClient := apiclient.New(config.AppConfig.PMSBaseURL, tokenStore, logger)
	pmsClient := pms.NewClient(apiClient)

	notifier := notification.NewDefaultNotifier(logger)

	var provider payment.Provider
	switch config.AppConfig.PaymentProvider {
	case "stripe":
		provider = payment.NewStripeProvider()
	default:
		provider = payment.NewPaystackProvider(
			config.AppConfig.PaystackBaseURL,
			config.AppConfig.PaystackSecretKey,
			notifier,
		)
	}

	sessions := booking.NewSessionRegistry(utils.GetSessionCacheClient())

	orchestrator := booking.NewOrchestrator(pmsClient, pmsClient, provider, notifier, sessions)
	orchestrator.Audit = txnRepo
	orchestrator.PublicKey = config.AppConfig.PaystackPublicKey
	orchestrator.Currency = config.AppConfig.Currency
	orchestrator.Reminders = cron.NewReminderClient()

	if brokers := config.AppConfig.KafkaBrokers; brokers != "" {
		publisher, err := events.NewPublisher(strings.Split(brokers, ","), config.AppConfig.KafkaBookingTopic)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize kafka publisher: %v", err)
		}
		defer publisher.Close()
		orchestrator.Events = publisher
	}

	cron.InitReminderWorker(sessions, notifier)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:          handlers.NewAuthHandler(pmsClient, tokenStore),
		Resources:     handlers.NewResourceHandler(pmsClient, notifier),
		Bookings:      handlers.NewBookingHandler(orchestrator),
		Payments:      handlers.NewPaymentHandler(orchestrator, txnRepo),
		Notifications: handlers.NewNotificationHandler(notifier),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
