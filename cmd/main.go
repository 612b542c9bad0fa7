package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paywall/internal/config"
	"paywall/internal/gateway"
	"paywall/internal/handlers"
	"paywall/internal/logger"
	"paywall/internal/mailer"
	"paywall/internal/repository"
	"paywall/internal/repository/db"
	"paywall/internal/server"
	"paywall/internal/service"
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load configs/config.yml + environment; fails when secrets are absent
	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("error loading config", "err", err)
	}

	// open DB
	database, err := openDB(cfg)
	if err != nil {
		log.Fatalw("failed to init postgres", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close postgres", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(service.Deps{
		Repos:         repos,
		Gateway:       gateway.NewRazorpayClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret),
		Mailer:        mailer.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Operator),
		SessionSecret: cfg.Session.Secret,
		GatewaySecret: cfg.Razorpay.KeySecret,
	})
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// openDB connects to the Postgres credential store and ensures the schema.
func openDB(cfg *config.Config) (*sql.DB, error) {
	return db.InitDB(cfg.DB.DSN())
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "3000"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
