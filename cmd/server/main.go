package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"pharmabot/canned"
	"pharmabot/classify"
	"pharmabot/domain/profiles"
	phttp "pharmabot/infrastructure/http"
	"pharmabot/internal"
	"pharmabot/knowledge"
	"pharmabot/observability"
	"pharmabot/runtime"
	"pharmabot/services"
	"pharmabot/validate"
)

// Le shell HTTP n'accorde qu'un essai de génération par backend.
const attemptsPerBackend = 1

const (
	shutdownTimeout   = 10 * time.Second
	heartbeatInterval = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run centralise l'initialisation et la fin de vie du serveur, les
// defer s'exécutent avant le retour vers main.
func run() error {
	// 1. Configuration & logger
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using environment variables")
	}
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Contexte & signaux
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Pipeline
	profile, err := profiles.ByName(config.Profile)
	if err != nil {
		return fmt.Errorf("profile error: %w", err)
	}
	classifier, err := classify.NewClassifier(profile)
	if err != nil {
		return fmt.Errorf("classifier build failed: %w", err)
	}
	base, err := knowledge.NewBase(log)
	if err != nil {
		return fmt.Errorf("knowledge base build failed: %w", err)
	}
	defer func() {
		log.Info("Closing knowledge index...")
		_ = base.Close()
	}()

	monitor := observability.NewMonitor()
	backends := internal.Backends(ctx, config, log)
	orchestrator := runtime.NewOrchestrator(log, profile, classifier,
		canned.NewTable(profile), base, validate.NewValidator(classifier, false),
		backends, monitor, attemptsPerBackend)
	service := services.NewChatService(orchestrator, monitor)

	heartbeat := observability.NewHeartbeat(log, monitor, heartbeatInterval)
	go func() { _ = heartbeat.Run(ctx) }()

	// 4. Serveur HTTP
	handler := phttp.NewHandler(service, log)
	server := phttp.NewServer(config.Addr(), handler, log)

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", config.Addr(),
			"profile", profile.Name, "backends", len(service.Backends()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 5. Attente de l'arrêt ou d'une erreur
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	log.Info("Server stopped", "at", time.Now().UTC())
	return nil
}
