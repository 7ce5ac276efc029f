package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"utilityapi/internal/cleanup"
	"utilityapi/internal/config"
	"utilityapi/internal/db"
	"utilityapi/internal/errorlog"
	"utilityapi/internal/ingestion"
	"utilityapi/internal/middleware"
	"utilityapi/internal/repository"
	"utilityapi/internal/sampledata"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Local overrides; absence of a .env file is fine.
	_ = godotenv.Load()

	// Create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup database connection
	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	// Run migrations
	if err := db.RunMigrations(cfg.Database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create repositories
	customerRepo := repository.NewCustomerRepository(conn.Pool)
	productRepo := repository.NewProductRepository(conn.Pool)
	saleRepo := repository.NewSaleRepository(conn.Pool)
	errorRepo := repository.NewErrorRecordRepository(conn.Pool)
	maintenanceRepo := repository.NewMaintenanceRepository(conn.Pool)

	// Create services
	ingestService := ingestion.NewService(customerRepo, productRepo, saleRepo, errorRepo)
	scheduler := cleanup.NewScheduler(maintenanceRepo, cfg.Cleanup.Interval)

	// Register endpoints
	mux := http.NewServeMux()
	mux.Handle("/upload-excel", ingestion.NewHTTPHandler(ingestService))
	mux.Handle("/errors", errorlog.NewHTTPHandler(errorRepo))
	mux.Handle("/trigger-cleanup", cleanup.NewHTTPHandler(maintenanceRepo))
	mux.Handle("/generate-excel", sampledata.NewHTTPHandler(sampledata.DefaultRecordCount))

	// Setup CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
	})

	handler := middleware.RecoveryMiddleware(
		middleware.LoggingMiddleware(corsHandler.Handler(mux)),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the cleanup loop for the lifetime of the process.
	go scheduler.Run(ctx)

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Stop the cleanup loop, then drain in-flight requests.
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
