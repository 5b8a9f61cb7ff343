package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sksagor/investment-tracker-backend/internal/api"
	"github.com/sksagor/investment-tracker-backend/internal/config"
	"github.com/sksagor/investment-tracker-backend/internal/database"
	"github.com/sksagor/investment-tracker-backend/internal/repository"
	"github.com/sksagor/investment-tracker-backend/internal/scheduler"
	"github.com/sksagor/investment-tracker-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	investmentRepo := repository.NewInvestmentRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	investmentService := service.NewInvestmentService(investmentRepo)
	portfolioService := service.NewPortfolioService(investmentRepo)
	snapshotService := service.NewSnapshotService(snapshotRepo, portfolioService)
	exportService, err := service.NewExportService(db, investmentRepo, cfg.Export.Key)
	if err != nil {
		log.Fatalf("Failed to configure export service: %v", err)
	}

	// Create router
	router := api.NewRouter(systemService, exportService, investmentService, portfolioService, snapshotService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.Snapshot.Enabled {
		snapshotScheduler, err := scheduler.New(snapshotService, cfg.Snapshot.Schedule)
		if err != nil {
			log.Fatalf("Failed to create snapshot scheduler: %v", err)
		}

		g.Go(func() error {
			log.Printf("Starting snapshot scheduler (%s)", cfg.Snapshot.Schedule)
			snapshotScheduler.Start()
			<-ctx.Done()
			snapshotScheduler.Stop()
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()

		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server exited")
}
