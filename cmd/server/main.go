package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Hardik699/Hanuram1-sub001/internal/config"
	"github.com/Hardik699/Hanuram1-sub001/internal/repository/mongodb"
	"github.com/Hardik699/Hanuram1-sub001/internal/repository/sheets"
	"github.com/Hardik699/Hanuram1-sub001/internal/scheduler"
	"github.com/Hardik699/Hanuram1-sub001/internal/server/handlers"
	"github.com/Hardik699/Hanuram1-sub001/internal/server/router"
	opcostsvc "github.com/Hardik699/Hanuram1-sub001/internal/service/opcost"
	recipesvc "github.com/Hardik699/Hanuram1-sub001/internal/service/recipes"
	"github.com/Hardik699/Hanuram1-sub001/pkg/clients/notify"
	"github.com/Hardik699/Hanuram1-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelInit()

	mongoRepo, err := mongodb.NewMongoDBRepository(initCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	if err := mongoRepo.EnsureIndexes(initCtx); err != nil {
		baseLogger.Fatal("failed to ensure mongodb indexes", zap.Error(err))
	}

	// Interfaces stay nil when an integration is disabled.
	var ledger opcostsvc.Ledger
	if cfg.Sheets.Enabled() {
		writer, err := sheets.NewGoogleSheetWriter(initCtx, cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets ledger", zap.Error(err))
		}
		ledger = sheets.NewLedger(writer)
		baseLogger.Info("sheets ledger enabled")
	} else {
		baseLogger.Warn("GOOGLE_SHEET_LEDGER_ID missing, operating cost ledger disabled")
	}

	var notifier notify.Client
	if cfg.Notify.Enabled() {
		notifier = notify.NewClient(cfg.Notify)
		baseLogger.Info("month close notifications enabled")
	}

	opCostSvc := opcostsvc.NewService(mongoRepo, ledger, baseLogger.Named("svc.opcost"))
	recipeSvc := recipesvc.NewService(mongoRepo, opCostSvc, baseLogger.Named("svc.recipes"))

	engine := router.New(
		handlers.NewRecipeHandler(recipeSvc, baseLogger.Named("handlers.recipes")),
		handlers.NewOpCostHandler(opCostSvc, baseLogger.Named("handlers.opcost")),
		baseLogger.Named("router"),
	)

	sched, err := scheduler.NewScheduler(cfg.Scheduler, opCostSvc, notifier, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
