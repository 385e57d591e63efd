package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/config"
	"github.com/Narasimha40-dev/DAIRY/internal/repository/mongodb"
	"github.com/Narasimha40-dev/DAIRY/internal/repository/sheets"
	"github.com/Narasimha40-dev/DAIRY/internal/scheduler"
	"github.com/Narasimha40-dev/DAIRY/internal/server/handlers"
	"github.com/Narasimha40-dev/DAIRY/internal/server/router"
	commandsvc "github.com/Narasimha40-dev/DAIRY/internal/service/commands"
	"github.com/Narasimha40-dev/DAIRY/internal/service/dairy"
	"github.com/Narasimha40-dev/DAIRY/internal/service/export"
	reportingsvc "github.com/Narasimha40-dev/DAIRY/internal/service/reporting"
	whatsappsvc "github.com/Narasimha40-dev/DAIRY/internal/service/whatsapp"
	whatsappclient "github.com/Narasimha40-dev/DAIRY/pkg/clients/whatsapp"
	"github.com/Narasimha40-dev/DAIRY/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)
	decimal.MarshalJSONWithoutQuotes = true
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	book := dairy.NewBook(baseLogger.Named("records"), dairy.WithBcryptCost(cfg.Reporting.BcryptCost))

	var (
		archive reportingsvc.Archive
		history handlers.SnapshotHistory
	)
	if cfg.MongoDB.Enabled() {
		connectCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
		mongoRepo, err := mongodb.NewMongoDBRepository(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		cancel()
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		archive, history = mongoRepo, mongoRepo
		baseLogger.Info("snapshot archive enabled", zap.String("db", cfg.MongoDB.DBName))
	}

	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		mirror := export.NewSheetMirror(sheetsRepo, baseLogger.Named("svc.export"))
		mirror.Start(ctx)
		defer mirror.Close()

		export.Mirror(mirror, book.Farmers)
		export.Mirror(mirror, book.MilkTracking)
		export.Mirror(mirror, book.FarmerPayments)
		export.Mirror(mirror, book.Inventory)
		export.Mirror(mirror, book.Investments)
		export.Mirror(mirror, book.Collection.Sales)
		export.Mirror(mirror, book.Collection.Unsold)
		export.Mirror(mirror, book.Payments)
		baseLogger.Info("google sheets mirror enabled")
	}

	reportingSvc := reportingsvc.NewService(book, archive, baseLogger.Named("svc.reporting"))

	deps := router.Deps{
		Book:      book,
		Dashboard: handlers.NewDashboardHandler(reportingSvc, history, baseLogger.Named("handlers.dashboard")),
	}

	var sender scheduler.Sender
	if cfg.WhatsApp.Enabled() {
		dispatcher := commandsvc.NewService(book.Collection.Sales, book.Collection.Unsold, reportingSvc, baseLogger.Named("svc.commands"))
		whatsClient := whatsappclient.NewClient(cfg.WhatsApp)
		messagingSvc := whatsappsvc.NewMetaWhatsAppService(cfg.WhatsApp, whatsClient, dispatcher, baseLogger.Named("svc.whatsapp"))
		deps.Webhook = handlers.NewWebhookHandler(messagingSvc, baseLogger.Named("handlers.whatsapp"))
		sender = messagingSvc
	} else {
		baseLogger.Warn("whatsapp token missing, webhook and report delivery disabled")
	}

	engine, err := router.New(cfg.Server, deps, baseLogger.Named("router"))
	if err != nil {
		baseLogger.Fatal("failed to build router", zap.Error(err))
	}

	sched, err := scheduler.NewScheduler(cfg.Reporting, cfg.WhatsApp.ReportRecipient, reportingSvc, sender, baseLogger.Named("scheduler"))
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
