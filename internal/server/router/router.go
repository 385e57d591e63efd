package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/aggregate"
	"github.com/Narasimha40-dev/DAIRY/internal/config"
	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
	"github.com/Narasimha40-dev/DAIRY/internal/server/handlers"
	"github.com/Narasimha40-dev/DAIRY/internal/service/dairy"
)

// Deps are the handlers mounted by New. Webhook may be nil when WhatsApp is
// disabled.
type Deps struct {
	Book      *dairy.Book
	Dashboard *handlers.DashboardHandler
	Webhook   *handlers.WebhookHandler
	Now       func() time.Time
}

// New wires the Gin engine with required routes and middlewares.
func New(cfg config.ServerConfig, deps Deps, logger *zap.Logger) (*gin.Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	limit, err := rateLimitMiddleware(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if deps.Webhook != nil {
		r.GET("/webhook", deps.Webhook.Verify)
		r.POST("/webhook", deps.Webhook.Receive)
		r.POST("/send-message", limit, deps.Webhook.SendMessage)
	}

	api := r.Group("/api", limit)
	if deps.Dashboard != nil {
		api.GET("/dashboard", deps.Dashboard.Current)
		api.GET("/dashboard/latest", deps.Dashboard.Latest)
	}
	registerEntities(api, deps.Book, deps.Now, logger.Named("handlers"))

	logger.Info("router initialized")
	return r, nil
}

func registerEntities(api *gin.RouterGroup, b *dairy.Book, now func() time.Time, logger *zap.Logger) {
	handlers.NewResourceHandler(b.Farmers,
		func() any { return dairy.FarmerSummary(b.Farmers.List()) },
		nil, logger).Register(api.Group("/farmers"))

	handlers.NewResourceHandler(b.MilkTracking,
		func() any { return dairy.MilkTrackingSummary(b.MilkTracking.List()) },
		nil, logger).Register(api.Group("/milk-tracking"))

	handlers.NewResourceHandler(b.FarmerPayments,
		func() any { return dairy.FarmerPaymentSummary(b.FarmerPayments.List()) },
		nil, logger).Register(api.Group("/farmer-payments"))

	handlers.NewResourceHandler(b.Inventory,
		func() any { return dairy.InventorySummary(b.Inventory.List(), now()) },
		map[string]func() aggregate.Series{
			"status": func() aggregate.Series { return dairy.InventoryStatusSeries(b.Inventory.List()) },
		}, logger).Register(api.Group("/inventory"))

	handlers.NewResourceHandler(b.Investments,
		func() any { return dairy.InvestmentSummary(b.Investments.List()) },
		map[string]func() aggregate.Series{
			"type": func() aggregate.Series { return dairy.InvestmentSummary(b.Investments.List()).Chart },
		}, logger).Register(api.Group("/investments"))

	handlers.NewResourceHandler(b.Collection.Sales,
		func() any { return b.Collection.Summary() },
		map[string]func() aggregate.Series{
			"milk-type": b.Collection.Series,
		}, logger).Register(api.Group("/milk-sales"))

	handlers.NewResourceHandler(b.Collection.Unsold,
		func() any { return b.Collection.Summary() },
		nil, logger).Register(api.Group("/unsold-stock"))

	handlers.NewResourceHandler(b.Payments,
		func() any { return dairy.PaymentSummary(b.Payments.List()) },
		map[string]func() aggregate.Series{
			"status": func() aggregate.Series { return dairy.PaymentStatusSeries(b.Payments.List()) },
		}, logger).Register(api.Group("/payments"))

	settings := api.Group("/settings")
	handlers.NewResourceHandler[models.SettingsProfile](b.Settings, nil, nil, logger).Register(settings)
	settings.POST("/:id/verify", handlers.NewSettingsHandler(b.Settings, logger).Verify)
}
