package dairy

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
	"github.com/Narasimha40-dev/DAIRY/internal/record"
)

// Book owns one manager per dairy entity. Stores are independent; nothing
// cascades between them.
type Book struct {
	Farmers        *record.Manager[models.Farmer]
	MilkTracking   *record.Manager[models.MilkTrackingEntry]
	FarmerPayments *record.Manager[models.FarmerPayment]
	Inventory      *record.Manager[models.InventoryItem]
	Investments    *record.Manager[models.Investment]
	Collection     *Collection
	Payments       *record.Manager[models.PaymentTransaction]
	Settings       *record.Manager[models.SettingsProfile]
}

// BookOption configures NewBook.
type BookOption func(*bookConfig)

type bookConfig struct {
	clock      func() time.Time
	bcryptCost int
}

// WithClock sets the clock used to stamp payment dates.
func WithClock(clock func() time.Time) BookOption {
	return func(c *bookConfig) { c.clock = clock }
}

// WithBcryptCost sets the settings password hashing cost.
func WithBcryptCost(cost int) BookOption {
	return func(c *bookConfig) { c.bcryptCost = cost }
}

// NewBook builds every entity manager with a named child logger.
func NewBook(logger *zap.Logger, opts ...BookOption) *Book {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := bookConfig{clock: time.Now, bcryptCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Book{
		Farmers:        NewFarmers(logger.Named("farmers")),
		MilkTracking:   NewMilkTracking(logger.Named("milk_tracking")),
		FarmerPayments: NewFarmerPayments(logger.Named("farmer_payments")),
		Inventory:      NewInventory(logger.Named("inventory")),
		Investments:    NewInvestments(logger.Named("investments")),
		Collection:     NewCollection(logger.Named("collection")),
		Payments:       NewPayments(cfg.clock, logger.Named("payments")),
		Settings:       NewSettings(cfg.bcryptCost, logger.Named("settings")),
	}
}

// Snapshot summarises every store at now.
func (b *Book) Snapshot(now time.Time) models.DashboardSnapshot {
	return models.DashboardSnapshot{
		GeneratedAt:   now,
		Farmers:       FarmerSummary(b.Farmers.List()),
		MilkTracking:  MilkTrackingSummary(b.MilkTracking.List()),
		FarmerPayment: FarmerPaymentSummary(b.FarmerPayments.List()),
		Collection:    b.Collection.Summary(),
		Inventory:     InventorySummary(b.Inventory.List(), now),
		Investments:   InvestmentSummary(b.Investments.List()),
		Payments:      PaymentSummary(b.Payments.List()),
		Profiles:      b.Settings.Len(),
	}
}
