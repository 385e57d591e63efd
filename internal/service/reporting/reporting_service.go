package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
)

const dateLayout = "2006-01-02"

// Snapshotter produces the cross-entity dashboard at a point in time.
type Snapshotter interface {
	Snapshot(now time.Time) models.DashboardSnapshot
}

// Archive stores generated snapshots.
type Archive interface {
	SaveSnapshot(ctx context.Context, snapshot models.DashboardSnapshot) error
}

// Service builds dashboard snapshots and their WhatsApp text form.
type Service struct {
	source  Snapshotter
	archive Archive
	logger  *zap.Logger
}

// NewService wires a reporting service. archive may be nil.
func NewService(source Snapshotter, archive Archive, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, archive: archive, logger: logger}
}

// Dashboard returns the current snapshot.
func (s *Service) Dashboard(now time.Time) models.DashboardSnapshot {
	return s.source.Snapshot(now)
}

// GenerateDailyReport snapshots every store, archives the snapshot when an
// archive is configured and returns the formatted summary.
func (s *Service) GenerateDailyReport(ctx context.Context, now time.Time) (string, error) {
	snapshot := s.source.Snapshot(now)
	if s.archive != nil {
		if err := s.archive.SaveSnapshot(ctx, snapshot); err != nil {
			return "", fmt.Errorf("archive snapshot: %w", err)
		}
		s.logger.Info("dashboard snapshot archived", zap.Time("generated_at", snapshot.GeneratedAt))
	}
	return FormatSnapshot(snapshot), nil
}

// FormatSnapshot renders a snapshot as a short plain-text report.
func FormatSnapshot(s models.DashboardSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dairy summary %s\n", s.GeneratedAt.Format(dateLayout))

	fmt.Fprintf(&b, "\nFarmers: %d across %d villages, %d cows\n", s.Farmers.TotalFarmers, s.Farmers.Villages, s.Farmers.TotalCows)
	fmt.Fprintf(&b, "Deliveries: %d (%d delivered, %d pending), %s L\n",
		s.MilkTracking.Entries, s.MilkTracking.Delivered, s.MilkTracking.Pending, s.MilkTracking.TotalLiters.StringFixed(2))
	fmt.Fprintf(&b, "Farmer payments: %s paid, %s pending\n",
		s.FarmerPayment.PaidAmount.StringFixed(2), s.FarmerPayment.PendingAmount.StringFixed(2))

	c := s.Collection
	fmt.Fprintf(&b, "\nMilk sold: %s L for %s (avg %s/L)\n", c.TotalMilkSold.StringFixed(2), c.TotalEarnings.StringFixed(2), c.AveragePrice.StringFixed(2))
	for _, milkType := range models.MilkTypes {
		fmt.Fprintf(&b, "- %s: %s L\n", milkType, c.MilkTypeTotals[milkType].StringFixed(2))
	}
	fmt.Fprintf(&b, "High demand: %s\n", c.HighDemandType)
	fmt.Fprintf(&b, "Unsold: %s L over %d entries\n", c.UnsoldStockTotal.StringFixed(2), c.UnsoldEntries)

	fmt.Fprintf(&b, "\nInventory: %d items, %d units, %d expiring soon, %d out of stock\n",
		s.Inventory.TotalItems, s.Inventory.TotalQuantity, s.Inventory.ExpiringSoon, s.Inventory.OutOfStock)
	fmt.Fprintf(&b, "Investments: %d totaling %s (top %s)\n",
		s.Investments.TotalInvestments, s.Investments.TotalAmount.StringFixed(0), s.Investments.TopType)
	fmt.Fprintf(&b, "Payments: %d totaling %s, %s%% successful, %d pending",
		s.Payments.TotalPayments, s.Payments.TotalAmount.StringFixed(2), s.Payments.SuccessRate.StringFixed(1), s.Payments.Pending)

	return b.String()
}
