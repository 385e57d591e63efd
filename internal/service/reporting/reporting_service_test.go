package reporting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
)

type stubSnapshotter struct{ snapshot models.DashboardSnapshot }

func (s stubSnapshotter) Snapshot(now time.Time) models.DashboardSnapshot {
	out := s.snapshot
	out.GeneratedAt = now
	return out
}

type recordingArchive struct {
	saved []models.DashboardSnapshot
	err   error
}

func (a *recordingArchive) SaveSnapshot(_ context.Context, s models.DashboardSnapshot) error {
	a.saved = append(a.saved, s)
	return a.err
}

func sampleSnapshot() models.DashboardSnapshot {
	return models.DashboardSnapshot{
		Farmers: models.FarmerStats{TotalFarmers: 3, Villages: 2, TotalCows: 14},
		Collection: models.CollectionStats{
			TotalMilkSold:  decimal.NewFromInt(20),
			TotalEarnings:  decimal.NewFromInt(900),
			AveragePrice:   decimal.NewFromInt(45),
			MilkTypeTotals: map[string]decimal.Decimal{models.MilkCow: decimal.NewFromInt(20)},
			HighDemandType: models.MilkCow,
		},
		Payments: models.PaymentStats{TotalPayments: 3, SuccessRate: decimal.RequireFromString("66.7")},
	}
}

func TestFormatSnapshot(t *testing.T) {
	s := sampleSnapshot()
	s.GeneratedAt = time.Date(2024, time.June, 1, 20, 0, 0, 0, time.UTC)
	out := FormatSnapshot(s)

	for _, want := range []string{
		"Dairy summary 2024-06-01",
		"Farmers: 3 across 2 villages, 14 cows",
		"Milk sold: 20.00 L for 900.00 (avg 45.00/L)",
		"- Cow: 20.00 L",
		"- Goat: 0.00 L",
		"High demand: Cow",
		"66.7% successful",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateDailyReport(t *testing.T) {
	now := time.Date(2024, time.June, 1, 20, 0, 0, 0, time.UTC)

	t.Run("archives snapshot", func(t *testing.T) {
		archive := &recordingArchive{}
		svc := NewService(stubSnapshotter{snapshot: sampleSnapshot()}, archive, nil)
		report, err := svc.GenerateDailyReport(context.Background(), now)
		if err != nil {
			t.Fatalf("GenerateDailyReport unexpected error: %v", err)
		}
		if len(archive.saved) != 1 || !archive.saved[0].GeneratedAt.Equal(now) {
			t.Fatalf("expected one archived snapshot, got %+v", archive.saved)
		}
		if !strings.HasPrefix(report, "Dairy summary 2024-06-01") {
			t.Fatalf("unexpected report %q", report)
		}
	})

	t.Run("archive failure", func(t *testing.T) {
		svc := NewService(stubSnapshotter{}, &recordingArchive{err: errors.New("down")}, nil)
		if _, err := svc.GenerateDailyReport(context.Background(), now); err == nil {
			t.Fatalf("expected archive error")
		}
	})

	t.Run("no archive", func(t *testing.T) {
		svc := NewService(stubSnapshotter{}, nil, nil)
		if _, err := svc.GenerateDailyReport(context.Background(), now); err != nil {
			t.Fatalf("unexpected error without archive: %v", err)
		}
	})
}
