package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/config"
	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
)

const jobTimeout = 2 * time.Minute

// ReportGenerator builds the daily summary text.
type ReportGenerator interface {
	GenerateDailyReport(ctx context.Context, now time.Time) (string, error)
}

// Sender delivers a report. It may be nil when messaging is disabled.
type Sender interface {
	SendOutbound(ctx context.Context, req models.OutboundMessageRequest) error
}

// Scheduler runs the daily summary job.
type Scheduler struct {
	cron      *cron.Cron
	schedule  string
	reports   ReportGenerator
	sender    Sender
	recipient string
	location  *time.Location
	logger    *zap.Logger
}

// NewScheduler creates a scheduler in the configured timezone.
func NewScheduler(cfg config.ReportingConfig, recipient string, reports ReportGenerator, sender Sender, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		schedule:  cfg.CronSchedule,
		reports:   reports,
		sender:    sender,
		recipient: recipient,
		location:  loc,
		logger:    logger,
	}, nil
}

// Start registers the daily job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runDailyReport); err != nil {
		return fmt.Errorf("schedule daily report %q: %w", s.schedule, err)
	}
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule), zap.String("timezone", s.location.String()))
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runDailyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.RunOnce(ctx, time.Now().In(s.location)); err != nil {
		s.logger.Error("daily report failed", zap.Error(err))
	}
}

// RunOnce generates the report for now and sends it when a sender and a
// recipient are configured.
func (s *Scheduler) RunOnce(ctx context.Context, now time.Time) error {
	s.logger.Info("generating daily report")
	report, err := s.reports.GenerateDailyReport(ctx, now)
	if err != nil {
		return fmt.Errorf("generate daily report: %w", err)
	}

	if s.sender == nil || s.recipient == "" {
		s.logger.Debug("report delivery disabled")
		return nil
	}

	if err := s.sender.SendOutbound(ctx, models.OutboundMessageRequest{To: s.recipient, Message: report}); err != nil {
		return fmt.Errorf("send daily report: %w", err)
	}
	s.logger.Info("daily report sent", zap.String("to", s.recipient))
	return nil
}
