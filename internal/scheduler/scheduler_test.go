package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Narasimha40-dev/DAIRY/internal/config"
	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
)

type fakeReports struct {
	report string
	err    error
	calls  int
}

func (f *fakeReports) GenerateDailyReport(context.Context, time.Time) (string, error) {
	f.calls++
	return f.report, f.err
}

type fakeSender struct {
	sent []models.OutboundMessageRequest
	err  error
}

func (f *fakeSender) SendOutbound(_ context.Context, req models.OutboundMessageRequest) error {
	f.sent = append(f.sent, req)
	return f.err
}

var testConfig = config.ReportingConfig{CronSchedule: "0 20 * * *", Timezone: "UTC"}

func TestRunOnce(t *testing.T) {
	now := time.Date(2024, time.July, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		recipient string
		reports   *fakeReports
		sender    *fakeSender
		noSender  bool
		wantErr   bool
		wantSent  int
	}{
		{name: "sends report", recipient: "919876543210", reports: &fakeReports{report: "summary"}, sender: &fakeSender{}, wantSent: 1},
		{name: "no recipient", reports: &fakeReports{report: "summary"}, sender: &fakeSender{}},
		{name: "no sender", recipient: "919876543210", reports: &fakeReports{report: "summary"}, noSender: true},
		{name: "generation fails", recipient: "919876543210", reports: &fakeReports{err: errors.New("boom")}, sender: &fakeSender{}, wantErr: true},
		{name: "send fails", recipient: "919876543210", reports: &fakeReports{report: "summary"}, sender: &fakeSender{err: errors.New("down")}, wantErr: true, wantSent: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sender Sender
			if !tt.noSender {
				sender = tt.sender
			}
			s, err := NewScheduler(testConfig, tt.recipient, tt.reports, sender, nil)
			if err != nil {
				t.Fatalf("NewScheduler unexpected error: %v", err)
			}

			err = s.RunOnce(context.Background(), now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if tt.reports.calls != 1 {
				t.Fatalf("expected one report generation, got %d", tt.reports.calls)
			}
			if tt.sender != nil && len(tt.sender.sent) != tt.wantSent {
				t.Fatalf("expected %d sends, got %d", tt.wantSent, len(tt.sender.sent))
			}
			if tt.wantSent > 0 && (tt.sender.sent[0].To != tt.recipient || tt.sender.sent[0].Message != "summary") {
				t.Fatalf("unexpected outbound %+v", tt.sender.sent[0])
			}
		})
	}
}

func TestNewSchedulerRejectsBadInput(t *testing.T) {
	if _, err := NewScheduler(config.ReportingConfig{CronSchedule: "0 20 * * *", Timezone: "Mars/Olympus"}, "", &fakeReports{}, nil, nil); err == nil {
		t.Fatalf("expected unknown timezone to fail")
	}

	s, err := NewScheduler(config.ReportingConfig{CronSchedule: "every evening", Timezone: "UTC"}, "", &fakeReports{}, nil, nil)
	if err != nil {
		t.Fatalf("NewScheduler unexpected error: %v", err)
	}
	if err := s.Start(); err == nil {
		t.Fatalf("expected invalid schedule to fail on Start")
	}
}

func TestStartStop(t *testing.T) {
	s, err := NewScheduler(testConfig, "", &fakeReports{}, nil, nil)
	if err != nil {
		t.Fatalf("NewScheduler unexpected error: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start unexpected error: %v", err)
	}
	s.Stop()
}
