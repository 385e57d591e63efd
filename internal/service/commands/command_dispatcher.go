package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
	"github.com/Narasimha40-dev/DAIRY/internal/record"
	"github.com/Narasimha40-dev/DAIRY/internal/service/reporting"
	"github.com/Narasimha40-dev/DAIRY/internal/validation"
)

// ErrInvalidArguments indicates the command payload could not be parsed.
var ErrInvalidArguments = errors.New("invalid command arguments")

const dateFormat = validation.DateLayout

// HelpText lists the commands workers can send.
const HelpText = "Dairy commands:\n" +
	"/milk <name> <village> <type> <liters> <rate> - record a sale, e.g. /milk Ravi Alpha Cow 10 40\n" +
	"/unsold [date] <liters> - record unsold milk, e.g. /unsold 2024-01-05 12\n" +
	"/summary - today's dairy summary\n" +
	"/help - this message"

// Entries is a store that accepts drafts, such as a record.Manager.
type Entries[T record.Record] interface {
	Schema() record.Schema[T]
	Create(d record.Draft) (T, error)
}

// Dashboard produces the current summary.
type Dashboard interface {
	Dashboard(now time.Time) models.DashboardSnapshot
}

// Dispatcher executes parsed commands and returns the reply for the sender.
type Dispatcher interface {
	HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error)
}

// Service implements Dispatcher on top of the collection stores.
type Service struct {
	sales     Entries[models.MilkSale]
	unsold    Entries[models.UnsoldStock]
	dashboard Dashboard
	logger    *zap.Logger
	now       func() time.Time
}

// NewService constructs a command dispatcher.
func NewService(sales Entries[models.MilkSale], unsold Entries[models.UnsoldStock], dashboard Dashboard, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sales:     sales,
		unsold:    unsold,
		dashboard: dashboard,
		logger:    logger,
		now:       time.Now,
	}
}

// HandleCommand runs cmd. Rejected drafts are reported in the reply rather
// than as an error, so the worker can correct and resend.
func (s *Service) HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error) {
	s.logger.Debug("dispatching command", zap.String("command", string(cmd.Type)), zap.String("sender", sender), zap.Strings("args", cmd.Args))

	var (
		reply string
		err   error
	)
	switch cmd.Type {
	case models.CommandMilk:
		reply, err = s.recordSale(cmd)
	case models.CommandUnsold:
		reply, err = s.recordUnsold(cmd)
	case models.CommandSummary:
		return reporting.FormatSnapshot(s.dashboard.Dashboard(s.now())), nil
	case models.CommandHelp:
		return HelpText, nil
	default:
		return "Unknown command.\n" + HelpText, nil
	}

	var verrs validation.Errors
	switch {
	case errors.Is(err, ErrInvalidArguments):
		return "Could not read that command.\n" + HelpText, nil
	case errors.As(err, &verrs):
		return "Entry rejected:\n" + formatErrors(verrs), nil
	}
	return reply, err
}

func (s *Service) recordSale(cmd models.Command) (string, error) {
	args := cmd.Args
	if len(args) < 5 {
		return "", ErrInvalidArguments
	}
	n := len(args)
	draft := s.sales.Schema().Normalized(record.Draft{
		"name":     strings.Join(args[:n-4], " "),
		"village":  args[n-4],
		"milkType": record.CapitalizeFirst(strings.ToLower(args[n-3])),
		"quantity": args[n-2],
		"rate":     args[n-1],
	})

	sale, err := s.sales.Create(draft)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Sale recorded: %s (%s) %s L %s @ %s = %s.",
		sale.Name, sale.Village, sale.Quantity.String(), sale.MilkType, sale.Rate.String(), sale.Total.StringFixed(2)), nil
}

func (s *Service) recordUnsold(cmd models.Command) (string, error) {
	var date, qty string
	switch len(cmd.Args) {
	case 1:
		date, qty = s.now().Format(dateFormat), cmd.Args[0]
	case 2:
		date, qty = cmd.Args[0], cmd.Args[1]
	default:
		return "", ErrInvalidArguments
	}

	entry, err := s.unsold.Create(record.Draft{"date": date, "quantity": qty})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Unsold stock recorded for %s: %s L.", entry.Date, entry.Quantity.String()), nil
}

func formatErrors(errs validation.Errors) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("- %s: %s", f, errs[f]))
	}
	return strings.Join(lines, "\n")
}
