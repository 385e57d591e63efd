package sheets

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/Narasimha40-dev/DAIRY/internal/config"
)

// ErrEmptySheet is returned when no tab name is given.
var ErrEmptySheet = errors.New("sheet name must not be empty")

// Repository appends rows to one spreadsheet, one tab per entity.
type Repository interface {
	AppendRows(ctx context.Context, sheet string, rows [][]any) error
}

var _ Repository = (*GoogleSheetRepository)(nil)

// GoogleSheetRepository implements Repository with the Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendRows appends rows below the last filled row of sheet.
func (r *GoogleSheetRepository) AppendRows(ctx context.Context, sheet string, rows [][]any) error {
	if sheet == "" {
		return ErrEmptySheet
	}
	if len(rows) == 0 {
		return nil
	}

	sheetRange := sheet + "!A1"
	payload := &sheetsapi.ValueRange{Values: rows}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append rows into %s: %w", sheet, err)
	}

	r.logger.Debug("rows appended to sheet", zap.String("sheet", sheet), zap.Int("rows", len(rows)))
	return nil
}
