package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/Hardik699/Hanuram1-sub001/internal/config"
	"github.com/Hardik699/Hanuram1-sub001/internal/domain/models"
)

const opCostRange = "OpCosts!A:F"

// RowWriter appends a single row to a sheet range.
type RowWriter interface {
	WriteRow(ctx context.Context, sheetRange string, values []interface{}) error
}

// GoogleSheetWriter implements RowWriter using the official Google Sheets API.
type GoogleSheetWriter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetWriter builds a Google Sheets backed writer.
func NewGoogleSheetWriter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetWriter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetWriter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// WriteRow appends the provided values to the supplied sheet range.
func (w *GoogleSheetWriter) WriteRow(ctx context.Context, sheetRange string, values []interface{}) error {
	if sheetRange == "" {
		return fmt.Errorf("sheetRange must not be empty")
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := w.service.Spreadsheets.Values.Append(w.spreadsheetID, sheetRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append row into range %s: %w", sheetRange, err)
	}

	w.logger.Debug("row appended to sheet", zap.String("range", sheetRange))
	return nil
}

// Ledger records closed months in the operating cost sheet.
type Ledger struct {
	writer RowWriter
}

// NewLedger wraps a RowWriter.
func NewLedger(writer RowWriter) *Ledger {
	return &Ledger{writer: writer}
}

// AppendOpCost writes one row: period, total cost, total production, auto
// figure, effective figure and the mode that produced it.
func (l *Ledger) AppendOpCost(ctx context.Context, entry models.OpCostEntry, totalCost, totalProduction, effective float64, manual bool) error {
	mode := "auto"
	if manual {
		mode = "manual"
	}
	values := []interface{}{
		fmt.Sprintf("%d-%02d", entry.Year, entry.Month),
		totalCost,
		totalProduction,
		entry.AutoOpCostPerKg,
		effective,
		mode,
	}
	if err := l.writer.WriteRow(ctx, opCostRange, values); err != nil {
		return fmt.Errorf("append op cost %d-%02d: %w", entry.Year, entry.Month, err)
	}
	return nil
}
