package opcost

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Hardik699/Hanuram1-sub001/internal/costing"
	"github.com/Hardik699/Hanuram1-sub001/internal/domain/models"
)

// Store is the persistence surface for operating cost entries.
type Store interface {
	SaveOpCost(ctx context.Context, entry models.OpCostEntry) error
	GetOpCost(ctx context.Context, month, year int) (models.OpCostEntry, error)
}

// Ledger receives closed months. It is optional.
type Ledger interface {
	AppendOpCost(ctx context.Context, entry models.OpCostEntry, totalCost, totalProduction, effective float64, manual bool) error
}

// Service stores monthly operating costs and resolves the per-kg figure.
type Service struct {
	store  Store
	ledger Ledger
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new operating cost service. ledger may be nil.
func NewService(store Store, ledger Ledger, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		ledger: ledger,
		logger: logger,
		now:    time.Now,
	}
}

// Save validates entry, derives its automatic per-kg figure and upserts it
// for its (month, year).
func (s *Service) Save(ctx context.Context, entry models.OpCostEntry) (models.OpCostEntry, error) {
	if err := validate(entry); err != nil {
		return models.OpCostEntry{}, err
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.AutoOpCostPerKg = costing.AutoCostPerUnitFor(entry)
	entry.UpdatedAt = s.now().UTC()

	if err := s.store.SaveOpCost(ctx, entry); err != nil {
		return models.OpCostEntry{}, fmt.Errorf("save op cost: %w", err)
	}

	s.logger.Info("op cost saved",
		zap.Int("month", entry.Month),
		zap.Int("year", entry.Year),
		zap.Float64("auto_per_kg", entry.AutoOpCostPerKg),
		zap.Bool("manual", costing.UsesManualOpCost(entry)))
	return entry, nil
}

// Get loads the entry for a month.
func (s *Service) Get(ctx context.Context, month, year int) (models.OpCostEntry, error) {
	if err := validatePeriod(month, year); err != nil {
		return models.OpCostEntry{}, err
	}
	entry, err := s.store.GetOpCost(ctx, month, year)
	if err != nil {
		return models.OpCostEntry{}, fmt.Errorf("load op cost %02d/%d: %w", month, year, err)
	}
	return entry, nil
}

// Effective returns the per-kg operating cost in force for a month and
// whether it comes from the manual override.
func (s *Service) Effective(ctx context.Context, month, year int) (float64, bool, error) {
	entry, err := s.Get(ctx, month, year)
	if err != nil {
		return 0, false, err
	}
	return costing.EffectiveCostPerUnit(entry), costing.UsesManualOpCost(entry), nil
}

// CloseMonth recomputes and stores the month's automatic figure, records it in
// the ledger and returns a one-line summary.
func (s *Service) CloseMonth(ctx context.Context, month, year int) (string, error) {
	entry, err := s.Get(ctx, month, year)
	if err != nil {
		return "", err
	}

	entry, err = s.Save(ctx, entry)
	if err != nil {
		return "", err
	}

	totalCost := costing.TotalMonthlyCost(entry.Costs)
	totalProduction := costing.TotalProduction(entry.Production)
	effective := costing.EffectiveCostPerUnit(entry)
	manual := costing.UsesManualOpCost(entry)

	if s.ledger != nil {
		if err := s.ledger.AppendOpCost(ctx, entry, totalCost, totalProduction, effective, manual); err != nil {
			return "", err
		}
	}

	mode := "auto"
	if manual {
		mode = "manual"
	}
	return fmt.Sprintf("Operating cost %d-%02d: %.2f over %.2f kg, %.2f/kg (%s).",
		year, month, totalCost, totalProduction, effective, mode), nil
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", costing.ErrInvalidInput)
	}
	if year < 1 {
		return fmt.Errorf("%w: year must be positive", costing.ErrInvalidInput)
	}
	return nil
}

func validate(entry models.OpCostEntry) error {
	if err := validatePeriod(entry.Month, entry.Year); err != nil {
		return err
	}

	values := append(entry.Costs.Fields(), entry.Production.MithaiProduction, entry.Production.NamkeenProduction)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: costs and production must be non-negative numbers", costing.ErrInvalidInput)
		}
	}

	if m := entry.ManualOpCostPerKg; m != nil && !math.IsNaN(*m) && *m < 0 {
		return fmt.Errorf("%w: manual op cost must not be negative", costing.ErrInvalidInput)
	}
	return nil
}
