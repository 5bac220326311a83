package calculation

import (
	"errors"
	"fmt"

	"github.com/fcgo/cashflow-projector/internal/domain"
)

// ErrInvalidConfiguration is returned when a run is rejected before the
// per-year loop starts. Nothing inside the loop is expected to fail under
// valid input.
var ErrInvalidConfiguration = errors.New("invalid projection configuration")

// ProjectionEngine turns settings and an ordered account list into a
// year-by-year projection. It is deterministic: identical inputs always
// produce identical output, and it holds no state between runs.
type ProjectionEngine struct {
	Logger Logger
	// Debug enables per-year breakdown logging.
	Debug bool
}

// NewProjectionEngine creates an engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (e *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Project runs the full projection. The settings are read-only; all mutable
// state (cash, account balances) lives in the call frame and is discarded
// when the run ends. Validation failures abort before any year is produced,
// so there is never partial output.
func (e *ProjectionEngine) Project(settings *domain.ProjectionSettings, accounts []domain.InvestmentAccount) (*domain.Projection, error) {
	if settings == nil {
		return nil, fmt.Errorf("%w: settings are required", ErrInvalidConfiguration)
	}
	if settings.HorizonYears <= 0 {
		return nil, fmt.Errorf("%w: horizon years must be positive, got %d", ErrInvalidConfiguration, settings.HorizonYears)
	}
	switch settings.Compounding {
	case domain.CompoundingAnnual, domain.CompoundingMonthly, "":
	default:
		return nil, fmt.Errorf("%w: unknown compounding mode %q", ErrInvalidConfiguration, settings.Compounding)
	}
	switch settings.ContributionTiming {
	case domain.ContributionStartOfYear, domain.ContributionEndOfYear, "":
	default:
		return nil, fmt.Errorf("%w: unknown contribution timing %q", ErrInvalidConfiguration, settings.ContributionTiming)
	}

	return e.generateProjection(settings, accounts), nil
}
