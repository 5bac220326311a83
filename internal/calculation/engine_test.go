package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcgo/cashflow-projector/internal/domain"
)

func TestProjectRejectsInvalidConfiguration(t *testing.T) {
	engine := NewProjectionEngine()

	tests := []struct {
		name     string
		settings *domain.ProjectionSettings
	}{
		{
			name:     "nil settings",
			settings: nil,
		},
		{
			name:     "zero horizon",
			settings: &domain.ProjectionSettings{HorizonYears: 0},
		},
		{
			name:     "negative horizon",
			settings: &domain.ProjectionSettings{HorizonYears: -5},
		},
		{
			name:     "unknown compounding mode",
			settings: &domain.ProjectionSettings{HorizonYears: 1, Compounding: "quarterly"},
		},
		{
			name:     "unknown contribution timing",
			settings: &domain.ProjectionSettings{HorizonYears: 1, ContributionTiming: "mid_year"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projection, err := engine.Project(tt.settings, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration), "expected ErrInvalidConfiguration, got %v", err)
			assert.Nil(t, projection, "no partial output on validation failure")
		})
	}
}

func TestProjectIsDeterministic(t *testing.T) {
	settings := baseSettings()
	settings.HorizonYears = 20
	settings.Person1.GrossSalary = decimal.NewFromInt(90000)
	settings.Person1.SalaryGrowthRate = decimal.NewFromFloat(0.03)
	settings.SalaryTaxRate = decimal.NewFromFloat(0.25)
	settings.MonthlyRecurringExpense = decimal.NewFromInt(3000)
	accounts := singleAccount(50000, 6000, 0.065, 0.15, true)

	engine := NewProjectionEngine()
	first, err := engine.Project(settings, accounts)
	require.NoError(t, err)
	second, err := engine.Project(settings, accounts)
	require.NoError(t, err)

	require.Len(t, second.Years, len(first.Years))
	for i := range first.Years {
		assert.True(t, first.Years[i].NetWorth.Equal(second.Years[i].NetWorth),
			"year index %d differs between identical runs", i)
	}
	assert.True(t, first.FinalCash.Equal(second.FinalCash))
	assert.True(t, first.FinalAccountBalances[0].Balance.Equal(second.FinalAccountBalances[0].Balance))
}

func TestSetLogger(t *testing.T) {
	engine := NewProjectionEngine()
	require.NotNil(t, engine.Logger)

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger, "nil logger must restore the no-op default")
}

func TestDebugLoggingDoesNotChangeResults(t *testing.T) {
	settings := baseSettings()
	accounts := singleAccount(1000, 0, 0.10, 0, true)

	quiet := NewProjectionEngine()
	noisy := NewProjectionEngine()
	noisy.Debug = true

	a, err := quiet.Project(settings, accounts)
	require.NoError(t, err)
	b, err := noisy.Project(settings, accounts)
	require.NoError(t, err)

	assert.True(t, a.FinalNetWorth().Equal(b.FinalNetWorth()))
}
