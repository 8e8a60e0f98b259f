package employeestatus

import (
	"hr-personnel-backend/models"
	dbmodels "hr-personnel-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func cfg(category models.ContractCategory, probationDays int) *dbmodels.ContractTypeConfig {
	return &dbmodels.ContractTypeConfig{
		Category:                  category,
		ProbationDays:             probationDays,
		EnableAutoTransitions:     true,
		TransitionToInactiveOnEnd: true,
	}
}

func TestRequiredStatus(t *testing.T) {
	threeMonths := cfg(models.ContractCategoryThreeMonths, 90)
	start := date(2026, time.January, 1)

	t.Run("probation while inside the probation window", func(t *testing.T) {
		emp := dbmodels.Employee{
			Status:           models.EmployeeStatusProbation,
			ContractCategory: models.ContractCategoryThreeMonths,
			StartDate:        &start,
		}
		d := RequiredStatus(emp, threeMonths, date(2026, time.February, 15))
		require.Equal(t, models.EmployeeStatusProbation, d.Required(emp.Status))
		require.False(t, d.Changed(emp.Status))
	})

	t.Run("active once probation days elapse", func(t *testing.T) {
		emp := dbmodels.Employee{
			Status:           models.EmployeeStatusProbation,
			ContractCategory: models.ContractCategoryThreeMonths,
			StartDate:        &start,
		}
		thirty := cfg(models.ContractCategoryThreeMonths, 30)

		// day 29: one day of probation left
		d := RequiredStatus(emp, thirty, start.AddDate(0, 0, 29))
		require.Equal(t, models.EmployeeStatusProbation, d.Status)
		require.Equal(t, "on probation, 1 day(s) remaining", d.Reason)

		// day 30: the boundary day completes probation
		d = RequiredStatus(emp, thirty, start.AddDate(0, 0, 30))
		require.Equal(t, models.EmployeeStatusActive, d.Status)
		require.True(t, d.Changed(emp.Status))
		require.Equal(t, "probation period completed", d.Reason)
	})

	t.Run("contract end forces inactive regardless of probation", func(t *testing.T) {
		end := date(2026, time.March, 1)
		emp := dbmodels.Employee{
			Status:           models.EmployeeStatusProbation,
			ContractCategory: models.ContractCategoryThreeMonths,
			StartDate:        &start,
			ContractEndDate:  &end,
		}
		d := RequiredStatus(emp, threeMonths, date(2026, time.March, 1))
		require.Equal(t, models.EmployeeStatusInactive, d.Status)
		require.Equal(t, "contract ended on 2026-03-01", d.Reason)

		// the day before the end date the contract still runs
		d = RequiredStatus(emp, threeMonths, date(2026, time.February, 28))
		require.Equal(t, models.EmployeeStatusProbation, d.Status)
	})

	t.Run("disabled end transition holds the status past the end date", func(t *testing.T) {
		end := date(2026, time.March, 1)
		held := cfg(models.ContractCategoryThreeMonths, 90)
		held.TransitionToInactiveOnEnd = false
		emp := dbmodels.Employee{
			Status:           models.EmployeeStatusActive,
			ContractCategory: models.ContractCategoryThreeMonths,
			StartDate:        &start,
			ContractEndDate:  &end,
		}
		d := RequiredStatus(emp, held, date(2026, time.April, 1))
		require.False(t, d.Changed(emp.Status))
		require.Contains(t, d.Reason, "end transition disabled")

		// with no config at all the expired contract still deactivates
		d = RequiredStatus(emp, nil, date(2026, time.April, 1))
		require.Equal(t, models.EmployeeStatusInactive, d.Status)
	})

	t.Run("permanent contract activates once then holds", func(t *testing.T) {
		permanent := cfg(models.ContractCategoryPermanent, 0)
		emp := dbmodels.Employee{
			ContractCategory: models.ContractCategoryPermanent,
			StartDate:        &start,
		}
		d := RequiredStatus(emp, permanent, date(2026, time.June, 1))
		require.Equal(t, models.EmployeeStatusActive, d.Status)
		require.Equal(t, "permanent contract, no probation", d.Reason)

		// once a status exists, the engine never moves a permanent contract
		emp.Status = models.EmployeeStatusInactive
		d = RequiredStatus(emp, permanent, date(2027, time.June, 1))
		require.False(t, d.Changed(emp.Status))
		require.Equal(t, models.EmployeeStatusInactive, d.Required(emp.Status))
	})

	t.Run("missing config falls back to the default policy", func(t *testing.T) {
		emp := dbmodels.Employee{
			Status:           models.EmployeeStatusProbation,
			ContractCategory: models.ContractCategory("9_MONTHS"),
			StartDate:        &start,
		}
		d := RequiredStatus(emp, nil, start.AddDate(0, 0, 45))
		require.True(t, d.MissingConfig)
		require.False(t, d.Changed(emp.Status))

		d = RequiredStatus(emp, nil, start.AddDate(0, 0, 91))
		require.True(t, d.MissingConfig)
		require.Equal(t, models.EmployeeStatusActive, d.Status)
		require.Equal(t, "probation period completed (default policy)", d.Reason)
	})

	t.Run("disabled auto transitions leave the status alone", func(t *testing.T) {
		frozen := cfg(models.ContractCategoryThreeMonths, 90)
		frozen.EnableAutoTransitions = false
		emp := dbmodels.Employee{
			Status:           models.EmployeeStatusProbation,
			ContractCategory: models.ContractCategoryThreeMonths,
			StartDate:        &start,
		}
		d := RequiredStatus(emp, frozen, start.AddDate(0, 0, 200))
		require.False(t, d.Changed(emp.Status))
	})

	t.Run("no start date means no decision", func(t *testing.T) {
		emp := dbmodels.Employee{ContractCategory: models.ContractCategoryThreeMonths}
		d := RequiredStatus(emp, threeMonths, date(2026, time.June, 1))
		require.False(t, d.Changed(emp.Status))
		require.Equal(t, "no start date", d.Reason)
	})

	t.Run("future start date means not yet started", func(t *testing.T) {
		future := date(2027, time.January, 1)
		emp := dbmodels.Employee{
			ContractCategory: models.ContractCategoryThreeMonths,
			StartDate:        &future,
		}
		d := RequiredStatus(emp, threeMonths, date(2026, time.June, 1))
		require.False(t, d.Changed(emp.Status))
		require.Equal(t, "not yet started", d.Reason)
	})

	t.Run("recomputing an applied decision is a no-op", func(t *testing.T) {
		emp := dbmodels.Employee{
			Status:           models.EmployeeStatusProbation,
			ContractCategory: models.ContractCategoryThreeMonths,
			StartDate:        &start,
		}
		today := start.AddDate(0, 0, 120)
		d := RequiredStatus(emp, threeMonths, today)
		require.True(t, d.Changed(emp.Status))

		emp.Status = d.Required(emp.Status)
		again := RequiredStatus(emp, threeMonths, today)
		require.False(t, again.Changed(emp.Status))
		require.Equal(t, emp.Status, again.Required(emp.Status))
	})
}
