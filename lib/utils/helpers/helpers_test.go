package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	day := func(y int, m time.Month, d, hour int) time.Time {
		return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
	}

	// calendar days, time of day is irrelevant
	require.Equal(t, 1, DaysBetween(day(2026, time.March, 1, 23), day(2026, time.March, 2, 0)))
	require.Equal(t, 0, DaysBetween(day(2026, time.March, 1, 0), day(2026, time.March, 1, 23)))
	require.Equal(t, -1, DaysBetween(day(2026, time.March, 2, 0), day(2026, time.March, 1, 23)))
	require.Equal(t, 31, DaysBetween(day(2026, time.January, 1, 12), day(2026, time.February, 1, 1)))
}

func TestToSnakeCase(t *testing.T) {
	require.Equal(t, "display_name", ToSnakeCase("DisplayName"))
	require.Equal(t, "employee_id", ToSnakeCase("EmployeeID"))
}
