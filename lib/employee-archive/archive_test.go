package employeearchive

import (
	"encoding/json"
	"hr-personnel-backend/models"
	dbmodels "hr-personnel-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSnapshot(t *testing.T) {
	emp := dbmodels.Employee{
		BaseModel:   dbmodels.BaseModel{ID: "emp-1"},
		EmployeeID:  "ENG2",
		FirstName:   "John",
		LastName:    "Smith",
		DisplayName: "John Smith",
		JobTitle:    "Engineer",
	}
	history := []dbmodels.EmployeeHistory{
		{EmployeeRef: "emp-1", EmployeeID: "ENG2", ActionType: dbmodels.HistoryTypeCreate},
	}

	t.Run("complete snapshot for serializable data", func(t *testing.T) {
		snap := BuildSnapshot(emp, history)
		require.Equal(t, models.ArchiveQualityComplete, snap.Quality)
		require.NotNil(t, snap.Employee)
		require.Equal(t, "ENG2", snap.Employee.EmployeeID)
		require.Len(t, snap.History, 1)
	})

	t.Run("snapshot round-trips through jsonb", func(t *testing.T) {
		snap := BuildSnapshot(emp, history)
		value, err := snap.Value()
		require.NoError(t, err)

		restored := dbmodels.ArchiveSnapshot{}
		require.NoError(t, json.Unmarshal([]byte(value.(string)), &restored))
		require.Equal(t, models.ArchiveQualityComplete, restored.Quality)
		require.Equal(t, "John Smith", restored.Employee.DisplayName)
	})

	t.Run("empty history still yields a complete snapshot", func(t *testing.T) {
		snap := BuildSnapshot(emp, nil)
		require.Equal(t, models.ArchiveQualityComplete, snap.Quality)
		require.Empty(t, snap.History)
	})
}
