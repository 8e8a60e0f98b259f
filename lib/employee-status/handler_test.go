package employeestatus

import (
	contractprovider "hr-personnel-backend/lib/contract"
	employeehistoryhandler "hr-personnel-backend/lib/employee-history"
	employeestore "hr-personnel-backend/lib/employee/store"
	"hr-personnel-backend/lib/notification"
	"hr-personnel-backend/models"
	dbmodels "hr-personnel-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type reconcileStore struct {
	employeestore.Provider
	updMap map[string]interface{}
}

func (f *reconcileStore) WithTx(tx *gorm.DB) employeestore.Provider { return f }
func (f *reconcileStore) Update(id string, updMap map[string]interface{}) error {
	f.updMap = updMap
	return nil
}

type fixedContracts struct {
	contractprovider.Provider
	cfg *dbmodels.ContractTypeConfig
}

func (f fixedContracts) Get(category models.ContractCategory) (*dbmodels.ContractTypeConfig, error) {
	return f.cfg, nil
}

type nopHistory struct {
	employeehistoryhandler.Provider
}

func (nopHistory) Save(employeeRef, employeeID, actorName string, action dbmodels.ActionType, changes dbmodels.EntityChanges) {
}

type nopNotifier struct{ notification.Provider }

func (nopNotifier) StatusChanged(emp dbmodels.Employee, from, to models.EmployeeStatus, reason string) {
}

func TestReconcileTx(t *testing.T) {
	newHandler := func(store *reconcileStore) impl {
		return impl{
			store:     store,
			contracts: fixedContracts{cfg: cfg(models.ContractCategoryThreeMonths, 90)},
			history:   nopHistory{},
			notifier:  nopNotifier{},
		}
	}

	t.Run("deactivation also hides the employee from the org chart", func(t *testing.T) {
		store := &reconcileStore{}
		handler := newHandler(store)
		start := time.Now().AddDate(0, 0, -200)
		end := time.Now().AddDate(0, 0, -10)
		emp := dbmodels.Employee{
			BaseModel:        dbmodels.BaseModel{ID: "emp-1"},
			EmployeeID:       "ENG1",
			Status:           models.EmployeeStatusActive,
			ShowInOrgChart:   true,
			ContractCategory: models.ContractCategoryThreeMonths,
			StartDate:        &start,
			ContractEndDate:  &end,
		}
		changed, err := handler.ReconcileTx(nil, emp, "")
		require.NoError(t, err)
		require.True(t, changed)
		require.Equal(t, models.EmployeeStatusInactive, store.updMap["status"])
		require.Equal(t, false, store.updMap["show_in_org_chart"])
	})

	t.Run("activation keeps the employee visible", func(t *testing.T) {
		store := &reconcileStore{}
		handler := newHandler(store)
		start := time.Now().AddDate(0, 0, -120)
		emp := dbmodels.Employee{
			BaseModel:        dbmodels.BaseModel{ID: "emp-1"},
			EmployeeID:       "ENG1",
			Status:           models.EmployeeStatusProbation,
			ShowInOrgChart:   true,
			ContractCategory: models.ContractCategoryThreeMonths,
			StartDate:        &start,
		}
		changed, err := handler.ReconcileTx(nil, emp, "")
		require.NoError(t, err)
		require.True(t, changed)
		require.Equal(t, models.EmployeeStatusActive, store.updMap["status"])
		require.Equal(t, true, store.updMap["show_in_org_chart"])
	})

	t.Run("no change means no write", func(t *testing.T) {
		store := &reconcileStore{}
		handler := newHandler(store)
		start := time.Now().AddDate(0, 0, -10)
		emp := dbmodels.Employee{
			BaseModel:        dbmodels.BaseModel{ID: "emp-1"},
			EmployeeID:       "ENG1",
			Status:           models.EmployeeStatusProbation,
			ContractCategory: models.ContractCategoryThreeMonths,
			StartDate:        &start,
		}
		changed, err := handler.ReconcileTx(nil, emp, "")
		require.NoError(t, err)
		require.False(t, changed)
		require.Nil(t, store.updMap)
	})
}
