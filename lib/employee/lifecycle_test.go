package employeehandler

import (
	"context"
	"fmt"
	orgunitprovider "hr-personnel-backend/lib/dicts/orgunit"
	archivestore "hr-personnel-backend/lib/employee-archive/store"
	employeehistorystore "hr-personnel-backend/lib/employee-history/store"
	employeestatus "hr-personnel-backend/lib/employee-status"
	employeestore "hr-personnel-backend/lib/employee/store"
	"hr-personnel-backend/lib/identifier"
	positionstore "hr-personnel-backend/lib/vacant-position/store"
	"hr-personnel-backend/models"
	employeeapimodels "hr-personnel-backend/models/api/employee"
	dbmodels "hr-personnel-backend/models/db"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memStore is the shared in-memory backing for all fake stores. Tests run the
// full lifecycle against it with txRunner collapsed to a direct call.
type memStore struct {
	employees    map[string]*dbmodels.Employee
	positions    map[string]*dbmodels.VacantPosition
	archives     []dbmodels.EmployeeArchive
	history      []dbmodels.EmployeeHistory
	seq          int
	deletedFiles []string
}

func newMemStore() *memStore {
	return &memStore{
		employees: map[string]*dbmodels.Employee{},
		positions: map[string]*dbmodels.VacantPosition{},
	}
}

func (m *memStore) nextID(kind string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", kind, m.seq)
}

type fakeEmpStore struct {
	employeestore.Provider
	m *memStore
}

func (f fakeEmpStore) WithTx(tx *gorm.DB) employeestore.Provider { return f }

func (f fakeEmpStore) Create(rec dbmodels.Employee) (string, error) {
	rec.ID = f.m.nextID("emp")
	f.m.employees[rec.ID] = &rec
	return rec.ID, nil
}

func (f fakeEmpStore) GetByID(id string) (*dbmodels.Employee, error) {
	rec, ok := f.m.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f fakeEmpStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.m.employees[id]
	if !ok {
		return fmt.Errorf("record not found for update")
	}
	for key, value := range updMap {
		switch key {
		case "display_name":
			rec.DisplayName = value.(string)
		case "notes":
			rec.Notes = value.(string)
		case "deleted_by":
			rec.DeletedBy = value.(string)
		case "is_deleted":
			rec.IsDeleted = value.(bool)
		case "show_in_org_chart":
			rec.ShowInOrgChart = value.(bool)
		case "status":
			rec.Status = value.(models.EmployeeStatus)
		case "hired_from_position_id":
			v := value.(string)
			rec.HiredFromPositionID = &v
		case "manager_id":
			if value == nil {
				rec.ManagerID = nil
			} else {
				v := value.(string)
				rec.ManagerID = &v
			}
		case "deleted_on":
			if value == nil {
				rec.DeletedOn = nil
			} else {
				v := value.(time.Time)
				rec.DeletedOn = &v
			}
		case "contract_end_date":
			if value == nil {
				rec.ContractEndDate = nil
			} else {
				rec.ContractEndDate = value.(*time.Time)
			}
		}
	}
	return nil
}

func (f fakeEmpStore) Delete(id string) error {
	delete(f.m.employees, id)
	return nil
}

func (f fakeEmpStore) ListDirectReports(managerRef string) ([]dbmodels.Employee, error) {
	list := []dbmodels.Employee{}
	for _, rec := range f.m.employees {
		if rec.ManagerID != nil && *rec.ManagerID == managerRef && !rec.IsDeleted {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f fakeEmpStore) ListActiveHeadcount() ([]dbmodels.Employee, error) {
	list := []dbmodels.Employee{}
	for _, rec := range f.m.employees {
		if !rec.IsDeleted {
			list = append(list, *rec)
		}
	}
	return list, nil
}

type fakePosStore struct {
	positionstore.Provider
	m *memStore
}

func (f fakePosStore) WithTx(tx *gorm.DB) positionstore.Provider { return f }

func (f fakePosStore) Create(rec dbmodels.VacantPosition) (string, error) {
	rec.ID = f.m.nextID("pos")
	f.m.positions[rec.ID] = &rec
	return rec.ID, nil
}

func (f fakePosStore) GetByID(id string) (*dbmodels.VacantPosition, error) {
	rec, ok := f.m.positions[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f fakePosStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.m.positions[id]
	if !ok {
		return fmt.Errorf("record not found for update")
	}
	for key, value := range updMap {
		switch key {
		case "is_filled":
			rec.IsFilled = value.(bool)
		case "filled_by_id":
			v := value.(string)
			rec.FilledByID = &v
		case "vacated_by_employee_id":
			v := value.(string)
			rec.VacatedByEmployeeID = &v
		}
	}
	return nil
}

func (f fakePosStore) Delete(id string) error {
	delete(f.m.positions, id)
	return nil
}

func (f fakePosStore) ListByVacatedBy(employeeRef string) ([]dbmodels.VacantPosition, error) {
	list := []dbmodels.VacantPosition{}
	for _, rec := range f.m.positions {
		if rec.IsFilled {
			continue
		}
		if rec.VacatedByEmployeeID != nil && *rec.VacatedByEmployeeID == employeeRef {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f fakePosStore) ListUnfilledReferencing(fragments []string) ([]dbmodels.VacantPosition, error) {
	list := []dbmodels.VacantPosition{}
	for _, rec := range f.m.positions {
		if rec.IsFilled {
			continue
		}
		for _, fragment := range fragments {
			if fragment != "" && strings.Contains(rec.Notes, fragment) {
				list = append(list, *rec)
				break
			}
		}
	}
	return list, nil
}

func (f fakePosStore) CountReferencing(employeeRef string, fragments []string) (int64, error) {
	var count int64
	for _, rec := range f.m.positions {
		if rec.IsFilled {
			continue
		}
		if rec.VacatedByEmployeeID != nil && *rec.VacatedByEmployeeID == employeeRef {
			count++
			continue
		}
		for _, fragment := range fragments {
			if fragment != "" && strings.Contains(rec.Notes, fragment) {
				count++
				break
			}
		}
	}
	return count, nil
}

func (f fakePosStore) ListOpenHeadcount() ([]dbmodels.VacantPosition, error) {
	list := []dbmodels.VacantPosition{}
	for _, rec := range f.m.positions {
		if !rec.IsFilled {
			list = append(list, *rec)
		}
	}
	return list, nil
}

type fakeArchStore struct {
	archivestore.Provider
	m *memStore
}

func (f fakeArchStore) WithTx(tx *gorm.DB) archivestore.Provider { return f }

func (f fakeArchStore) Create(rec dbmodels.EmployeeArchive) (string, error) {
	rec.ID = f.m.nextID("arch")
	f.m.archives = append(f.m.archives, rec)
	return rec.ID, nil
}

func (f fakeArchStore) ListByEmployeeID(employeeID string) ([]dbmodels.EmployeeArchive, error) {
	list := []dbmodels.EmployeeArchive{}
	for _, rec := range f.m.archives {
		if rec.EmployeeID == employeeID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f fakeArchStore) DeleteSoftByEmployeeID(employeeID string) (int64, error) {
	kept := f.m.archives[:0]
	var removed int64
	for _, rec := range f.m.archives {
		if rec.EmployeeID == employeeID && rec.StillExists {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	f.m.archives = kept
	return removed, nil
}

type fakeHistStore struct {
	employeehistorystore.Provider
	m *memStore
}

func (f fakeHistStore) WithTx(tx *gorm.DB) employeehistorystore.Provider { return f }

func (f fakeHistStore) Create(rec dbmodels.EmployeeHistory) (string, error) {
	rec.ID = f.m.nextID("hist")
	f.m.history = append(f.m.history, rec)
	return rec.ID, nil
}

func (f fakeHistStore) ListAllByEmployeeRef(employeeRef string) ([]dbmodels.EmployeeHistory, error) {
	list := []dbmodels.EmployeeHistory{}
	for _, rec := range f.m.history {
		if rec.EmployeeRef == employeeRef {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f fakeHistStore) DeleteByEmployeeRef(employeeRef string) (int64, error) {
	kept := f.m.history[:0]
	var removed int64
	for _, rec := range f.m.history {
		if rec.EmployeeRef == employeeRef {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	f.m.history = kept
	return removed, nil
}

type fakeOrgUnits struct {
	orgunitprovider.Provider
}

func (f fakeOrgUnits) GetShortCode(id string) (string, error) {
	if id == "unit-eng" {
		return "ENG", nil
	}
	return "", fmt.Errorf("org unit not found")
}

type fakeAllocator struct {
	next int
}

func (f *fakeAllocator) Locked(ctx context.Context, orgCode string, fn func() error) error {
	if orgCode == "" {
		return fmt.Errorf("org code is not set, identifier allocation refused")
	}
	return fn()
}

func (f *fakeAllocator) Allocate(tx *gorm.DB, orgCode string) (string, error) {
	if orgCode == "" {
		return "", fmt.Errorf("org code is not set, identifier allocation refused")
	}
	f.next++
	return identifier.Format(orgCode, f.next), nil
}

type fakeStatus struct {
	employeestatus.Provider
}

func (f fakeStatus) InitialStatus(emp dbmodels.Employee) (models.EmployeeStatus, string) {
	return models.EmployeeStatusProbation, "initial assignment: on probation"
}

func (f fakeStatus) ReconcileTx(tx *gorm.DB, emp dbmodels.Employee, actorName string) (bool, error) {
	return false, nil
}

type fakeNotifier struct{}

func (fakeNotifier) StatusChanged(emp dbmodels.Employee, from, to models.EmployeeStatus, reason string) {
}
func (fakeNotifier) ContractExpiring(emp dbmodels.Employee, daysLeft int)                {}
func (fakeNotifier) EmployeeRemoved(emp dbmodels.Employee, deletion models.DeletionType) {}
func (fakeNotifier) EmployeeRestored(emp dbmodels.Employee)                              {}

type fakeFiles struct {
	m *memStore
}

func (f fakeFiles) UploadDocument(ctx context.Context, employeeRef string, file []byte, fileName, contentType string) (string, error) {
	return "", nil
}
func (f fakeFiles) GetDocument(ctx context.Context, fileID string) ([]byte, string, error) {
	return nil, "", nil
}
func (f fakeFiles) ListDocuments(employeeRef string) ([]dbmodels.EmployeeFile, error) {
	return nil, nil
}
func (f fakeFiles) DeleteEmployeeFiles(ctx context.Context, employeeRef string) error {
	f.m.deletedFiles = append(f.m.deletedFiles, employeeRef)
	return nil
}

func newTestHandler() (impl, *memStore) {
	m := newMemStore()
	handler := impl{
		txRunner:      func(fn func(tx *gorm.DB) error) error { return fn(nil) },
		store:         fakeEmpStore{m: m},
		positionStore: fakePosStore{m: m},
		archiveStore:  fakeArchStore{m: m},
		historyStore:  fakeHistStore{m: m},
		orgUnits:      fakeOrgUnits{},
		allocator:     &fakeAllocator{},
		status:        fakeStatus{},
		notifier:      fakeNotifier{},
		fileStorage:   fakeFiles{m: m},
	}
	return handler, m
}

func seedEmployee(m *memStore, employeeID, firstName, lastName string, managerRef *string) *dbmodels.Employee {
	unit := "unit-eng"
	rec := &dbmodels.Employee{
		BaseModel:        dbmodels.BaseModel{ID: m.nextID("emp")},
		EmployeeID:       employeeID,
		FirstName:        firstName,
		LastName:         lastName,
		DisplayName:      strings.TrimSpace(firstName + " " + lastName),
		JobTitle:         "Engineer",
		OrgUnitID:        &unit,
		ManagerID:        managerRef,
		Status:           models.EmployeeStatusActive,
		ContractCategory: models.ContractCategoryPermanent,
		ShowInOrgChart:   true,
	}
	m.employees[rec.ID] = rec
	return rec
}

func historyActions(m *memStore, employeeRef string) []dbmodels.ActionType {
	actions := []dbmodels.ActionType{}
	for _, rec := range m.history {
		if rec.EmployeeRef == employeeRef {
			actions = append(actions, rec.ActionType)
		}
	}
	return actions
}

func TestSoftDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("full soft delete pass", func(t *testing.T) {
		handler, m := newTestHandler()
		manager := seedEmployee(m, "ENG1", "Maria", "Garcia", nil)
		subject := seedEmployee(m, "ENG2", "John", "Smith", &manager.ID)
		subject.Notes = "mentored by John Smith's manager"
		report := seedEmployee(m, "ENG3", "Wei", "Chen", &subject.ID)

		require.NoError(t, handler.SoftDelete(ctx, subject.ID, "hr-admin"))

		// the record stays, scrubbed and flagged
		got := m.employees[subject.ID]
		require.True(t, got.IsDeleted)
		require.Equal(t, "[ENG2]", got.DisplayName)
		require.Equal(t, "John", got.FirstName) // first/last survive for restore
		require.NotContains(t, got.Notes, "John Smith")
		require.Contains(t, got.Notes, "[ENG2]")
		require.NotNil(t, got.DeletedOn)
		require.Equal(t, "hr-admin", got.DeletedBy)
		require.NotNil(t, got.ContractEndDate)

		// one vacancy carrying the freed position, back-referenced
		require.Len(t, m.positions, 1)
		for _, pos := range m.positions {
			require.Equal(t, "Engineer", pos.JobTitle)
			require.NotNil(t, pos.VacatedByEmployeeID)
			require.Equal(t, subject.ID, *pos.VacatedByEmployeeID)
			require.Equal(t, manager.ID, *pos.ReportsToID)
			require.Contains(t, pos.Notes, "[ENG2]")
			require.NotContains(t, pos.Notes, "John Smith")
			// vacancy identifier is newly allocated, never the employee's
			require.NotEqual(t, "ENG2", pos.PositionID)
		}

		// the report moved up to the removed employee's manager
		require.Equal(t, manager.ID, *m.employees[report.ID].ManagerID)
		require.Contains(t, historyActions(m, report.ID), dbmodels.HistoryTypeReassign)

		// restorable archive
		require.Len(t, m.archives, 1)
		require.True(t, m.archives[0].StillExists)
		require.Equal(t, models.DeletionTypeSoft, m.archives[0].DeletionType)
		require.Equal(t, "ENG2", m.archives[0].EmployeeID)

		actions := historyActions(m, subject.ID)
		require.Contains(t, actions, dbmodels.HistoryTypeProvenance)
		require.Contains(t, actions, dbmodels.HistoryTypeSoftDelete)
	})

	t.Run("double delete is rejected", func(t *testing.T) {
		handler, m := newTestHandler()
		subject := seedEmployee(m, "ENG1", "John", "Smith", nil)
		require.NoError(t, handler.SoftDelete(ctx, subject.ID, ""))
		err := handler.SoftDelete(ctx, subject.ID, "")
		require.ErrorContains(t, err, "already deleted")
	})

	t.Run("existing future end date is kept", func(t *testing.T) {
		handler, m := newTestHandler()
		subject := seedEmployee(m, "ENG1", "John", "Smith", nil)
		future := time.Now().AddDate(0, 2, 0)
		subject.ContractEndDate = &future

		require.NoError(t, handler.SoftDelete(ctx, subject.ID, ""))
		require.True(t, m.employees[subject.ID].ContractEndDate.Equal(future))
	})
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip restores name and clears artifacts", func(t *testing.T) {
		handler, m := newTestHandler()
		subject := seedEmployee(m, "ENG2", "John", "Smith", nil)

		require.NoError(t, handler.SoftDelete(ctx, subject.ID, "hr-admin"))
		require.NoError(t, handler.Restore(ctx, subject.ID, "hr-admin"))

		got := m.employees[subject.ID]
		require.False(t, got.IsDeleted)
		require.Equal(t, "John Smith", got.DisplayName)
		require.Equal(t, "ENG2", got.EmployeeID) // identifier survives the cycle
		require.Nil(t, got.DeletedOn)
		require.Empty(t, got.DeletedBy)

		require.Empty(t, m.positions, "vacancy must be taken down")
		require.Empty(t, m.archives, "soft archive must be dropped")
		require.Contains(t, historyActions(m, subject.ID), dbmodels.HistoryTypeRestore)

		// the audit entry records that no vacancy reference survived
		var restoreEntry dbmodels.EmployeeHistory
		for _, entry := range m.history {
			if entry.ActionType == dbmodels.HistoryTypeRestore {
				restoreEntry = entry
			}
		}
		require.Contains(t, restoreEntry.Changes.Data, dbmodels.FieldChanges{
			Field: "vacancy_references_remaining", NewValue: int64(0),
		})
	})

	t.Run("restore succeeds with zero matching vacancies", func(t *testing.T) {
		handler, m := newTestHandler()
		subject := seedEmployee(m, "ENG2", "John", "Smith", nil)
		require.NoError(t, handler.SoftDelete(ctx, subject.ID, ""))

		// someone already deleted the vacancy by hand
		for id := range m.positions {
			delete(m.positions, id)
		}
		require.NoError(t, handler.Restore(ctx, subject.ID, ""))
		require.False(t, m.employees[subject.ID].IsDeleted)
	})

	t.Run("legacy free-text vacancy is found and removed", func(t *testing.T) {
		handler, m := newTestHandler()
		subject := seedEmployee(m, "ENG2", "John", "Smith", nil)
		require.NoError(t, handler.SoftDelete(ctx, subject.ID, ""))

		// a vacancy without the stamped back-reference, referencing by name
		legacy := &dbmodels.VacantPosition{
			BaseModel:  dbmodels.BaseModel{ID: m.nextID("pos")},
			PositionID: "ENG90",
			Notes:      "opened after John Smith left",
		}
		m.positions[legacy.ID] = legacy

		require.NoError(t, handler.Restore(ctx, subject.ID, ""))
		require.Empty(t, m.positions)
	})

	t.Run("restoring a live record is rejected", func(t *testing.T) {
		handler, m := newTestHandler()
		subject := seedEmployee(m, "ENG2", "John", "Smith", nil)
		err := handler.Restore(ctx, subject.ID, "")
		require.ErrorContains(t, err, "not deleted")
	})

	t.Run("filled vacancies are never taken down", func(t *testing.T) {
		handler, m := newTestHandler()
		subject := seedEmployee(m, "ENG2", "John", "Smith", nil)
		require.NoError(t, handler.SoftDelete(ctx, subject.ID, ""))

		// the vacancy was filled while the employee was deleted; a filled
		// position holds a hire and must survive the restore untouched
		for _, pos := range m.positions {
			pos.IsFilled = true
		}
		require.NoError(t, handler.Restore(ctx, subject.ID, ""))
		require.Len(t, m.positions, 1, "filled position survives the restore")
		require.False(t, m.employees[subject.ID].IsDeleted)
	})
}

func TestHardDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("purges the row but archives first", func(t *testing.T) {
		handler, m := newTestHandler()
		manager := seedEmployee(m, "ENG1", "Maria", "Garcia", nil)
		subject := seedEmployee(m, "ENG2", "John", "Smith", &manager.ID)
		report := seedEmployee(m, "ENG3", "Wei", "Chen", &subject.ID)

		require.NoError(t, handler.HardDelete(ctx, subject.ID, "hr-admin"))

		_, exists := m.employees[subject.ID]
		require.False(t, exists, "employee row must be gone")

		require.Len(t, m.archives, 1)
		require.False(t, m.archives[0].StillExists)
		require.Equal(t, models.DeletionTypeHard, m.archives[0].DeletionType)
		require.Equal(t, "ENG2", m.archives[0].EmployeeID)

		require.Equal(t, manager.ID, *m.employees[report.ID].ManagerID)
		require.Contains(t, m.deletedFiles, subject.ID)

		// the audit trail keeps only the final entry, keyed by the public id
		actions := historyActions(m, subject.ID)
		require.Equal(t, []dbmodels.ActionType{dbmodels.HistoryTypeHardDelete}, actions)

		// the snapshot stays reachable through the identifier
		archList, err := handler.Archives("ENG2")
		require.NoError(t, err)
		require.Len(t, archList, 1)
		require.False(t, archList[0].StillExists)
	})

	t.Run("identifier of a purged employee is never reallocated", func(t *testing.T) {
		handler, m := newTestHandler()
		subject := seedEmployee(m, "ENG1", "John", "Smith", nil)
		require.NoError(t, handler.HardDelete(ctx, subject.ID, ""))

		// the archive row retains the identifier, which is what the allocator
		// scans; ListIdentifiersByPrefix on the archive store must expose it
		require.Len(t, m.archives, 1)
		require.Equal(t, "ENG1", m.archives[0].EmployeeID)
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("allocates an identifier and assigns the initial status", func(t *testing.T) {
		handler, m := newTestHandler()
		id, err := handler.Create(ctx, employeeapimodels.EmployeeData{
			FirstName:        "John",
			LastName:         "Smith",
			OrgUnitID:        "unit-eng",
			ContractCategory: models.ContractCategoryThreeMonths,
		}, "hr-admin")
		require.NoError(t, err)

		rec := m.employees[id]
		require.Equal(t, "ENG1", rec.EmployeeID)
		require.Equal(t, "John Smith", rec.DisplayName)
		require.Equal(t, models.EmployeeStatusProbation, rec.Status)
		require.Contains(t, historyActions(m, id), dbmodels.HistoryTypeCreate)
	})

	t.Run("unknown manager is rejected", func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.Create(ctx, employeeapimodels.EmployeeData{
			FirstName:        "John",
			LastName:         "Smith",
			OrgUnitID:        "unit-eng",
			ManagerID:        "missing",
			ContractCategory: models.ContractCategoryPermanent,
		}, "")
		require.ErrorContains(t, err, "manager not found")
	})

	t.Run("unknown org unit fails before allocation", func(t *testing.T) {
		handler, m := newTestHandler()
		_, err := handler.Create(ctx, employeeapimodels.EmployeeData{
			FirstName:        "John",
			LastName:         "Smith",
			OrgUnitID:        "unit-ghost",
			ContractCategory: models.ContractCategoryPermanent,
		}, "")
		require.Error(t, err)
		require.Empty(t, m.employees)
	})

	t.Run("hiring into a vacancy marks it filled", func(t *testing.T) {
		handler, m := newTestHandler()
		unit := "unit-eng"
		vacancy := &dbmodels.VacantPosition{
			BaseModel:  dbmodels.BaseModel{ID: m.nextID("pos")},
			PositionID: "ENG7",
			OrgUnitID:  &unit,
		}
		m.positions[vacancy.ID] = vacancy

		id, err := handler.Create(ctx, employeeapimodels.EmployeeData{
			FirstName:        "John",
			LastName:         "Smith",
			OrgUnitID:        "unit-eng",
			ContractCategory: models.ContractCategoryPermanent,
			HiredFromID:      vacancy.ID,
		}, "")
		require.NoError(t, err)
		require.True(t, m.positions[vacancy.ID].IsFilled)
		require.Equal(t, id, *m.positions[vacancy.ID].FilledByID)
		require.Equal(t, vacancy.ID, *m.employees[id].HiredFromPositionID)
	})
}

func TestHeadcount(t *testing.T) {
	handler, m := newTestHandler()
	seedEmployee(m, "ENG2", "John", "Smith", nil)
	inactive := seedEmployee(m, "ENG3", "Ana", "Silva", nil)
	inactive.Status = models.EmployeeStatusInactive
	deleted := seedEmployee(m, "ENG4", "Omar", "Hassan", nil)
	deleted.IsDeleted = true

	unit := "unit-eng"
	m.positions["pos-open"] = &dbmodels.VacantPosition{
		BaseModel:  dbmodels.BaseModel{ID: "pos-open"},
		PositionID: "ENG1",
		JobTitle:   "Engineer",
		OrgUnitID:  &unit,
	}
	m.positions["pos-filled"] = &dbmodels.VacantPosition{
		BaseModel:  dbmodels.BaseModel{ID: "pos-filled"},
		PositionID: "ENG5",
		IsFilled:   true,
	}

	rows, err := handler.Headcount()
	require.NoError(t, err)

	// inactive and deleted employees drop out, filled positions drop out
	require.Len(t, rows, 2)
	require.Equal(t, "ENG1", rows[0].Identifier)
	require.True(t, rows[0].IsVacancy)
	require.Equal(t, "ENG2", rows[1].Identifier)
	require.Equal(t, "John Smith", rows[1].Name)
}

func TestScrubName(t *testing.T) {
	require.Equal(t, "works with [ENG2] daily",
		scrubName("works with John Smith daily", "John Smith", "[ENG2]"))
	require.Equal(t, "unrelated", scrubName("unrelated", "John Smith", "[ENG2]"))
	require.Equal(t, "", scrubName("", "John Smith", "[ENG2]"))
	require.Equal(t, "text", scrubName("text", "", "[ENG2]"))
}
