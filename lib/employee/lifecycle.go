package employeehandler

import (
	"context"
	"fmt"
	employeearchive "hr-personnel-backend/lib/employee-archive"
	"hr-personnel-backend/lib/events"
	"hr-personnel-backend/lib/identifier"
	"hr-personnel-backend/models"
	dbmodels "hr-personnel-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// scrubName replaces literal occurrences of a removed employee's name in free
// text. Plain substring replacement: the name was written by the same system,
// so the literal form is the one that occurs.
func scrubName(text, name, replacement string) string {
	if name == "" || text == "" {
		return text
	}
	return strings.ReplaceAll(text, name, replacement)
}

// SoftDelete removes the employee from active rosters, converts the freed
// position into a vacancy, archives a restorable snapshot and scrubs the
// display name out of its own record, all in one transaction. Dependent
// free-text references are scrubbed after commit via the removal event.
func (i impl) SoftDelete(ctx context.Context, id string, actorName string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("employee not found")
	}
	if rec.IsDeleted {
		return errors.New("employee is already deleted")
	}
	logger := log.WithField("rec_id", rec.ID).WithField("employee_id", rec.EmployeeID)

	originalName := rec.GetFullName()
	ref := rec.IdentifierRef()
	shortCode := i.resolveShortCode(*rec)
	now := time.Now()
	actor := actorOrSystem(actorName)

	var vacancyRef, vacancyID, archiveRef string
	reassigned := 0
	// the namespace lock spans the whole transaction, matching Create:
	// the vacancy identifier must be committed before the lock frees
	err = i.allocator.Locked(ctx, shortCode, func() error {
		return i.txRunner(func(tx *gorm.DB) error {
			es := i.store.WithTx(tx)
			ps := i.positionStore.WithTx(tx)
			as := i.archiveStore.WithTx(tx)
			hs := i.historyStore.WithTx(tx)

			// contract end date: an already set future date stays, otherwise the
			// removal moment becomes the end date
			endDate := rec.ContractEndDate
			if endDate == nil {
				endDate = &now
			}

			// snapshot taken before any scrubbing so the archive keeps the name
			snapshot := *rec
			snapshot.ContractEndDate = endDate

			// provenance entry ties the bracketed reference back to the name
			_, err := hs.Create(dbmodels.EmployeeHistory{
				EmployeeRef: rec.ID,
				EmployeeID:  rec.EmployeeID,
				ActionType:  dbmodels.HistoryTypeProvenance,
				ActorName:   actor,
				Changes: dbmodels.EntityChanges{
					Description: fmt.Sprintf("display name replaced with reference %s", ref),
					Data: []dbmodels.FieldChanges{
						{Field: "display_name", OldValue: originalName, NewValue: ref},
					},
				},
			})
			if err != nil {
				return errors.Wrap(err, "provenance entry failed")
			}

			// the freed position becomes a vacancy with a new identifier
			positionID, err := i.allocator.Allocate(tx, shortCode)
			if err != nil {
				return err
			}
			vacancyID = positionID
			pos := dbmodels.VacantPosition{
				PositionID:          positionID,
				JobTitle:            snapshot.JobTitle,
				Grade:               snapshot.Grade,
				OrgUnitID:           snapshot.OrgUnitID,
				ReportsToID:         snapshot.ManagerID,
				ShowInOrgChart:      snapshot.ShowInOrgChart,
				VacatedByEmployeeID: &rec.ID,
				Notes:               fmt.Sprintf("vacated by %s", ref),
			}
			vacancyRef, err = ps.Create(pos)
			if err != nil {
				return errors.Wrap(err, "vacancy creation failed")
			}
			if err = i.verifyVacancyBackReference(ps, vacancyRef, rec.ID); err != nil {
				return err
			}

			// direct reports move to the removed employee's manager (or to none)
			reports, err := es.ListDirectReports(rec.ID)
			if err != nil {
				return err
			}
			for _, report := range reports {
				updMap := map[string]interface{}{"manager_id": nil}
				newManager := ""
				if snapshot.ManagerID != nil {
					updMap["manager_id"] = *snapshot.ManagerID
					newManager = *snapshot.ManagerID
				}
				if err = es.Update(report.ID, updMap); err != nil {
					return errors.Wrap(err, "report reassignment failed")
				}
				_, err = hs.Create(dbmodels.EmployeeHistory{
					EmployeeRef: report.ID,
					EmployeeID:  report.EmployeeID,
					ActionType:  dbmodels.HistoryTypeReassign,
					ActorName:   actor,
					Changes: dbmodels.EntityChanges{
						Description: fmt.Sprintf("manager %s removed, report reassigned", ref),
						Data: []dbmodels.FieldChanges{
							{Field: "manager_id", OldValue: rec.ID, NewValue: newManager},
						},
					},
				})
				if err != nil {
					return err
				}
				reassigned++
			}

			// restorable archive, marked as still existing
			histList, err := hs.ListAllByEmployeeRef(rec.ID)
			if err != nil {
				return err
			}
			archiveRef, err = as.Create(dbmodels.EmployeeArchive{
				EmployeeID:   rec.EmployeeID,
				EmployeeRef:  rec.ID,
				DeletionType: models.DeletionTypeSoft,
				StillExists:  true,
				Snapshot:     employeearchive.BuildSnapshot(snapshot, histList),
			})
			if err != nil {
				return errors.Wrap(err, "archive creation failed")
			}

			// own record: scrub the name, stamp the deletion markers
			err = es.Update(rec.ID, map[string]interface{}{
				"display_name":      ref,
				"notes":             scrubName(rec.Notes, originalName, ref),
				"contract_end_date": endDate,
				"is_deleted":        true,
				"deleted_on":        now,
				"deleted_by":        actor,
			})
			if err != nil {
				return err
			}

			_, err = hs.Create(dbmodels.EmployeeHistory{
				EmployeeRef: rec.ID,
				EmployeeID:  rec.EmployeeID,
				ActionType:  dbmodels.HistoryTypeSoftDelete,
				ActorName:   actor,
				Changes: dbmodels.EntityChanges{
					Description: "employee soft deleted",
					Data: []dbmodels.FieldChanges{
						{Field: "vacancy_id", NewValue: vacancyID},
						{Field: "archive_id", NewValue: archiveRef},
						{Field: "reassigned_reports", NewValue: reassigned},
					},
				},
			})
			return err
		})
	})
	if err != nil {
		return err
	}
	events.PublishEmployeeRemoved(events.EmployeeRemoved{
		EmployeeRef: rec.ID,
		Identifier:  rec.EmployeeID,
		DisplayName: originalName,
		Replacement: ref,
	})
	i.notifier.EmployeeRemoved(*rec, models.DeletionTypeSoft)
	logger.WithField("vacancy_id", vacancyID).
		WithField("reassigned_reports", reassigned).
		Info("employee soft deleted")
	return nil
}

// verifyVacancyBackReference reloads the created vacancy and checks the
// stamped back-reference, issuing one corrective write before giving up.
// Restore depends on this link, so a mismatch aborts the whole deletion.
func (i impl) verifyVacancyBackReference(ps positionStoreTx, vacancyRef, employeeRef string) error {
	saved, err := ps.GetByID(vacancyRef)
	if err != nil {
		return err
	}
	if saved != nil && saved.VacatedByEmployeeID != nil && *saved.VacatedByEmployeeID == employeeRef {
		return nil
	}
	if saved == nil {
		return errors.New("vacancy missing after creation")
	}
	log.WithField("rec_id", vacancyRef).Warn("vacancy back-reference missing after save, rewriting")
	err = ps.Update(vacancyRef, map[string]interface{}{
		"vacated_by_employee_id": employeeRef,
	})
	if err != nil {
		return errors.Wrap(err, "vacancy back-reference corrective write failed")
	}
	saved, err = ps.GetByID(vacancyRef)
	if err != nil {
		return err
	}
	if saved == nil || saved.VacatedByEmployeeID == nil || *saved.VacatedByEmployeeID != employeeRef {
		return errors.New("vacancy back-reference mismatch after corrective write")
	}
	return nil
}

// positionStoreTx is the slice of the position store the back-reference
// verification needs.
type positionStoreTx interface {
	GetByID(id string) (*dbmodels.VacantPosition, error)
	Update(id string, updMap map[string]interface{}) error
}

// HardDelete purges the employee row and its history. The archive snapshot is
// written first: if archiving fails nothing destructive has happened yet.
// Identifiers of purged employees stay reserved through the archive rows.
func (i impl) HardDelete(ctx context.Context, id string, actorName string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("employee not found")
	}
	logger := log.WithField("rec_id", rec.ID).WithField("employee_id", rec.EmployeeID)

	originalName := rec.GetFullName()
	ref := rec.IdentifierRef()
	now := time.Now()
	actor := actorOrSystem(actorName)

	err = i.txRunner(func(tx *gorm.DB) error {
		es := i.store.WithTx(tx)
		as := i.archiveStore.WithTx(tx)
		hs := i.historyStore.WithTx(tx)

		snapshot := *rec
		if snapshot.ContractEndDate == nil {
			snapshot.ContractEndDate = &now
		}
		histList, err := hs.ListAllByEmployeeRef(rec.ID)
		if err != nil {
			return err
		}
		_, err = as.Create(dbmodels.EmployeeArchive{
			EmployeeID:   rec.EmployeeID,
			EmployeeRef:  rec.ID,
			DeletionType: models.DeletionTypeHard,
			StillExists:  false,
			Snapshot:     employeearchive.BuildSnapshot(snapshot, histList),
		})
		if err != nil {
			return errors.Wrap(err, "archive creation failed, hard delete aborted")
		}

		reports, err := es.ListDirectReports(rec.ID)
		if err != nil {
			return err
		}
		for _, report := range reports {
			updMap := map[string]interface{}{"manager_id": nil}
			if rec.ManagerID != nil {
				updMap["manager_id"] = *rec.ManagerID
			}
			if err = es.Update(report.ID, updMap); err != nil {
				return errors.Wrap(err, "report reassignment failed")
			}
		}

		if _, err = hs.DeleteByEmployeeRef(rec.ID); err != nil {
			return err
		}
		if err = es.Delete(rec.ID); err != nil {
			return err
		}

		// final entry keyed by the public identifier; the subject row is gone
		_, err = hs.Create(dbmodels.EmployeeHistory{
			EmployeeRef: rec.ID,
			EmployeeID:  rec.EmployeeID,
			ActionType:  dbmodels.HistoryTypeHardDelete,
			ActorName:   actor,
			Changes: dbmodels.EntityChanges{
				Description: "employee hard deleted, archive retained",
			},
		})
		return err
	})
	if err != nil {
		return err
	}

	// stored documents are removed outside the transaction; a failure here
	// leaves orphaned objects but never undoes the committed deletion
	if err := i.fileStorage.DeleteEmployeeFiles(ctx, rec.ID); err != nil {
		logger.WithError(err).Error("stored document cleanup failed after hard delete")
	}

	events.PublishEmployeeRemoved(events.EmployeeRemoved{
		EmployeeRef: rec.ID,
		Identifier:  rec.EmployeeID,
		DisplayName: originalName,
		Replacement: ref,
	})
	i.notifier.EmployeeRemoved(*rec, models.DeletionTypeHard)
	logger.Info("employee hard deleted")
	return nil
}

// Restore reverses a soft delete: vacancies created by the removal are taken
// down, soft-delete archives are dropped and the record comes back under its
// original name and identifier. Restore refuses to finish while any vacancy
// still references the employee.
func (i impl) Restore(ctx context.Context, id string, actorName string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("employee not found")
	}
	if !rec.IsDeleted {
		return errors.New("employee is not deleted")
	}
	logger := log.WithField("rec_id", rec.ID).WithField("employee_id", rec.EmployeeID)

	// first and last name survive the scrubbing, the display name is rebuilt
	// from them
	originalName := displayName(rec.FirstName, rec.LastName)
	ref := rec.IdentifierRef()
	actor := actorOrSystem(actorName)

	removedVacancies := 0
	var removedArchives int64
	err = i.txRunner(func(tx *gorm.DB) error {
		es := i.store.WithTx(tx)
		ps := i.positionStore.WithTx(tx)
		as := i.archiveStore.WithTx(tx)
		hs := i.historyStore.WithTx(tx)

		// stamped back-references plus the free-text fallback for vacancy
		// rows created before back-references existed
		fragments := []string{originalName, ref}
		byRef, err := ps.ListByVacatedBy(rec.ID)
		if err != nil {
			return err
		}
		byText, err := ps.ListUnfilledReferencing(fragments)
		if err != nil {
			return err
		}
		seen := map[string]bool{}
		for _, pos := range append(byRef, byText...) {
			if seen[pos.ID] {
				continue
			}
			seen[pos.ID] = true
			if err = ps.Delete(pos.ID); err != nil {
				return errors.Wrap(err, "cannot restore: an active vacancy reference could not be removed")
			}
			removedVacancies++
		}
		remaining, err := ps.CountReferencing(rec.ID, fragments)
		if err != nil {
			return err
		}
		if remaining > 0 {
			return errors.New("cannot restore: an active vacancy reference could not be removed")
		}

		removedArchives, err = as.DeleteSoftByEmployeeID(rec.EmployeeID)
		if err != nil {
			return err
		}

		err = es.Update(rec.ID, map[string]interface{}{
			"is_deleted":   false,
			"deleted_on":   nil,
			"deleted_by":   "",
			"display_name": originalName,
		})
		if err != nil {
			return err
		}

		_, err = hs.Create(dbmodels.EmployeeHistory{
			EmployeeRef: rec.ID,
			EmployeeID:  rec.EmployeeID,
			ActionType:  dbmodels.HistoryTypeRestore,
			ActorName:   actor,
			Changes: dbmodels.EntityChanges{
				Description: "employee restored",
				Data: []dbmodels.FieldChanges{
					{Field: "vacancies_removed", NewValue: removedVacancies},
					// zero at this point: the pre-restore check refused to
					// proceed while any vacancy still referenced the employee
					{Field: "vacancy_references_remaining", NewValue: remaining},
					{Field: "archives_removed", NewValue: removedArchives},
					{Field: "display_name", OldValue: ref, NewValue: originalName},
				},
			},
		})
		return err
	})
	if err != nil {
		return err
	}
	restored := *rec
	restored.DisplayName = originalName
	restored.IsDeleted = false
	i.notifier.EmployeeRestored(restored)
	logger.WithField("vacancies_removed", removedVacancies).
		WithField("archives_removed", removedArchives).
		Info("employee restored")
	return nil
}

// resolveShortCode finds the identifier namespace for vacancy allocation. The
// employee's own identifier prefix is the fallback of record: it always
// matches the namespace the employee was allocated in.
func (i impl) resolveShortCode(rec dbmodels.Employee) string {
	if rec.OrgUnit != nil && rec.OrgUnit.ShortCode != "" {
		return rec.OrgUnit.ShortCode
	}
	if rec.OrgUnitID != nil {
		code, err := i.orgUnits.GetShortCode(*rec.OrgUnitID)
		if err == nil {
			return code
		}
		log.WithError(err).
			WithField("org_unit_id", *rec.OrgUnitID).
			Warn("org unit code lookup failed, falling back to identifier prefix")
	}
	prefix, _ := identifier.Split(rec.EmployeeID)
	return prefix
}
