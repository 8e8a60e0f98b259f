package employeestatus

import (
	"fmt"
	"hr-personnel-backend/lib/utils/helpers"
	"hr-personnel-backend/models"
	dbmodels "hr-personnel-backend/models/db"
	"time"
)

// Decision is the outcome of the required-status computation.
// An empty Status means "unchanged" relative to Employee.Status.
type Decision struct {
	Status models.EmployeeStatus
	Reason string
	// MissingConfig marks the contract-config fallback path; callers log a
	// flagged warning.
	MissingConfig bool
}

// Changed reports whether applying the decision would move the employee off
// its current status.
func (d Decision) Changed(current models.EmployeeStatus) bool {
	return d.Status != "" && d.Status != current
}

// Required resolves the decision to a concrete status.
func (d Decision) Required(current models.EmployeeStatus) models.EmployeeStatus {
	if d.Status == "" {
		return current
	}
	return d.Status
}

// RequiredStatus computes the status an employee must hold today. Pure:
// nothing is read or written, cfg may be nil for an unknown category.
//
// Day arithmetic is integer calendar days; probation lengths are day counts.
// The "permanent" category bypasses probation entirely: it is assigned ACTIVE
// once, then held manually.
func RequiredStatus(emp dbmodels.Employee, cfg *dbmodels.ContractTypeConfig, today time.Time) Decision {
	if emp.StartDate == nil {
		return Decision{Reason: "no start date"}
	}
	if helpers.DaysBetween(*emp.StartDate, today) < 0 {
		return Decision{Reason: "not yet started"}
	}
	if emp.ContractEndDate != nil && helpers.DaysBetween(*emp.ContractEndDate, today) >= 0 {
		// an unknown category still transitions: an expired contract left
		// ACTIVE is worse than a spurious deactivation
		if cfg != nil && !cfg.TransitionToInactiveOnEnd {
			return Decision{
				Reason: fmt.Sprintf("contract ended on %s, end transition disabled for category %s",
					emp.ContractEndDate.Format("2006-01-02"), cfg.Category),
			}
		}
		return Decision{
			Status: models.EmployeeStatusInactive,
			Reason: fmt.Sprintf("contract ended on %s", emp.ContractEndDate.Format("2006-01-02")),
		}
	}

	elapsed := helpers.DaysBetween(*emp.StartDate, today)

	if cfg == nil {
		// Conservative default policy for an unconfigured category.
		if elapsed > models.DefaultProbationDays {
			return Decision{
				Status:        models.EmployeeStatusActive,
				Reason:        "probation period completed (default policy)",
				MissingConfig: true,
			}
		}
		return Decision{
			Reason:        fmt.Sprintf("no contract config for category %s, status unchanged", emp.ContractCategory),
			MissingConfig: true,
		}
	}
	if !cfg.EnableAutoTransitions {
		return Decision{Reason: fmt.Sprintf("auto transitions disabled for category %s", cfg.Category)}
	}
	if cfg.Category == models.ContractCategoryPermanent {
		if emp.Status == "" {
			return Decision{
				Status: models.EmployeeStatusActive,
				Reason: "permanent contract, no probation",
			}
		}
		return Decision{Reason: "permanent contract, status held manually"}
	}

	if elapsed < cfg.ProbationDays {
		remaining := cfg.ProbationDays - elapsed
		return Decision{
			Status: models.EmployeeStatusProbation,
			Reason: fmt.Sprintf("on probation, %d day(s) remaining", remaining),
		}
	}
	return Decision{
		Status: models.EmployeeStatusActive,
		Reason: "probation period completed",
	}
}
