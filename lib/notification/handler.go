package notification

import (
	"fmt"
	"hr-personnel-backend/lib/smtp"
	"hr-personnel-backend/models"
	dbmodels "hr-personnel-backend/models/db"

	log "github.com/sirupsen/logrus"
)

// Provider dispatches fire-and-forget lifecycle notifications. Delivery
// failure is logged and never surfaces into the calling transaction.
type Provider interface {
	StatusChanged(emp dbmodels.Employee, from, to models.EmployeeStatus, reason string)
	ContractExpiring(emp dbmodels.Employee, daysLeft int)
	EmployeeRemoved(emp dbmodels.Employee, deletion models.DeletionType)
	EmployeeRestored(emp dbmodels.Employee)
}

var Instance Provider

func NewHandler(hrEmail string) {
	Instance = impl{
		hrEmail: hrEmail,
	}
}

type impl struct {
	hrEmail string
}

func (i impl) StatusChanged(emp dbmodels.Employee, from, to models.EmployeeStatus, reason string) {
	subject := "employee status changed"
	message := fmt.Sprintf("Employee %s (%s): status changed %s -> %s. %s",
		emp.GetFullName(), emp.EmployeeID, from, to, reason)
	i.send(emp.EmployeeID, subject, message)
}

func (i impl) ContractExpiring(emp dbmodels.Employee, daysLeft int) {
	subject := "contract expiry warning"
	message := fmt.Sprintf("Employee %s (%s): contract ends in %d day(s).",
		emp.GetFullName(), emp.EmployeeID, daysLeft)
	i.send(emp.EmployeeID, subject, message)
}

func (i impl) EmployeeRemoved(emp dbmodels.Employee, deletion models.DeletionType) {
	subject := "employee removed"
	message := fmt.Sprintf("Employee %s: %s delete completed.", emp.EmployeeID, deletion)
	i.send(emp.EmployeeID, subject, message)
}

func (i impl) EmployeeRestored(emp dbmodels.Employee) {
	subject := "employee restored"
	message := fmt.Sprintf("Employee %s (%s) has been restored.", emp.GetFullName(), emp.EmployeeID)
	i.send(emp.EmployeeID, subject, message)
}

func (i impl) send(employeeID, subject, message string) {
	logger := log.
		WithField("employee_id", employeeID).
		WithField("subject", subject)
	if i.hrEmail == "" {
		logger.Debug("notification skipped, HR email is not configured")
		return
	}
	if smtp.Instance == nil {
		logger.Debug("notification skipped, smtp is not connected")
		return
	}
	go func() {
		if err := smtp.Instance.SendEMail(i.hrEmail, i.hrEmail, message, subject); err != nil {
			logger.WithError(err).Error("notification dispatch failed")
		}
	}()
}
