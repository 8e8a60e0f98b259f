package statusworker

import (
	"context"
	"hr-personnel-backend/config"
	"hr-personnel-backend/db"
	employeestatus "hr-personnel-backend/lib/employee-status"
	employeestore "hr-personnel-backend/lib/employee/store"
	baseworker "hr-personnel-backend/lib/utils/base-worker"
	"hr-personnel-backend/lib/utils/helpers"
	"hr-personnel-backend/lib/utils/lock"
	"time"
)

const sweepLockKey = "employee-status-sweep"

func StartWorker(ctx context.Context) {
	interval := time.Duration(config.Conf.Personnel.StatusSweepMinutes) * time.Minute
	i := &impl{
		BaseImpl:       *baseworker.NewInstance("StatusReconcileWorker", 30*time.Second, interval),
		employeeStore:  employeestore.NewInstance(db.DB),
		statusProvider: employeestatus.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	employeeStore  employeestore.Provider
	statusProvider employeestatus.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	// The sweep is idempotent, but skipping an overlapping run keeps the load
	// predictable.
	success, _ := lock.WithDelay(ctx, sweepLockKey, time.Second, func() error {
		i.sweep(ctx)
		return nil
	})
	if !success {
		logger.Info("previous sweep still running, skipped")
	}
}

func (i impl) sweep(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.employeeStore.ListForStatusSweep()
	if err != nil {
		logger.WithError(err).Error("employee list for status sweep failed")
		return
	}
	updated := 0
	for _, emp := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		changed, err := i.statusProvider.ReconcileTx(nil, emp, "")
		if err != nil {
			logger.
				WithError(err).
				WithField("employee_id", emp.EmployeeID).
				Error("status reconciliation failed")
			continue
		}
		if changed {
			updated++
		}
	}
	if updated > 0 {
		logger.WithField("row_count", updated).Info("statuses reconciled")
	}
}
