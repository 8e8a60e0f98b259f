package expiryworker

import (
	"context"
	"hr-personnel-backend/db"
	contractprovider "hr-personnel-backend/lib/contract"
	employeestore "hr-personnel-backend/lib/employee/store"
	"hr-personnel-backend/lib/notification"
	baseworker "hr-personnel-backend/lib/utils/base-worker"
	"hr-personnel-backend/lib/utils/helpers"
	"time"
)

// maxNotifyWindowDays bounds the lookahead query; no contract category
// notifies earlier than this.
const maxNotifyWindowDays = 60

func StartWorker(ctx context.Context, firstRunDelay time.Duration) {
	i := &impl{
		BaseImpl:      *baseworker.NewInstance("ContractExpiryWorker", firstRunDelay, 24*time.Hour),
		employeeStore: employeestore.NewInstance(db.DB),
		contracts:     contractprovider.Instance,
		notifier:      notification.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	employeeStore employeestore.Provider
	contracts     contractprovider.Provider
	notifier      notification.Provider
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	horizon := time.Now().AddDate(0, 0, maxNotifyWindowDays)
	list, err := i.employeeStore.ListContractsEndingBy(horizon)
	if err != nil {
		logger.WithError(err).Error("expiring contract lookup failed")
		return
	}
	notified := 0
	for _, emp := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		if emp.ContractEndDate == nil {
			continue
		}
		cfg, err := i.contracts.Get(emp.ContractCategory)
		if err != nil {
			logger.WithError(err).
				WithField("contract_category", emp.ContractCategory).
				Error("contract config lookup failed")
			continue
		}
		if cfg == nil || cfg.NotifyDaysBeforeEnd <= 0 {
			continue
		}
		daysLeft := helpers.DaysBetween(time.Now(), *emp.ContractEndDate)
		if daysLeft < 0 || daysLeft > cfg.NotifyDaysBeforeEnd {
			continue
		}
		// daily run cadence keeps this to one notification per day inside the
		// notify window
		i.notifier.ContractExpiring(emp, daysLeft)
		notified++
	}
	if notified > 0 {
		logger.WithField("row_count", notified).Info("contract expiry notifications sent")
	}
}
