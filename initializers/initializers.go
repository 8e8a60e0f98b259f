package initializers

import (
	"context"
	"hr-personnel-backend/config"
	"hr-personnel-backend/fiberlog"
	contractprovider "hr-personnel-backend/lib/contract"
	orgunitprovider "hr-personnel-backend/lib/dicts/orgunit"
	employeehandler "hr-personnel-backend/lib/employee"
	employeehistoryhandler "hr-personnel-backend/lib/employee-history"
	employeestatus "hr-personnel-backend/lib/employee-status"
	statusworker "hr-personnel-backend/lib/employee-status/worker"
	expiryworker "hr-personnel-backend/lib/employee/expiry-worker"
	"hr-personnel-backend/lib/identifier"
	"hr-personnel-backend/lib/notification"
	positionhandler "hr-personnel-backend/lib/vacant-position"
	"time"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	InitFileStorage()
	orgunitprovider.NewHandler()
	contractprovider.NewHandler()
	employeehistoryhandler.NewHandler()
	notification.NewHandler(config.Conf.Personnel.HREmail)
	identifier.NewHandler()
	employeestatus.NewHandler()
	employeehandler.NewHandler()
	positionhandler.NewHandler()
	go initWorkers(ctx)
}

// workers start with a gap between them to spread the load
func initWorkers(ctx context.Context) {
	// periodic reconciliation of contract-driven statuses
	statusworker.StartWorker(ctx)

	// daily contract expiry notifications
	expiryworker.StartWorker(ctx, makeTimeGap(1))
}

func makeTimeGap(n int) time.Duration {
	return time.Duration(n) * 10 * time.Second
}
