package initializers

import (
	"hr-personnel-backend/db"
	filestorage "hr-personnel-backend/lib/file-storage"
	s3client "hr-personnel-backend/s3"
)

func InitFileStorage() {
	filestorage.NewHandler(db.DB, s3client.Client)
}
