package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"hr-personnel-backend/config"
	filesdbstorage "hr-personnel-backend/lib/file-storage/storage"
	dbmodels "hr-personnel-backend/models/db"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	UploadDocument(ctx context.Context, employeeRef string, file []byte, fileName, contentType string) (id string, err error)
	GetDocument(ctx context.Context, fileID string) (data []byte, fileName string, err error)
	ListDocuments(employeeRef string) ([]dbmodels.EmployeeFile, error)
	// DeleteEmployeeFiles removes every stored document of the employee.
	// Object removal failures are reported but index rows for removed
	// objects are always cleaned up.
	DeleteEmployeeFiles(ctx context.Context, employeeRef string) error
}

var Instance Provider

func NewHandler(db *gorm.DB, s3client *minio.Client) {
	Instance = impl{
		store:    filesdbstorage.NewInstance(db),
		s3client: s3client,
	}
}

type impl struct {
	store    filesdbstorage.Provider
	s3client *minio.Client
}

var errStorageUnavailable = errors.New("object storage is not available")

func (i impl) UploadDocument(ctx context.Context, employeeRef string, file []byte, fileName, contentType string) (string, error) {
	if i.s3client == nil {
		return "", errStorageUnavailable
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectKey := fmt.Sprintf("employees/%s/%s", employeeRef, uuid.New().String())
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "document upload failed")
	}
	id, err := i.store.SaveFile(dbmodels.EmployeeFile{
		EmployeeRef: employeeRef,
		FileName:    fileName,
		ContentType: contentType,
		FileSize:    int64(len(file)),
		ObjectKey:   objectKey,
	})
	if err != nil {
		return "", errors.Wrap(err, "document index row save failed")
	}
	return id, nil
}

func (i impl) GetDocument(ctx context.Context, fileID string) ([]byte, string, error) {
	if i.s3client == nil {
		return nil, "", errStorageUnavailable
	}
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "", errors.New("document not found")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, rec.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "document download failed")
	}
	defer object.Close()
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(object); err != nil {
		return nil, "", errors.Wrap(err, "document read failed")
	}
	return buf.Bytes(), rec.FileName, nil
}

func (i impl) ListDocuments(employeeRef string) ([]dbmodels.EmployeeFile, error) {
	return i.store.ListByEmployee(employeeRef)
}

func (i impl) DeleteEmployeeFiles(ctx context.Context, employeeRef string) error {
	list, err := i.store.ListByEmployee(employeeRef)
	if err != nil {
		return err
	}
	if len(list) > 0 && i.s3client == nil {
		return errStorageUnavailable
	}
	var firstErr error
	for _, rec := range list {
		err = i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, rec.ObjectKey, minio.RemoveObjectOptions{})
		if err != nil {
			log.WithError(err).
				WithField("object_key", rec.ObjectKey).
				Error("stored document removal failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err = i.store.Delete(rec.ID); err != nil {
			log.WithError(err).
				WithField("rec_id", rec.ID).
				Error("document index row removal failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
