package initializers

import (
	"context"
	s3client "hr-personnel-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("S3 client initialization failed")
		return
	}

	// connectivity check
	if _, err = minioClient.ListBuckets(ctx); err != nil {
		log.WithError(err).Error("S3 connection failed on ListBuckets")
	}
	if err = s3client.MakeBucket(ctx, minioClient); err != nil {
		log.WithError(err).Error("S3 document bucket creation failed")
	}

	s3client.Client = minioClient
	log.Info("S3 client initialized")
}
