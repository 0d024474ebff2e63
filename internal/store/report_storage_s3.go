// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/go-pericias/internal/config"
	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/models"
)

// s3API is the subset of *s3.Client used by the report backend.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3ReportStorage keeps reports as objects of one bucket.
type s3ReportStorage struct {
	client s3API
	bucket string
	logger *logger.Logger
}

// NewS3ReportStorage builds an S3 client from cfg. Static credentials are
// used when both keys are set, the default AWS chain otherwise. A base
// endpoint targets S3-compatible servers such as MinIO.
func NewS3ReportStorage(ctx context.Context, cfg config.S3, log *logger.Logger) (ReportStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewS3ReportStorage").Msg("failed to load AWS config")
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	log.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 report storage")
	return newS3ReportStorage(client, cfg.Bucket, log), nil
}

func newS3ReportStorage(client s3API, bucket string, log *logger.Logger) *s3ReportStorage {
	return &s3ReportStorage{client: client, bucket: bucket, logger: log}
}

func (s *s3ReportStorage) PutReport(ctx context.Context, key, contentType string, body io.Reader, size int64) (models.ReportObject, error) {
	log := logger.FromContext(ctx)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3ReportStorage.PutReport").Str("key", key).Msg("failed to upload report")
		return models.ReportObject{}, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return models.ReportObject{Key: key, ContentType: contentType, Size: size}, nil
}

func (s *s3ReportStorage) GetReport(ctx context.Context, key string) (io.ReadCloser, models.ReportObject, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, models.ReportObject{}, ErrReportNotFound
		}
		return nil, models.ReportObject{}, fmt.Errorf("failed to download from S3: %w", err)
	}

	obj := models.ReportObject{
		Key:         key,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}
	if out.LastModified != nil {
		obj.UpdatedAt = out.LastModified.UTC()
	}

	return out.Body, obj, nil
}

func (s *s3ReportStorage) DeleteReport(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}
