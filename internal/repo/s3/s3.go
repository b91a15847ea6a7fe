package s3

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/veracourse/portal/internal/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type UploadFileRequest struct {
	Filename    string
	ContentType string
	File        []byte
}

type Storage struct {
	cli    *minio.Client
	bucket string
}

func New(conf config.MinioConfig) *Storage {
	cli, err := minio.New(
		conf.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
			Secure: conf.UseSSL,
		},
	)
	if err != nil {
		zap.L().Fatal("failed to create minio client", zap.Error(err))
	}

	ctx := context.Background()
	exists, err := cli.BucketExists(ctx, conf.Bucket)
	if err != nil {
		zap.L().Fatal("failed to check bucket", zap.Error(err))
	}

	if !exists {
		if err = cli.MakeBucket(ctx, conf.Bucket, minio.MakeBucketOptions{}); err != nil {
			zap.L().Fatal("failed to create bucket", zap.Error(err))
		}
	}

	return &Storage{cli: cli, bucket: conf.Bucket}
}

// UploadFile stores the file under a collision-free object key and
// returns that key.
func (s *Storage) UploadFile(ctx context.Context, req *UploadFileRequest) (string, error) {
	const op = "files.UploadFile.s3"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	object := fmt.Sprintf(
		"attachments/%s%s",
		uuid.NewString(),
		filepath.Ext(req.Filename),
	)

	_, err := s.cli.PutObject(
		ctx,
		s.bucket,
		object,
		bytes.NewReader(req.File),
		int64(len(req.File)),
		minio.PutObjectOptions{ContentType: req.ContentType},
	)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to upload file", zap.String("op", op), zap.Error(err))
		return "", err
	}

	return object, nil
}

func (s *Storage) PresignedURL(
	ctx context.Context,
	object string,
	expiry time.Duration,
) (string, error) {
	const op = "files.PresignedURL.s3"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := s.cli.PresignedGetObject(ctx, s.bucket, object, expiry, url.Values{})
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to presign url", zap.String("op", op), zap.Error(err))
		return "", err
	}

	return u.String(), nil
}
