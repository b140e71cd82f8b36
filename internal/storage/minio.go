package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/inkpress/inkpress/internal/config"
)

// MinioBackend S3 兼容对象存储后端
type MinioBackend struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinioBackend 创建 S3 后端，bucket 不存在时自动创建
func NewMinioBackend(ctx context.Context, cfg config.S3Config) (*MinioBackend, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 S3 客户端失败: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("检查 bucket 失败: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("创建 bucket 失败: %w", err)
		}
	}

	return &MinioBackend{
		client:     client,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicBase, "/"),
	}, nil
}

func (b *MinioBackend) Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	objectKey := strings.TrimPrefix(key, "/")
	_, err := b.client.PutObject(ctx, b.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	if b.publicBase != "" {
		return b.publicBase + "/" + objectKey, nil
	}
	return "/" + b.bucket + "/" + objectKey, nil
}

func (b *MinioBackend) Delete(ctx context.Context, key string) error {
	return b.client.RemoveObject(ctx, b.bucket, strings.TrimPrefix(key, "/"), minio.RemoveObjectOptions{})
}
