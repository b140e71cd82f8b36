package storage

import (
	"context"
	"io"
)

// Backend 图片对象存储后端。Save 返回可对外访问的 URL 路径。
type Backend interface {
	Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
