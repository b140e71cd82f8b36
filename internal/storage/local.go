package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalBackend 本地磁盘存储，文件落在 baseDir 下，
// 通过静态路由以 /uploads/ 前缀对外提供
type LocalBackend struct {
	baseDir string
}

func NewLocalBackend(baseDir string) *LocalBackend {
	return &LocalBackend{baseDir: baseDir}
}

func (b *LocalBackend) Save(_ context.Context, key string, reader io.Reader, _ int64, _ string) (string, error) {
	cleanKey := filepath.FromSlash(strings.TrimPrefix(key, "/"))
	fullPath := filepath.Join(b.baseDir, cleanKey)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", err
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		os.Remove(fullPath)
		return "", err
	}
	return "/uploads/" + strings.TrimPrefix(key, "/"), nil
}

func (b *LocalBackend) Delete(_ context.Context, key string) error {
	cleanKey := filepath.FromSlash(strings.TrimPrefix(key, "/"))
	return os.Remove(filepath.Join(b.baseDir, cleanKey))
}
