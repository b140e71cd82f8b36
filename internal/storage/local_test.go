package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalBackendSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	backend := NewLocalBackend(dir)

	url, err := backend.Save(context.Background(), "post/2026/01/a.png", strings.NewReader("data"), 4, "image/png")
	if err != nil {
		t.Fatalf("保存文件失败: %v", err)
	}
	if url != "/uploads/post/2026/01/a.png" {
		t.Fatalf("URL 应带 /uploads/ 前缀，得到 %s", url)
	}

	fullPath := filepath.Join(dir, "post", "2026", "01", "a.png")
	content, err := os.ReadFile(fullPath)
	if err != nil {
		t.Fatalf("读取落盘文件失败: %v", err)
	}
	if string(content) != "data" {
		t.Fatalf("文件内容应为 data，得到 %s", content)
	}

	if err := backend.Delete(context.Background(), "post/2026/01/a.png"); err != nil {
		t.Fatalf("删除文件失败: %v", err)
	}
	if _, err := os.Stat(fullPath); !os.IsNotExist(err) {
		t.Fatalf("删除后文件不应存在")
	}
}
