package service

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/inkpress/inkpress/internal/config"
)

type memoryBackend struct {
	keys         []string
	contentTypes []string
}

func (b *memoryBackend) Save(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	if _, err := io.ReadAll(reader); err != nil {
		return "", err
	}
	b.keys = append(b.keys, key)
	b.contentTypes = append(b.contentTypes, contentType)
	return "/uploads/" + key, nil
}

func (b *memoryBackend) Delete(ctx context.Context, key string) error {
	return nil
}

func uploadTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Upload.MaxSize = 1 << 20
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	cfg.Upload.AllowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	cfg.Upload.MaxWidth = 4096
	cfg.Upload.MaxHeight = 4096
	return cfg
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("编码 PNG 失败: %v", err)
	}
	return buf.Bytes()
}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("构造 multipart 失败: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("写入 multipart 失败: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("关闭 multipart 失败: %v", err)
	}

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 1024)
	if err != nil {
		t.Fatalf("解析 multipart 失败: %v", err)
	}
	files := form.File["file"]
	if len(files) != 1 {
		t.Fatalf("期望 1 个文件，得到 %d", len(files))
	}
	return files[0]
}

func TestUploadSaveFilePNG(t *testing.T) {
	backend := &memoryBackend{}
	svc := NewUploadService(uploadTestConfig(), backend)

	url, err := svc.SaveFile(context.Background(), makeFileHeader(t, "cover.png", pngBytes(t, 2, 2)), "post")
	if err != nil {
		t.Fatalf("保存 PNG 失败: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/post/") {
		t.Fatalf("URL 应带场景前缀，得到 %s", url)
	}
	if len(backend.keys) != 1 || !strings.HasSuffix(backend.keys[0], ".png") {
		t.Fatalf("存储 key 应保留扩展名，得到 %v", backend.keys)
	}
	if backend.contentTypes[0] != "image/png" {
		t.Fatalf("contentType 应为 image/png，得到 %s", backend.contentTypes[0])
	}
}

func TestUploadSceneFallsBackToCommon(t *testing.T) {
	backend := &memoryBackend{}
	svc := NewUploadService(uploadTestConfig(), backend)

	if _, err := svc.SaveFile(context.Background(), makeFileHeader(t, "a.png", pngBytes(t, 1, 1)), "weird"); err != nil {
		t.Fatalf("保存失败: %v", err)
	}
	if !strings.HasPrefix(backend.keys[0], "common/") {
		t.Fatalf("未知场景应归档到 common，得到 %s", backend.keys[0])
	}
}

func TestUploadRejectsOversize(t *testing.T) {
	cfg := uploadTestConfig()
	cfg.Upload.MaxSize = 16
	svc := NewUploadService(cfg, &memoryBackend{})

	_, err := svc.SaveFile(context.Background(), makeFileHeader(t, "big.png", pngBytes(t, 4, 4)), "post")
	if !errors.Is(err, ErrUploadTooLarge) {
		t.Fatalf("超限文件应返回 ErrUploadTooLarge，得到 %v", err)
	}
}

func TestUploadRejectsExtensionAndSniffedType(t *testing.T) {
	svc := NewUploadService(uploadTestConfig(), &memoryBackend{})

	_, err := svc.SaveFile(context.Background(), makeFileHeader(t, "notes.txt", []byte("plain text")), "post")
	if !errors.Is(err, ErrUploadInvalidType) {
		t.Fatalf("非白名单扩展名应返回 ErrUploadInvalidType，得到 %v", err)
	}

	// 扩展名合法但内容不是图片
	_, err = svc.SaveFile(context.Background(), makeFileHeader(t, "fake.png", []byte("plain text body for sniffing")), "post")
	if !errors.Is(err, ErrUploadInvalidType) {
		t.Fatalf("嗅探为文本的文件应返回 ErrUploadInvalidType，得到 %v", err)
	}
}

func TestUploadRejectsOversizedDimensions(t *testing.T) {
	cfg := uploadTestConfig()
	cfg.Upload.MaxWidth = 1
	svc := NewUploadService(cfg, &memoryBackend{})

	_, err := svc.SaveFile(context.Background(), makeFileHeader(t, "wide.png", pngBytes(t, 2, 1)), "post")
	if !errors.Is(err, ErrUploadDimensions) {
		t.Fatalf("超宽图片应返回 ErrUploadDimensions，得到 %v", err)
	}
}

func TestDecodeWebPDimensionsVP8X(t *testing.T) {
	// RIFF 头 + VP8X chunk，宽高按减一后的 24bit 小端存储
	var buf bytes.Buffer
	payload := make([]byte, 10)
	width, height := 800, 600
	payload[4] = byte((width - 1) & 0xFF)
	payload[5] = byte(((width - 1) >> 8) & 0xFF)
	payload[6] = byte(((width - 1) >> 16) & 0xFF)
	payload[7] = byte((height - 1) & 0xFF)
	payload[8] = byte(((height - 1) >> 8) & 0xFF)
	payload[9] = byte(((height - 1) >> 16) & 0xFF)

	buf.WriteString("RIFF")
	sizeBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(sizeBytes, uint32(4+8+len(payload)))
	buf.Write(sizeBytes)
	buf.WriteString("WEBP")
	buf.WriteString("VP8X")
	binary.LittleEndian.PutUint32(sizeBytes, uint32(len(payload)))
	buf.Write(sizeBytes)
	buf.Write(payload)

	gotW, gotH, err := decodeWebPDimensions(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("解析 VP8X 尺寸失败: %v", err)
	}
	if gotW != width || gotH != height {
		t.Fatalf("尺寸应为 %dx%d，得到 %dx%d", width, height, gotW, gotH)
	}
}
