package markdown

import (
	"strings"
	"testing"
)

func TestRenderBasic(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render("# Title\n\nsome **bold** text")
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("输出缺少期望的标签: %s", out)
	}
}

func TestRenderStripsScript(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render("hello <script>alert(1)</script> world")
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	if strings.Contains(out, "<script") {
		t.Fatalf("脚本标签未被过滤: %s", out)
	}
}

func TestRenderGFMTable(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	if !strings.Contains(out, "<table") {
		t.Fatalf("GFM 表格未渲染: %s", out)
	}
}
