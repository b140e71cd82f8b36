package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer 将 Markdown 渲染为净化后的 HTML
type Renderer struct {
	md       goldmark.Markdown
	sanitize *bluemonday.Policy
}

// NewRenderer 创建渲染器。启用 GFM 扩展，输出经过白名单净化，
// 原始 HTML 一律过滤。
func NewRenderer() *Renderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("code", "pre")

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		sanitize: policy,
	}
}

// Render 渲染 Markdown 正文
func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return r.sanitize.Sanitize(buf.String()), nil
}
