package public

import (
	"net/http"

	"github.com/inkpress/inkpress/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Sitemap 输出 sitemap.xml（仅包含已发布文章）
func (h *Handler) Sitemap(c *gin.Context) {
	data, err := h.SitemapService.Build()
	if err != nil {
		respondError(c, response.CodeInternal, "error.sitemap_failed", err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", data)
}
