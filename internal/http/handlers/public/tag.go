package public

import (
	"github.com/inkpress/inkpress/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListTags 公开标签列表（附带文章计数）
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.TagService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.tag_fetch_failed", err)
		return
	}
	response.Success(c, tags)
}
