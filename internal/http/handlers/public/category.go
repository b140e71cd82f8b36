package public

import (
	"github.com/inkpress/inkpress/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListCategories 公开分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}
