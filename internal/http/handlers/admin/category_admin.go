package admin

import (
	"errors"

	"github.com/inkpress/inkpress/internal/http/response"
	"github.com/inkpress/inkpress/internal/i18n"
	"github.com/inkpress/inkpress/internal/service"

	"github.com/gin-gonic/gin"
)

// ListAdminCategories 后台分类列表
func (h *Handler) ListAdminCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

func respondCategoryWriteError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.category_not_found", nil)
	case errors.Is(err, service.ErrNameExists):
		respondError(c, response.CodeConflict, "error.category_name_taken", nil)
	case errors.Is(err, service.ErrValidation):
		respondError(c, response.CodeBadRequest, "error.category_name_required", nil)
	default:
		respondError(c, response.CodeInternal, fallbackKey, err)
	}
}

// CreateAdminCategory 创建分类（名称大小写不敏感去重）
func (h *Handler) CreateAdminCategory(c *gin.Context) {
	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.CategoryService.Create(input)
	if err != nil {
		respondCategoryWriteError(c, err, "error.category_create_failed")
		return
	}

	response.Success(c, category)
}

// UpdateAdminCategory 更新分类
func (h *Handler) UpdateAdminCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category, err := h.CategoryService.Update(id, input)
	if err != nil {
		respondCategoryWriteError(c, err, "error.category_update_failed")
		return
	}

	response.Success(c, category)
}

// DeleteAdminCategory 删除分类；仍被文章引用时返回冲突并附引用数
func (h *Handler) DeleteAdminCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.CategoryService.Delete(id); err != nil {
		var inUse *service.CategoryInUseError
		switch {
		case errors.As(err, &inUse):
			locale := i18n.ResolveLocale(c)
			respondErrorWithMsg(c, response.CodeConflict, i18n.Sprintf(locale, "error.category_in_use", inUse.Count), nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.category_delete_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
