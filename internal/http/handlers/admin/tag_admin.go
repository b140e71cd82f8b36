package admin

import (
	"errors"

	"github.com/inkpress/inkpress/internal/http/response"
	"github.com/inkpress/inkpress/internal/i18n"
	"github.com/inkpress/inkpress/internal/service"

	"github.com/gin-gonic/gin"
)

// ListAdminTags 后台标签列表（附带文章计数）
func (h *Handler) ListAdminTags(c *gin.Context) {
	tags, err := h.TagService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.tag_fetch_failed", err)
		return
	}
	response.Success(c, tags)
}

// DeleteAdminTag 删除标签并解除文章关联，返回解除数量
func (h *Handler) DeleteAdminTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detached, err := h.TagService.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.tag_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.tag_delete_failed", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.Sprintf(locale, "message.tag_deleted", detached), gin.H{
		"deleted":  true,
		"detached": detached,
	})
}
