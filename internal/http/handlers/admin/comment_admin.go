package admin

import (
	"errors"
	"strconv"
	"strings"

	handlershared "github.com/inkpress/inkpress/internal/http/handlers/shared"
	"github.com/inkpress/inkpress/internal/http/response"
	"github.com/inkpress/inkpress/internal/repository"
	"github.com/inkpress/inkpress/internal/service"

	"github.com/gin-gonic/gin"
)

// ListAdminComments 后台评论列表，支持只看待审
func (h *Handler) ListAdminComments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	postID, _ := strconv.ParseUint(strings.TrimSpace(c.Query("post_id")), 10, 64)
	onlyPending := c.Query("pending") == "true" || c.Query("pending") == "1"

	comments, total, err := h.CommentService.ListAdmin(repository.CommentListFilter{
		Page:        page,
		PageSize:    pageSize,
		PostID:      uint(postID),
		OnlyPending: onlyPending,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.comment_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, comments, pagination)
}

// ApproveAdminComment 审核通过评论
func (h *Handler) ApproveAdminComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.CommentService.Approve(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.comment_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.comment_approve_failed", err)
		return
	}

	response.Success(c, gin.H{"approved": true})
}

// DeleteAdminComment 删除评论及其整棵回复子树
func (h *Handler) DeleteAdminComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.CommentService.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.comment_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.comment_delete_failed", err)
		return
	}

	requestLog(c).Infow("admin_comment_deleted", "comment_id", id, "deleted_count", deleted)
	response.Success(c, gin.H{
		"deleted":       true,
		"deleted_count": deleted,
	})
}
