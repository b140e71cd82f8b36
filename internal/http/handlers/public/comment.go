package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/inkpress/inkpress/internal/http/response"
	"github.com/inkpress/inkpress/internal/service"

	"github.com/gin-gonic/gin"
)

// ListComments 获取文章的评论线程
// 可见性随访问者身份变化：游客只看到已审核评论，登录用户额外看到自己的待审评论。
func (h *Handler) ListComments(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	viewer := currentViewer(c)
	post, err := h.PostRepo.GetBySlug(slug)
	if err != nil {
		respondError(c, response.CodeInternal, "error.comment_fetch_failed", err)
		return
	}
	if post == nil || !service.CanViewPost(post, viewer) {
		respondError(c, response.CodeNotFound, "error.post_not_found", nil)
		return
	}

	thread, err := h.CommentService.ListThread(post.ID, viewer)
	if err != nil {
		respondError(c, response.CodeInternal, "error.comment_fetch_failed", err)
		return
	}

	response.Success(c, thread)
}

// CreateComment 发表评论（需登录，默认进入待审状态）
func (h *Handler) CreateComment(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	var input service.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	comment, err := h.CommentService.Create(input, currentViewer(c))
	if err != nil {
		respondCommentCreateError(c, err)
		return
	}

	response.Success(c, comment)
}

// DeleteComment 删除自己发表的评论（连带回复）
func (h *Handler) DeleteComment(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	deleted, err := h.CommentService.DeleteOwn(uint(id), currentViewer(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.comment_not_found", nil)
		case errors.Is(err, service.ErrForbidden):
			respondError(c, response.CodeForbidden, "error.forbidden", nil)
		default:
			respondError(c, response.CodeInternal, "error.comment_delete_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"deleted": true, "deleted_count": deleted})
}
