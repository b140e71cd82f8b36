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

// ListAdminPosts 后台文章列表（所有状态）
func (h *Handler) ListAdminPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	categoryID, _ := strconv.ParseUint(strings.TrimSpace(c.Query("category_id")), 10, 64)

	posts, total, err := h.PostService.ListAdmin(repository.PostListFilter{
		Page:       page,
		PageSize:   pageSize,
		Status:     strings.TrimSpace(c.Query("status")),
		CategoryID: uint(categoryID),
		TagName:    strings.TrimSpace(c.Query("tag")),
		Username:   strings.TrimSpace(c.Query("author")),
		Search:     strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, posts, pagination)
}

// GetAdminPost 后台文章详情
func (h *Handler) GetAdminPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := h.PostService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	response.Success(c, post)
}

func respondPostWriteError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.post_not_found", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeConflict, "error.slug_exists", nil)
	case errors.Is(err, service.ErrCategoryNotFound):
		respondError(c, response.CodeBadRequest, "error.post_categories_invalid", nil)
	case errors.Is(err, service.ErrValidation):
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
	default:
		respondError(c, response.CodeInternal, fallbackKey, err)
	}
}

// CreateAdminPost 创建文章（含分类/标签关联，事务内落库）
func (h *Handler) CreateAdminPost(c *gin.Context) {
	var input service.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	username, _ := c.Get("username")
	author, _ := username.(string)

	post, err := h.PostService.Create(input, author)
	if err != nil {
		respondPostWriteError(c, err, "error.post_create_failed")
		return
	}

	requestLog(c).Infow("admin_post_created", "post_id", post.ID, "slug", post.Slug)
	response.Success(c, post)
}

// UpdateAdminPost 更新文章，slug 随标题重新派生
func (h *Handler) UpdateAdminPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	post, err := h.PostService.Update(id, input)
	if err != nil {
		respondPostWriteError(c, err, "error.post_update_failed")
		return
	}

	response.Success(c, post)
}

// DeleteAdminPost 删除文章及其评论与关联
func (h *Handler) DeleteAdminPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.PostService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.post_delete_failed", err)
		return
	}

	requestLog(c).Infow("admin_post_deleted", "post_id", id)
	response.Success(c, gin.H{"deleted": true})
}
