package public

import (
	"errors"
	"strconv"
	"strings"

	handlershared "github.com/inkpress/inkpress/internal/http/handlers/shared"
	"github.com/inkpress/inkpress/internal/http/response"
	"github.com/inkpress/inkpress/internal/models"
	"github.com/inkpress/inkpress/internal/repository"
	"github.com/inkpress/inkpress/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicPostView 公开文章详情响应结构
type PublicPostView struct {
	models.Post
	ContentHTML string `json:"content_html"`
}

// ListPosts 公开文章列表（仅已发布）
func (h *Handler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	categoryID, _ := strconv.ParseUint(strings.TrimSpace(c.Query("category_id")), 10, 64)

	posts, total, err := h.PostService.ListPublic(repository.PostListFilter{
		Page:       page,
		PageSize:   pageSize,
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

// GetPost 按 slug 获取文章详情，正文渲染为 HTML
func (h *Handler) GetPost(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	post, err := h.PostService.GetPublicBySlug(slug, currentViewer(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	html, err := h.Markdown.Render(post.Content)
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	response.Success(c, PublicPostView{Post: *post, ContentHTML: html})
}
