package service

import (
	"strings"

	"github.com/inkpress/inkpress/internal/constants"
	"github.com/inkpress/inkpress/internal/models"
	"github.com/inkpress/inkpress/internal/repository"
)

// PostInput 创建/更新文章入参。CategoryIDs 兼容原生数组与
// JSON 字符串两种提交形态。
type PostInput struct {
	Title        string         `json:"title" binding:"required"`
	Excerpt      string         `json:"excerpt"`
	Content      string         `json:"content" binding:"required"`
	Status       string         `json:"status"`
	PreviewImage string         `json:"preview_image"`
	CategoryIDs  FlexibleIDList `json:"category_ids"`
	TagNames     []string       `json:"tag_names"`
}

// PostService 文章写入工作流与公开查询
type PostService struct {
	posts      repository.PostRepository
	categories repository.CategoryRepository
}

func NewPostService(posts repository.PostRepository, categories repository.CategoryRepository) *PostService {
	return &PostService{posts: posts, categories: categories}
}

// validateInput 校验顺序：标题、正文、至少一个分类、分类存在性。
// 全部通过后才推导 slug 并触碰存储。
func (s *PostService) validateInput(input *PostInput) ([]uint, []string, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, nil, ErrValidation
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, nil, ErrValidation
	}
	categoryIDs := dedupeIDs(input.CategoryIDs)
	if len(categoryIDs) == 0 {
		return nil, nil, ErrValidation
	}
	found, err := s.categories.ListByIDs(categoryIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(found) != len(categoryIDs) {
		return nil, nil, ErrCategoryNotFound
	}
	return categoryIDs, normalizeTagNames(input.TagNames), nil
}

func normalizeStatus(status string) string {
	switch status {
	case constants.PostStatusDraft, constants.PostStatusPublished, constants.PostStatusPrivate:
		return status
	default:
		return constants.PostStatusDraft
	}
}

// Create 创建文章：slug 由标题推导，冲突时返回 ErrSlugExists；
// 文章本体与分类/标签关联在单个事务内落库
func (s *PostService) Create(input PostInput, authorUsername string) (*models.Post, error) {
	categoryIDs, tagNames, err := s.validateInput(&input)
	if err != nil {
		return nil, err
	}

	slug := Slugify(input.Title)
	if slug == "" {
		return nil, ErrValidation
	}
	count, err := s.posts.CountBySlug(slug, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	post := &models.Post{
		Slug:         slug,
		Title:        strings.TrimSpace(input.Title),
		Excerpt:      strings.TrimSpace(input.Excerpt),
		Content:      input.Content,
		Status:       normalizeStatus(input.Status),
		PreviewImage: input.PreviewImage,
	}
	if authorUsername != "" {
		post.Username = &authorUsername
	}
	if err := s.posts.CreateWithRelations(post, categoryIDs, tagNames); err != nil {
		return nil, err
	}
	return s.posts.GetByID(post.ID)
}

// Update 更新文章：slug 随标题重新推导，分类/标签关联全量替换
func (s *PostService) Update(id uint, input PostInput) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	categoryIDs, tagNames, err := s.validateInput(&input)
	if err != nil {
		return nil, err
	}

	slug := Slugify(input.Title)
	if slug == "" {
		return nil, ErrValidation
	}
	count, err := s.posts.CountBySlug(slug, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	post.Slug = slug
	post.Title = strings.TrimSpace(input.Title)
	post.Excerpt = strings.TrimSpace(input.Excerpt)
	post.Content = input.Content
	post.Status = normalizeStatus(input.Status)
	post.PreviewImage = input.PreviewImage
	post.Categories = nil
	post.Tags = nil
	if err := s.posts.UpdateWithRelations(post, categoryIDs, tagNames); err != nil {
		return nil, err
	}
	return s.posts.GetByID(id)
}

// Delete 删除文章及其评论、分类/标签关联
func (s *PostService) Delete(id uint) error {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	return s.posts.Delete(id)
}

// ListPublic 公开文章列表，仅返回已发布文章
func (s *PostService) ListPublic(filter repository.PostListFilter) ([]models.Post, int64, error) {
	filter.Status = constants.PostStatusPublished
	return s.posts.List(filter)
}

// ListAdmin 后台文章列表，不限状态
func (s *PostService) ListAdmin(filter repository.PostListFilter) ([]models.Post, int64, error) {
	return s.posts.List(filter)
}

// GetPublicBySlug 按 slug 取文章并做可见性判定，命中后自增浏览数。
// 浏览计数失败不阻断读路径。
func (s *PostService) GetPublicBySlug(slug string, viewer Viewer) (*models.Post, error) {
	post, err := s.posts.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if post == nil || !CanViewPost(post, viewer) {
		return nil, ErrNotFound
	}
	if err := s.posts.IncrementViews(post.ID); err == nil {
		post.Views++
	}
	return post, nil
}

// GetByID 后台按 ID 取文章
func (s *PostService) GetByID(id uint) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}
