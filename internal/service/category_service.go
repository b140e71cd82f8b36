package service

import (
	"strings"

	"github.com/inkpress/inkpress/internal/models"
	"github.com/inkpress/inkpress/internal/repository"
)

// CategoryInput 创建/更新分类入参
type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryService 分类管理
type CategoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// List 返回全部分类及各自的文章引用数
func (s *CategoryService) List() ([]repository.CategoryWithCount, error) {
	return s.categories.ListWithCounts()
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create 创建分类，名称忽略大小写唯一
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrValidation
	}
	existing, err := s.categories.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNameExists
	}
	category := &models.Category{Name: name, Description: strings.TrimSpace(input.Description)}
	if err := s.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrValidation
	}
	existing, err := s.categories.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, ErrNameExists
	}
	category.Name = name
	category.Description = strings.TrimSpace(input.Description)
	if err := s.categories.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类。仍被文章引用时返回 CategoryInUseError，
// 携带准确的引用数，调用方需先解除关联。
func (s *CategoryService) Delete(id uint) error {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	count, err := s.categories.CountPosts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &CategoryInUseError{Count: count}
	}
	return s.categories.Delete(id)
}
