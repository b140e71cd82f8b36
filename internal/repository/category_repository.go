package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/models"
)

// CategoryWithCount 分类及其被引用的文章数
type CategoryWithCount struct {
	models.Category
	PostCount int64 `json:"post_count"`
}

// CategoryRepository 分类数据访问接口
type CategoryRepository interface {
	List() ([]models.Category, error)
	ListWithCounts() ([]CategoryWithCount, error)
	ListByIDs(ids []uint) ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uint) error
	CountPosts(categoryID uint) (int64, error)
	Count() (int64, error)
}

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCategoryRepository) ListWithCounts() ([]CategoryWithCount, error) {
	var categories []CategoryWithCount
	err := r.db.Model(&models.Category{}).
		Select("categories.*, COUNT(post_categories.post_id) AS post_count").
		Joins("LEFT JOIN post_categories ON post_categories.category_id = categories.id").
		Group("categories.id").
		Order("categories.name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCategoryRepository) ListByIDs(ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []models.Category
	if err := r.db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *GormCategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *GormCategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// CountPosts 统计引用该分类的文章数，删除前的保护检查用
func (r *GormCategoryRepository) CountPosts(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.PostCategory{}).
		Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *GormCategoryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Count(&count).Error
	return count, err
}
