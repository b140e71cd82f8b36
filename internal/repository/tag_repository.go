package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/models"
)

// TagWithCount 标签及其文章引用数
type TagWithCount struct {
	models.Tag
	PostCount int64 `json:"post_count"`
}

// TagRepository 标签数据访问接口
type TagRepository interface {
	List() ([]TagWithCount, error)
	GetByID(id uint) (*models.Tag, error)
	GetByName(name string) (*models.Tag, error)
	DeleteWithLinks(id uint) (int64, error)
	Count() (int64, error)
}

type GormTagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

func (r *GormTagRepository) List() ([]TagWithCount, error) {
	var tags []TagWithCount
	err := r.db.Model(&models.Tag{}).
		Select("tags.*, COUNT(post_tags.post_id) AS post_count").
		Joins("LEFT JOIN post_tags ON post_tags.tag_id = tags.id").
		Group("tags.id").
		Order("tags.name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *GormTagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *GormTagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// DeleteWithLinks 在事务内删除标签及其文章关联，返回被解除关联的文章数
func (r *GormTagRepository) DeleteWithLinks(id uint) (int64, error) {
	var detached int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PostTag{}).Where("tag_id = ?", id).Count(&detached).Error; err != nil {
			return err
		}
		if err := tx.Where("tag_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
	if err != nil {
		return 0, err
	}
	return detached, nil
}

func (r *GormTagRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Count(&count).Error
	return count, err
}
