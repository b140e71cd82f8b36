package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/constants"
	"github.com/inkpress/inkpress/internal/models"
)

// PostRepository 文章数据访问接口
type PostRepository interface {
	List(filter PostListFilter) ([]models.Post, int64, error)
	GetByID(id uint) (*models.Post, error)
	GetBySlug(slug string) (*models.Post, error)
	CountBySlug(slug string, excludeID uint) (int64, error)
	CountByStatus(status string) (int64, error)
	CreateWithRelations(post *models.Post, categoryIDs []uint, tagNames []string) error
	UpdateWithRelations(post *models.Post, categoryIDs []uint, tagNames []string) error
	Delete(id uint) error
	IncrementViews(id uint) error
	ListPublished() ([]models.Post, error)
}

// GormPostRepository 基于 GORM 的文章仓储实现
type GormPostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) List(filter PostListFilter) ([]models.Post, int64, error) {
	query := r.db.Model(&models.Post{})

	if filter.Status != "" {
		query = query.Where("posts.status = ?", filter.Status)
	}
	if filter.Username != "" {
		query = query.Where("posts.username = ?", filter.Username)
	}
	if filter.CategoryID > 0 {
		query = query.Joins("JOIN post_categories ON post_categories.post_id = posts.id").
			Where("post_categories.category_id = ?", filter.CategoryID)
	}
	if filter.TagName != "" {
		query = query.Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Joins("JOIN tags ON tags.id = post_tags.tag_id").
			Where("tags.name = ?", filter.TagName)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		keyword := "%" + search + "%"
		query = query.Where("posts.title LIKE ? OR posts.excerpt LIKE ?", keyword, keyword)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "posts.created_at DESC"
	}

	var posts []models.Post
	err := applyPagination(query, filter.Page, filter.PageSize).
		Preload("Categories").
		Preload("Tags").
		Order(orderBy).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Categories").Preload("Tags").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *GormPostRepository) GetBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Categories").Preload("Tags").
		Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// CountBySlug 统计 slug 占用数，excludeID 用于更新时排除自身
func (r *GormPostRepository) CountBySlug(slug string, excludeID uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Post{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *GormPostRepository) CountByStatus(status string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Post{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

// CreateWithRelations 在单个事务内写入文章、分类关联与标签关联，
// 任一步失败则整体回滚
func (r *GormPostRepository) CreateWithRelations(post *models.Post, categoryIDs []uint, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "Tags").Create(post).Error; err != nil {
			return err
		}
		return linkRelations(tx, post.ID, categoryIDs, tagNames)
	})
}

// UpdateWithRelations 更新文章本体并全量替换分类/标签关联
func (r *GormPostRepository) UpdateWithRelations(post *models.Post, categoryIDs []uint, tagNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "Tags").Save(post).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return linkRelations(tx, post.ID, categoryIDs, tagNames)
	})
}

// linkRelations 写入分类关联行，并按名称查找或创建标签后写入标签关联行。
// tagNames 由调用方先归一化去重。
func linkRelations(tx *gorm.DB, postID uint, categoryIDs []uint, tagNames []string) error {
	for _, categoryID := range categoryIDs {
		link := models.PostCategory{PostID: postID, CategoryID: categoryID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	for _, name := range tagNames {
		var tag models.Tag
		err := tx.Where("name = ?", name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: name}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		link := models.PostTag{PostID: postID, TagID: tag.ID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete 在单个事务内删除文章及其评论、分类关联与标签关联
func (r *GormPostRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

func (r *GormPostRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// ListPublished 返回全部已发布文章（站点地图用），不分页
func (r *GormPostRepository) ListPublished() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("status = ?", constants.PostStatusPublished).
		Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
