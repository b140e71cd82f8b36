package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkpress/inkpress/internal/models"
)

// CommentRepository 评论数据访问接口
type CommentRepository interface {
	ListByPost(postID uint) ([]models.Comment, error)
	ListAdmin(filter CommentListFilter) ([]models.Comment, int64, error)
	GetByID(id uint) (*models.Comment, error)
	Create(comment *models.Comment) error
	Approve(id uint) error
	DeleteWithReplies(id uint) (int64, error)
	CountPending() (int64, error)
	Count() (int64, error)
}

type GormCommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// ListByPost 返回文章下全部评论，按创建时间倒序
func (r *GormCommentRepository) ListByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ?", postID).
		Order("created_at DESC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *GormCommentRepository) ListAdmin(filter CommentListFilter) ([]models.Comment, int64, error) {
	query := r.db.Model(&models.Comment{})
	if filter.PostID > 0 {
		query = query.Where("post_id = ?", filter.PostID)
	}
	if filter.OnlyPending {
		query = query.Where("is_approved = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := applyPagination(query, filter.Page, filter.PageSize).
		Order("created_at DESC").Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *GormCommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *GormCommentRepository) Approve(id uint) error {
	return r.db.Model(&models.Comment{}).Where("id = ?", id).
		Update("is_approved", true).Error
}

// DeleteWithReplies 删除评论及其全部后代回复，返回删除总数。
// 逐层收集子评论 ID 后在单个事务内删除。
func (r *GormCommentRepository) DeleteWithReplies(id uint) (int64, error) {
	ids := []uint{id}
	frontier := []uint{id}
	for len(frontier) > 0 {
		var children []uint
		err := r.db.Model(&models.Comment{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &children).Error
		if err != nil {
			return 0, err
		}
		ids = append(ids, children...)
		frontier = children
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Where("id IN ?", ids).Delete(&models.Comment{}).Error
	})
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

func (r *GormCommentRepository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("is_approved = ?", false).Count(&count).Error
	return count, err
}

func (r *GormCommentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Count(&count).Error
	return count, err
}
