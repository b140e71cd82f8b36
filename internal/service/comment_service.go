package service

import (
	"strings"
	"time"

	"github.com/inkpress/inkpress/internal/constants"
	"github.com/inkpress/inkpress/internal/models"
	"github.com/inkpress/inkpress/internal/repository"
)

// CommentView 评论视图记录：可见性过滤后的平铺集合，
// 回复的分组由渲染方按 ParentID 自行处理
type CommentView struct {
	ID         uint      `json:"id"`
	PostID     uint      `json:"post_id"`
	ParentID   *uint     `json:"parent_id,omitempty"`
	Username   string    `json:"username"`
	Content    string    `json:"content"`
	IsApproved bool      `json:"is_approved"`
	ReplyCount int       `json:"reply_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateCommentInput 发表评论入参
type CreateCommentInput struct {
	PostID   uint   `json:"post_id" binding:"required"`
	ParentID *uint  `json:"parent_id"`
	Content  string `json:"content" binding:"required"`
}

// CommentService 评论线程组装与提交守卫
type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// ListThread 返回文章下当前访问者可见的评论集合，按创建时间倒序。
// 可见性逐条判定，不随父评论继承；每条评论的 ReplyCount 统计
// 可见集合内以它为父的评论数。调用方需先确认文章本身可见。
func (s *CommentService) ListThread(postID uint, viewer Viewer) ([]CommentView, error) {
	rows, err := s.comments.ListByPost(postID)
	if err != nil {
		return nil, err
	}

	visible := make([]models.Comment, 0, len(rows))
	for _, row := range rows {
		if CanViewComment(&row, viewer) {
			visible = append(visible, row)
		}
	}

	views := make([]CommentView, 0, len(visible))
	for _, row := range visible {
		replyCount := 0
		for _, other := range visible {
			if other.ParentID != nil && *other.ParentID == row.ID {
				replyCount++
			}
		}
		username := ""
		if row.Username != nil {
			username = *row.Username
		}
		views = append(views, CommentView{
			ID:         row.ID,
			PostID:     row.PostID,
			ParentID:   row.ParentID,
			Username:   username,
			Content:    row.Content,
			IsApproved: row.IsApproved,
			ReplyCount: replyCount,
			CreatedAt:  row.CreatedAt,
		})
	}
	return views, nil
}

// Create 发表评论。仅允许对已发布文章评论；指定父评论时父评论
// 必须属于同一篇文章。新评论默认未批准，待审核后才对他人可见。
func (s *CommentService) Create(input CreateCommentInput, viewer Viewer) (*models.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrValidation
	}

	post, err := s.posts.GetByID(input.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if post.Status != constants.PostStatusPublished {
		return nil, ErrPostClosed
	}

	if input.ParentID != nil {
		parent, err := s.comments.GetByID(*input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.PostID != input.PostID {
			return nil, ErrParentInvalid
		}
	}

	comment := &models.Comment{
		PostID:   input.PostID,
		ParentID: input.ParentID,
		Content:  content,
	}
	if viewer.Username != "" {
		username := viewer.Username
		comment.Username = &username
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListAdmin 后台评论列表
func (s *CommentService) ListAdmin(filter repository.CommentListFilter) ([]CommentView, int64, error) {
	rows, total, err := s.comments.ListAdmin(filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]CommentView, 0, len(rows))
	for _, row := range rows {
		username := ""
		if row.Username != nil {
			username = *row.Username
		}
		views = append(views, CommentView{
			ID:         row.ID,
			PostID:     row.PostID,
			ParentID:   row.ParentID,
			Username:   username,
			Content:    row.Content,
			IsApproved: row.IsApproved,
			CreatedAt:  row.CreatedAt,
		})
	}
	return views, total, nil
}

// Approve 批准评论
func (s *CommentService) Approve(id uint) error {
	comment, err := s.comments.GetByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	return s.comments.Approve(id)
}

// Delete 删除评论及其全部后代回复，返回删除条数
func (s *CommentService) Delete(id uint) (int64, error) {
	comment, err := s.comments.GetByID(id)
	if err != nil {
		return 0, err
	}
	if comment == nil {
		return 0, ErrNotFound
	}
	return s.comments.DeleteWithReplies(id)
}

// DeleteOwn 删除访问者自己的评论（管理员可删任意评论），
// 连带删除整棵回复子树，返回删除条数。
func (s *CommentService) DeleteOwn(id uint, viewer Viewer) (int64, error) {
	comment, err := s.comments.GetByID(id)
	if err != nil {
		return 0, err
	}
	if comment == nil {
		return 0, ErrNotFound
	}
	if !viewer.IsAdmin {
		if viewer.Username == "" || comment.Username == nil || *comment.Username != viewer.Username {
			return 0, ErrForbidden
		}
	}
	return s.comments.DeleteWithReplies(id)
}

// CountPending 待审核评论数（仪表盘用）
func (s *CommentService) CountPending() (int64, error) {
	return s.comments.CountPending()
}
