package service

import (
	"github.com/inkpress/inkpress/internal/constants"
	"github.com/inkpress/inkpress/internal/repository"
)

// DashboardOverview 仪表盘统计数据
type DashboardOverview struct {
	PostTotal       int64 `json:"post_total"`
	PostPublished   int64 `json:"post_published"`
	PostDraft       int64 `json:"post_draft"`
	CommentTotal    int64 `json:"comment_total"`
	CommentPending  int64 `json:"comment_pending"`
	CategoryTotal   int64 `json:"category_total"`
	TagTotal        int64 `json:"tag_total"`
	UserTotal       int64 `json:"user_total"`
}

// DashboardService 后台首页统计
type DashboardService struct {
	posts      repository.PostRepository
	comments   repository.CommentRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
	users      repository.UserRepository
}

func NewDashboardService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	users repository.UserRepository,
) *DashboardService {
	return &DashboardService{
		posts:      posts,
		comments:   comments,
		categories: categories,
		tags:       tags,
		users:      users,
	}
}

// Overview 汇总各实体计数
func (s *DashboardService) Overview() (*DashboardOverview, error) {
	overview := &DashboardOverview{}

	var err error
	if overview.PostTotal, err = s.posts.CountByStatus(""); err != nil {
		return nil, err
	}
	if overview.PostPublished, err = s.posts.CountByStatus(constants.PostStatusPublished); err != nil {
		return nil, err
	}
	if overview.PostDraft, err = s.posts.CountByStatus(constants.PostStatusDraft); err != nil {
		return nil, err
	}
	if overview.CommentTotal, err = s.comments.Count(); err != nil {
		return nil, err
	}
	if overview.CommentPending, err = s.comments.CountPending(); err != nil {
		return nil, err
	}
	if overview.CategoryTotal, err = s.categories.Count(); err != nil {
		return nil, err
	}
	if overview.TagTotal, err = s.tags.Count(); err != nil {
		return nil, err
	}
	if overview.UserTotal, err = s.users.Count(); err != nil {
		return nil, err
	}
	return overview, nil
}
