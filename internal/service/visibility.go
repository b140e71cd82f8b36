package service

import (
	"github.com/inkpress/inkpress/internal/constants"
	"github.com/inkpress/inkpress/internal/models"
)

// Viewer 描述当前请求者的身份，未登录时 Username 为空
type Viewer struct {
	Username string
	IsAdmin  bool
}

// CanViewPost 判断访问者能否看到文章：
// 已发布对所有人可见，管理员可见一切，作者可见自己的草稿与私密文章。
func CanViewPost(post *models.Post, viewer Viewer) bool {
	if post == nil {
		return false
	}
	if post.Status == constants.PostStatusPublished {
		return true
	}
	if viewer.IsAdmin {
		return true
	}
	return viewer.Username != "" && post.Username != nil && *post.Username == viewer.Username
}

// CanViewComment 判断访问者能否看到评论：
// 已批准对所有人可见，管理员可见一切，作者可见自己未批准的评论。
func CanViewComment(comment *models.Comment, viewer Viewer) bool {
	if comment == nil {
		return false
	}
	if comment.IsApproved {
		return true
	}
	if viewer.IsAdmin {
		return true
	}
	return viewer.Username != "" && comment.Username != nil && *comment.Username == viewer.Username
}
