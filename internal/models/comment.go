package models

import (
	"time"
)

// Comment 评论表
// parent_id 仅允许指向同一篇文章下的评论；删除父评论时整棵回复子树一并删除
type Comment struct {
	ID         uint      `gorm:"primarykey" json:"id"`                    // 主键
	PostID     uint      `gorm:"not null;index" json:"post_id"`           // 所属文章
	ParentID   *uint     `gorm:"index" json:"parent_id"`                  // 父评论（顶层为空）
	Username   *string   `gorm:"index" json:"username"`                   // 评论人用户名（用户删除时置空）
	Content    string    `gorm:"type:text;not null" json:"content"`       // 内容
	IsApproved bool      `gorm:"not null;default:false" json:"is_approved"` // 是否已审核
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                 // 创建时间
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}
