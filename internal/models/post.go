package models

import (
	"time"
)

// Post 文章表
type Post struct {
	ID           uint       `gorm:"primarykey" json:"id"`              // 主键
	Slug         string     `gorm:"uniqueIndex;not null" json:"slug"`  // 唯一标识（由标题派生）
	Title        string     `gorm:"not null" json:"title"`             // 标题
	Excerpt      string     `gorm:"type:text" json:"excerpt"`          // 摘要
	Content      string     `gorm:"type:text;not null" json:"content"` // Markdown 正文
	Username     *string    `gorm:"index" json:"username"`             // 作者用户名（用户删除时置空）
	Status       string     `gorm:"not null;index" json:"status"`      // 状态（draft/published/private）
	PreviewImage string     `json:"preview_image"`                     // 预览图
	Views        int64      `gorm:"not null;default:0" json:"views"`   // 浏览计数
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`           // 创建时间
	UpdatedAt    time.Time  `gorm:"index" json:"updated_at"`           // 更新时间
	Categories   []Category `gorm:"many2many:post_categories" json:"categories"`
	Tags         []Tag      `gorm:"many2many:post_tags" json:"tags"`
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}

// PostCategory 文章-分类关联表（复合主键）
type PostCategory struct {
	PostID     uint `gorm:"primaryKey" json:"post_id"`
	CategoryID uint `gorm:"primaryKey" json:"category_id"`
}

// TableName 指定表名
func (PostCategory) TableName() string {
	return "post_categories"
}

// PostTag 文章-标签关联表（复合主键）
type PostTag struct {
	PostID uint `gorm:"primaryKey" json:"post_id"`
	TagID  uint `gorm:"primaryKey" json:"tag_id"`
}

// TableName 指定表名
func (PostTag) TableName() string {
	return "post_tags"
}
