package models

import (
	"time"
)

// Tag 标签表
// 名称统一小写去空白后存储，链接文章时按需自动创建
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`             // 主键
	Name      string    `gorm:"uniqueIndex;not null" json:"name"` // 名称（小写、唯一）
	CreatedAt time.Time `json:"created_at"`                       // 创建时间
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}
