package repository

import "gorm.io/gorm"

const defaultPageSize = 10

// applyPagination 统一分页参数，page 从 1 开始
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * pageSize
	return query.Offset(offset).Limit(pageSize)
}
