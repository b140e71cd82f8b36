package service

import (
	"errors"
	"fmt"
)

// 业务层哨兵错误，处理器按 errors.Is 映射到响应码
var (
	ErrNotFound            = errors.New("service: record not found")
	ErrForbidden           = errors.New("service: operation not allowed")
	ErrValidation          = errors.New("service: validation failed")
	ErrSlugExists          = errors.New("service: slug already exists")
	ErrNameExists          = errors.New("service: name already exists")
	ErrCategoryNotFound    = errors.New("service: category not found")
	ErrParentInvalid       = errors.New("service: parent comment invalid")
	ErrPostClosed          = errors.New("service: post not open for comments")
	ErrInvalidCredentials  = errors.New("service: invalid credentials")
	ErrInvalidPassword     = errors.New("service: invalid password")
	ErrUserDisabled        = errors.New("service: user disabled")
	ErrUsernameExists      = errors.New("service: username already exists")
	ErrEmailExists         = errors.New("service: email already exists")
	ErrWeakPassword        = errors.New("service: password too weak")
	ErrCaptchaInvalid      = errors.New("service: captcha invalid")
	ErrUploadTooLarge      = errors.New("service: upload exceeds size limit")
	ErrUploadInvalidType   = errors.New("service: upload type not allowed")
	ErrUploadInvalidImage  = errors.New("service: upload is not a valid image")
	ErrUploadDimensions    = errors.New("service: image dimensions exceed limit")
)

// CategoryInUseError 分类被文章引用时的删除冲突，携带引用数
type CategoryInUseError struct {
	Count int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("service: category referenced by %d posts", e.Count)
}
