package constants

// 文章状态常量
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusPrivate   = "private"
)

// 用户角色常量
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// 用户账号状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 上传存储后端常量
const (
	StorageBackendLocal = "local"
	StorageBackendS3    = "s3"
)

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 后台内置角色常量（casbin 策略里的角色名）
const (
	AuthzRoleEditor    = "editor"
	AuthzRoleModerator = "moderator"
)
