package i18n

var messages = map[string]map[string]string{
	"en-US": {
		"error.bad_request":              "invalid request",
		"error.unauthorized":             "unauthorized",
		"error.forbidden":                "forbidden",
		"error.internal":                 "internal error",
		"error.auth_header_missing":      "authorization header missing",
		"error.auth_header_invalid":      "authorization header invalid",
		"error.token_invalid":            "token invalid",
		"error.token_revoked":            "token revoked",
		"error.jwt_secret_missing":       "jwt secret not configured",
		"error.user_disabled":            "account disabled",
		"error.invalid_credentials":      "invalid username or password",
		"error.username_taken":           "username already taken",
		"error.email_taken":              "email already registered",
		"error.captcha_required":         "captcha required",
		"error.captcha_invalid":          "captcha invalid",
		"error.login_too_many":           "too many login attempts, retry in %d seconds",
		"error.register_too_many":        "too many registrations, retry in %d seconds",
		"error.comment_too_many":         "commenting too fast, retry in %d seconds",
		"error.rate_limited":             "too many requests, retry in %d seconds",
		"error.rate_limit_unavailable":   "rate limiter unavailable",
		"error.post_not_found":           "post not found",
		"error.post_fetch_failed":        "failed to load posts",
		"error.post_create_failed":       "failed to create post",
		"error.post_update_failed":       "failed to update post",
		"error.post_delete_failed":       "failed to delete post",
		"error.post_title_required":      "title is required",
		"error.post_content_required":    "content is required",
		"error.post_categories_invalid":  "category list could not be parsed",
		"error.post_categories_required": "at least one category required",
		"error.post_tags_invalid":        "tag list could not be parsed",
		"error.category_not_found":       "category not found",
		"error.category_fetch_failed":    "failed to load categories",
		"error.category_create_failed":   "failed to create category",
		"error.category_update_failed":   "failed to update category",
		"error.category_delete_failed":   "failed to delete category",
		"error.category_name_required":   "category name required",
		"error.category_name_taken":      "category name already exists",
		"error.category_in_use":          "category is still referenced by %d post(s)",
		"error.tag_not_found":            "tag not found",
		"error.tag_fetch_failed":         "failed to load tags",
		"error.tag_delete_failed":        "failed to delete tag",
		"error.slug_exists":              "a post with the same slug already exists",
		"error.comment_not_found":        "comment not found",
		"error.comment_fetch_failed":     "failed to load comments",
		"error.comment_create_failed":    "failed to submit comment",
		"error.comment_delete_failed":    "failed to delete comment",
		"error.comment_approve_failed":   "failed to approve comment",
		"error.comment_content_required": "comment content required",
		"error.comment_parent_invalid":   "parent comment invalid",
		"error.comment_post_closed":      "post does not accept comments",
		"error.upload_failed":            "upload failed",
		"error.upload_file_required":     "file required",
		"error.user_not_found":           "user not found",
		"error.user_fetch_failed":        "failed to load users",
		"error.user_update_failed":       "failed to update user",
		"error.password_invalid":         "password does not meet policy",
		"error.password_min_length":      "password must be at least %d characters",
		"error.password_require_upper":   "password must contain an uppercase letter",
		"error.password_require_lower":   "password must contain a lowercase letter",
		"error.password_require_number":  "password must contain a digit",
		"error.password_require_special": "password must contain a special character",
		"error.upload_too_large":         "file exceeds size limit",
		"error.upload_type_invalid":      "file type not allowed",
		"error.upload_not_image":         "file is not a valid image",
		"error.upload_dimensions":        "image dimensions exceed limit",
		"error.sitemap_failed":           "failed to build sitemap",
		"error.dashboard_failed":         "failed to load dashboard",
		"error.user_id_invalid":          "user id invalid",
		"error.user_id_type_invalid":     "user id type invalid",
		"error.register_failed":          "registration failed",
		"error.login_failed":             "login failed",
		"error.password_change_failed":   "failed to change password",
		"error.captcha_generate_failed":  "failed to generate captcha",
		"error.user_roles_invalid":       "unknown role in role list",
		"error.old_password_wrong":       "current password is incorrect",
		"error.user_status_invalid":      "unknown account status",

		"message.tag_deleted": "tag deleted, detached from %d post(s)",
	},
	"zh-CN": {
		"error.bad_request":              "请求参数无效",
		"error.unauthorized":             "未授权",
		"error.forbidden":                "无权限",
		"error.internal":                 "内部错误",
		"error.auth_header_missing":      "缺少认证头",
		"error.auth_header_invalid":      "认证头无效",
		"error.token_invalid":            "无效的 token",
		"error.token_revoked":            "token 已失效",
		"error.jwt_secret_missing":       "未配置 JWT 密钥",
		"error.user_disabled":            "账号已被禁用",
		"error.invalid_credentials":      "用户名或密码错误",
		"error.username_taken":           "用户名已被占用",
		"error.email_taken":              "邮箱已被注册",
		"error.captcha_required":         "需要验证码",
		"error.captcha_invalid":          "验证码错误",
		"error.login_too_many":           "登录尝试过于频繁，请 %d 秒后重试",
		"error.register_too_many":        "注册过于频繁，请 %d 秒后重试",
		"error.comment_too_many":         "评论过于频繁，请 %d 秒后重试",
		"error.rate_limited":             "请求过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable":   "限流服务不可用",
		"error.post_not_found":           "文章不存在",
		"error.post_fetch_failed":        "获取文章失败",
		"error.post_create_failed":       "创建文章失败",
		"error.post_update_failed":       "更新文章失败",
		"error.post_delete_failed":       "删除文章失败",
		"error.post_title_required":      "标题不能为空",
		"error.post_content_required":    "内容不能为空",
		"error.post_categories_invalid":  "分类列表解析失败",
		"error.post_categories_required": "至少选择一个分类",
		"error.post_tags_invalid":        "标签列表解析失败",
		"error.category_not_found":       "分类不存在",
		"error.category_fetch_failed":    "获取分类失败",
		"error.category_create_failed":   "创建分类失败",
		"error.category_update_failed":   "更新分类失败",
		"error.category_delete_failed":   "删除分类失败",
		"error.category_name_required":   "分类名称不能为空",
		"error.category_name_taken":      "分类名称已存在",
		"error.category_in_use":          "仍有 %d 篇文章引用该分类",
		"error.tag_not_found":            "标签不存在",
		"error.tag_fetch_failed":         "获取标签失败",
		"error.tag_delete_failed":        "删除标签失败",
		"error.slug_exists":              "已存在相同 slug 的文章",
		"error.comment_not_found":        "评论不存在",
		"error.comment_fetch_failed":     "获取评论失败",
		"error.comment_create_failed":    "提交评论失败",
		"error.comment_delete_failed":    "删除评论失败",
		"error.comment_approve_failed":   "审核评论失败",
		"error.comment_content_required": "评论内容不能为空",
		"error.comment_parent_invalid":   "父评论无效",
		"error.comment_post_closed":      "该文章不接受评论",
		"error.upload_failed":            "上传失败",
		"error.upload_file_required":     "缺少上传文件",
		"error.user_not_found":           "用户不存在",
		"error.user_fetch_failed":        "获取用户失败",
		"error.user_update_failed":       "更新用户失败",
		"error.password_invalid":         "密码不符合安全策略",
		"error.password_min_length":      "密码长度至少 %d 位",
		"error.password_require_upper":   "密码需包含大写字母",
		"error.password_require_lower":   "密码需包含小写字母",
		"error.password_require_number":  "密码需包含数字",
		"error.password_require_special": "密码需包含特殊字符",
		"error.upload_too_large":         "文件超出大小限制",
		"error.upload_type_invalid":      "不允许的文件类型",
		"error.upload_not_image":         "文件不是有效的图片",
		"error.upload_dimensions":        "图片尺寸超出限制",
		"error.sitemap_failed":           "生成站点地图失败",
		"error.dashboard_failed":         "获取仪表盘数据失败",
		"error.user_id_invalid":          "用户 ID 无效",
		"error.user_id_type_invalid":     "用户 ID 类型无效",
		"error.register_failed":          "注册失败",
		"error.login_failed":             "登录失败",
		"error.password_change_failed":   "修改密码失败",
		"error.captcha_generate_failed":  "生成验证码失败",
		"error.user_roles_invalid":       "角色列表包含未知角色",
		"error.old_password_wrong":       "当前密码不正确",
		"error.user_status_invalid":      "未知的账号状态",

		"message.tag_deleted": "标签已删除，并与 %d 篇文章解除关联",
	},
}
