package repository

// PostListFilter 查询文章列表的过滤条件
type PostListFilter struct {
	Page       int
	PageSize   int
	Status     string // 精确匹配某一状态；为空时不过滤
	CategoryID uint   // 按分类过滤
	TagName    string // 按标签名过滤（已归一化）
	Username   string // 按作者过滤
	Search     string // 标题/摘要模糊搜索
	OrderBy    string
}

// CommentListFilter 查询评论列表的过滤条件（后台）
type CommentListFilter struct {
	Page        int
	PageSize    int
	PostID      uint
	OnlyPending bool
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Role     string
	Status   string
}
