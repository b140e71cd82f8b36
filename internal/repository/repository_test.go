package repository

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkpress/inkpress/internal/constants"
	"github.com/inkpress/inkpress/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	if err := models.SetupJoinTables(db); err != nil {
		t.Fatalf("注册关联表失败: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Post{},
		&models.PostCategory{},
		&models.PostTag{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("创建测试分类失败: %v", err)
	}
	return category
}

func strPtr(s string) *string { return &s }

func TestPostCreateWithRelations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	category := seedCategory(t, db, "Engineering")

	post := &models.Post{
		Slug:     "hello-world",
		Title:    "Hello World",
		Content:  "body",
		Status:   constants.PostStatusPublished,
		Username: strPtr("alice"),
	}
	err := repo.CreateWithRelations(post, []uint{category.ID}, []string{"go", "web"})
	if err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}

	got, err := repo.GetBySlug("hello-world")
	if err != nil {
		t.Fatalf("查询文章失败: %v", err)
	}
	if got == nil {
		t.Fatal("期望查到文章")
	}
	if len(got.Categories) != 1 || got.Categories[0].ID != category.ID {
		t.Fatalf("期望关联 1 个分类, got %+v", got.Categories)
	}
	if len(got.Tags) != 2 {
		t.Fatalf("期望关联 2 个标签, got %d", len(got.Tags))
	}
}

func TestPostCreateRollsBackOnLinkFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	category := seedCategory(t, db, "Engineering")

	post := &models.Post{Slug: "atomic", Title: "Atomic", Content: "body", Status: constants.PostStatusDraft}
	// 重复的分类 ID 触发联合主键冲突，整个事务必须回滚
	err := repo.CreateWithRelations(post, []uint{category.ID, category.ID}, nil)
	if err == nil {
		t.Fatal("期望关联写入失败")
	}

	got, err := repo.GetBySlug("atomic")
	if err != nil {
		t.Fatalf("查询文章失败: %v", err)
	}
	if got != nil {
		t.Fatal("事务回滚后文章不应存在")
	}
}

func TestPostTagReuseAcrossPosts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	category := seedCategory(t, db, "Engineering")

	first := &models.Post{Slug: "first", Title: "First", Content: "body", Status: constants.PostStatusPublished}
	if err := repo.CreateWithRelations(first, []uint{category.ID}, []string{"go"}); err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}
	second := &models.Post{Slug: "second", Title: "Second", Content: "body", Status: constants.PostStatusPublished}
	if err := repo.CreateWithRelations(second, []uint{category.ID}, []string{"go"}); err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}

	var tagCount int64
	if err := db.Model(&models.Tag{}).Where("name = ?", "go").Count(&tagCount).Error; err != nil {
		t.Fatalf("统计标签失败: %v", err)
	}
	if tagCount != 1 {
		t.Fatalf("同名标签应复用, got %d 行", tagCount)
	}
}

func TestPostUpdateReplacesRelations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	first := seedCategory(t, db, "Engineering")
	second := seedCategory(t, db, "Life")

	post := &models.Post{Slug: "update-me", Title: "Update", Content: "body", Status: constants.PostStatusDraft}
	if err := repo.CreateWithRelations(post, []uint{first.ID}, []string{"go"}); err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}

	post.Title = "Updated"
	if err := repo.UpdateWithRelations(post, []uint{second.ID}, []string{"rust"}); err != nil {
		t.Fatalf("更新文章失败: %v", err)
	}

	got, err := repo.GetByID(post.ID)
	if err != nil || got == nil {
		t.Fatalf("查询文章失败: %v", err)
	}
	if got.Title != "Updated" {
		t.Fatalf("标题未更新: %s", got.Title)
	}
	if len(got.Categories) != 1 || got.Categories[0].ID != second.ID {
		t.Fatalf("分类关联应被替换, got %+v", got.Categories)
	}
	if len(got.Tags) != 1 || got.Tags[0].Name != "rust" {
		t.Fatalf("标签关联应被替换, got %+v", got.Tags)
	}
}

func TestPostDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	category := seedCategory(t, db, "Engineering")

	post := &models.Post{Slug: "doomed", Title: "Doomed", Content: "body", Status: constants.PostStatusPublished}
	if err := repo.CreateWithRelations(post, []uint{category.ID}, []string{"go"}); err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}
	comment := models.Comment{PostID: post.ID, Content: "first", IsApproved: true}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}

	if err := repo.Delete(post.ID); err != nil {
		t.Fatalf("删除文章失败: %v", err)
	}

	var counts [3]int64
	db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&counts[0])
	db.Model(&models.PostCategory{}).Where("post_id = ?", post.ID).Count(&counts[1])
	db.Model(&models.PostTag{}).Where("post_id = ?", post.ID).Count(&counts[2])
	for i, count := range counts {
		if count != 0 {
			t.Fatalf("关联数据 %d 未清理, 剩余 %d 行", i, count)
		}
	}
	got, err := repo.GetByID(post.ID)
	if err != nil {
		t.Fatalf("查询文章失败: %v", err)
	}
	if got != nil {
		t.Fatal("文章应已删除")
	}
}

func TestPostCountBySlugExcludesSelf(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	post := &models.Post{Slug: "taken", Title: "Taken", Content: "body", Status: constants.PostStatusDraft}
	if err := repo.CreateWithRelations(post, nil, nil); err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}

	count, err := repo.CountBySlug("taken", 0)
	if err != nil || count != 1 {
		t.Fatalf("期望计数 1, got %d err %v", count, err)
	}
	count, err = repo.CountBySlug("taken", post.ID)
	if err != nil || count != 0 {
		t.Fatalf("排除自身后期望计数 0, got %d err %v", count, err)
	}
}

func TestPostListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	engineering := seedCategory(t, db, "Engineering")
	life := seedCategory(t, db, "Life")

	posts := []struct {
		slug     string
		status   string
		category uint
		tag      string
		author   string
	}{
		{"a", constants.PostStatusPublished, engineering.ID, "go", "alice"},
		{"b", constants.PostStatusPublished, life.ID, "travel", "bob"},
		{"c", constants.PostStatusDraft, engineering.ID, "go", "alice"},
	}
	for _, p := range posts {
		post := &models.Post{Slug: p.slug, Title: p.slug, Content: "body", Status: p.status, Username: strPtr(p.author)}
		if err := repo.CreateWithRelations(post, []uint{p.category}, []string{p.tag}); err != nil {
			t.Fatalf("创建文章失败: %v", err)
		}
	}

	got, total, err := repo.List(PostListFilter{Status: constants.PostStatusPublished})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("按状态过滤期望 2 篇, got %d", total)
	}

	_, total, err = repo.List(PostListFilter{Status: constants.PostStatusPublished, CategoryID: engineering.ID})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 1 {
		t.Fatalf("按分类过滤期望 1 篇, got %d", total)
	}

	_, total, err = repo.List(PostListFilter{TagName: "go"})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 2 {
		t.Fatalf("按标签过滤期望 2 篇, got %d", total)
	}

	_, total, err = repo.List(PostListFilter{Username: "bob"})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 1 {
		t.Fatalf("按作者过滤期望 1 篇, got %d", total)
	}
}

func TestCategoryCountPosts(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	categoryRepo := NewCategoryRepository(db)
	category := seedCategory(t, db, "Engineering")

	for i := 0; i < 3; i++ {
		post := &models.Post{Slug: fmt.Sprintf("post-%d", i), Title: "T", Content: "body", Status: constants.PostStatusPublished}
		if err := postRepo.CreateWithRelations(post, []uint{category.ID}, nil); err != nil {
			t.Fatalf("创建文章失败: %v", err)
		}
	}

	count, err := categoryRepo.CountPosts(category.ID)
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if count != 3 {
		t.Fatalf("期望引用数 3, got %d", count)
	}
}

func TestTagDeleteWithLinks(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	tagRepo := NewTagRepository(db)
	category := seedCategory(t, db, "Engineering")

	for i := 0; i < 2; i++ {
		post := &models.Post{Slug: fmt.Sprintf("tagged-%d", i), Title: "T", Content: "body", Status: constants.PostStatusPublished}
		if err := postRepo.CreateWithRelations(post, []uint{category.ID}, []string{"go"}); err != nil {
			t.Fatalf("创建文章失败: %v", err)
		}
	}
	tag, err := tagRepo.GetByName("go")
	if err != nil || tag == nil {
		t.Fatalf("查询标签失败: %v", err)
	}

	detached, err := tagRepo.DeleteWithLinks(tag.ID)
	if err != nil {
		t.Fatalf("删除标签失败: %v", err)
	}
	if detached != 2 {
		t.Fatalf("期望解除 2 个关联, got %d", detached)
	}
	got, err := tagRepo.GetByName("go")
	if err != nil {
		t.Fatalf("查询标签失败: %v", err)
	}
	if got != nil {
		t.Fatal("标签应已删除")
	}
}

func TestCommentDeleteWithReplies(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)

	post := &models.Post{Slug: "threaded", Title: "Threaded", Content: "body", Status: constants.PostStatusPublished}
	if err := postRepo.CreateWithRelations(post, nil, nil); err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}

	root := models.Comment{PostID: post.ID, Content: "root", IsApproved: true}
	if err := commentRepo.Create(&root); err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}
	child := models.Comment{PostID: post.ID, ParentID: &root.ID, Content: "child", IsApproved: true}
	if err := commentRepo.Create(&child); err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}
	grandchild := models.Comment{PostID: post.ID, ParentID: &child.ID, Content: "grandchild"}
	if err := commentRepo.Create(&grandchild); err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}
	sibling := models.Comment{PostID: post.ID, Content: "sibling", IsApproved: true}
	if err := commentRepo.Create(&sibling); err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}

	deleted, err := commentRepo.DeleteWithReplies(root.ID)
	if err != nil {
		t.Fatalf("删除评论失败: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("期望删除 3 条, got %d", deleted)
	}

	remaining, err := commentRepo.ListByPost(post.ID)
	if err != nil {
		t.Fatalf("查询评论失败: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != sibling.ID {
		t.Fatalf("应仅剩兄弟评论, got %+v", remaining)
	}
}
