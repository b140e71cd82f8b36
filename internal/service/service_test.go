package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkpress/inkpress/internal/models"
	"github.com/inkpress/inkpress/internal/repository"
)

type testEnv struct {
	db         *gorm.DB
	posts      *PostService
	categories *CategoryService
	tags       *TagService
	comments   *CommentService
}

func setupTestEnv(t *testing.T) *testEnv {
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

	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	return &testEnv{
		db:         db,
		posts:      NewPostService(postRepo, categoryRepo),
		categories: NewCategoryService(categoryRepo),
		tags:       NewTagService(tagRepo),
		comments:   NewCommentService(commentRepo, postRepo),
	}
}

func (e *testEnv) seedCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if err := e.db.Create(category).Error; err != nil {
		t.Fatalf("创建测试分类失败: %v", err)
	}
	return category
}

func (e *testEnv) seedPost(t *testing.T, title, status string, categoryID uint) *models.Post {
	t.Helper()
	post, err := e.posts.Create(PostInput{
		Title:       title,
		Content:     "body",
		Status:      status,
		CategoryIDs: FlexibleIDList{categoryID},
	}, "author")
	if err != nil {
		t.Fatalf("创建测试文章失败: %v", err)
	}
	return post
}

func (e *testEnv) seedComment(t *testing.T, postID uint, parentID *uint, username string, approved bool) *models.Comment {
	t.Helper()
	comment := &models.Comment{PostID: postID, ParentID: parentID, Content: "c", IsApproved: approved}
	if username != "" {
		comment.Username = &username
	}
	if err := e.db.Create(comment).Error; err != nil {
		t.Fatalf("创建测试评论失败: %v", err)
	}
	return comment
}
