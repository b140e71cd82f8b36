package main

import (
	"github.com/inkpress/inkpress/internal/config"
	"github.com/inkpress/inkpress/internal/constants"
	"github.com/inkpress/inkpress/internal/logger"
	"github.com/inkpress/inkpress/internal/models"
	"github.com/inkpress/inkpress/internal/repository"
	"github.com/inkpress/inkpress/internal/service"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	users := repository.NewUserRepository(models.DB)
	posts := repository.NewPostRepository(models.DB)
	categories := repository.NewCategoryRepository(models.DB)
	comments := repository.NewCommentRepository(models.DB)
	authService := service.NewAuthService(cfg, users)
	postService := service.NewPostService(posts, categories)
	commentService := service.NewCommentService(comments, posts)

	// 默认管理员
	if err := models.InitDefaultAdmin("admin", "Admin123456"); err != nil {
		stdLog.Fatalf("Failed to init default admin: %v", err)
	}

	// 普通用户
	reader, err := authService.Register(service.RegisterInput{
		Username:    "reader",
		Email:       "reader@example.com",
		Password:    "Reader123456",
		DisplayName: "热心读者",
	})
	if err != nil {
		stdLog.Printf("Skip seeding user reader: %v", err)
		reader, _ = users.GetByUsername("reader")
	}

	// 分类
	seedCategories := []models.Category{
		{Name: "Go", Description: "Go 语言开发实践"},
		{Name: "Web", Description: "Web 后端架构与工程化"},
		{Name: "随笔", Description: "日常思考与记录"},
	}
	for i := range seedCategories {
		existing, _ := categories.GetByName(seedCategories[i].Name)
		if existing != nil {
			seedCategories[i] = *existing
			continue
		}
		if err := categories.Create(&seedCategories[i]); err != nil {
			stdLog.Fatalf("Failed to seed category %s: %v", seedCategories[i].Name, err)
		}
	}

	// 文章（发布两篇、草稿一篇）
	seedPosts := []struct {
		input  service.PostInput
		author string
	}{
		{
			input: service.PostInput{
				Title:       "Hello InkPress",
				Excerpt:     "博客系统的第一篇文章",
				Content:     "# Hello\n\n欢迎使用 **InkPress**，一个服务端渲染友好的博客后端。",
				Status:      constants.PostStatusPublished,
				CategoryIDs: service.FlexibleIDList{seedCategories[2].ID},
				TagNames:    []string{"announcement"},
			},
			author: "admin",
		},
		{
			input: service.PostInput{
				Title:       "Building a Blog Backend in Go",
				Excerpt:     "用 Gin 和 GORM 搭一个博客后端",
				Content:     "## 背景\n\n本文介绍如何用 Gin + GORM 组织一个博客后端的分层结构。\n\n```go\nfunc main() {}\n```",
				Status:      constants.PostStatusPublished,
				CategoryIDs: service.FlexibleIDList{seedCategories[0].ID, seedCategories[1].ID},
				TagNames:    []string{"go", "gin", "gorm"},
			},
			author: "admin",
		},
		{
			input: service.PostInput{
				Title:       "Draft Notes on Comment Threads",
				Content:     "待整理：嵌套评论的可见性与回复计数。",
				Status:      constants.PostStatusDraft,
				CategoryIDs: service.FlexibleIDList{seedCategories[2].ID},
			},
			author: "admin",
		},
	}

	var published []*models.Post
	for _, seed := range seedPosts {
		post, err := postService.Create(seed.input, seed.author)
		if err != nil {
			stdLog.Printf("Skip seeding post %q: %v", seed.input.Title, err)
			continue
		}
		if post.Status == constants.PostStatusPublished {
			published = append(published, post)
		}
	}

	// 评论线程（根评论已审核，回复待审）
	if len(published) > 0 && reader != nil {
		viewer := service.Viewer{Username: reader.Username}
		root, err := commentService.Create(service.CreateCommentInput{
			PostID:  published[0].ID,
			Content: "写得很好，期待更多内容！",
		}, viewer)
		if err != nil {
			stdLog.Printf("Skip seeding root comment: %v", err)
		} else {
			if err := commentService.Approve(root.ID); err != nil {
				stdLog.Printf("Skip approving root comment: %v", err)
			}
			if _, err := commentService.Create(service.CreateCommentInput{
				PostID:   published[0].ID,
				ParentID: &root.ID,
				Content:  "同感，已经收藏。",
			}, viewer); err != nil {
				stdLog.Printf("Skip seeding reply comment: %v", err)
			}
		}
	}

	stdLog.Println("Seed completed.")
}
