package provider

import (
	"context"

	"github.com/inkpress/inkpress/internal/authz"
	"github.com/inkpress/inkpress/internal/cache"
	"github.com/inkpress/inkpress/internal/config"
	"github.com/inkpress/inkpress/internal/constants"
	"github.com/inkpress/inkpress/internal/logger"
	"github.com/inkpress/inkpress/internal/markdown"
	"github.com/inkpress/inkpress/internal/models"
	"github.com/inkpress/inkpress/internal/repository"
	"github.com/inkpress/inkpress/internal/service"
	"github.com/inkpress/inkpress/internal/storage"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	UserRepo     repository.UserRepository
	PostRepo     repository.PostRepository
	CategoryRepo repository.CategoryRepository
	TagRepo      repository.TagRepository
	CommentRepo  repository.CommentRepository

	// Services
	AuthzService     *authz.Service
	AuthService      *service.AuthService
	CaptchaService   *service.CaptchaService
	PostService      *service.PostService
	CategoryService  *service.CategoryService
	TagService       *service.TagService
	CommentService   *service.CommentService
	UploadService    *service.UploadService
	SitemapService   *service.SitemapService
	DashboardService *service.DashboardService

	Markdown *markdown.Renderer
	Storage  storage.Backend
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.TagRepo = repository.NewTagRepository(db)
	c.CommentRepo = repository.NewCommentRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.Storage = c.buildStorageBackend()

	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.PostService = service.NewPostService(c.PostRepo, c.CategoryRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.TagService = service.NewTagService(c.TagRepo)
	c.CommentService = service.NewCommentService(c.CommentRepo, c.PostRepo)
	c.UploadService = service.NewUploadService(c.Config, c.Storage)
	c.SitemapService = service.NewSitemapService(c.PostRepo, c.CategoryRepo, c.Config.Site.BaseURL)
	c.DashboardService = service.NewDashboardService(c.PostRepo, c.CommentRepo, c.CategoryRepo, c.TagRepo, c.UserRepo)
	c.Markdown = markdown.NewRenderer()
}

// buildStorageBackend 按配置选择存储后端，S3 初始化失败时回退本地磁盘
func (c *Container) buildStorageBackend() storage.Backend {
	if c.Config.Upload.Backend == constants.StorageBackendS3 {
		backend, err := storage.NewMinioBackend(context.Background(), c.Config.Upload.S3)
		if err != nil {
			logger.Errorw("provider_init_s3_failed", "error", err)
		} else {
			return backend
		}
	}
	dir := c.Config.Upload.Dir
	if dir == "" {
		dir = "uploads"
	}
	return storage.NewLocalBackend(dir)
}
