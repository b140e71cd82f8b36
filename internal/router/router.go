package router

import (
	"fmt"
	"strings"

	"github.com/inkpress/inkpress/internal/cache"
	"github.com/inkpress/inkpress/internal/config"
	"github.com/inkpress/inkpress/internal/constants"
	adminhandlers "github.com/inkpress/inkpress/internal/http/handlers/admin"
	publichandlers "github.com/inkpress/inkpress/internal/http/handlers/public"
	"github.com/inkpress/inkpress/internal/logger"
	"github.com/inkpress/inkpress/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "ink"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}
	registerRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:register", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.register_too_many",
	}
	commentRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:comment", redisPrefix),
		WindowSeconds: cfg.Security.CommentRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CommentRateLimit.MaxAttempts,
		MessageKey:    "error.comment_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（本地存储后端的上传图片）
	if cfg.Upload.Backend == constants.StorageBackendLocal {
		r.Static("/uploads", cfg.Upload.Dir)
	}

	// 站点地图
	r.GET("/sitemap.xml", publicHandler.Sitemap)

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口（可选登录态，影响草稿/待审可见性）
		public := apiV1.Group("")
		public.Use(OptionalAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			public.GET("/posts", publicHandler.ListPosts)
			public.GET("/posts/:slug", publicHandler.GetPost)
			public.GET("/posts/:slug/comments", publicHandler.ListComments)
			public.GET("/categories", publicHandler.ListCategories)
			public.GET("/tags", publicHandler.ListTags)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.GET("/captcha", publicHandler.GetCaptcha)
			auth.POST("/register", RateLimitMiddleware(redisClient, registerRule, KeyByIP), publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), publicHandler.Login)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.Me)
			user.PUT("/me/password", publicHandler.ChangePassword)
			user.POST("/comments", RateLimitMiddleware(redisClient, commentRule, KeyByIP), publicHandler.CreateComment)
			user.DELETE("/comments/:id", publicHandler.DeleteComment)
		}

		// 后台接口（需鉴权 + RBAC）
		admin := apiV1.Group("/admin")
		admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		admin.Use(AdminRBACMiddleware(c.AuthzService))
		{
			admin.GET("/dashboard", adminHandler.GetDashboard)

			admin.GET("/posts", adminHandler.ListAdminPosts)
			admin.POST("/posts", adminHandler.CreateAdminPost)
			admin.GET("/posts/:id", adminHandler.GetAdminPost)
			admin.PUT("/posts/:id", adminHandler.UpdateAdminPost)
			admin.DELETE("/posts/:id", adminHandler.DeleteAdminPost)

			admin.GET("/categories", adminHandler.ListAdminCategories)
			admin.POST("/categories", adminHandler.CreateAdminCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateAdminCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteAdminCategory)

			admin.GET("/tags", adminHandler.ListAdminTags)
			admin.DELETE("/tags/:id", adminHandler.DeleteAdminTag)

			admin.GET("/comments", adminHandler.ListAdminComments)
			admin.POST("/comments/:id/approve", adminHandler.ApproveAdminComment)
			admin.DELETE("/comments/:id", adminHandler.DeleteAdminComment)

			admin.POST("/upload", adminHandler.UploadImage)

			admin.GET("/users", adminHandler.ListAdminUsers)
			admin.PUT("/users/:id/roles", adminHandler.SetAdminUserRoles)
			admin.PUT("/users/:id/status", adminHandler.SetAdminUserStatus)
		}
	}

	return r
}
