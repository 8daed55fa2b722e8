package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/campuskit/campus-portal/internal/config"
	"github.com/campuskit/campus-portal/internal/middleware"
	"github.com/campuskit/campus-portal/internal/token"

	noticeHttp "github.com/campuskit/campus-portal/internal/modules/notice/delivery/http"
	noticeRepo "github.com/campuskit/campus-portal/internal/modules/notice/repository"
	noticeService "github.com/campuskit/campus-portal/internal/modules/notice/service"

	personalfileHttp "github.com/campuskit/campus-portal/internal/modules/personalfile/delivery/http"
	personalfileRepo "github.com/campuskit/campus-portal/internal/modules/personalfile/repository"
	personalfileService "github.com/campuskit/campus-portal/internal/modules/personalfile/service"

	studentuploadHttp "github.com/campuskit/campus-portal/internal/modules/studentupload/delivery/http"
	studentuploadRepo "github.com/campuskit/campus-portal/internal/modules/studentupload/repository"
	studentuploadService "github.com/campuskit/campus-portal/internal/modules/studentupload/service"

	userHttp "github.com/campuskit/campus-portal/internal/modules/user/delivery/http"
	userRepo "github.com/campuskit/campus-portal/internal/modules/user/repository"
	userService "github.com/campuskit/campus-portal/internal/modules/user/service"
)

type Server struct {
	engine *gin.Engine
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := userRepo.NewUserRepository(db)
	authSvc := userService.NewAuthService(userRepo, codec, redisClient, cfg.LoginLockout)
	authHandler := userHttp.NewAuthHandler(authSvc)

	noticeRepo := noticeRepo.NewNoticeRepository(db)
	noticeSvc := noticeService.NewNoticeService(noticeRepo)
	noticeHandler := noticeHttp.NewNoticeHandler(noticeSvc, cfg.MaxUploadBytes)

	fileRepo := personalfileRepo.NewPersonalFileRepository(db)
	fileSvc := personalfileService.NewPersonalFileService(fileRepo)
	fileHandler := personalfileHttp.NewPersonalFileHandler(fileSvc, cfg.MaxUploadBytes)

	uploadRepo := studentuploadRepo.NewStudentUploadRepository(db)
	uploadSvc := studentuploadService.NewStudentUploadService(uploadRepo)
	uploadHandler := studentuploadHttp.NewStudentUploadHandler(uploadSvc, cfg.MaxUploadBytes)

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(codec)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes
	api.Use(authMiddleware.RequireAuth())
	{
		api.GET("/auth/verify", authHandler.Verify)

		admin := api.Group("/admin")
		admin.Use(authMiddleware.RequireRoles(token.RoleAdmin))
		{
			admin.POST("/users", authHandler.CreateUser)
		}

		notices := api.Group("/notices")
		{
			notices.POST("/teacher", authMiddleware.RequireRoles(token.RoleAdmin), noticeHandler.CreateTeacherNotice)
			notices.GET("/teacher", noticeHandler.ListTeacherNotices)
			notices.GET("/teacher/:id/file", noticeHandler.DownloadTeacherNotice)

			notices.POST("/hod", authMiddleware.RequireRoles(token.RoleTeacher), noticeHandler.CreateHODNotice)
			notices.GET("/hod", noticeHandler.ListHODNotices)
			notices.GET("/hod/:id/file", noticeHandler.DownloadHODNotice)
		}

		files := api.Group("/files")
		files.Use(authMiddleware.RequireRoles(token.RoleTeacher))
		{
			files.POST("", fileHandler.Create)
			files.GET("", fileHandler.List)
			files.GET("/:id/file", fileHandler.Download)
		}

		uploads := api.Group("/uploads")
		{
			uploads.POST("", authMiddleware.RequireRoles(token.RoleStudent), uploadHandler.Create)
			uploads.GET("", authMiddleware.RequireRoles(token.RoleStudent), uploadHandler.List)
			uploads.GET("/:id/file", authMiddleware.RequireRoles(token.RoleStudent, token.RoleTeacher, token.RoleAdmin), uploadHandler.Download)
		}
	}

	return &Server{engine: router}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
