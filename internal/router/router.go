package router

import (
	"coastwatch/config"
	"coastwatch/internal/domain"
	"coastwatch/internal/handler"
	"coastwatch/internal/middleware"
	"coastwatch/internal/repository"
	"coastwatch/internal/service"
	"coastwatch/pkg/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, mongoDB *mongo.Database, media *storage.LocalStore) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Repositories
	citizenRepo := repository.NewCitizenRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	volunteerRepo := repository.NewVolunteerRepository(db)
	ngoRepo := repository.NewNGORepository(db)
	uploadRepo := repository.NewUploadRepository(db)
	documentRepo := repository.NewDocumentRepository(mongoDB, cfg.Mongo.Collection)
	socialRepo := repository.NewSocialPostRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, citizenRepo, employeeRepo, volunteerRepo, ngoRepo)
	reportSvc := service.NewReportService(citizenRepo, uploadRepo, documentRepo, media, cfg.Upload.URLPrefix)
	moderationSvc := service.NewModerationService(uploadRepo, documentRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	adminHandler := handler.NewAdminHandler(moderationSvc, authSvc, ngoRepo)
	socialHandler := handler.NewSocialHandler(socialRepo)
	mediaHandler := handler.NewMediaHandler(media)

	authMw := middleware.AuthRequired(&cfg.JWT)
	staffMw := middleware.RequireRole(domain.RoleEmployee)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/staff/login", authHandler.StaffLogin)
		}

		api.POST("/reports", reportHandler.Create)
		api.GET("/reports", reportHandler.List)
		api.GET("/overview", reportHandler.Overview)

		admin := api.Group("/admin")
		admin.Use(authMw, staffMw)
		{
			admin.POST("/reports/:id/approve", adminHandler.Approve)
			admin.POST("/reports/:id/reject", adminHandler.Reject)
			admin.POST("/ngos", adminHandler.CreateNGO)
			admin.POST("/volunteers", adminHandler.CreateVolunteer)
		}

		social := api.Group("/social")
		{
			social.POST("/posts", socialHandler.StorePost)
			social.GET("/posts", socialHandler.Recent)
		}
	}

	r.GET("/uploads/:filename", mediaHandler.Serve)

	return r
}
