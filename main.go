package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/thatboywest/elearningbackend/app/controllers"
	"github.com/thatboywest/elearningbackend/app/controllers/admin"
	chapterctrl "github.com/thatboywest/elearningbackend/app/controllers/chapter"
	coursectrl "github.com/thatboywest/elearningbackend/app/controllers/course"
	"github.com/thatboywest/elearningbackend/app/queries"
	"github.com/thatboywest/elearningbackend/app/routes"
	"github.com/thatboywest/elearningbackend/app/services"
	"github.com/thatboywest/elearningbackend/pkg/config"
	"github.com/thatboywest/elearningbackend/pkg/database"
	"github.com/thatboywest/elearningbackend/pkg/encryption"
	"github.com/thatboywest/elearningbackend/pkg/middleware"
	"github.com/thatboywest/elearningbackend/pkg/storage"
	"github.com/thatboywest/elearningbackend/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Logger.Sugar().Fatalf("Failed to load configuration: %v", err)
	}

	encryption.InitSnowflake(cfg.MachineID)
	utils.InitValidator()

	client, db, err := database.Connect(cfg)
	if err != nil {
		utils.Logger.Sugar().Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			utils.Logger.Sugar().Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	if err := database.SetupIndexes(db); err != nil {
		utils.Logger.Sugar().Fatalf("Failed to set up indexes: %v", err)
	}

	uploader, err := storage.NewS3Uploader(cfg)
	if err != nil {
		utils.Logger.Sugar().Fatalf("Failed to connect to object storage: %v", err)
	}

	courseQueries := queries.NewCourseQueries(db)
	chapterQueries := queries.NewChapterQueries(db)
	userQueries := queries.NewUserQueries(db)

	courseService := services.NewCourseService(courseQueries, chapterQueries)
	chapterService := services.NewChapterService(courseQueries, chapterQueries, uploader)
	authService := services.NewAuthService(userQueries, cfg.JWTSecretKey)
	reconcileService := services.NewReconcileService(courseQueries, chapterQueries)

	r := gin.New()
	r.Use(gin.Recovery())
	// use custom logger
	r.Use(middleware.CustomLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	routes.AuthRoute(api, controllers.NewAuthController(authService))
	routes.CourseRoute(api, coursectrl.NewController(courseService))
	routes.ChapterRoute(api, chapterctrl.NewController(chapterService), cfg.JWTSecretKey)
	routes.AdminRoute(api, admin.NewController(reconcileService), cfg.JWTSecretKey)

	utils.PrintAppBanner(cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		utils.Logger.Sugar().Fatalf("Server failed to start: %v", err)
	}
}
