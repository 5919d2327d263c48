package main

import (
	"log"

	"github.com/vitos-sk/MOST/internal/config"
	"github.com/vitos-sk/MOST/internal/database"
	"github.com/vitos-sk/MOST/internal/handlers"
	"github.com/vitos-sk/MOST/internal/middleware"
	"github.com/vitos-sk/MOST/internal/services"

	_ "github.com/vitos-sk/MOST/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           MOST Voting API
// @version         1.0
// @description     API for the MOST Telegram Mini App: categories of code questions, vote aggregation and the admin panel
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	categoryService := services.NewCategoryService(db)
	questionService := services.NewQuestionService(db)
	voteService := services.NewVoteService(db)
	userService := services.NewUserService(db)
	adminService := services.NewAdminService(db, cfg.JWTSecret)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" && !adminService.IsAdmin(cfg.AdminEmail) {
		if _, err := adminService.Create(cfg.AdminEmail, cfg.AdminPassword, "admin"); err != nil {
			log.Printf("failed to seed admin %s: %v", cfg.AdminEmail, err)
		} else {
			log.Printf("seeded admin %s", cfg.AdminEmail)
		}
	}

	categoryHandler := handlers.NewCategoryHandler(categoryService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	voteHandler := handlers.NewVoteHandler(voteService)
	userHandler := handlers.NewUserHandler(userService)
	adminHandler := handlers.NewAdminHandler(adminService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Telegram-Init-Data"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.BotToken == "" {
		log.Println("BOT_TOKEN not set, telegram init data cannot be verified")
	}

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", adminHandler.Login)
			auth.GET("/check", adminHandler.Check)
		}

		app := api.Group("")
		app.Use(middleware.TelegramAuth(cfg.BotToken))
		{
			app.POST("/users/init", userHandler.Init)
			app.GET("/users/me/votes", voteHandler.ListMine)
			app.GET("/categories", categoryHandler.List)
			app.GET("/categories/:id", categoryHandler.Get)
			app.GET("/categories/:id/questions", questionHandler.ListByCategory)
			app.GET("/categories/:id/questions/unanswered", questionHandler.ListUnanswered)
			app.GET("/questions/:id", questionHandler.Get)
			app.GET("/questions/:id/votes", voteHandler.ListByQuestion)
			app.POST("/votes", voteHandler.Cast)
		}

		admin := api.Group("")
		admin.Use(middleware.AdminAuth(adminService))
		{
			admin.POST("/categories", categoryHandler.Create)
			admin.DELETE("/categories/:id", categoryHandler.Delete)
			admin.GET("/questions", questionHandler.ListAll)
			admin.POST("/questions", questionHandler.Create)
			admin.DELETE("/questions/:id", questionHandler.Delete)
			admin.GET("/users", userHandler.List)
			admin.POST("/admins", adminHandler.CreateAdmin)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
