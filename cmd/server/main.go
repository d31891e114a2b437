package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/foliohub/portfolio-api/internal/config"
	"github.com/foliohub/portfolio-api/internal/constants"
	"github.com/foliohub/portfolio-api/internal/database"
	"github.com/foliohub/portfolio-api/internal/handlers"
	"github.com/foliohub/portfolio-api/internal/middleware"
	"github.com/foliohub/portfolio-api/internal/repository"
	"github.com/foliohub/portfolio-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// CORS for the browser dashboard
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	postRepo := repository.NewBlogPostRepository(db)
	linkRepo := repository.NewSocialLinkRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	profileService := services.NewProfileService(profileRepo)
	projectService := services.NewProjectService(projectRepo)
	skillService := services.NewSkillService(skillRepo)
	blogService := services.NewBlogService(postRepo)
	linkService := services.NewSocialLinkService(linkRepo)
	portfolioService := services.NewPortfolioService(profileRepo, projectRepo, skillRepo, postRepo, linkRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	projectHandler := handlers.NewProjectHandler(projectService)
	skillHandler := handlers.NewSkillHandler(skillService)
	blogHandler := handlers.NewBlogHandler(blogService)
	linkHandler := handlers.NewSocialLinkHandler(linkService)
	publicHandler := handlers.NewPublicHandler(portfolioService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Portfolio API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Public portfolio routes (no auth)
		public := api.Group("/public")
		{
			public.GET("/profiles/:username", publicHandler.GetPortfolio)
			public.GET("/profiles/:username/blog", publicHandler.ListUserPosts)
			public.GET("/blog", publicHandler.ListPosts)
			public.GET("/blog/:slug", publicHandler.GetPost)
		}

		// Own profile (protected)
		profile := api.Group("/profile")
		profile.Use(middleware.RequireAuth())
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		// Skill routes (protected)
		skills := api.Group("/skills")
		skills.Use(middleware.RequireAuth())
		{
			skills.GET("", skillHandler.ListSkills)
			skills.POST("", skillHandler.CreateSkill)
			skills.PUT("/:id", skillHandler.UpdateSkill)
			skills.DELETE("/:id", skillHandler.DeleteSkill)
		}

		// Social link routes (protected)
		links := api.Group("/social-links")
		links.Use(middleware.RequireAuth())
		{
			links.GET("", linkHandler.ListLinks)
			links.POST("", linkHandler.CreateLink)
			links.PUT("/reorder", linkHandler.ReorderLinks)
			links.PUT("/:id", linkHandler.UpdateLink)
			links.DELETE("/:id", linkHandler.DeleteLink)
		}

		// Blog routes (protected)
		blog := api.Group("/blog")
		blog.Use(middleware.RequireAuth())
		{
			blog.GET("", blogHandler.ListPosts)
			blog.POST("", blogHandler.CreatePost)
			blog.GET("/suggest-slug", blogHandler.SuggestSlug)
			blog.PUT("/:id", blogHandler.UpdatePost)
			blog.DELETE("/:id", blogHandler.DeletePost)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
