package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "edumart/internal/controller/http"
	"edumart/internal/model"
	"edumart/internal/repo/persistent"
	"edumart/internal/usecase"
	"edumart/pkg/cache"
	"edumart/pkg/config"
	"edumart/pkg/database"
	"edumart/pkg/jwt"
	"edumart/pkg/logger"
	"edumart/pkg/middleware"
	"edumart/pkg/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	jwtService  *jwt.Service
	uploads     *upload.Saver
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.SellerModel{},
		&model.CourseModel{},
		&model.ProductModel{},
	); err != nil {
		log.Error("Failed to run migrations: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (rate limiting disabled)", err)
		// Redis only backs rate limiting; the API works without it
		redisClient = nil
	}

	uploads, err := upload.NewSaver(cfg.UploadDir, "course", "product")
	if err != nil {
		log.Error("Failed to prepare upload directories: %v", err)
		return nil, err
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		jwtService:  jwtService,
		uploads:     uploads,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	sellerRepo := persistent.NewSellerRepository(a.db)
	courseRepo := persistent.NewCourseRepository(a.db)
	productRepo := persistent.NewProductRepository(a.db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.log)
	sellerAuthUseCase := usecase.NewSellerAuthUseCase(sellerRepo, a.jwtService, a.log)
	courseUseCase := usecase.NewCourseUseCase(courseRepo, a.uploads, a.log)
	productUseCase := usecase.NewProductUseCase(productRepo, a.uploads, a.log)
	adminUseCase := usecase.NewAdminUseCase(userRepo, sellerRepo, courseRepo, productRepo, a.log)

	// Initialize HTTP handlers
	authHandler := handlers.NewAuthHandler(authUseCase)
	sellerHandler := handlers.NewSellerHandler(sellerAuthUseCase)
	courseHandler := handlers.NewCourseHandler(courseUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	adminHandler := handlers.NewAdminHandler(adminUseCase)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Credential endpoints get a tighter rate limit than the rest of the API
	loginLimiter := func(c *gin.Context) { c.Next() }
	if a.redisClient != nil {
		loginLimiter = middleware.RateLimitMiddleware(a.redisClient, 10, time.Minute)
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "EduMart API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded images are served straight from local disk
	r.Static("/uploads", a.uploads.Dir())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", loginLimiter, authHandler.Register)
			auth.POST("/login", loginLimiter, authHandler.Login)
			auth.POST("/admin/login", loginLimiter, authHandler.AdminLogin)
			auth.GET("/profile", handlers.UserAuth(a.jwtService, userRepo), authHandler.Profile)
		}

		seller := api.Group("/seller")
		{
			seller.POST("/register", loginLimiter, sellerHandler.Register)
			seller.POST("/login", loginLimiter, sellerHandler.Login)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", courseHandler.List)
			courses.GET("/seller/:sellerId", courseHandler.GetBySeller)
			courses.GET("/:id", courseHandler.Get)
			courses.POST("", handlers.SellerAuth(a.jwtService, sellerRepo), courseHandler.Create)
			courses.PUT("/:id", handlers.SellerAuth(a.jwtService, sellerRepo), courseHandler.Update)
			courses.DELETE("/:id", handlers.SellerAuth(a.jwtService, sellerRepo), courseHandler.Delete)
			courses.POST("/:id/enroll", handlers.UserAuth(a.jwtService, userRepo), courseHandler.Enroll)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/seller/:sellerId", productHandler.GetBySeller)
			products.GET("/:id", productHandler.Get)
			products.POST("", handlers.SellerAuth(a.jwtService, sellerRepo), productHandler.Create)
			products.PUT("/:id", handlers.SellerAuth(a.jwtService, sellerRepo), productHandler.Update)
			products.DELETE("/:id", handlers.SellerAuth(a.jwtService, sellerRepo), productHandler.Delete)
		}

		admin := api.Group("/admin")
		admin.Use(handlers.UserAuth(a.jwtService, userRepo), handlers.AdminOnly())
		{
			admin.GET("/stats", adminHandler.Stats)
			admin.GET("/users", adminHandler.ListAccounts)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.GET("/courses", adminHandler.ListCourses)
			admin.DELETE("/courses/:id", adminHandler.DeleteCourse)
			admin.GET("/products", adminHandler.ListProducts)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("EduMart API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down EduMart API...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("EduMart API exited")
	return nil
}
