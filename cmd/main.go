package main

import (
	"log"
	"net/http"
	"os"
	"runtime"
	"time"

	"fittrack/database"
	"fittrack/docs"
	"fittrack/internal/cache"
	"fittrack/internal/controllers"
	"fittrack/internal/repository"
	"fittrack/internal/services"
	"fittrack/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Swagger documentation
	docs.SwaggerInfo.Title = "FitTrack API"
	docs.SwaggerInfo.Description = "Fitness tracking and progress analytics API."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to database and migrate
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	biometricRepo := repository.NewBiometricRepository(database.DB)
	workoutRepo := repository.NewWorkoutRepository(database.DB)
	mealRepo := repository.NewMealRepository(database.DB)
	goalRepo := repository.NewGoalRepository(database.DB)
	catalogRepo := repository.NewCatalogRepository(database.DB)

	// Report cache is optional: without Redis the analytics endpoints
	// compute every request.
	var reportCache *cache.ReportCache
	if os.Getenv("REDIS_URL") != "" {
		var err error
		reportCache, err = cache.NewReportCache(5 * time.Minute)
		if err != nil {
			log.Printf("Warning: report cache unavailable: %v", err)
			reportCache = nil
		} else {
			defer reportCache.Close()
			log.Println("Report cache connected")
		}
	}

	// Report service and batch runner
	reportService := services.NewReportService(userRepo, biometricRepo, workoutRepo, mealRepo, goalRepo)

	workerCount := runtime.NumCPU()
	if workerCount < 4 {
		workerCount = 4
	}
	batchRunner := services.NewBatchRunner(reportService, workerCount)

	// Initialize controllers
	userController := controllers.NewUserController(userRepo)
	biometricController := controllers.NewBiometricController(biometricRepo)
	workoutController := controllers.NewWorkoutController(workoutRepo)
	mealController := controllers.NewMealController(mealRepo)
	goalController := controllers.NewGoalController(goalRepo)
	catalogController := controllers.NewCatalogController(catalogRepo)
	analyticsController := controllers.NewAnalyticsController(reportService, batchRunner, reportCache)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "FitTrack API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterBiometricRoutes(router, biometricController)
	routes.RegisterWorkoutRoutes(router, workoutController)
	routes.RegisterMealRoutes(router, mealController)
	routes.RegisterGoalRoutes(router, goalController)
	routes.RegisterCatalogRoutes(router, catalogController)
	routes.RegisterAnalyticsRoutes(router, analyticsController)
	routes.RegisterSwaggerRoutes(router)

	// Debug endpoints
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		c.JSON(200, gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  m.Alloc / 1024 / 1024,
			"workers":    workerCount,
		})
	})

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"database_health": false, "error": err.Error()})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{"database_health": err == nil && result == 1})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
