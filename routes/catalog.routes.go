package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterCatalogRoutes(router *gin.Engine, catalogController *controllers.CatalogController) {
	catalogRoutes := router.Group("/catalog")
	{
		catalogRoutes.POST("/exercise-types", middleware.AuthMiddleware(), catalogController.CreateExerciseType)
		catalogRoutes.GET("/exercise-types", catalogController.ListExerciseTypes)
		catalogRoutes.POST("/food-items", middleware.AuthMiddleware(), catalogController.CreateFoodItem)
		catalogRoutes.GET("/food-items", catalogController.ListFoodItems)
	}
}
