package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMealRoutes(router *gin.Engine, mealController *controllers.MealController) {
	mealRoutes := router.Group("/meal")
	{
		mealRoutes.POST("/", middleware.AuthMiddleware(), mealController.CreateMeal)
		mealRoutes.GET("/user/:user_id", mealController.GetMealsByUserID)
		mealRoutes.GET("/:id", mealController.GetMealByID)
		mealRoutes.DELETE("/:id", middleware.AuthMiddleware(), mealController.DeleteMeal)
	}
}
