package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterWorkoutRoutes(router *gin.Engine, workoutController *controllers.WorkoutController) {
	workoutRoutes := router.Group("/workout")
	{
		workoutRoutes.POST("/", middleware.AuthMiddleware(), workoutController.CreateWorkout)
		workoutRoutes.GET("/user/:user_id", workoutController.GetWorkoutsByUserID)
		workoutRoutes.GET("/:id", workoutController.GetWorkoutByID)
		workoutRoutes.DELETE("/:id", middleware.AuthMiddleware(), workoutController.DeleteWorkout)
	}
}
