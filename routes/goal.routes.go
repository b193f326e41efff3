package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterGoalRoutes(router *gin.Engine, goalController *controllers.GoalController) {
	goalRoutes := router.Group("/goal")
	{
		goalRoutes.POST("/", middleware.AuthMiddleware(), goalController.CreateGoal)
		goalRoutes.GET("/user/:user_id", goalController.GetGoalsByUserID)
		goalRoutes.GET("/:id", goalController.GetGoalByID)
		goalRoutes.PUT("/:id", middleware.AuthMiddleware(), goalController.UpdateGoal)
		goalRoutes.DELETE("/:id", middleware.AuthMiddleware(), goalController.DeleteGoal)
	}
}
