package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutes := router.Group("/user")
	{
		userRoutes.POST("/register", userController.RegisterUser)
		userRoutes.POST("/login", userController.Login)
		userRoutes.GET("/:id", userController.GetUserByID)
		userRoutes.PUT("/:id", middleware.AuthMiddleware(), userController.UpdateUser)
		userRoutes.DELETE("/:id", middleware.AuthMiddleware(), userController.DeleteUser)
	}
}
