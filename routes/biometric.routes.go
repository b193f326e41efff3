package routes

import (
	"fittrack/internal/controllers"
	"fittrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterBiometricRoutes(router *gin.Engine, biometricController *controllers.BiometricController) {
	biometricRoutes := router.Group("/biometric")
	{
		biometricRoutes.POST("/", middleware.AuthMiddleware(), biometricController.CreateRecord)
		biometricRoutes.GET("/user/:user_id", biometricController.GetRecordsByUserID)
		biometricRoutes.GET("/:id", biometricController.GetRecordByID)
		biometricRoutes.DELETE("/:id", middleware.AuthMiddleware(), biometricController.DeleteRecord)
	}
}
