package routes

import (
	"fittrack/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAnalyticsRoutes(router *gin.Engine, analyticsController *controllers.AnalyticsController) {
	analyticsRoutes := router.Group("/analytics")
	{
		analyticsRoutes.GET("/users/:user_id/vitals", analyticsController.GetUserVitals)
		analyticsRoutes.GET("/users/:user_id/weight-trend", analyticsController.GetWeightTrend)
		analyticsRoutes.GET("/users/:user_id/progression/strength", analyticsController.GetStrengthProgression)
		analyticsRoutes.GET("/users/:user_id/progression/endurance", analyticsController.GetEnduranceProgression)
		analyticsRoutes.GET("/users/:user_id/nutrition", analyticsController.GetNutritionSummary)
		analyticsRoutes.GET("/users/:user_id/goals", analyticsController.GetGoalCompletion)
		analyticsRoutes.GET("/gender-distribution", analyticsController.GetGenderDistribution)
		analyticsRoutes.GET("/heart-rate-drop", analyticsController.GetHeartRateDrop)
		analyticsRoutes.GET("/popular-exercises", analyticsController.GetPopularExercises)
		analyticsRoutes.GET("/consistency", analyticsController.GetConsistency)
		analyticsRoutes.GET("/workout-weight-correlation", analyticsController.GetWorkoutWeightCorrelation)
		analyticsRoutes.POST("/batch", analyticsController.RunBatchProgress)
	}
}
