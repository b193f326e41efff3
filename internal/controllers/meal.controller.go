package controllers

import (
	"net/http"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	repo repository.MealRepository
}

func NewMealController(repo repository.MealRepository) *MealController {
	return &MealController{repo: repo}
}

type mealFoodRequest struct {
	FoodItemID uint    `json:"food_item_id" binding:"required"`
	Servings   float64 `json:"servings" binding:"required,gt=0"`
}

type mealRequest struct {
	UserID   uint              `json:"user_id" binding:"required"`
	MealDate string            `json:"meal_date" binding:"required"`
	MealTime string            `json:"meal_time"`
	MealType string            `json:"meal_type" binding:"required"`
	Foods    []mealFoodRequest `json:"foods"`
}

// CreateMeal godoc
// @Summary Log a meal
// @Description Create a meal with its food items
// @Tags meal
// @Accept json
// @Produce json
// @Param meal body mealRequest true "Meal data"
// @Success 201 {object} map[string]interface{} "Meal created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /meal [post]
func (mc *MealController) CreateMeal(c *gin.Context) {
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	mealDate, err := time.Parse("2006-01-02", req.MealDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal date",
			"error":   "meal_date must be YYYY-MM-DD",
		})
		return
	}

	meal := models.Meal{
		UserID:   req.UserID,
		MealDate: mealDate,
		MealTime: req.MealTime,
		MealType: req.MealType,
	}
	for _, f := range req.Foods {
		meal.Foods = append(meal.Foods, models.MealFood{
			FoodItemID: f.FoodItemID,
			Servings:   f.Servings,
		})
	}

	if err := mc.repo.Create(&meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create meal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal created successfully",
		"data":    meal,
	})
}

// GetMealsByUserID godoc
// @Summary Get a user's meals
// @Description Optionally filter with from/to date query parameters
// @Tags meal
// @Produce json
// @Param user_id path int true "User ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Meals retrieved successfully"
// @Router /meal/user/{user_id} [get]
func (mc *MealController) GetMealsByUserID(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	var (
		meals []models.Meal
		err   error
	)
	from, to, rangeOK := dateRangeQuery(c)
	if !rangeOK {
		return
	}
	if !from.IsZero() {
		meals, err = mc.repo.FindByUserIDAndDateRange(userID, from, to)
	} else {
		meals, err = mc.repo.FindByUserID(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve meals",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meals retrieved successfully",
		"data":    meals,
	})
}

// GetMealByID godoc
// @Summary Get a meal by ID
// @Tags meal
// @Produce json
// @Param id path int true "Meal ID"
// @Success 200 {object} map[string]interface{} "Meal retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Meal not found"
// @Router /meal/{id} [get]
func (mc *MealController) GetMealByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	meal, err := mc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Meal not found",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal retrieved successfully",
		"data":    meal,
	})
}

// DeleteMeal godoc
// @Summary Delete a meal
// @Tags meal
// @Produce json
// @Param id path int true "Meal ID"
// @Success 200 {object} map[string]interface{} "Meal deleted successfully"
// @Router /meal/{id} [delete]
func (mc *MealController) DeleteMeal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := mc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete meal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meal deleted successfully",
	})
}
