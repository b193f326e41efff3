package controllers

import (
	"net/http"

	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

// CatalogController manages the reference tables: exercise types and food
// items.
type CatalogController struct {
	repo repository.CatalogRepository
}

func NewCatalogController(repo repository.CatalogRepository) *CatalogController {
	return &CatalogController{repo: repo}
}

// CreateExerciseType godoc
// @Summary Add an exercise type
// @Tags catalog
// @Accept json
// @Produce json
// @Param exercise_type body models.ExerciseType true "Exercise type"
// @Success 201 {object} map[string]interface{} "Exercise type created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /catalog/exercise-types [post]
func (cc *CatalogController) CreateExerciseType(c *gin.Context) {
	var et models.ExerciseType
	if err := c.ShouldBindJSON(&et); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := cc.repo.CreateExerciseType(&et); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create exercise type",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Exercise type created successfully",
		"data":    et,
	})
}

// ListExerciseTypes godoc
// @Summary List exercise types
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Exercise types retrieved successfully"
// @Router /catalog/exercise-types [get]
func (cc *CatalogController) ListExerciseTypes(c *gin.Context) {
	types, err := cc.repo.FindAllExerciseTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve exercise types",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Exercise types retrieved successfully",
		"data":    types,
	})
}

// CreateFoodItem godoc
// @Summary Add a food item
// @Tags catalog
// @Accept json
// @Produce json
// @Param food_item body models.FoodItem true "Food item"
// @Success 201 {object} map[string]interface{} "Food item created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /catalog/food-items [post]
func (cc *CatalogController) CreateFoodItem(c *gin.Context) {
	var item models.FoodItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := cc.repo.CreateFoodItem(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create food item",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food item created successfully",
		"data":    item,
	})
}

// ListFoodItems godoc
// @Summary List food items
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Food items retrieved successfully"
// @Router /catalog/food-items [get]
func (cc *CatalogController) ListFoodItems(c *gin.Context) {
	items, err := cc.repo.FindAllFoodItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve food items",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food items retrieved successfully",
		"data":    items,
	})
}
