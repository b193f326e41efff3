package controllers

import (
	"net/http"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	repo repository.GoalRepository
}

func NewGoalController(repo repository.GoalRepository) *GoalController {
	return &GoalController{repo: repo}
}

type goalRequest struct {
	UserID       uint    `json:"user_id" binding:"required"`
	GoalType     string  `json:"goal_type" binding:"required"`
	TargetValue  float64 `json:"target_value" binding:"required"`
	CurrentValue float64 `json:"current_value"`
	StartDate    string  `json:"start_date" binding:"required"`
	TargetDate   string  `json:"target_date" binding:"required"`
}

// CreateGoal godoc
// @Summary Create a goal
// @Description Create a goal; start_date must not be after target_date
// @Tags goal
// @Accept json
// @Produce json
// @Param goal body goalRequest true "Goal data"
// @Success 201 {object} map[string]interface{} "Goal created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /goal [post]
func (gc *GoalController) CreateGoal(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid start date",
			"error":   "start_date must be YYYY-MM-DD",
		})
		return
	}
	targetDate, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid target date",
			"error":   "target_date must be YYYY-MM-DD",
		})
		return
	}
	if startDate.After(targetDate) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid goal window",
			"error":   "start_date must not be after target_date",
		})
		return
	}

	goal := models.Goal{
		UserID:       req.UserID,
		GoalType:     req.GoalType,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		StartDate:    startDate,
		TargetDate:   targetDate,
	}
	if err := gc.repo.Create(&goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create goal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Goal created successfully",
		"data":    goal,
	})
}

// GetGoalsByUserID godoc
// @Summary Get a user's goals
// @Description Optionally filter by goal type query parameter
// @Tags goal
// @Produce json
// @Param user_id path int true "User ID"
// @Param type query string false "Goal type"
// @Success 200 {object} map[string]interface{} "Goals retrieved successfully"
// @Router /goal/user/{user_id} [get]
func (gc *GoalController) GetGoalsByUserID(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	var (
		goals []models.Goal
		err   error
	)
	if goalType := c.Query("type"); goalType != "" {
		goals, err = gc.repo.FindByUserIDAndType(userID, goalType)
	} else {
		goals, err = gc.repo.FindByUserID(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve goals",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goals retrieved successfully",
		"data":    goals,
	})
}

// GetGoalByID godoc
// @Summary Get a goal by ID
// @Tags goal
// @Produce json
// @Param id path int true "Goal ID"
// @Success 200 {object} map[string]interface{} "Goal retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Router /goal/{id} [get]
func (gc *GoalController) GetGoalByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	goal, err := gc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Goal not found",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goal retrieved successfully",
		"data":    goal,
	})
}

// UpdateGoal godoc
// @Summary Update a goal
// @Description Update current value or completion flag
// @Tags goal
// @Accept json
// @Produce json
// @Param id path int true "Goal ID"
// @Param goal body models.Goal true "Goal data"
// @Success 200 {object} map[string]interface{} "Goal updated successfully"
// @Router /goal/{id} [put]
func (gc *GoalController) UpdateGoal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	goal, err := gc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Goal not found",
			"error":   err.Error(),
		})
		return
	}

	if err := c.ShouldBindJSON(goal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	goal.ID = id

	if goal.StartDate.After(goal.TargetDate) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid goal window",
			"error":   "start_date must not be after target_date",
		})
		return
	}

	if err := gc.repo.Update(goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update goal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goal updated successfully",
		"data":    goal,
	})
}

// DeleteGoal godoc
// @Summary Delete a goal
// @Tags goal
// @Produce json
// @Param id path int true "Goal ID"
// @Success 200 {object} map[string]interface{} "Goal deleted successfully"
// @Router /goal/{id} [delete]
func (gc *GoalController) DeleteGoal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := gc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete goal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goal deleted successfully",
	})
}
