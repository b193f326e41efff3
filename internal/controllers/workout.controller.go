package controllers

import (
	"net/http"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	repo repository.WorkoutRepository
}

func NewWorkoutController(repo repository.WorkoutRepository) *WorkoutController {
	return &WorkoutController{repo: repo}
}

type workoutExerciseRequest struct {
	ExerciseTypeID uint     `json:"exercise_type_id" binding:"required"`
	Sets           *int     `json:"sets"`
	Reps           *int     `json:"reps"`
	WeightKg       *float64 `json:"weight_kg"`
	DurationMin    *float64 `json:"duration_minutes"`
	DistanceKm     *float64 `json:"distance_km"`
}

type workoutRequest struct {
	UserID      uint                     `json:"user_id" binding:"required"`
	WorkoutDate string                   `json:"workout_date" binding:"required"`
	StartTime   string                   `json:"start_time"`
	EndTime     string                   `json:"end_time"`
	Notes       string                   `json:"notes"`
	Exercises   []workoutExerciseRequest `json:"exercises"`
}

// CreateWorkout godoc
// @Summary Log a workout
// @Description Create a workout session with its exercises
// @Tags workout
// @Accept json
// @Produce json
// @Param workout body workoutRequest true "Workout data"
// @Success 201 {object} map[string]interface{} "Workout created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /workout [post]
func (wc *WorkoutController) CreateWorkout(c *gin.Context) {
	var req workoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	workoutDate, err := time.Parse("2006-01-02", req.WorkoutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid workout date",
			"error":   "workout_date must be YYYY-MM-DD",
		})
		return
	}

	workout := models.Workout{
		UserID:      req.UserID,
		WorkoutDate: workoutDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Notes:       req.Notes,
	}
	for _, e := range req.Exercises {
		workout.Exercises = append(workout.Exercises, models.WorkoutExercise{
			ExerciseTypeID: e.ExerciseTypeID,
			Sets:           e.Sets,
			Reps:           e.Reps,
			WeightKg:       e.WeightKg,
			DurationMin:    e.DurationMin,
			DistanceKm:     e.DistanceKm,
		})
	}

	if err := wc.repo.Create(&workout); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create workout",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Workout created successfully",
		"data":    workout,
	})
}

// GetWorkoutsByUserID godoc
// @Summary Get a user's workouts
// @Description Optionally filter with from/to date query parameters
// @Tags workout
// @Produce json
// @Param user_id path int true "User ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Workouts retrieved successfully"
// @Router /workout/user/{user_id} [get]
func (wc *WorkoutController) GetWorkoutsByUserID(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	var (
		workouts []models.Workout
		err      error
	)
	from, to, rangeOK := dateRangeQuery(c)
	if !rangeOK {
		return
	}
	if !from.IsZero() {
		workouts, err = wc.repo.FindByUserIDAndDateRange(userID, from, to)
	} else {
		workouts, err = wc.repo.FindByUserID(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve workouts",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workouts retrieved successfully",
		"data":    workouts,
	})
}

// GetWorkoutByID godoc
// @Summary Get a workout by ID
// @Tags workout
// @Produce json
// @Param id path int true "Workout ID"
// @Success 200 {object} map[string]interface{} "Workout retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Workout not found"
// @Router /workout/{id} [get]
func (wc *WorkoutController) GetWorkoutByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	workout, err := wc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Workout not found",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout retrieved successfully",
		"data":    workout,
	})
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Tags workout
// @Produce json
// @Param id path int true "Workout ID"
// @Success 200 {object} map[string]interface{} "Workout deleted successfully"
// @Router /workout/{id} [delete]
func (wc *WorkoutController) DeleteWorkout(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := wc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete workout",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout deleted successfully",
	})
}

// dateRangeQuery parses optional from/to query params. Both must be present
// together; a bare "from" runs to today.
func dateRangeQuery(c *gin.Context) (time.Time, time.Time, bool) {
	fromStr := c.Query("from")
	if fromStr == "" {
		return time.Time{}, time.Time{}, true
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date range",
			"error":   "from must be YYYY-MM-DD",
		})
		return time.Time{}, time.Time{}, false
	}

	to := time.Now().UTC().Truncate(24 * time.Hour)
	if toStr := c.Query("to"); toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid date range",
				"error":   "to must be YYYY-MM-DD",
			})
			return time.Time{}, time.Time{}, false
		}
	}
	return from, to, true
}
