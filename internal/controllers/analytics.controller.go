package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/cache"
	"fittrack/internal/metrics"
	"fittrack/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AnalyticsController serves the derived-metrics reports. Read endpoints are
// cached in Redis when a cache is configured; cache failures fall back to
// direct computation.
type AnalyticsController struct {
	reports *services.ReportService
	runner  *services.BatchRunner
	cache   *cache.ReportCache
}

func NewAnalyticsController(reports *services.ReportService, runner *services.BatchRunner, reportCache *cache.ReportCache) *AnalyticsController {
	return &AnalyticsController{reports: reports, runner: runner, cache: reportCache}
}

// GetUserVitals godoc
// @Summary Get a user's age and BMI
// @Description Age is computed against as_of (default today); BMI uses the latest biometric record
// @Tags analytics
// @Produce json
// @Param user_id path int true "User ID"
// @Param as_of query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Vitals computed successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /analytics/users/{user_id}/vitals [get]
func (ac *AnalyticsController) GetUserVitals(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	asOf := time.Now().UTC()
	if s := c.Query("as_of"); s != "" {
		var err error
		asOf, err = time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid reference date",
				"error":   "as_of must be YYYY-MM-DD",
			})
			return
		}
	}

	ac.serveReport(c, "vitals:"+c.Param("user_id")+":"+asOf.Format("2006-01-02"), func() (interface{}, error) {
		return ac.reports.UserVitals(userID, asOf)
	})
}

// GetWeightTrend godoc
// @Summary Get a user's weight trend
// @Description Date-ordered weight observations with delta from the previous record
// @Tags analytics
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Trend computed successfully"
// @Router /analytics/users/{user_id}/weight-trend [get]
func (ac *AnalyticsController) GetWeightTrend(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	ac.serveReport(c, "weight-trend:"+c.Param("user_id"), func() (interface{}, error) {
		return ac.reports.WeightTrend(userID)
	})
}

// GetStrengthProgression godoc
// @Summary Get per-exercise strength progression
// @Tags analytics
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Progression computed successfully"
// @Router /analytics/users/{user_id}/progression/strength [get]
func (ac *AnalyticsController) GetStrengthProgression(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	ac.serveReport(c, "strength:"+c.Param("user_id"), func() (interface{}, error) {
		return ac.reports.StrengthProgression(userID)
	})
}

// GetEnduranceProgression godoc
// @Summary Get per-exercise endurance progression
// @Tags analytics
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Progression computed successfully"
// @Router /analytics/users/{user_id}/progression/endurance [get]
func (ac *AnalyticsController) GetEnduranceProgression(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	ac.serveReport(c, "endurance:"+c.Param("user_id"), func() (interface{}, error) {
		return ac.reports.EnduranceProgression(userID)
	})
}

// GetNutritionSummary godoc
// @Summary Get daily nutrition totals and averages
// @Description Defaults to the last 30 days when from/to are omitted
// @Tags analytics
// @Produce json
// @Param user_id path int true "User ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Summary computed successfully"
// @Router /analytics/users/{user_id}/nutrition [get]
func (ac *AnalyticsController) GetNutritionSummary(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	from, to, rangeOK := dateRangeQuery(c)
	if !rangeOK {
		return
	}
	if from.IsZero() {
		to = time.Now().UTC().Truncate(24 * time.Hour)
		from = to.AddDate(0, 0, -30)
	}

	key := "nutrition:" + c.Param("user_id") + ":" + from.Format("2006-01-02") + ":" + to.Format("2006-01-02")
	ac.serveReport(c, key, func() (interface{}, error) {
		return ac.reports.NutritionSummary(userID, from, to)
	})
}

// GetGoalCompletion godoc
// @Summary Get goal completion percentages
// @Description Progress uses the biometric baseline at each goal's start date
// @Tags analytics
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Goal progress computed successfully"
// @Router /analytics/users/{user_id}/goals [get]
func (ac *AnalyticsController) GetGoalCompletion(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	ac.serveReport(c, "goals:"+c.Param("user_id"), func() (interface{}, error) {
		return ac.reports.GoalCompletion(userID)
	})
}

// GetGenderDistribution godoc
// @Summary Get user counts per gender
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{} "Distribution computed successfully"
// @Router /analytics/gender-distribution [get]
func (ac *AnalyticsController) GetGenderDistribution(c *gin.Context) {
	ac.serveReport(c, "gender-distribution", func() (interface{}, error) {
		return ac.reports.GenderDistribution()
	})
}

// GetHeartRateDrop godoc
// @Summary List users with a qualifying resting heart rate drop
// @Tags analytics
// @Produce json
// @Param min_span_days query int false "Minimum span in days (default 30)"
// @Param min_drop_bpm query int false "Minimum drop in bpm, exclusive (default 5)"
// @Success 200 {object} map[string]interface{} "Report computed successfully"
// @Router /analytics/heart-rate-drop [get]
func (ac *AnalyticsController) GetHeartRateDrop(c *gin.Context) {
	minSpanDays := intQuery(c, "min_span_days", 30)
	minDropBpm := intQuery(c, "min_drop_bpm", 5)

	key := "heart-rate-drop:" + strconv.Itoa(minSpanDays) + ":" + strconv.Itoa(minDropBpm)
	ac.serveReport(c, key, func() (interface{}, error) {
		return ac.reports.HeartRateDropReport(minSpanDays, minDropBpm)
	})
}

// GetPopularExercises godoc
// @Summary Rank exercises by logged frequency
// @Description Ties are broken by exercise name so the ranking is stable
// @Tags analytics
// @Produce json
// @Param top query int false "Number of entries (default 5)"
// @Success 200 {object} map[string]interface{} "Ranking computed successfully"
// @Router /analytics/popular-exercises [get]
func (ac *AnalyticsController) GetPopularExercises(c *gin.Context) {
	topN := intQuery(c, "top", 5)

	ac.serveReport(c, "popular-exercises:"+strconv.Itoa(topN), func() (interface{}, error) {
		return ac.reports.PopularExercises(topN)
	})
}

// GetConsistency godoc
// @Summary List users meeting the weekly workout consistency bar
// @Description Weeks follow ISO-8601 numbering; a week counts when it holds strictly more than min_per_week workouts
// @Tags analytics
// @Produce json
// @Param min_per_week query int false "Per-week threshold, exclusive (default 2)"
// @Param min_weeks query int false "Qualifying weeks required (default 4)"
// @Success 200 {object} map[string]interface{} "Report computed successfully"
// @Router /analytics/consistency [get]
func (ac *AnalyticsController) GetConsistency(c *gin.Context) {
	minPerWeek := intQuery(c, "min_per_week", 2)
	minWeeks := intQuery(c, "min_weeks", 4)

	key := "consistency:" + strconv.Itoa(minPerWeek) + ":" + strconv.Itoa(minWeeks)
	ac.serveReport(c, key, func() (interface{}, error) {
		return ac.reports.WorkoutConsistency(minPerWeek, minWeeks)
	})
}

// GetWorkoutWeightCorrelation godoc
// @Summary Correlate workout counts with weight loss across users
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{} "Correlation computed successfully"
// @Router /analytics/workout-weight-correlation [get]
func (ac *AnalyticsController) GetWorkoutWeightCorrelation(c *gin.Context) {
	ac.serveReport(c, "workout-weight-correlation", func() (interface{}, error) {
		return ac.reports.WorkoutWeightCorrelation()
	})
}

type batchRequest struct {
	UserIDs []uint `json:"user_ids" binding:"required,min=1"`
	AsOf    string `json:"as_of"`
}

// RunBatchProgress godoc
// @Summary Compute full progress reports for many users
// @Description One user's failure is recorded per-user and never aborts the batch
// @Tags analytics
// @Accept json
// @Produce json
// @Param batch body batchRequest true "User IDs"
// @Success 200 {object} map[string]interface{} "Batch completed"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /analytics/batch [post]
func (ac *AnalyticsController) RunBatchProgress(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	asOf := time.Now().UTC()
	if req.AsOf != "" {
		var err error
		asOf, err = time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid reference date",
				"error":   "as_of must be YYYY-MM-DD",
			})
			return
		}
	}

	result := ac.runner.Run(c.Request.Context(), req.UserIDs, asOf)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Batch completed",
		"data":    result,
	})
}

// serveReport answers from the cache when possible, otherwise computes the
// report, stores it, and responds. Reports failing on a bad input date map
// to 400, a missing subject to 404.
func (ac *AnalyticsController) serveReport(c *gin.Context, key string, compute func() (interface{}, error)) {
	if ac.cache != nil {
		var cached json.RawMessage
		hit, err := ac.cache.Get(c.Request.Context(), key, &cached)
		if err != nil {
			log.Printf("report cache read failed for %q: %v", key, err)
		} else if hit {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Report retrieved successfully",
				"data":    cached,
				"cached":  true,
			})
			return
		}
	}

	report, err := compute()
	if err != nil {
		status := http.StatusInternalServerError
		message := "Failed to compute report"
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			status = http.StatusNotFound
			message = "Subject not found"
		case errors.Is(err, metrics.ErrInvalidDate),
			errors.Is(err, metrics.ErrInvalidHeight),
			errors.Is(err, metrics.ErrUnsortedSeries):
			status = http.StatusUnprocessableEntity
			message = "Stored records are malformed"
		}
		c.JSON(status, gin.H{
			"status":  "error",
			"message": message,
			"error":   err.Error(),
		})
		return
	}

	if ac.cache != nil {
		if err := ac.cache.Set(c.Request.Context(), key, report); err != nil {
			log.Printf("report cache write failed for %q: %v", key, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Report computed successfully",
		"data":    report,
	})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	if s := c.Query(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return fallback
}
