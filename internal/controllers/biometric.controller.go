package controllers

import (
	"net/http"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type BiometricController struct {
	repo repository.BiometricRepository
}

func NewBiometricController(repo repository.BiometricRepository) *BiometricController {
	return &BiometricController{repo: repo}
}

type biometricRequest struct {
	UserID           uint     `json:"user_id" binding:"required"`
	RecordDate       string   `json:"record_date" binding:"required"`
	WeightKg         *float64 `json:"weight_kg"`
	BodyFatPct       *float64 `json:"body_fat_pct"`
	MuscleMassKg     *float64 `json:"muscle_mass_kg"`
	RestingHeartRate *int     `json:"resting_heart_rate"`
}

// CreateRecord godoc
// @Summary Record a biometric measurement
// @Description Store one dated measurement snapshot; one record per user per date
// @Tags biometric
// @Accept json
// @Produce json
// @Param record body biometricRequest true "Biometric data"
// @Success 201 {object} map[string]interface{} "Record created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /biometric [post]
func (bc *BiometricController) CreateRecord(c *gin.Context) {
	var req biometricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	recordDate, err := time.Parse("2006-01-02", req.RecordDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid record date",
			"error":   "record_date must be YYYY-MM-DD",
		})
		return
	}

	record := models.BiometricRecord{
		UserID:           req.UserID,
		RecordDate:       recordDate,
		WeightKg:         req.WeightKg,
		BodyFatPct:       req.BodyFatPct,
		MuscleMassKg:     req.MuscleMassKg,
		RestingHeartRate: req.RestingHeartRate,
	}
	if err := bc.repo.Create(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create record",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Record created successfully",
		"data":    record,
	})
}

// GetRecordsByUserID godoc
// @Summary Get a user's biometric history
// @Description Records are returned in ascending record date order
// @Tags biometric
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Records retrieved successfully"
// @Router /biometric/user/{user_id} [get]
func (bc *BiometricController) GetRecordsByUserID(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	records, err := bc.repo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve records",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Records retrieved successfully",
		"data":    records,
	})
}

// GetRecordByID godoc
// @Summary Get a biometric record by ID
// @Tags biometric
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} map[string]interface{} "Record retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Record not found"
// @Router /biometric/{id} [get]
func (bc *BiometricController) GetRecordByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := bc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Record not found",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Record retrieved successfully",
		"data":    record,
	})
}

// DeleteRecord godoc
// @Summary Delete a biometric record
// @Tags biometric
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} map[string]interface{} "Record deleted successfully"
// @Router /biometric/{id} [delete]
func (bc *BiometricController) DeleteRecord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete record",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Record deleted successfully",
	})
}
