package repository

import (
	"time"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

type BiometricRepository interface {
	Create(record *models.BiometricRecord) error
	FindByID(id uint) (*models.BiometricRecord, error)
	// FindByUserID returns the user's records in ascending (record_date, id)
	// order, which the metrics engine relies on for trend computation.
	FindByUserID(userID uint) ([]models.BiometricRecord, error)
	// FindByUserIDAndDate matches the exact calendar date, the strict
	// equality join used for goal baselines. No interpolation or fallback.
	FindByUserIDAndDate(userID uint, date time.Time) (*models.BiometricRecord, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.BiometricRecord, error)
	Update(record *models.BiometricRecord) error
	Delete(id uint) error
}

type biometricRepository struct {
	db *gorm.DB
}

func NewBiometricRepository(db *gorm.DB) BiometricRepository {
	return &biometricRepository{db}
}

func (r *biometricRepository) Create(record *models.BiometricRecord) error {
	return r.db.Create(record).Error
}

func (r *biometricRepository) FindByID(id uint) (*models.BiometricRecord, error) {
	var record models.BiometricRecord
	err := r.db.First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *biometricRepository) FindByUserID(userID uint) ([]models.BiometricRecord, error) {
	var records []models.BiometricRecord
	err := r.db.Where("user_id = ?", userID).
		Order("record_date ASC, id ASC").
		Find(&records).Error
	return records, err
}

func (r *biometricRepository) FindByUserIDAndDate(userID uint, date time.Time) (*models.BiometricRecord, error) {
	var record models.BiometricRecord
	err := r.db.Where("user_id = ? AND record_date = ?", userID, date).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *biometricRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate time.Time) ([]models.BiometricRecord, error) {
	var records []models.BiometricRecord
	err := r.db.Where("user_id = ? AND record_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("record_date ASC, id ASC").
		Find(&records).Error
	return records, err
}

func (r *biometricRepository) Update(record *models.BiometricRecord) error {
	return r.db.Save(record).Error
}

func (r *biometricRepository) Delete(id uint) error {
	return r.db.Delete(&models.BiometricRecord{}, id).Error
}
