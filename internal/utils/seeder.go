package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	mathrand "math/rand"
	"os"
	"time"

	"fittrack/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const DefaultNumUsers = 100

func generateTestPassword() string {
	password := "TestPassword123!"

	salt := make([]byte, 8)
	rand.Read(salt)

	h := sha256.New()
	h.Write([]byte(password))
	h.Write(salt)
	hash := h.Sum(nil)

	return hex.EncodeToString(salt) + hex.EncodeToString(hash)
}

func connectToDatabase() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}
	return db, nil
}

// SeedUsers creates numUsers dummy users with randomized profiles and a few
// biometric records each.
func SeedUsers(numUsers int) error {
	db, err := connectToDatabase()
	if err != nil {
		return err
	}

	genders := []string{"Male", "Female"}
	password := generateTestPassword()

	batchSize := 100
	var batch []models.User

	for i := 1; i <= numUsers; i++ {
		birthYear := 1960 + mathrand.Intn(45)
		user := models.User{
			Name:      fmt.Sprintf("Test User %d", i),
			Email:     fmt.Sprintf("testuser%d@example.com", i),
			Password:  password,
			BirthDate: time.Date(birthYear, time.Month(1+mathrand.Intn(12)), 1+mathrand.Intn(28), 0, 0, 0, 0, time.UTC),
			Gender:    genders[mathrand.Intn(len(genders))],
			HeightCm:  150 + mathrand.Float64()*45,
		}
		batch = append(batch, user)

		if len(batch) >= batchSize || i == numUsers {
			if err := db.Create(&batch).Error; err != nil {
				return fmt.Errorf("failed to create user batch: %v", err)
			}

			for _, u := range batch {
				if err := seedBiometricsForUser(db, u.ID); err != nil {
					return err
				}
			}
			batch = batch[:0]
		}

		if i%500 == 0 {
			log.Printf("Seeded %d/%d users", i, numUsers)
		}
	}

	log.Printf("✅ Seeded %d users", numUsers)
	return nil
}

func seedBiometricsForUser(db *gorm.DB, userID uint) error {
	start := time.Now().UTC().AddDate(0, -3, 0)
	weight := 60 + mathrand.Float64()*40
	hr := 58 + mathrand.Intn(20)

	var records []models.BiometricRecord
	for week := 0; week < 12; week++ {
		w := weight + mathrand.Float64()*2 - 1.2
		h := hr + mathrand.Intn(3) - 1
		date := start.AddDate(0, 0, week*7)
		records = append(records, models.BiometricRecord{
			UserID:           userID,
			RecordDate:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			WeightKg:         &w,
			RestingHeartRate: &h,
		})
		weight = w
		hr = h
	}

	if err := db.Create(&records).Error; err != nil {
		return fmt.Errorf("failed to create biometric records for user %d: %v", userID, err)
	}
	return nil
}

// SeedDemoData loads a small, deterministic data set: one user with a known
// weight trend, an in-flight weight loss goal with a baseline record on the
// goal start date, a workout history spanning several calendar weeks, and a
// day of logged meals. Useful for demoing the analytics endpoints.
func SeedDemoData() error {
	db, err := connectToDatabase()
	if err != nil {
		return err
	}

	user := models.User{
		Name:      "Alice Demo",
		Email:     "alice.demo@example.com",
		Password:  generateTestPassword(),
		BirthDate: time.Date(1991, 3, 20, 0, 0, 0, 0, time.UTC),
		Gender:    "Female",
		HeightCm:  170.0,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create demo user: %v", err)
	}

	// Two weigh-ins fourteen days apart: 78.5 kg then 77.8 kg, so the weight
	// trend shows a -0.7 delta on the second point.
	w1, w2 := 78.5, 77.8
	hr1, hr2 := 72, 65
	records := []models.BiometricRecord{
		{
			UserID:           user.ID,
			RecordDate:       time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
			WeightKg:         &w1,
			RestingHeartRate: &hr1,
		},
		{
			UserID:           user.ID,
			RecordDate:       time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC),
			WeightKg:         &w2,
			RestingHeartRate: &hr2,
		},
	}
	if err := db.Create(&records).Error; err != nil {
		return fmt.Errorf("failed to create demo biometrics: %v", err)
	}

	// The goal starts on the first weigh-in date, so that record is its
	// baseline. Current value still equals the baseline weight: 0% progress.
	goal := models.Goal{
		UserID:       user.ID,
		GoalType:     models.GoalWeightLoss,
		TargetValue:  75.0,
		CurrentValue: 78.5,
		StartDate:    time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
		TargetDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&goal).Error; err != nil {
		return fmt.Errorf("failed to create demo goal: %v", err)
	}

	cals := 7.5
	types := []models.ExerciseType{
		{Name: "Bench Press", Category: models.CategoryStrength},
		{Name: "Squat", Category: models.CategoryStrength},
		{Name: "Running", Category: models.CategoryCardio, CaloriesPerMinute: &cals},
		{Name: "Yoga", Category: models.CategoryFlexibility},
	}
	if err := db.Create(&types).Error; err != nil {
		return fmt.Errorf("failed to create exercise types: %v", err)
	}

	// Three workouts a week for four ISO weeks, alternating strength and
	// cardio, with the bench press load creeping up.
	benchKg := 60.0
	runKm := 5.0
	sets, reps := 3, 8
	day := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	for week := 0; week < 4; week++ {
		for _, offset := range []int{0, 2, 4} {
			date := day.AddDate(0, 0, week*7+offset)
			workout := models.Workout{
				UserID:      user.ID,
				WorkoutDate: date,
				StartTime:   "07:30",
				EndTime:     "08:30",
			}

			if offset == 2 {
				km := runKm
				dur := 30.0
				workout.Exercises = []models.WorkoutExercise{
					{ExerciseTypeID: types[2].ID, DurationMin: &dur, DistanceKm: &km},
				}
				runKm += 0.4
			} else {
				kg := benchKg
				s, r := sets, reps
				workout.Exercises = []models.WorkoutExercise{
					{ExerciseTypeID: types[0].ID, Sets: &s, Reps: &r, WeightKg: &kg},
					{ExerciseTypeID: types[1].ID, Sets: &s, Reps: &r, WeightKg: &kg},
				}
				benchKg += 1.5
			}

			if err := db.Create(&workout).Error; err != nil {
				return fmt.Errorf("failed to create demo workout: %v", err)
			}
		}
	}

	foods := []models.FoodItem{
		{Name: "Oatmeal", ServingSize: "100g", Calories: 389, ProteinG: 16.9, CarbsG: 66.3, FatG: 6.9},
		{Name: "Chicken Breast", ServingSize: "100g", Calories: 165, ProteinG: 31.0, CarbsG: 0, FatG: 3.6},
		{Name: "Banana", ServingSize: "1 medium", Calories: 105, ProteinG: 1.3, CarbsG: 27.0, FatG: 0.4},
	}
	if err := db.Create(&foods).Error; err != nil {
		return fmt.Errorf("failed to create food items: %v", err)
	}

	meals := []models.Meal{
		{
			UserID:   user.ID,
			MealDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			MealTime: "08:00",
			MealType: "Breakfast",
			Foods: []models.MealFood{
				{FoodItemID: foods[0].ID, Servings: 0.5},
				{FoodItemID: foods[2].ID, Servings: 1},
			},
		},
		{
			UserID:   user.ID,
			MealDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			MealTime: "12:30",
			MealType: "Lunch",
			Foods: []models.MealFood{
				{FoodItemID: foods[1].ID, Servings: 1.5},
			},
		},
	}
	if err := db.Create(&meals).Error; err != nil {
		return fmt.Errorf("failed to create demo meals: %v", err)
	}

	log.Printf("✅ Demo data seeded (user ID %d)", user.ID)
	return nil
}

// CleanupTestUsers removes users created by SeedUsers along with their
// dependent records.
func CleanupTestUsers() error {
	db, err := connectToDatabase()
	if err != nil {
		return err
	}

	var userIDs []uint
	if err := db.Model(&models.User{}).
		Where("email LIKE ?", "testuser%@example.com").
		Pluck("id", &userIDs).Error; err != nil {
		return fmt.Errorf("failed to list test users: %v", err)
	}
	if len(userIDs) == 0 {
		log.Println("No test users found")
		return nil
	}

	if err := db.Where("user_id IN ?", userIDs).Delete(&models.BiometricRecord{}).Error; err != nil {
		return fmt.Errorf("failed to delete test biometrics: %v", err)
	}

	result := db.Where("id IN ?", userIDs).Delete(&models.User{})
	if result.Error != nil {
		return fmt.Errorf("failed to cleanup test users: %v", result.Error)
	}

	log.Printf("✅ Deleted %d test users", result.RowsAffected)
	return nil
}

// GetUserCount returns the number of users in the database.
func GetUserCount() (int64, error) {
	db, err := connectToDatabase()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %v", err)
	}
	return count, nil
}
