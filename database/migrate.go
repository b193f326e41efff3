package database

import (
	"log"

	"fittrack/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.BiometricRecord{},
		&models.ExerciseType{},
		&models.Workout{},
		&models.WorkoutExercise{},
		&models.FoodItem{},
		&models.Meal{},
		&models.MealFood{},
		&models.Goal{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
