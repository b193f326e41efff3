package services

import (
	"errors"
	"time"

	"fittrack/internal/metrics"
	"fittrack/internal/models"
	"fittrack/internal/repository"

	"gorm.io/gorm"
)

// ReportService materializes record sets through the repositories and feeds
// them to the metrics engine. All derived math lives in the engine; this
// layer only fetches, groups, and assembles report payloads.
type ReportService struct {
	userRepo      repository.UserRepository
	biometricRepo repository.BiometricRepository
	workoutRepo   repository.WorkoutRepository
	mealRepo      repository.MealRepository
	goalRepo      repository.GoalRepository
}

func NewReportService(
	userRepo repository.UserRepository,
	biometricRepo repository.BiometricRepository,
	workoutRepo repository.WorkoutRepository,
	mealRepo repository.MealRepository,
	goalRepo repository.GoalRepository,
) *ReportService {
	return &ReportService{
		userRepo:      userRepo,
		biometricRepo: biometricRepo,
		workoutRepo:   workoutRepo,
		mealRepo:      mealRepo,
		goalRepo:      goalRepo,
	}
}

// VitalsReport carries a user's age and BMI derived from their latest
// biometric record.
type VitalsReport struct {
	UserID         uint           `json:"user_id"`
	Name           string         `json:"name"`
	Gender         string         `json:"gender"`
	Age            int            `json:"age"`
	BMI            metrics.Metric `json:"bmi"`
	LatestWeightKg *float64       `json:"latest_weight_kg"`
	LatestRecord   string         `json:"latest_record_date,omitempty"`
}

func (s *ReportService) UserVitals(userID uint, asOf time.Time) (*VitalsReport, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	age, err := metrics.ComputeAge(user.BirthDate, asOf)
	if err != nil {
		return nil, err
	}

	records, err := s.biometricRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	report := &VitalsReport{
		UserID: user.ID,
		Name:   user.Name,
		Gender: user.Gender,
		Age:    age,
	}

	var weight *float64
	if latest := metrics.LatestBiometric(records); latest != nil {
		weight = latest.WeightKg
		report.LatestRecord = latest.RecordDate.Format("2006-01-02")
		report.LatestWeightKg = latest.WeightKg
	}

	bmi, err := metrics.ComputeBMI(user.HeightCm, weight)
	if err != nil {
		return nil, err
	}
	report.BMI = bmi
	return report, nil
}

// GenderDistributionReport counts users per gender.
type GenderDistributionReport struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

func (s *ReportService) GenderDistribution() (*GenderDistributionReport, error) {
	counts, err := s.userRepo.CountByGender()
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	return &GenderDistributionReport{Counts: counts, Total: total}, nil
}

// WeightTrendReport is the lag-by-one weight delta series for one user.
type WeightTrendReport struct {
	UserID uint                 `json:"user_id"`
	Points []metrics.TrendPoint `json:"points"`
}

func (s *ReportService) WeightTrend(userID uint) (*WeightTrendReport, error) {
	records, err := s.biometricRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	series := make([]metrics.Observation, 0, len(records))
	for _, r := range records {
		if r.WeightKg != nil {
			series = append(series, metrics.Observation{Date: r.RecordDate, Value: *r.WeightKg})
		}
	}

	points, err := metrics.Trend(series)
	if err != nil {
		return nil, err
	}
	return &WeightTrendReport{UserID: userID, Points: points}, nil
}

// UserHeartRateDrop pairs a qualifying user with the drop detail.
type UserHeartRateDrop struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	metrics.HeartRateDropResult
}

// HeartRateDropReport lists users whose resting heart rate fell by more than
// MinDropBpm over a span of at least MinSpanDays. One user's fetch failure is
// recorded and does not abort the run.
type HeartRateDropReport struct {
	MinSpanDays int                 `json:"min_span_days"`
	MinDropBpm  int                 `json:"min_drop_bpm"`
	Qualifying  []UserHeartRateDrop `json:"qualifying"`
	Errors      map[uint]string     `json:"errors,omitempty"`
}

func (s *ReportService) HeartRateDropReport(minSpanDays, minDropBpm int) (*HeartRateDropReport, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	report := &HeartRateDropReport{
		MinSpanDays: minSpanDays,
		MinDropBpm:  minDropBpm,
		Qualifying:  []UserHeartRateDrop{},
	}
	for _, user := range users {
		records, err := s.biometricRepo.FindByUserID(user.ID)
		if err != nil {
			if report.Errors == nil {
				report.Errors = make(map[uint]string)
			}
			report.Errors[user.ID] = err.Error()
			continue
		}

		result := metrics.HeartRateDrop(records, minSpanDays, minDropBpm)
		if result.Qualifies {
			report.Qualifying = append(report.Qualifying, UserHeartRateDrop{
				UserID:              user.ID,
				Name:                user.Name,
				HeartRateDropResult: result,
			})
		}
	}
	return report, nil
}

// PopularExercisesReport ranks exercises by how often they appear in logged
// workouts, across all users.
type PopularExercisesReport struct {
	TopN    int                      `json:"top_n"`
	Ranking []metrics.FrequencyCount `json:"ranking"`
}

func (s *ReportService) PopularExercises(topN int) (*PopularExercisesReport, error) {
	workouts, err := s.workoutRepo.FindAllWithExercises()
	if err != nil {
		return nil, err
	}

	var keys []string
	for _, w := range workouts {
		for _, e := range w.Exercises {
			keys = append(keys, e.ExerciseType.Name)
		}
	}
	return &PopularExercisesReport{TopN: topN, Ranking: metrics.MostFrequent(keys, topN)}, nil
}

// UserConsistency pairs a user with their weekly consistency result.
type UserConsistency struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	metrics.ConsistencyResult
}

// ConsistencyReport lists users who hit more than MinPerWeek workouts in at
// least MinWeeks distinct ISO weeks.
type ConsistencyReport struct {
	MinPerWeek int               `json:"min_per_week"`
	MinWeeks   int               `json:"min_weeks"`
	Qualifying []UserConsistency `json:"qualifying"`
	Errors     map[uint]string   `json:"errors,omitempty"`
}

func (s *ReportService) WorkoutConsistency(minPerWeek, minWeeks int) (*ConsistencyReport, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	report := &ConsistencyReport{
		MinPerWeek: minPerWeek,
		MinWeeks:   minWeeks,
		Qualifying: []UserConsistency{},
	}
	for _, user := range users {
		workouts, err := s.workoutRepo.FindByUserID(user.ID)
		if err != nil {
			if report.Errors == nil {
				report.Errors = make(map[uint]string)
			}
			report.Errors[user.ID] = err.Error()
			continue
		}

		result := metrics.WeeklyConsistency(workouts, minPerWeek, minWeeks)
		if result.Qualifies {
			report.Qualifying = append(report.Qualifying, UserConsistency{
				UserID:            user.ID,
				Name:              user.Name,
				ConsistencyResult: result,
			})
		}
	}
	return report, nil
}

// ExerciseProgression is one exercise's first-to-last change for a user.
type ExerciseProgression struct {
	Exercise string `json:"exercise"`
	Category string `json:"category"`
	metrics.ProgressionResult
}

// ProgressionReport summarizes per-exercise progression for one user.
type ProgressionReport struct {
	UserID    uint                  `json:"user_id"`
	Exercises []ExerciseProgression `json:"exercises"`
}

// StrengthProgression tracks the heaviest weight lifted per exercise per
// workout day and reports the first-to-last change for each strength
// exercise the user has logged at least once.
func (s *ReportService) StrengthProgression(userID uint) (*ProgressionReport, error) {
	return s.exerciseProgression(userID, models.CategoryStrength, func(e models.WorkoutExercise) *float64 {
		return e.WeightKg
	})
}

// EnduranceProgression tracks distance covered per cardio exercise.
func (s *ReportService) EnduranceProgression(userID uint) (*ProgressionReport, error) {
	return s.exerciseProgression(userID, models.CategoryCardio, func(e models.WorkoutExercise) *float64 {
		return e.DistanceKm
	})
}

func (s *ReportService) exerciseProgression(userID uint, category string, value func(models.WorkoutExercise) *float64) (*ProgressionReport, error) {
	workouts, err := s.workoutRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	// Group observations by exercise name; workouts arrive date-ascending,
	// and within one date we keep the best value.
	series := make(map[string][]metrics.Observation)
	order := []string{}
	for _, w := range workouts {
		for _, e := range w.Exercises {
			if e.ExerciseType.Category != category {
				continue
			}
			v := value(e)
			if v == nil {
				continue
			}

			name := e.ExerciseType.Name
			obs := series[name]
			if n := len(obs); n > 0 && obs[n-1].Date.Equal(w.WorkoutDate) {
				if *v > obs[n-1].Value {
					obs[n-1].Value = *v
				}
				continue
			}
			if len(obs) == 0 {
				order = append(order, name)
			}
			series[name] = append(obs, metrics.Observation{Date: w.WorkoutDate, Value: *v})
		}
	}

	report := &ProgressionReport{UserID: userID, Exercises: []ExerciseProgression{}}
	for _, name := range order {
		result, err := metrics.Progression(series[name])
		if err != nil {
			return nil, err
		}

		report.Exercises = append(report.Exercises, ExerciseProgression{
			Exercise:          name,
			Category:          category,
			ProgressionResult: result,
		})
	}
	return report, nil
}

// NutritionReport holds daily macro totals plus their per-day average over
// the requested window.
type NutritionReport struct {
	UserID       uint                  `json:"user_id"`
	From         string                `json:"from"`
	To           string                `json:"to"`
	Days         []metrics.DailyMacros `json:"days"`
	DailyAverage metrics.MacroTotals   `json:"daily_average"`
	DaysLogged   int                   `json:"days_logged"`
}

func (s *ReportService) NutritionSummary(userID uint, from, to time.Time) (*NutritionReport, error) {
	meals, err := s.mealRepo.FindByUserIDAndDateRange(userID, from, to)
	if err != nil {
		return nil, err
	}

	days := metrics.DailyNutrition(meals)
	report := &NutritionReport{
		UserID:     userID,
		From:       from.Format("2006-01-02"),
		To:         to.Format("2006-01-02"),
		Days:       days,
		DaysLogged: len(days),
	}

	if len(days) > 0 {
		var sum metrics.MacroTotals
		for _, d := range days {
			sum.Calories += d.Totals.Calories
			sum.ProteinG += d.Totals.ProteinG
			sum.CarbsG += d.Totals.CarbsG
			sum.FatG += d.Totals.FatG
		}
		n := float64(len(days))
		report.DailyAverage = metrics.MacroTotals{
			Calories: metrics.Round2(sum.Calories / n),
			ProteinG: metrics.Round2(sum.ProteinG / n),
			CarbsG:   metrics.Round2(sum.CarbsG / n),
			FatG:     metrics.Round2(sum.FatG / n),
		}
	}
	return report, nil
}

// GoalStatus is one goal with its derived completion state. Note carries the
// reason a progress value is undefined (missing baseline, unknown type)
// without failing the report.
type GoalStatus struct {
	Goal            models.Goal    `json:"goal"`
	Progress        metrics.Metric `json:"progress_pct"`
	Note            string         `json:"note,omitempty"`
	WorkoutsPerWeek metrics.Metric `json:"workouts_per_week"`
}

// GoalReport lists every goal of a user with progress percentages.
type GoalReport struct {
	UserID uint         `json:"user_id"`
	Goals  []GoalStatus `json:"goals"`
}

func (s *ReportService) GoalCompletion(userID uint) (*GoalReport, error) {
	goals, err := s.goalRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	report := &GoalReport{UserID: userID, Goals: []GoalStatus{}}
	for _, goal := range goals {
		baseline, err := s.biometricRepo.FindByUserIDAndDate(userID, goal.StartDate)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		progress, perr := metrics.GoalProgress(goal, baseline)
		status := GoalStatus{Goal: goal, Progress: progress}
		if perr != nil {
			status.Note = perr.Error()
		}

		count, err := s.workoutRepo.CountByUserIDAndDateRange(userID, goal.StartDate, goal.TargetDate)
		if err != nil {
			return nil, err
		}
		status.WorkoutsPerWeek = metrics.WorkoutsPerWeek(int(count), goal.StartDate, goal.TargetDate)

		report.Goals = append(report.Goals, status)
	}
	return report, nil
}

// UserWorkoutWeight is one user's sample in the workout-vs-weight-loss
// correlation: total workouts logged against weight lost between their first
// and last weigh-in.
type UserWorkoutWeight struct {
	UserID       uint    `json:"user_id"`
	Workouts     int     `json:"workouts"`
	WeightLossKg float64 `json:"weight_loss_kg"`
}

// CorrelationReport pairs the per-user samples with their Pearson
// coefficient. R is undefined with fewer than two usable users.
type CorrelationReport struct {
	Pairs  []UserWorkoutWeight `json:"pairs"`
	R      metrics.Metric      `json:"pearson_r"`
	Errors map[uint]string     `json:"errors,omitempty"`
}

func (s *ReportService) WorkoutWeightCorrelation() (*CorrelationReport, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	report := &CorrelationReport{Pairs: []UserWorkoutWeight{}}
	var workoutCounts, weightLosses []float64
	for _, user := range users {
		records, err := s.biometricRepo.FindByUserID(user.ID)
		if err != nil {
			if report.Errors == nil {
				report.Errors = make(map[uint]string)
			}
			report.Errors[user.ID] = err.Error()
			continue
		}

		weighed := make([]models.BiometricRecord, 0, len(records))
		for _, r := range records {
			if r.WeightKg != nil {
				weighed = append(weighed, r)
			}
		}
		earliest := metrics.EarliestBiometric(weighed)
		latest := metrics.LatestBiometric(weighed)
		if earliest == nil || latest == nil || earliest.ID == latest.ID {
			// Needs two weigh-ins to have a weight delta at all.
			continue
		}

		workouts, err := s.workoutRepo.FindByUserID(user.ID)
		if err != nil {
			if report.Errors == nil {
				report.Errors = make(map[uint]string)
			}
			report.Errors[user.ID] = err.Error()
			continue
		}

		loss := metrics.Round2(*earliest.WeightKg - *latest.WeightKg)
		report.Pairs = append(report.Pairs, UserWorkoutWeight{
			UserID:       user.ID,
			Workouts:     len(workouts),
			WeightLossKg: loss,
		})
		workoutCounts = append(workoutCounts, float64(len(workouts)))
		weightLosses = append(weightLosses, loss)
	}

	r, err := metrics.Correlation(workoutCounts, weightLosses)
	if err != nil {
		return nil, err
	}
	report.R = r
	return report, nil
}
