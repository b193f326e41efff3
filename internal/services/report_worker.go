package services

import (
	"context"
	"sync"
	"time"
)

// ProgressReport is the full per-user progress bundle produced by a batch
// run.
type ProgressReport struct {
	Vitals      *VitalsReport      `json:"vitals"`
	WeightTrend *WeightTrendReport `json:"weight_trend"`
	Strength    *ProgressionReport `json:"strength_progression"`
	Endurance   *ProgressionReport `json:"endurance_progression"`
	Goals       *GoalReport        `json:"goals"`
}

// UserProgress assembles the full progress bundle for one user.
func (s *ReportService) UserProgress(userID uint, asOf time.Time) (*ProgressReport, error) {
	vitals, err := s.UserVitals(userID, asOf)
	if err != nil {
		return nil, err
	}
	trend, err := s.WeightTrend(userID)
	if err != nil {
		return nil, err
	}
	strength, err := s.StrengthProgression(userID)
	if err != nil {
		return nil, err
	}
	endurance, err := s.EnduranceProgression(userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.GoalCompletion(userID)
	if err != nil {
		return nil, err
	}

	return &ProgressReport{
		Vitals:      vitals,
		WeightTrend: trend,
		Strength:    strength,
		Endurance:   endurance,
		Goals:       goals,
	}, nil
}

// BatchResult collects per-user progress reports alongside per-user errors.
// A failed subject never aborts the batch; its error is recorded and the
// remaining subjects still produce reports.
type BatchResult struct {
	Reports map[uint]*ProgressReport `json:"reports"`
	Errors  map[uint]string          `json:"errors"`
}

// BatchRunner fans user ids out to a bounded pool of workers, each computing
// the full progress report for its user. Users share no state, so the
// reports are safely computed in parallel.
type BatchRunner struct {
	service     *ReportService
	workerCount int
}

func NewBatchRunner(service *ReportService, workerCount int) *BatchRunner {
	if workerCount <= 0 {
		workerCount = 4
	}
	return &BatchRunner{service: service, workerCount: workerCount}
}

func (r *BatchRunner) Run(ctx context.Context, userIDs []uint, asOf time.Time) *BatchResult {
	result := &BatchResult{
		Reports: make(map[uint]*ProgressReport, len(userIDs)),
		Errors:  make(map[uint]string),
	}

	jobs := make(chan uint)
	var mu sync.Mutex
	var wg sync.WaitGroup

	workers := r.workerCount
	if workers > len(userIDs) {
		workers = len(userIDs)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for userID := range jobs {
				report, err := r.service.UserProgress(userID, asOf)

				mu.Lock()
				if err != nil {
					result.Errors[userID] = err.Error()
				} else {
					result.Reports[userID] = report
				}
				mu.Unlock()
			}
		}()
	}

	for _, id := range userIDs {
		select {
		case jobs <- id:
		case <-ctx.Done():
			// Remaining users are reported as cancelled rather than
			// silently dropped.
			mu.Lock()
			result.Errors[id] = ctx.Err().Error()
			mu.Unlock()
		}
	}
	close(jobs)
	wg.Wait()

	return result
}
