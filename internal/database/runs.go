package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vlures-harness/internal/benchmark"
)

// Store provides CRUD access to the run history tables.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// StartInferenceRun records a new inference run in the RUNNING state and
// returns its id.
func (s *Store) StartInferenceRun(ctx context.Context, key benchmark.RunKey) (uuid.UUID, error) {
	run := InferenceRun{
		Id:           uuid.New(),
		Model:        key.Model,
		Language:     string(key.Language),
		Task:         int(key.Task),
		Setting:      string(key.Setting),
		Status:       JobRunning,
		CreationTime: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return uuid.Nil, err
	}
	return run.Id, nil
}

// CompleteInferenceRun marks a run COMPLETED and stores its counters.
func (s *Store) CompleteInferenceRun(ctx context.Context, id uuid.UUID, outputPath string, processed, skipped, failed int) error {
	updates := map[string]any{
		"status":          JobCompleted,
		"output_path":     outputPath,
		"processed":       processed,
		"skipped":         skipped,
		"failed":          failed,
		"completion_time": time.Now().UTC(),
	}
	return s.db.WithContext(ctx).Model(&InferenceRun{Id: id}).Updates(updates).Error
}

// FailInferenceRun marks a run FAILED with the error message.
func (s *Store) FailInferenceRun(ctx context.Context, id uuid.UUID, runErr error) error {
	updates := map[string]any{
		"status":          JobFailed,
		"error":           sql.NullString{String: runErr.Error(), Valid: true},
		"completion_time": time.Now().UTC(),
	}
	return s.db.WithContext(ctx).Model(&InferenceRun{Id: id}).Updates(updates).Error
}

// ListInferenceRuns returns runs newest first.
func (s *Store) ListInferenceRuns(ctx context.Context) ([]InferenceRun, error) {
	var runs []InferenceRun
	if err := s.db.WithContext(ctx).Order("creation_time DESC").Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (s *Store) StartEvaluationRun(ctx context.Context, model string, language benchmark.Language) (uuid.UUID, error) {
	run := EvaluationRun{
		Id:           uuid.New(),
		Model:        model,
		Language:     string(language),
		Status:       JobRunning,
		CreationTime: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return uuid.Nil, err
	}
	return run.Id, nil
}

func (s *Store) CompleteEvaluationRun(ctx context.Context, id uuid.UUID, files, scored, defaulted int) error {
	updates := map[string]any{
		"status":          JobCompleted,
		"files_evaluated": files,
		"items_scored":    scored,
		"items_defaulted": defaulted,
		"completion_time": time.Now().UTC(),
	}
	return s.db.WithContext(ctx).Model(&EvaluationRun{Id: id}).Updates(updates).Error
}

func (s *Store) FailEvaluationRun(ctx context.Context, id uuid.UUID, runErr error) error {
	updates := map[string]any{
		"status":          JobFailed,
		"error":           sql.NullString{String: runErr.Error(), Valid: true},
		"completion_time": time.Now().UTC(),
	}
	return s.db.WithContext(ctx).Model(&EvaluationRun{Id: id}).Updates(updates).Error
}
