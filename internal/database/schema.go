// Package database records inference and evaluation runs in a local sqlite
// database so past experiments can be listed and audited.
package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	JobQueued    string = "QUEUED"
	JobRunning   string = "RUNNING"
	JobCompleted string = "COMPLETED"
	JobFailed    string = "FAILED"
)

type InferenceRun struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	Model    string `gorm:"not null"`
	Language string `gorm:"size:20;not null"`
	Task     int    `gorm:"not null"`
	Setting  string `gorm:"size:40;not null"`

	Status     string `gorm:"size:20;not null"`
	OutputPath string

	Processed int `gorm:"default:0"`
	Skipped   int `gorm:"default:0"`
	Failed    int `gorm:"default:0"`

	Error sql.NullString

	CreationTime   time.Time
	CompletionTime sql.NullTime
}

type EvaluationRun struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	Model    string `gorm:"not null"`
	Language string `gorm:"size:20;not null"`

	Status string `gorm:"size:20;not null"`

	FilesEvaluated int `gorm:"default:0"`
	ItemsScored    int `gorm:"default:0"`
	ItemsDefaulted int `gorm:"default:0"`

	Error sql.NullString

	CreationTime   time.Time
	CompletionTime sql.NullTime
}
