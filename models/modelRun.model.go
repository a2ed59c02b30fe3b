package models

import (
	"time"

	"gorm.io/datatypes"
)

// Run statuses. A run opens as started and moves to exactly one terminal state.
const (
	RunStarted = "started"
	RunSuccess = "success"
	RunFailed  = "failed"
)

// Pipeline stage names recorded in the run ledger
var ValidStages = map[string]bool{
	"ingest":   true,
	"build":    true,
	"train":    true,
	"infer":    true,
	"validate": true,
	"backtest": true,
}

// ModelRun is one row of the append-mostly pipeline audit ledger.
// EndedAt is set only together with a terminal status.
type ModelRun struct {
	RunID     string `gorm:"primaryKey"`
	Season    int    `gorm:"not null"`
	Week      int    `gorm:"not null"`
	Stage     string `gorm:"not null"`
	Metrics   datatypes.JSON
	Status    string    `gorm:"not null;default:'started'"`
	StartedAt time.Time `gorm:"index:idx_model_runs_started,sort:desc"`
	EndedAt   *time.Time
}
