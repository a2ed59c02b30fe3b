package models

import (
	"fmt"
	"time"
)

// PredCache holds precomputed point and interval forecasts keyed by composite
// string keys, matching the pipeline's layout:
//
//	pk = "season#<season>#week#<week>"
//	sk = "player#<player_id>"
//
// Rows are never deleted by the serving path; they age out via ValidUntil.
type PredCache struct {
	Pk         string    `gorm:"primaryKey"`
	Sk         string    `gorm:"primaryKey"`
	P50        float64   `gorm:"not null"`
	Lo         float64   `gorm:"not null"`
	Hi         float64   `gorm:"not null"`
	ValidUntil time.Time `gorm:"not null"`
}

// PredPk builds the partition key for a (season, week) forecast subject
func PredPk(season, week int) string {
	return fmt.Sprintf("season#%d#week#%d", season, week)
}

// PredSk builds the sort key for a player entity
func PredSk(playerID string) string {
	return fmt.Sprintf("player#%s", playerID)
}
