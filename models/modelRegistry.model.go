package models

import (
	"time"

	"gorm.io/datatypes"
)

// ModelRegistry tracks candidate and promoted models. At most one row should
// hold is_prod=true per (prod_season, prod_week); the promotion path keeps
// this by demoting the prior holder in the same transaction.
type ModelRegistry struct {
	ModelID    string `gorm:"primaryKey"`
	Label      string `gorm:"not null"`
	Metrics    datatypes.JSON
	IsProd     bool `gorm:"default:false;index"`
	ProdSeason *int
	ProdWeek   *int
	CreatedAt  time.Time
}
