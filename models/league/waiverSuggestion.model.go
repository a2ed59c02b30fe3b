package league

import (
	"time"

	"ffa/models"
)

// WaiverSuggestion is a derived recommendation, fully replaced per
// (league, season, week) on each scan run.
type WaiverSuggestion struct {
	LeagueID  string  `gorm:"primaryKey"`
	Season    int     `gorm:"primaryKey;autoIncrement:false"`
	Week      int     `gorm:"primaryKey;autoIncrement:false"`
	PlayerID  string  `gorm:"primaryKey"`
	Evor      float64 `gorm:"not null"` // expected value over replacement
	Reason    string
	CreatedAt time.Time `gorm:"index:idx_waiver_suggestions_created,sort:desc"`

	// Relationship
	Player models.Player `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}
