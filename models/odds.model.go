package models

import "time"

// OddsLine is one book line per team side of a game. Spread, moneyline and
// total are nullable because books publish them at different times.
type OddsLine struct {
	Season    int      `gorm:"primaryKey;autoIncrement:false"`
	Week      int      `gorm:"primaryKey;autoIncrement:false"`
	GameID    string   `gorm:"primaryKey"`
	Team      string   `gorm:"primaryKey"`
	Opp       string   `gorm:"not null"`
	Spread    *float64
	Moneyline *int // American odds; sign picks the implied-probability formula
	Total     *float64
	UpdatedAt time.Time
}
