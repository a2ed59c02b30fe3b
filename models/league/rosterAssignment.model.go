package league

import "ffa/models"

// Roster slots
const (
	SlotStarter = "starter"
	SlotBench   = "bench"
	SlotTaxi    = "taxi"
	SlotReserve = "reserve"
)

// RosterAssignment records which roster a player sat on for a given week
type RosterAssignment struct {
	LeagueID string `gorm:"primaryKey"`
	UserID   string `gorm:"primaryKey"`
	PlayerID string `gorm:"primaryKey"`
	Season   int    `gorm:"primaryKey;autoIncrement:false"`
	Week     int    `gorm:"primaryKey;autoIncrement:false"`
	Slot     string `gorm:"not null"`

	// Relationship
	Player models.Player `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}
