package models

// ScheduleEntry holds one team's game for a given week. Exactly one row
// per (season, week, team); bye weeks simply have no row.
type ScheduleEntry struct {
	Season int    `gorm:"primaryKey;autoIncrement:false"`
	Week   int    `gorm:"primaryKey;autoIncrement:false"`
	Team   string `gorm:"primaryKey"`
	Opp    string `gorm:"not null"`
	Home   bool   `gorm:"not null"`
}
