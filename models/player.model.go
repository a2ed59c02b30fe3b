package models

// Position role codes for skill players and team defenses
const (
	PositionQB  = "QB"
	PositionRB  = "RB"
	PositionWR  = "WR"
	PositionTE  = "TE"
	PositionK   = "K"
	PositionDST = "DST"
)

// ValidPositions is the fixed set of accepted role codes
var ValidPositions = map[string]bool{
	PositionQB:  true,
	PositionRB:  true,
	PositionWR:  true,
	PositionTE:  true,
	PositionK:   true,
	PositionDST: true,
}

type Player struct {
	ID        string  `gorm:"column:player_id;primaryKey"`
	Position  string  `gorm:"not null;index"`
	Team      *string // NULL for free agents
	Name      string  `gorm:"not null"`
	SleeperID string  `gorm:"index"`
}
