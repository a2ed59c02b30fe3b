package league

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction is an append-only record of a league event (waiver claim,
// trade, free-agent add). Payload keeps the platform's raw event blob.
type Transaction struct {
	LeagueID string    `gorm:"primaryKey"`
	Ts       time.Time `gorm:"primaryKey;index:idx_transactions_ts,sort:desc"`
	Type     string    `gorm:"not null"`
	Payload  datatypes.JSON
	TxID     string `gorm:"index"`
}
