package models

import "time"

type NewsItem struct {
	PlayerID string    `gorm:"primaryKey"`
	Ts       time.Time `gorm:"primaryKey;index:idx_news_ts,sort:desc"`
	Headline string    `gorm:"not null"`

	// Relationship
	Player Player `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}
