package models

// DefenseVsPosition is the weekly fantasy points a defense allows to a position
type DefenseVsPosition struct {
	Season   int     `gorm:"primaryKey;autoIncrement:false"`
	Week     int     `gorm:"primaryKey;autoIncrement:false"`
	Team     string  `gorm:"primaryKey"`
	Position string  `gorm:"primaryKey"`
	Dvp      float64 `gorm:"not null"`
}
