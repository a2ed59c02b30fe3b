package league

// PlatformSleeper is the only league platform synced today
const PlatformSleeper = "sleeper"

// UserLeague associates a platform user with a fantasy league
type UserLeague struct {
	Platform     string `gorm:"primaryKey"`
	LeagueID     string `gorm:"primaryKey"`
	UserID       string `gorm:"primaryKey"`
	LeagueName   string
	LeagueAvatar string
}
