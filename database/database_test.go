package database

import (
	"strings"
	"testing"
	"time"

	"ffa/models"
	"ffa/models/league"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

func TestDeletePlayerCascades(t *testing.T) {
	ConnectTestDb()
	db := Database.Db

	require.NoError(t, db.Create(&models.Player{
		ID: "p1", Position: models.PositionRB, Name: "Example RB",
	}).Error)
	require.NoError(t, db.Create(&models.Player{
		ID: "p2", Position: models.PositionWR, Name: "Example WR",
	}).Error)

	require.NoError(t, db.Omit(clause.Associations).Create(&models.NewsItem{
		PlayerID: "p1", Ts: time.Now().UTC(), Headline: "Questionable for Sunday",
	}).Error)
	require.NoError(t, db.Omit(clause.Associations).Create(&league.RosterAssignment{
		LeagueID: "L1", UserID: "u1", PlayerID: "p1", Season: 2025, Week: 3, Slot: league.SlotStarter,
	}).Error)
	require.NoError(t, db.Omit(clause.Associations).Create(&league.WaiverSuggestion{
		LeagueID: "L1", Season: 2025, Week: 3, PlayerID: "p1", Evor: 3.3,
	}).Error)
	require.NoError(t, db.Omit(clause.Associations).Create(&league.WaiverSuggestion{
		LeagueID: "L1", Season: 2025, Week: 3, PlayerID: "p2", Evor: 1.1,
	}).Error)

	require.NoError(t, db.Delete(&models.Player{ID: "p1"}).Error)

	var newsCount, rosterCount, waiverCount int64
	db.Model(&models.NewsItem{}).Where("player_id = ?", "p1").Count(&newsCount)
	db.Model(&league.RosterAssignment{}).Where("player_id = ?", "p1").Count(&rosterCount)
	db.Model(&league.WaiverSuggestion{}).Where("player_id = ?", "p1").Count(&waiverCount)

	assert.Zero(t, newsCount, "news cascades on player delete")
	assert.Zero(t, rosterCount, "roster assignments cascade on player delete")
	assert.Zero(t, waiverCount, "waiver suggestions cascade on player delete")

	// Other players' rows are untouched
	var otherWaivers int64
	db.Model(&league.WaiverSuggestion{}).Where("player_id = ?", "p2").Count(&otherWaivers)
	assert.Equal(t, int64(1), otherWaivers)
}

func TestNewsRequiresExistingPlayer(t *testing.T) {
	ConnectTestDb()

	err := Database.Db.Omit(clause.Associations).Create(&models.NewsItem{
		PlayerID: "ghost", Ts: time.Now().UTC(), Headline: "Orphan headline",
	}).Error
	assert.Error(t, err, "news without a player row violates the foreign key")
}

func TestImpliedWinProbView(t *testing.T) {
	ConnectTestDb()
	db := Database.Db

	plus := 150
	minus := -150
	zero := 0
	require.NoError(t, db.Create(&[]models.OddsLine{
		{Season: 2025, Week: 3, GameID: "g1", Team: "BUF", Opp: "NYJ", Moneyline: &plus},
		{Season: 2025, Week: 3, GameID: "g1", Team: "NYJ", Opp: "BUF", Moneyline: &minus},
		{Season: 2025, Week: 3, GameID: "g2", Team: "MIA", Opp: "NE"},
		{Season: 2025, Week: 3, GameID: "g2", Team: "NE", Opp: "MIA", Moneyline: &zero},
	}).Error)

	type viewRow struct {
		Team        string
		ImpliedProb *float64
	}
	var rows []viewRow
	require.NoError(t, db.Raw(
		"SELECT team, implied_prob FROM implied_win_prob WHERE season = ? AND week = ? ORDER BY team",
		2025, 3).Scan(&rows).Error)
	require.Len(t, rows, 4)

	byTeam := map[string]*float64{}
	for _, r := range rows {
		byTeam[r.Team] = r.ImpliedProb
	}

	require.NotNil(t, byTeam["BUF"])
	assert.InDelta(t, 0.40, *byTeam["BUF"], 1e-9)
	require.NotNil(t, byTeam["NYJ"])
	assert.InDelta(t, 0.60, *byTeam["NYJ"], 1e-9)
	assert.Nil(t, byTeam["MIA"], "null moneyline yields null probability")
	assert.Nil(t, byTeam["NE"], "zero is not a valid American line")
}

// Migrations run on every boot and must be safe to repeat.
func TestMigrationsAreIdempotent(t *testing.T) {
	ConnectTestDb()

	runMigrations(Database.Db)

	var count int64
	assert.NoError(t, Database.Db.Model(&models.Player{}).Count(&count).Error)
}

// Player deletes can only cascade if the foreign keys sit on the child
// tables referencing players, not the other way around.
func TestPlayerForeignKeysSitOnChildTables(t *testing.T) {
	ConnectTestDb()

	ddl := func(table string) string {
		var sql string
		require.NoError(t, Database.Db.Raw(
			"SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&sql).Error)
		require.NotEmpty(t, sql, table)
		return strings.ToLower(sql)
	}

	for _, table := range []string{"news_items", "roster_assignments", "waiver_suggestions"} {
		d := ddl(table)
		assert.Contains(t, d, "references", table)
		assert.Contains(t, d, "players", table)
		assert.Contains(t, d, "on delete cascade", table)
	}

	assert.NotContains(t, ddl("players"), "references",
		"players must not carry constraints for its child tables")
}
