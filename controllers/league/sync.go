package leagueController

import (
	"ffa/database"
	"ffa/middleware"
	"ffa/models"
	"ffa/models/league"
	"ffa/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// slotFor classifies a Sleeper roster player into our slot codes
func slotFor(roster utils.SleeperRoster, playerID string) string {
	for _, id := range roster.Starters {
		if id == playerID {
			return league.SlotStarter
		}
	}
	for _, id := range roster.Taxi {
		if id == playerID {
			return league.SlotTaxi
		}
	}
	for _, id := range roster.Reserve {
		if id == playerID {
			return league.SlotReserve
		}
	}
	return league.SlotBench
}

// SyncLeague pulls a league's index from Sleeper: membership and week
// rosters. Roster players are matched to our players table by sleeper_id;
// unmatched ids are skipped and counted (historical players come from a
// different feed and may lag the platform).
func SyncLeague(c *fiber.Ctx) error {
	leagueID := c.Params("leagueId")

	var body struct {
		Season int `json:"season"`
		Week   int `json:"week"`
	}
	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
	}

	meta, err := utils.FetchLeague(leagueID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to fetch league", nil)
	}
	users, err := utils.FetchLeagueUsers(leagueID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to fetch league users", nil)
	}
	rosters, err := utils.FetchLeagueRosters(leagueID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to fetch league rosters", nil)
	}

	db := database.Database.Db
	upsert := clause.OnConflict{UpdateAll: true}

	// Membership
	memberships := make([]league.UserLeague, 0, len(users))
	for _, u := range users {
		memberships = append(memberships, league.UserLeague{
			Platform:     league.PlatformSleeper,
			LeagueID:     leagueID,
			UserID:       u.UserID,
			LeagueName:   meta.Name,
			LeagueAvatar: meta.Avatar,
		})
	}
	if len(memberships) > 0 {
		if err := db.Clauses(upsert).Create(&memberships).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upsert league users", nil)
		}
	}

	// Map sleeper ids to our player ids
	sleeperIDs := make([]string, 0)
	for _, r := range rosters {
		sleeperIDs = append(sleeperIDs, r.Players...)
	}
	playerBySleeper := map[string]string{}
	if len(sleeperIDs) > 0 {
		var players []models.Player
		if err := db.Where("sleeper_id IN ?", sleeperIDs).Find(&players).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve players", nil)
		}
		for _, p := range players {
			playerBySleeper[p.SleeperID] = p.ID
		}
	}

	assigned := 0
	skipped := 0
	for _, r := range rosters {
		if r.OwnerID == "" {
			continue
		}
		for _, sleeperID := range r.Players {
			playerID, ok := playerBySleeper[sleeperID]
			if !ok {
				skipped++
				continue
			}
			row := league.RosterAssignment{
				LeagueID: leagueID,
				UserID:   r.OwnerID,
				PlayerID: playerID,
				Season:   body.Season,
				Week:     body.Week,
				Slot:     slotFor(r, sleeperID),
			}
			if err := db.Omit(clause.Associations).Clauses(upsert).Create(&row).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upsert roster assignment", nil)
			}
			assigned++
		}
	}

	response := map[string]interface{}{
		"league_id":       leagueID,
		"season":          body.Season,
		"week":            body.Week,
		"users":           len(users),
		"assignments":     assigned,
		"skipped_players": skipped,
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "League synced", response)
}

// SyncLeagueWeek pulls a week's transactions from Sleeper. The transaction
// log is append-only: rows whose (league_id, ts) already exist are left
// untouched.
func SyncLeagueWeek(c *fiber.Ctx) error {
	leagueID := c.Params("leagueId")

	var body struct {
		Season int `json:"season"`
		Week   int `json:"week"`
	}
	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
	}

	txs, err := utils.FetchLeagueTransactions(leagueID, body.Week)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to fetch transactions", nil)
	}

	inserted := 0
	for _, t := range txs {
		row := league.Transaction{
			LeagueID: leagueID,
			Ts:       t.Timestamp(),
			Type:     t.Type,
			Payload:  datatypes.JSON(t.Raw),
			TxID:     t.TransactionID,
		}
		result := database.Database.Db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
		if result.Error != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to insert transactions", nil)
		}
		inserted += int(result.RowsAffected)
	}

	response := map[string]interface{}{
		"league_id":    leagueID,
		"season":       body.Season,
		"week":         body.Week,
		"transactions": inserted,
		"fetched":      len(txs),
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "League week synced", response)
}
