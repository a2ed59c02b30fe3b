package leagueController

import (
	"ffa/database"
	"ffa/middleware"
	"ffa/models/league"

	"github.com/gofiber/fiber/v2"
)

// GetUserLeagues lists a user's league memberships
func GetUserLeagues(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var memberships []league.UserLeague
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leagues", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leagues retrieved successfully", memberships)
}

// GetRoster lists one user's roster assignments for a (season, week)
func GetRoster(c *fiber.Ctx) error {
	leagueID := c.Params("leagueId")
	userID := c.Query("user_id")
	season := c.QueryInt("season", 0)
	week := c.QueryInt("week", 0)

	if userID == "" || season == 0 || week == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "user_id, season and week are required", nil)
	}

	var assignments []league.RosterAssignment
	if err := database.Database.Db.
		Where("league_id = ? AND user_id = ? AND season = ? AND week = ?", leagueID, userID, season, week).
		Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch roster", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Roster retrieved successfully", assignments)
}

// GetWaiverSuggestions lists suggestions for (league, season, week),
// best expected value over replacement first
func GetWaiverSuggestions(c *fiber.Ctx) error {
	leagueID := c.Params("leagueId")
	season := c.QueryInt("season", 0)
	week := c.QueryInt("week", 0)

	if season == 0 || week == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "season and week are required", nil)
	}

	var suggestions []league.WaiverSuggestion
	if err := database.Database.Db.
		Where("league_id = ? AND season = ? AND week = ?", leagueID, season, week).
		Order("evor DESC").
		Find(&suggestions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch waiver suggestions", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Waiver suggestions retrieved successfully", suggestions)
}

// GetTransactions lists a league's transaction log, newest first, paginated
func GetTransactions(c *fiber.Ctx) error {
	leagueID := c.Params("leagueId")

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&league.Transaction{}).Where("league_id = ?", leagueID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to count transactions", nil)
	}

	var txs []league.Transaction
	if err := db.Order("ts DESC").Offset(offset).Limit(limit).Find(&txs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions", nil)
	}

	response := map[string]interface{}{
		"transactions": txs,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions retrieved successfully", response)
}
