package servingController

import (
	"time"

	"ffa/database"
	"ffa/middleware"
	"ffa/models"
	"ffa/utils"

	"github.com/gofiber/fiber/v2"
)

type predictionResponse struct {
	PlayerID   string    `json:"player_id"`
	Season     int       `json:"season"`
	Week       int       `json:"week"`
	P50        float64   `json:"p50"`
	Lo         float64   `json:"lo"`
	Hi         float64   `json:"hi"`
	ValidUntil time.Time `json:"valid_until"`
}

// GetPrediction looks up a fresh cached forecast for one player-week.
// Rows at or past valid_until are a cache miss: they stay in storage but are
// never served, and a miss never triggers inference on this path.
func GetPrediction(c *fiber.Ctx) error {
	season, err := c.ParamsInt("season")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid season", nil)
	}
	week, err := c.ParamsInt("week")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid week", nil)
	}
	playerID := c.Params("playerId")

	var entry models.PredCache
	if err := database.Database.Db.
		Where("pk = ? AND sk = ?", models.PredPk(season, week), models.PredSk(playerID)).
		First(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No fresh prediction", nil)
	}

	if !entry.ValidUntil.After(time.Now().UTC()) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No fresh prediction", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prediction retrieved successfully", predictionResponse{
		PlayerID:   playerID,
		Season:     season,
		Week:       week,
		P50:        entry.P50,
		Lo:         entry.Lo,
		Hi:         entry.Hi,
		ValidUntil: entry.ValidUntil,
	})
}

type oddsResponse struct {
	GameID      string   `json:"game_id"`
	Team        string   `json:"team"`
	Opp         string   `json:"opp"`
	Spread      *float64 `json:"spread"`
	Moneyline   *int     `json:"moneyline"`
	Total       *float64 `json:"total"`
	ImpliedProb *float64 `json:"implied_prob"`
}

// GetOdds lists the week's lines with implied win probability, recomputed
// on every read rather than persisted
func GetOdds(c *fiber.Ctx) error {
	season, err := c.ParamsInt("season")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid season", nil)
	}
	week, err := c.ParamsInt("week")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid week", nil)
	}

	var lines []models.OddsLine
	if err := database.Database.Db.
		Where("season = ? AND week = ?", season, week).
		Order("game_id, team").
		Find(&lines).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch odds", nil)
	}

	response := make([]oddsResponse, 0, len(lines))
	for _, l := range lines {
		response = append(response, oddsResponse{
			GameID:      l.GameID,
			Team:        l.Team,
			Opp:         l.Opp,
			Spread:      l.Spread,
			Moneyline:   l.Moneyline,
			Total:       l.Total,
			ImpliedProb: utils.ImpliedWinProbability(l.Moneyline),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Odds retrieved successfully", response)
}

// GetPlayerNews lists a player's news items, newest first, with pagination
func GetPlayerNews(c *fiber.Ctx) error {
	playerID := c.Params("playerId")

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.NewsItem{}).Where("player_id = ?", playerID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to count news", nil)
	}

	var items []models.NewsItem
	if err := db.Order("ts DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch news", nil)
	}

	response := map[string]interface{}{
		"news": items,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "News retrieved successfully", response)
}
