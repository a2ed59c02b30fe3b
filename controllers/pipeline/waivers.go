package pipelineController

import (
	"time"

	"ffa/database"
	"ffa/middleware"
	"ffa/models/league"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReplaceWaiverSuggestions fully replaces the suggestion set for one
// (league, season, week). Each scan run sends the complete new set.
func ReplaceWaiverSuggestions(c *fiber.Ctx) error {
	var body struct {
		LeagueID string `json:"league_id"`
		Season   int    `json:"season"`
		Week     int    `json:"week"`
		Rows     []struct {
			PlayerID string  `json:"player_id"`
			Evor     float64 `json:"evor"`
			Reason   string  `json:"reason"`
		} `json:"rows"`
	}

	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
	}

	now := time.Now().UTC()
	rows := make([]league.WaiverSuggestion, 0, len(body.Rows))
	for _, r := range body.Rows {
		rows = append(rows, league.WaiverSuggestion{
			LeagueID:  body.LeagueID,
			Season:    body.Season,
			Week:      body.Week,
			PlayerID:  r.PlayerID,
			Evor:      r.Evor,
			Reason:    r.Reason,
			CreatedAt: now,
		})
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("league_id = ? AND season = ? AND week = ?",
			body.LeagueID, body.Season, body.Week).
			Delete(&league.WaiverSuggestion{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Omit(clause.Associations).Create(&rows).Error
	})

	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to replace waiver suggestions", nil)
	}

	response := map[string]interface{}{
		"league_id": body.LeagueID,
		"season":    body.Season,
		"week":      body.Week,
		"rows":      len(rows),
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Waiver suggestions replaced", response)
}
