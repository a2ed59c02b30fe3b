package pipelineController

import (
	"time"

	"ffa/config"
	"ffa/database"
	"ffa/middleware"
	"ffa/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// UpsertPredictions writes a batch of forecasts into the prediction cache.
// Interval validation has already run in the validator; nothing nonconforming
// reaches this point.
func UpsertPredictions(c *fiber.Ctx) error {
	var body struct {
		Season     int        `json:"season"`
		Week       int        `json:"week"`
		ValidUntil *time.Time `json:"valid_until"`
		Rows       []struct {
			PlayerID string  `json:"player_id"`
			P50      float64 `json:"p50"`
			Lo       float64 `json:"lo"`
			Hi       float64 `json:"hi"`
		} `json:"rows"`
	}

	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
	}

	validUntil := time.Now().UTC().Add(time.Duration(config.AppConfig.PredTTLHours) * time.Hour)
	if body.ValidUntil != nil {
		validUntil = body.ValidUntil.UTC()
	}

	pk := models.PredPk(body.Season, body.Week)
	rows := make([]models.PredCache, 0, len(body.Rows))
	for _, r := range body.Rows {
		rows = append(rows, models.PredCache{
			Pk:         pk,
			Sk:         models.PredSk(r.PlayerID),
			P50:        r.P50,
			Lo:         r.Lo,
			Hi:         r.Hi,
			ValidUntil: validUntil,
		})
	}

	if err := database.Database.Db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pk"}, {Name: "sk"}},
		DoUpdates: clause.AssignmentColumns([]string{"p50", "lo", "hi", "valid_until"}),
	}).Create(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to write predictions", nil)
	}

	response := map[string]interface{}{
		"pk":          pk,
		"rows":        len(rows),
		"valid_until": validUntil,
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Predictions written", response)
}
