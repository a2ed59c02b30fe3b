package pipelineController

import (
	"encoding/json"

	"ffa/database"
	"ffa/middleware"
	"ffa/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RegisterModel records a trained candidate in the registry
func RegisterModel(c *fiber.Ctx) error {
	var body struct {
		ModelID string          `json:"model_id"`
		Label   string          `json:"label"`
		Metrics json.RawMessage `json:"metrics"`
	}

	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
	}

	if body.ModelID == "" {
		body.ModelID = uuid.NewString()
	}

	entry := models.ModelRegistry{
		ModelID: body.ModelID,
		Label:   body.Label,
	}
	if len(body.Metrics) > 0 {
		entry.Metrics = datatypes.JSON(body.Metrics)
	}

	if err := database.Database.Db.Create(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register model", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Model registered", entry)
}

// PromoteModel marks a model as the production model for (season, week).
// The prior holder for that week is demoted in the same transaction, so at
// most one model is prod per week. Repeating the call is a no-op success.
func PromoteModel(c *fiber.Ctx) error {
	var body struct {
		ModelID string `json:"model_id"`
		Season  int    `json:"season"`
		Week    int    `json:"week"`
	}

	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		// Demote the current holder(s) for this week
		if err := tx.Model(&models.ModelRegistry{}).
			Where("is_prod = ? AND prod_season = ? AND prod_week = ? AND model_id <> ?",
				true, body.Season, body.Week, body.ModelID).
			Updates(map[string]interface{}{
				"is_prod":     false,
				"prod_season": nil,
				"prod_week":   nil,
			}).Error; err != nil {
			return err
		}

		result := tx.Model(&models.ModelRegistry{}).
			Where("model_id = ?", body.ModelID).
			Updates(map[string]interface{}{
				"is_prod":     true,
				"prod_season": body.Season,
				"prod_week":   body.Week,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})

	if err == gorm.ErrRecordNotFound {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Model not found", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to promote model", nil)
	}

	var entry models.ModelRegistry
	database.Database.Db.First(&entry, "model_id = ?", body.ModelID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Model promoted", entry)
}

// GetProductionModel returns the promoted model for (season, week), if any
func GetProductionModel(c *fiber.Ctx) error {
	season := c.QueryInt("season", 0)
	week := c.QueryInt("week", 0)

	var entry models.ModelRegistry
	db := database.Database.Db.Where("is_prod = ?", true)
	if season != 0 {
		db = db.Where("prod_season = ?", season)
	}
	if week != 0 {
		db = db.Where("prod_week = ?", week)
	}

	if err := db.First(&entry).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No production model", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Production model retrieved", entry)
}
