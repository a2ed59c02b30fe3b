package pipelineController

import (
	"encoding/json"
	"time"

	"ffa/database"
	"ffa/middleware"
	"ffa/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OpenRun opens a run-ledger row for a pipeline stage (status=started)
func OpenRun(c *fiber.Ctx) error {
	var body struct {
		Season  int             `json:"season"`
		Week    int             `json:"week"`
		Stage   string          `json:"stage"`
		Metrics json.RawMessage `json:"metrics"`
	}

	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
	}

	run := models.ModelRun{
		RunID:     uuid.NewString(),
		Season:    body.Season,
		Week:      body.Week,
		Stage:     body.Stage,
		Status:    models.RunStarted,
		StartedAt: time.Now().UTC(),
	}
	if len(body.Metrics) > 0 {
		run.Metrics = datatypes.JSON(body.Metrics)
	}

	if err := database.Database.Db.Create(&run).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to open run", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Run opened", run)
}

// CloseRun finalizes a run with a terminal status. Status, metrics and
// ended_at go out in one UPDATE guarded on status=started, so a run is never
// observable half-closed and a repeat close changes nothing.
func CloseRun(c *fiber.Ctx) error {
	runID := c.Params("id")

	var body struct {
		Status  string          `json:"status"`
		Metrics json.RawMessage `json:"metrics"`
	}

	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"status":   body.Status,
		"ended_at": &now,
	}
	if len(body.Metrics) > 0 {
		updates["metrics"] = datatypes.JSON(body.Metrics)
	}

	result := database.Database.Db.Model(&models.ModelRun{}).
		Where("run_id = ? AND status = ?", runID, models.RunStarted).
		Updates(updates)

	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to close run", nil)
	}

	if result.RowsAffected == 0 {
		var run models.ModelRun
		if err := database.Database.Db.First(&run, "run_id = ?", runID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Run not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Run already closed", run)
	}

	var run models.ModelRun
	database.Database.Db.First(&run, "run_id = ?", runID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Run closed", run)
}

// GetRuns lists ledger rows, newest first, with pagination
func GetRuns(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.ModelRun{})
	if season := c.QueryInt("season", 0); season != 0 {
		db = db.Where("season = ?", season)
	}
	if week := c.QueryInt("week", 0); week != 0 {
		db = db.Where("week = ?", week)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to count runs", nil)
	}

	var runs []models.ModelRun
	if err := db.Order("started_at DESC").Offset(offset).Limit(limit).Find(&runs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch runs", nil)
	}

	response := map[string]interface{}{
		"runs": runs,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Runs retrieved successfully", response)
}
