package pipelineValidator

import (
	"fmt"

	"ffa/middleware"
	"ffa/models"

	"github.com/gofiber/fiber/v2"
)

func validWeek(week int) bool {
	return week >= 1 && week <= 23
}

// OpenRunValidator validates opening a pipeline run
func OpenRunValidator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Season int    `json:"season"`
			Week   int    `json:"week"`
			Stage  string `json:"stage"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
		}

		errors := make(map[string]string)

		if reqData.Season == 0 {
			errors["season"] = "Season is required"
		}
		if !validWeek(reqData.Week) {
			errors["week"] = "Week must be between 1 and 23"
		}
		if reqData.Stage == "" {
			errors["stage"] = "Stage is required"
		} else if !models.ValidStages[reqData.Stage] {
			errors["stage"] = "Unknown stage"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// CloseRunValidator validates closing a pipeline run
func CloseRunValidator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != models.RunSuccess && reqData.Status != models.RunFailed {
			errors["status"] = "Status must be success or failed"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// RegisterModelValidator validates registering a candidate model
func RegisterModelValidator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Label string `json:"label"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
		}

		errors := make(map[string]string)

		if reqData.Label == "" {
			errors["label"] = "Label is required"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// PromoteModelValidator validates a production promotion
func PromoteModelValidator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ModelID string `json:"model_id"`
			Season  int    `json:"season"`
			Week    int    `json:"week"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
		}

		errors := make(map[string]string)

		if reqData.ModelID == "" {
			errors["model_id"] = "Model ID is required"
		}
		if reqData.Season == 0 {
			errors["season"] = "Season is required"
		}
		if !validWeek(reqData.Week) {
			errors["week"] = "Week must be between 1 and 23"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// PredictionsWriteValidator validates a prediction-cache batch. The interval
// invariant lo <= p50 <= hi is enforced here, before anything reaches storage;
// one bad row rejects the whole batch.
func PredictionsWriteValidator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Season int `json:"season"`
			Week   int `json:"week"`
			Rows   []struct {
				PlayerID string  `json:"player_id"`
				P50      float64 `json:"p50"`
				Lo       float64 `json:"lo"`
				Hi       float64 `json:"hi"`
			} `json:"rows"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
		}

		errors := make(map[string]string)

		if reqData.Season == 0 {
			errors["season"] = "Season is required"
		}
		if !validWeek(reqData.Week) {
			errors["week"] = "Week must be between 1 and 23"
		}
		if len(reqData.Rows) == 0 {
			errors["rows"] = "At least one row is required"
		}

		for i, row := range reqData.Rows {
			key := fmt.Sprintf("rows[%d]", i)
			if row.PlayerID == "" {
				errors[key] = "Player ID is required"
			} else if row.Lo > row.P50 || row.P50 > row.Hi {
				errors[key] = "Interval must satisfy lo <= p50 <= hi"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// WaiversWriteValidator validates a waiver-suggestion replacement batch
func WaiversWriteValidator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LeagueID string `json:"league_id"`
			Season   int    `json:"season"`
			Week     int    `json:"week"`
			Rows     []struct {
				PlayerID string `json:"player_id"`
			} `json:"rows"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
		}

		errors := make(map[string]string)

		if reqData.LeagueID == "" {
			errors["league_id"] = "League ID is required"
		}
		if reqData.Season == 0 {
			errors["season"] = "Season is required"
		}
		if !validWeek(reqData.Week) {
			errors["week"] = "Week must be between 1 and 23"
		}
		for i, row := range reqData.Rows {
			if row.PlayerID == "" {
				errors[fmt.Sprintf("rows[%d]", i)] = "Player ID is required"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// IngestReferenceValidator validates a reference-data batch. Player position
// codes must come from the fixed role set.
func IngestReferenceValidator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Players []struct {
				PlayerID string `json:"player_id"`
				Position string `json:"position"`
				Name     string `json:"name"`
			} `json:"players"`
			Schedule []struct {
				Season int    `json:"season"`
				Week   int    `json:"week"`
				Team   string `json:"team"`
				Opp    string `json:"opp"`
			} `json:"schedule"`
			DefenseVsPos []struct {
				Season   int    `json:"season"`
				Week     int    `json:"week"`
				Team     string `json:"team"`
				Position string `json:"position"`
			} `json:"defense_vs_pos"`
			Odds []struct {
				Season int    `json:"season"`
				Week   int    `json:"week"`
				GameID string `json:"game_id"`
				Team   string `json:"team"`
			} `json:"odds"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
		}

		errors := make(map[string]string)

		for i, p := range reqData.Players {
			key := fmt.Sprintf("players[%d]", i)
			if p.PlayerID == "" {
				errors[key] = "Player ID is required"
			} else if !models.ValidPositions[p.Position] {
				errors[key] = "Unknown position code"
			}
		}
		for i, s := range reqData.Schedule {
			if !validWeek(s.Week) {
				errors[fmt.Sprintf("schedule[%d]", i)] = "Week must be between 1 and 23"
			}
		}
		for i, d := range reqData.DefenseVsPos {
			key := fmt.Sprintf("defense_vs_pos[%d]", i)
			if !validWeek(d.Week) {
				errors[key] = "Week must be between 1 and 23"
			} else if !models.ValidPositions[d.Position] {
				errors[key] = "Unknown position code"
			}
		}
		for i, o := range reqData.Odds {
			if !validWeek(o.Week) {
				errors[fmt.Sprintf("odds[%d]", i)] = "Week must be between 1 and 23"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
