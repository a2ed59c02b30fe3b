package leagueValidator

import (
	"ffa/middleware"

	"github.com/gofiber/fiber/v2"
)

// SyncLeagueValidator validates a league index sync request
func SyncLeagueValidator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Season int `json:"season"`
			Week   int `json:"week"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
		}

		errors := make(map[string]string)

		if reqData.Season == 0 {
			errors["season"] = "Season is required"
		}
		if reqData.Week < 1 || reqData.Week > 23 {
			errors["week"] = "Week must be between 1 and 23"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// SyncWeekValidator validates a weekly transaction sync request
func SyncWeekValidator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Season int `json:"season"`
			Week   int `json:"week"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
		}

		errors := make(map[string]string)

		if reqData.Season == 0 {
			errors["season"] = "Season is required"
		}
		if reqData.Week < 1 || reqData.Week > 23 {
			errors["week"] = "Week must be between 1 and 23"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
