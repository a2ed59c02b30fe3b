package triggerValidator

import (
	"ffa/middleware"

	"github.com/gofiber/fiber/v2"
)

// TriggerBodyValidator checks the optional season/week trigger body.
// A missing or malformed body is fine (both fields stay absent); only a
// week outside the 1-23 range is rejected.
func TriggerBodyValidator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Season *int `json:"season"`
			Week   *int `json:"week"`
		})

		if err := c.BodyParser(reqData); err != nil {
			// tolerated: treated as an empty body
			return c.Next()
		}

		errors := make(map[string]string)

		if reqData.Week != nil && (*reqData.Week < 1 || *reqData.Week > 23) {
			errors["week"] = "Week must be between 1 and 23"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
