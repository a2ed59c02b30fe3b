package triggerController

import (
	"ffa/utils"

	"github.com/gofiber/fiber/v2"
)

// Dispatch is the pipeline dispatch hook; a package variable so tests can
// swap in a recorder
var Dispatch = utils.DispatchPipeline

type triggerAck struct {
	Ok     bool `json:"ok"`
	Season *int `json:"season,omitempty"`
	Week   *int `json:"week,omitempty"`
}

// parseSeasonWeek reads the optional season/week body. Missing or malformed
// bodies are not an error; both fields just stay absent and the pipeline
// resolves "current" on its side.
func parseSeasonWeek(c *fiber.Ctx) (season, week *int) {
	body := new(struct {
		Season *int `json:"season"`
		Week   *int `json:"week"`
	})
	if err := c.BodyParser(body); err != nil {
		return nil, nil
	}
	return body.Season, body.Week
}

// TriggerWeekly kicks off the weekly pipeline. The dispatch is fire-and-
// forget: the ack goes out immediately and never waits on pipeline work.
func TriggerWeekly(c *fiber.Ctx) error {
	season, week := parseSeasonWeek(c)

	Dispatch("weekly", season, week)

	return c.Status(fiber.StatusOK).JSON(triggerAck{Ok: true, Season: season, Week: week})
}

// WaiverScan kicks off a waiver-wire scan run
func WaiverScan(c *fiber.Ctx) error {
	season, week := parseSeasonWeek(c)

	Dispatch("waivers", season, week)

	return c.Status(fiber.StatusOK).JSON(triggerAck{Ok: true, Season: season, Week: week})
}

// RefreshWeek kicks off a refresh of the current week. No body is consumed.
func RefreshWeek(c *fiber.Ctx) error {
	Dispatch("refresh", nil, nil)

	return c.Status(fiber.StatusOK).JSON(triggerAck{Ok: true})
}
