package triggerRoutes

import (
	"ffa/config"
	triggerController "ffa/controllers/trigger"
	"ffa/middleware"
	triggerValidator "ffa/validators/trigger"

	"github.com/gofiber/fiber/v2"
)

func SetupTriggerRoutes(app *fiber.App) {
	gate := middleware.TriggerToken(config.AppConfig.TriggerToken)

	// Gate comes first: unauthorized requests get 401 before any body parsing
	app.Post("/api/trigger-weekly", gate, triggerValidator.TriggerBodyValidator(), triggerController.TriggerWeekly)
	app.Post("/api/waivers/scan", gate, triggerValidator.TriggerBodyValidator(), triggerController.WaiverScan)
	app.Post("/api/refresh-week", gate, triggerController.RefreshWeek)
}
