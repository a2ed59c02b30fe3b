package servingRoutes

import (
	servingController "ffa/controllers/serving"

	"github.com/gofiber/fiber/v2"
)

// SetupServingRoutes wires the read-only serving surface. These routes only
// do lookups; no inference or ingestion runs behind them.
func SetupServingRoutes(app *fiber.App) {
	app.Get("/api/predictions/:season/:week/:playerId", servingController.GetPrediction)
	app.Get("/api/odds/:season/:week", servingController.GetOdds)
	app.Get("/api/players/:playerId/news", servingController.GetPlayerNews)
}
