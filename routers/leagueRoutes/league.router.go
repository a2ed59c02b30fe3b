package leagueRoutes

import (
	"ffa/config"
	leagueController "ffa/controllers/league"
	"ffa/middleware"
	leagueValidator "ffa/validators/league"

	"github.com/gofiber/fiber/v2"
)

func SetupLeagueRoutes(app *fiber.App) {
	gate := middleware.TriggerToken(config.AppConfig.TriggerToken)

	// Sync endpoints are server-to-server
	app.Post("/api/leagues/:leagueId/sync", gate, leagueValidator.SyncLeagueValidator(), leagueController.SyncLeague)
	app.Post("/api/leagues/:leagueId/sync-week", gate, leagueValidator.SyncWeekValidator(), leagueController.SyncLeagueWeek)

	// Reads
	app.Get("/api/users/:userId/leagues", leagueController.GetUserLeagues)
	app.Get("/api/leagues/:leagueId/roster", leagueController.GetRoster)
	app.Get("/api/leagues/:leagueId/waivers", leagueController.GetWaiverSuggestions)
	app.Get("/api/leagues/:leagueId/transactions", leagueController.GetTransactions)
}
