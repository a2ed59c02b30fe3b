package pipelineRoutes

import (
	"ffa/config"
	pipelineController "ffa/controllers/pipeline"
	"ffa/middleware"
	pipelineValidator "ffa/validators/pipeline"

	"github.com/gofiber/fiber/v2"
)

// SetupPipelineRoutes wires the pipeline write boundary. Every route here is
// invoked by the external ML pipeline and guarded by the trigger token.
func SetupPipelineRoutes(app *fiber.App) {
	gate := middleware.TriggerToken(config.AppConfig.TriggerToken)

	runGroup := app.Group("/api/runs", gate)
	runGroup.Post("", pipelineValidator.OpenRunValidator(), pipelineController.OpenRun)
	runGroup.Patch("/:id", pipelineValidator.CloseRunValidator(), pipelineController.CloseRun)
	runGroup.Get("", pipelineController.GetRuns)

	modelGroup := app.Group("/api/models", gate)
	modelGroup.Post("", pipelineValidator.RegisterModelValidator(), pipelineController.RegisterModel)
	modelGroup.Post("/promote", pipelineValidator.PromoteModelValidator(), pipelineController.PromoteModel)
	modelGroup.Get("/production", pipelineController.GetProductionModel)

	app.Post("/api/predictions", gate, pipelineValidator.PredictionsWriteValidator(), pipelineController.UpsertPredictions)
	app.Post("/api/waivers/suggestions", gate, pipelineValidator.WaiversWriteValidator(), pipelineController.ReplaceWaiverSuggestions)
	app.Post("/api/ingest/reference", gate, pipelineValidator.IngestReferenceValidator(), pipelineController.IngestReference)
}
