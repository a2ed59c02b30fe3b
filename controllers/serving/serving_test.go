package servingController_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"ffa/config"
	"ffa/database"
	"ffa/models"
	servingRoutes "ffa/routers/servingRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServingApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{PredTTLHours: 6}
	database.ConnectTestDb()

	app := fiber.New()
	servingRoutes.SetupServingRoutes(app)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	parsed := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func seedPrediction(t *testing.T, season, week int, playerID string, p50 float64, validUntil time.Time) {
	t.Helper()
	err := database.Database.Db.Create(&models.PredCache{
		Pk:         models.PredPk(season, week),
		Sk:         models.PredSk(playerID),
		P50:        p50,
		Lo:         p50 - 4,
		Hi:         p50 + 4,
		ValidUntil: validUntil,
	}).Error
	require.NoError(t, err)
}

func TestGetPredictionFresh(t *testing.T) {
	app := setupServingApp(t)
	seedPrediction(t, 2025, 3, "p1", 12.5, time.Now().UTC().Add(time.Hour))

	code, body := getJSON(t, app, "/api/predictions/2025/3/p1")
	require.Equal(t, fiber.StatusOK, code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "p1", data["player_id"])
	assert.Equal(t, float64(2025), data["season"])
	assert.Equal(t, float64(3), data["week"])
	assert.InDelta(t, 12.5, data["p50"].(float64), 1e-9)
	assert.InDelta(t, 8.5, data["lo"].(float64), 1e-9)
	assert.InDelta(t, 16.5, data["hi"].(float64), 1e-9)
}

// Expired rows stay in storage but are a miss on the read path.
func TestGetPredictionStaleIsMiss(t *testing.T) {
	app := setupServingApp(t)
	seedPrediction(t, 2025, 3, "p1", 12.5, time.Now().UTC().Add(-time.Minute))

	code, body := getJSON(t, app, "/api/predictions/2025/3/p1")
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "No fresh prediction", body["message"])

	// The row is still physically present
	var count int64
	database.Database.Db.Model(&models.PredCache{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetPredictionAbsent(t *testing.T) {
	app := setupServingApp(t)

	code, body := getJSON(t, app, "/api/predictions/2025/3/nobody")
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "No fresh prediction", body["message"])
}

func seedOddsLine(t *testing.T, team string, moneyline *int) {
	t.Helper()
	err := database.Database.Db.Create(&models.OddsLine{
		Season:    2025,
		Week:      3,
		GameID:    "nyj-buf-w3",
		Team:      team,
		Opp:       "OPP",
		Moneyline: moneyline,
	}).Error
	require.NoError(t, err)
}

func TestGetOddsImpliedProbability(t *testing.T) {
	app := setupServingApp(t)

	plus := 150
	minus := -150
	seedOddsLine(t, "BUF", &plus)
	seedOddsLine(t, "NYJ", &minus)
	seedOddsLine(t, "MIA", nil)

	code, body := getJSON(t, app, "/api/odds/2025/3")
	require.Equal(t, fiber.StatusOK, code)

	lines := body["data"].([]interface{})
	require.Len(t, lines, 3)

	byTeam := map[string]map[string]interface{}{}
	for _, l := range lines {
		line := l.(map[string]interface{})
		byTeam[line["team"].(string)] = line
	}

	assert.InDelta(t, 0.40, byTeam["BUF"]["implied_prob"].(float64), 1e-9)
	assert.InDelta(t, 0.60, byTeam["NYJ"]["implied_prob"].(float64), 1e-9)
	assert.Nil(t, byTeam["MIA"]["implied_prob"], "null moneyline yields null probability")
}

func TestGetPlayerNewsNewestFirst(t *testing.T) {
	app := setupServingApp(t)

	require.NoError(t, database.Database.Db.Create(&models.Player{
		ID: "p1", Position: models.PositionWR, Name: "Example WR",
	}).Error)

	base := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, database.Database.Db.Create(&models.NewsItem{
			PlayerID: "p1",
			Ts:       base.Add(time.Duration(i) * time.Hour),
			Headline: fmt.Sprintf("Update %d", i),
		}).Error)
	}

	code, body := getJSON(t, app, "/api/players/p1/news?limit=2")
	require.Equal(t, fiber.StatusOK, code)

	data := body["data"].(map[string]interface{})
	items := data["news"].([]interface{})
	require.Len(t, items, 2)
	assert.Equal(t, "Update 2", items[0].(map[string]interface{})["Headline"])
	assert.Equal(t, float64(3), data["pagination"].(map[string]interface{})["total"])
}
