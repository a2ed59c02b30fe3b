package pipelineController

import (
	"time"

	"ffa/database"
	"ffa/middleware"
	"ffa/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

// IngestReference bulk-upserts dimension rows from the external ingestion
// process. News rows referencing unknown players are skipped and counted
// rather than failing the batch.
func IngestReference(c *fiber.Ctx) error {
	var body struct {
		Players []struct {
			PlayerID  string  `json:"player_id"`
			Position  string  `json:"position"`
			Team      *string `json:"team"`
			Name      string  `json:"name"`
			SleeperID string  `json:"sleeper_id"`
		} `json:"players"`
		Schedule []struct {
			Season int    `json:"season"`
			Week   int    `json:"week"`
			Team   string `json:"team"`
			Opp    string `json:"opp"`
			Home   bool   `json:"home"`
		} `json:"schedule"`
		DefenseVsPos []struct {
			Season   int     `json:"season"`
			Week     int     `json:"week"`
			Team     string  `json:"team"`
			Position string  `json:"position"`
			Dvp      float64 `json:"dvp"`
		} `json:"defense_vs_pos"`
		Odds []struct {
			Season    int      `json:"season"`
			Week      int      `json:"week"`
			GameID    string   `json:"game_id"`
			Team      string   `json:"team"`
			Opp       string   `json:"opp"`
			Spread    *float64 `json:"spread"`
			Moneyline *int     `json:"moneyline"`
			Total     *float64 `json:"total"`
		} `json:"odds"`
		News []struct {
			PlayerID string    `json:"player_id"`
			Ts       time.Time `json:"ts"`
			Headline string    `json:"headline"`
		} `json:"news"`
	}

	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data", nil)
	}

	db := database.Database.Db
	upsert := clause.OnConflict{UpdateAll: true}
	counts := map[string]interface{}{}

	if len(body.Players) > 0 {
		rows := make([]models.Player, 0, len(body.Players))
		for _, p := range body.Players {
			rows = append(rows, models.Player{
				ID:        p.PlayerID,
				Position:  p.Position,
				Team:      p.Team,
				Name:      p.Name,
				SleeperID: p.SleeperID,
			})
		}
		if err := db.Clauses(upsert).Create(&rows).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upsert players", nil)
		}
		counts["players"] = len(rows)
	}

	if len(body.Schedule) > 0 {
		rows := make([]models.ScheduleEntry, 0, len(body.Schedule))
		for _, s := range body.Schedule {
			rows = append(rows, models.ScheduleEntry{
				Season: s.Season,
				Week:   s.Week,
				Team:   s.Team,
				Opp:    s.Opp,
				Home:   s.Home,
			})
		}
		if err := db.Clauses(upsert).Create(&rows).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upsert schedule", nil)
		}
		counts["schedule"] = len(rows)
	}

	if len(body.DefenseVsPos) > 0 {
		rows := make([]models.DefenseVsPosition, 0, len(body.DefenseVsPos))
		for _, d := range body.DefenseVsPos {
			rows = append(rows, models.DefenseVsPosition{
				Season:   d.Season,
				Week:     d.Week,
				Team:     d.Team,
				Position: d.Position,
				Dvp:      d.Dvp,
			})
		}
		if err := db.Clauses(upsert).Create(&rows).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upsert defense vs position", nil)
		}
		counts["defense_vs_pos"] = len(rows)
	}

	if len(body.Odds) > 0 {
		rows := make([]models.OddsLine, 0, len(body.Odds))
		for _, o := range body.Odds {
			rows = append(rows, models.OddsLine{
				Season:    o.Season,
				Week:      o.Week,
				GameID:    o.GameID,
				Team:      o.Team,
				Opp:       o.Opp,
				Spread:    o.Spread,
				Moneyline: o.Moneyline,
				Total:     o.Total,
			})
		}
		if err := db.Clauses(upsert).Create(&rows).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upsert odds", nil)
		}
		counts["odds"] = len(rows)
	}

	if len(body.News) > 0 {
		inserted := 0
		skipped := 0
		for _, n := range body.News {
			var player models.Player
			if err := db.First(&player, "player_id = ?", n.PlayerID).Error; err != nil {
				skipped++
				continue
			}
			row := models.NewsItem{
				PlayerID: n.PlayerID,
				Ts:       n.Ts.UTC(),
				Headline: n.Headline,
			}
			if err := db.Omit(clause.Associations).Clauses(upsert).Create(&row).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upsert news", nil)
			}
			inserted++
		}
		counts["news"] = inserted
		counts["news_skipped"] = skipped
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reference data ingested", counts)
}
