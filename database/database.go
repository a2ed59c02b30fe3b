package database

import (
	"fmt"
	"log"
	"os"

	"ffa/config"
	"ffa/models"
	"ffa/models/league"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	// Build the PostgreSQL connection string
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.AppConfig.DBHost,
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBName,
		config.AppConfig.DBPort,
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10) // Maximum open connections
	sqlDB.SetMaxIdleConns(5)  // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.Player{},
		&models.ScheduleEntry{},
		&models.DefenseVsPosition{},
		&models.OddsLine{},
		&models.NewsItem{},
		&models.PredCache{},
		&models.ModelRun{},
		&models.ModelRegistry{},
		&league.UserLeague{},
		&league.RosterAssignment{},
		&league.Transaction{},
		&league.WaiverSuggestion{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	createViews(db)

	log.Println("Migrations completed successfully.")
}

// createViews recreates derived SQL views. DROP + CREATE keeps the statement
// portable across Postgres and the sqlite test database.
func createViews(db *gorm.DB) {
	db.Exec(`DROP VIEW IF EXISTS implied_win_prob`)
	err := db.Exec(`
		CREATE VIEW implied_win_prob AS
		SELECT season,
		       week,
		       game_id,
		       team,
		       CASE
		           WHEN moneyline IS NULL OR moneyline = 0 THEN NULL
		           WHEN moneyline > 0 THEN 100.0 / (moneyline + 100.0)
		           ELSE (-moneyline) * 1.0 / ((-moneyline) + 100.0)
		       END AS implied_prob
		FROM odds_lines`).Error
	if err != nil {
		log.Fatalf("View creation failed: %v", err)
	}
}
