package database

import (
	"fmt"
	"log"
	"sync/atomic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDbSeq atomic.Int64

// ConnectTestDb wires the global Database to an in-memory sqlite database
// with the full schema. Each call gives a fresh, empty database; the named
// shared-cache DSN keeps pooled connections on the same database.
func ConnectTestDb() {
	// _foreign_keys=on because sqlite leaves enforcement off per connection
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_foreign_keys=on", testDbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Failed to open in-memory sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1) // keep the shared in-memory database alive

	runMigrations(db)

	Database = DbInstance{Db: db}
}
