package main

import (
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/config"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/database"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/logger"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Copies every table from the SQLite file at DB_PATH into the PostgreSQL
// database described by the DB_* settings. Run sync_sequences afterwards.
func main() {
	cfg := config.LoadConfig()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	sqliteDB, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to SQLite: %v", err)
	}
	log.Infof("Connected to SQLite at %s", cfg.DBPath)

	pgDB, err := database.OpenPostgres(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	if err := database.Migrate(pgDB); err != nil {
		log.Fatalf("Failed to migrate PostgreSQL schema: %v", err)
	}

	log.Info("Starting data migration...")

	migrateTable := func(tableName string, rows interface{}) {
		log.Infof("Migrating table: %s", tableName)

		res := sqliteDB.Find(rows)
		if res.Error != nil {
			log.WithError(res.Error).Errorf("Error reading %s from SQLite", tableName)
			return
		}
		if res.RowsAffected == 0 {
			log.Infof("No rows in %s", tableName)
			return
		}

		err := pgDB.Transaction(func(tx *gorm.DB) error {
			return tx.CreateInBatches(rows, 500).Error
		})
		if err != nil {
			log.WithError(err).Errorf("Error writing %s to Postgres", tableName)
			return
		}
		log.Infof("Successfully migrated %d rows of %s", res.RowsAffected, tableName)
	}

	var areas []models.Area
	migrateTable("areas", &areas)

	var templates []models.Template
	migrateTable("templates", &templates)

	var customers []models.Customer
	migrateTable("customers", &customers)

	var etas []models.ETA
	migrateTable("etas", &etas)

	var processes []models.SendProcess
	migrateTable("send_processes", &processes)

	log.Info("Migration completed!")
}
