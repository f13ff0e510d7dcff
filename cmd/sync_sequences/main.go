package main

import (
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/config"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/database"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/logger"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	log "github.com/sirupsen/logrus"
)

// Resets the PostgreSQL id sequences after migrate_data copied rows with
// explicit ids.
func main() {
	cfg := config.LoadConfig()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	db, err := database.OpenPostgres(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	tables := []string{
		models.Area{}.TableName(),
		models.Template{}.TableName(),
		models.Customer{}.TableName(),
		models.ETA{}.TableName(),
		models.SendProcess{}.TableName(),
	}

	log.Info("Syncing PostgreSQL sequences...")

	failed := 0
	for _, table := range tables {
		query := "SELECT setval(pg_get_serial_sequence('" + table + "', 'id'), coalesce(max(id), 0) + 1, false) FROM " + table
		if err := db.Exec(query).Error; err != nil {
			log.WithError(err).Errorf("Error syncing sequence for %s", table)
			failed++
		} else {
			log.Infof("Successfully synced sequence for %s", table)
		}
	}

	if failed > 0 {
		log.Fatalf("%d sequences failed to sync", failed)
	}
	log.Info("DONE!")
}
