package importareas

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/config"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/database"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/directory"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/logger"

	log "github.com/sirupsen/logrus"
)

var file string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import_areas",
		Short: "Import areas from a JSON file",
		Long:  `Read a JSON array of areas and upsert them. Entries with an id update that area, the rest are created. Invalid entries are rejected and counted.`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&file, "file", "f", "areas.json", "JSON array of areas")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	areas, err := directory.DecodeAreas(f)
	if err != nil {
		return fmt.Errorf("failed to read areas: %w", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	res, err := directory.ImportAreas(cmd.Context(), directory.NewAreaRepository(db), areas)
	if err != nil {
		return fmt.Errorf("import stopped: %w", err)
	}
	log.WithFields(log.Fields{
		"created":  res.Created,
		"updated":  res.Updated,
		"rejected": res.Rejected,
	}).Info("Areas imported")
	return nil
}
