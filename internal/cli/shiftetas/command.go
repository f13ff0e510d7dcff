package shiftetas

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/config"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/database"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/eta"
	"github.com/eyadma/whatsapp-automation-app-sub004/internal/logger"

	log "github.com/sirupsen/logrus"
)

var (
	userID  string
	minutes int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift_etas",
		Short: "Shift every ETA of a user",
		Long:  `Add (or with a negative value subtract) minutes to every stored ETA of one user. Malformed ETAs are reported and left untouched.`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "User whose ETAs are shifted (required)")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 60, "Minutes to add, negative to subtract")
	cmd.MarkFlagRequired("user")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	result, err := eta.NewRegistry(db).ShiftAll(cmd.Context(), userID, time.Duration(minutes)*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to shift ETAs: %w", err)
	}

	for _, row := range result.Updated {
		log.WithFields(log.Fields{"area_id": row.AreaID, "eta": row.ETA}).Info("Shifted")
	}
	for _, row := range result.Skipped {
		log.WithFields(log.Fields{"area_id": row.AreaID, "eta": row.ETA}).Warn("Skipped malformed ETA")
	}
	log.Infof("Done: %d updated, %d skipped", len(result.Updated), len(result.Skipped))
	return nil
}
