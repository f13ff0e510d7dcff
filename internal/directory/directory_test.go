package directory

import (
	"testing"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.OpenTestDB()
	require.NoError(t, err)
	return db
}
