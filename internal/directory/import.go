package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	log "github.com/sirupsen/logrus"
)

// ImportResult counts what ImportAreas did.
type ImportResult struct {
	Created  int
	Updated  int
	Rejected int
}

// DecodeAreas reads a JSON array of areas.
func DecodeAreas(r io.Reader) ([]models.Area, error) {
	var areas []models.Area
	if err := json.NewDecoder(r).Decode(&areas); err != nil {
		return nil, fmt.Errorf("decode areas: %w", err)
	}
	return areas, nil
}

// ImportAreas upserts areas: rows with a known id are updated, the rest are
// created. Areas that fail validation are logged and skipped.
func ImportAreas(ctx context.Context, store AreaStore, areas []models.Area) (*ImportResult, error) {
	result := &ImportResult{}
	for i := range areas {
		a := areas[i]
		fields := log.Fields{"id": a.ID, "name": a.NameEnglish}

		if err := ValidateArea(&a); err != nil {
			log.WithError(err).WithFields(fields).Warn("Rejected area")
			result.Rejected++
			continue
		}

		if a.ID != 0 {
			err := store.Update(ctx, &a)
			if err == nil {
				result.Updated++
				continue
			}
			if !errors.Is(err, ErrNotFound) {
				return result, err
			}
		}
		if err := store.Create(ctx, &a); err != nil {
			return result, fmt.Errorf("import area %q: %w", a.NameEnglish, err)
		}
		result.Created++
	}
	return result, nil
}
