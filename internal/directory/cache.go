package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/eyadma/whatsapp-automation-app-sub004/internal/models"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// CachedAreas fronts an AreaRepository with a Redis read-through cache.
// Redis failures fall through to the database.
type CachedAreas struct {
	*AreaRepository
	client *redis.Client
	ttl    time.Duration
}

func NewCachedAreas(repo *AreaRepository, client *redis.Client, ttl time.Duration) *CachedAreas {
	return &CachedAreas{AreaRepository: repo, client: client, ttl: ttl}
}

func areaKey(id uint) string {
	return fmt.Sprintf("area:%d", id)
}

func (c *CachedAreas) Get(ctx context.Context, id uint) (*models.Area, error) {
	data, err := c.client.Get(ctx, areaKey(id)).Bytes()
	if err == nil {
		var area models.Area
		if err := json.Unmarshal(data, &area); err == nil {
			return &area, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.WithError(err).WithField("area_id", id).Warn("Area cache read failed")
	}

	area, err := c.AreaRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, *area)
	return area, nil
}

func (c *CachedAreas) GetMany(ctx context.Context, ids []uint) (map[uint]models.Area, error) {
	out := make(map[uint]models.Area, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = areaKey(id)
	}

	var missing []uint
	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		log.WithError(err).Warn("Area cache bulk read failed")
		missing = ids
	} else {
		for i, v := range values {
			s, ok := v.(string)
			if !ok {
				missing = append(missing, ids[i])
				continue
			}
			var area models.Area
			if err := json.Unmarshal([]byte(s), &area); err != nil {
				missing = append(missing, ids[i])
				continue
			}
			out[area.ID] = area
		}
	}

	if len(missing) == 0 {
		return out, nil
	}
	loaded, err := c.AreaRepository.GetMany(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, area := range loaded {
		out[id] = area
		c.store(ctx, area)
	}
	return out, nil
}

func (c *CachedAreas) Create(ctx context.Context, a *models.Area) error {
	if err := c.AreaRepository.Create(ctx, a); err != nil {
		return err
	}
	c.invalidate(ctx, a.ID)
	return nil
}

func (c *CachedAreas) Update(ctx context.Context, a *models.Area) error {
	if err := c.AreaRepository.Update(ctx, a); err != nil {
		return err
	}
	c.invalidate(ctx, a.ID)
	return nil
}

func (c *CachedAreas) Delete(ctx context.Context, id uint) error {
	if err := c.AreaRepository.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *CachedAreas) store(ctx context.Context, area models.Area) {
	data, err := json.Marshal(area)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, areaKey(area.ID), data, c.ttl).Err(); err != nil {
		log.WithError(err).WithField("area_id", area.ID).Warn("Area cache write failed")
	}
}

func (c *CachedAreas) invalidate(ctx context.Context, id uint) {
	if err := c.client.Del(ctx, areaKey(id)).Err(); err != nil {
		log.WithError(err).WithField("area_id", id).Warn("Area cache invalidation failed")
	}
}
