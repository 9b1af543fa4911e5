package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Mmasetshaba28/haircut-booking/internal/models"
)

const servicesKey = "services:active"

// ServiceCatalog is a read-through cache for the active-services list. The
// catalog only changes at seed time, so a short TTL is plenty. A nil catalog
// (no redis configured) always misses.
type ServiceCatalog struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewServiceCatalog(rdb *redis.Client, ttl time.Duration) *ServiceCatalog {
	if rdb == nil {
		return nil
	}
	return &ServiceCatalog{rdb: rdb, ttl: ttl}
}

func (c *ServiceCatalog) Get(ctx context.Context) ([]models.Service, bool) {
	if c == nil {
		return nil, false
	}

	payload, err := c.rdb.Get(ctx, servicesKey).Bytes()
	if err != nil {
		return nil, false
	}

	var services []models.Service
	if err := json.Unmarshal(payload, &services); err != nil {
		return nil, false
	}
	return services, true
}

func (c *ServiceCatalog) Put(ctx context.Context, services []models.Service) {
	if c == nil {
		return
	}

	payload, err := json.Marshal(services)
	if err != nil {
		return
	}

	// Cache failures are invisible to callers; the store stays the source
	// of truth.
	c.rdb.Set(ctx, servicesKey, payload, c.ttl)
}
