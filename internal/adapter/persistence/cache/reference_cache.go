package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"oficina_xpto/internal/composer"
	"oficina_xpto/internal/domain/entities"
)

const defaultReferenceTTL = 30 * time.Second

// CachedReferenceLoader is a read-through cache in front of a ReferenceLoader.
// Reference lists are small and change rarely, so a short TTL keeps the
// composer off DynamoDB scans without a separate invalidation path.
//
// Cache failures are soft: a miss or a broken Redis falls through to the
// wrapped loader, and write-back errors are logged and dropped.
type CachedReferenceLoader struct {
	next composer.ReferenceLoader
	rdb  *redis.Client
	ttl  time.Duration
}

var _ composer.ReferenceLoader = (*CachedReferenceLoader)(nil)

func NewCachedReferenceLoader(next composer.ReferenceLoader, rdb *redis.Client) *CachedReferenceLoader {
	return &CachedReferenceLoader{
		next: next,
		rdb:  rdb,
		ttl:  defaultReferenceTTL,
	}
}

func (c *CachedReferenceLoader) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	return listThrough(ctx, c, "refs:customers", c.next.ListCustomers)
}

func (c *CachedReferenceLoader) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	return listThrough(ctx, c, "refs:vehicles", c.next.ListVehicles)
}

func (c *CachedReferenceLoader) ListTechnicians(ctx context.Context) ([]entities.Technician, error) {
	return listThrough(ctx, c, "refs:technicians", c.next.ListTechnicians)
}

func (c *CachedReferenceLoader) ListParts(ctx context.Context) ([]entities.Part, error) {
	return listThrough(ctx, c, "refs:parts", c.next.ListParts)
}

func (c *CachedReferenceLoader) ListWorkServices(ctx context.Context) ([]entities.WorkService, error) {
	return listThrough(ctx, c, "refs:work_services", c.next.ListWorkServices)
}

func listThrough[T any](ctx context.Context, c *CachedReferenceLoader, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var cached []T
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			return cached, nil
		}
		// Unreadable entry, treat as a miss and overwrite below.
	} else if err != redis.Nil {
		log.Printf("[cache][reference] read failed key=%s err=%v", key, err)
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, jsonErr := json.Marshal(items); jsonErr == nil {
		if setErr := c.rdb.Set(ctx, key, encoded, c.ttl).Err(); setErr != nil {
			log.Printf("[cache][reference] write failed key=%s err=%v", key, setErr)
		}
	}
	return items, nil
}
