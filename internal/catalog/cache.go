// internal/catalog/cache.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"talentmatch-workers/internal/common/metrics"
)

// snapshotKey builds the Redis key holding the serialized catalog.
func snapshotKey(prefix string) string {
	return prefix + ":snapshot"
}

// fetchSnapshot returns the cached catalog, or (nil, nil) on a clean miss.
func fetchSnapshot(ctx context.Context, rdb *redis.Client, prefix string) (*rawCatalog, error) {
	payload, err := rdb.Get(ctx, snapshotKey(prefix)).Bytes()
	if err == redis.Nil {
		metrics.CatalogCacheHits.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		metrics.CatalogCacheHits.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("catalog cache get: %w", err)
	}

	var raw rawCatalog
	if err := json.Unmarshal(payload, &raw); err != nil {
		// A corrupt snapshot is treated as a miss so startup can fall
		// through to the source of truth.
		metrics.CatalogCacheHits.WithLabelValues("corrupt").Inc()
		return nil, nil
	}

	metrics.CatalogCacheHits.WithLabelValues("hit").Inc()
	return &raw, nil
}

// storeSnapshot writes the catalog to Redis with a TTL. Failures are
// returned for logging but never block startup.
func storeSnapshot(ctx context.Context, rdb *redis.Client, prefix string, raw *rawCatalog, ttl time.Duration) error {
	payload, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("catalog cache marshal: %w", err)
	}
	if err := rdb.Set(ctx, snapshotKey(prefix), payload, ttl).Err(); err != nil {
		return fmt.Errorf("catalog cache set: %w", err)
	}
	return nil
}
