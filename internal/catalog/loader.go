// internal/catalog/loader.go
package catalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"

	"talentmatch-workers/internal/common/config"
	"talentmatch-workers/internal/common/errors"
	"talentmatch-workers/internal/common/logger"
)

// Load builds the catalog store per configuration. With source "postgres" it
// tries the Redis snapshot first, then the database, writing a fresh snapshot
// back on a miss. With source "builtin" (or a nil db) the compiled-in data is
// used directly.
func Load(ctx context.Context, cfg config.CatalogConfig, db *sql.DB, rdb *redis.Client, log logger.Logger) (*Store, error) {
	if cfg.Source != "postgres" || db == nil {
		log.Info("using builtin catalog", map[string]interface{}{
			"source": cfg.Source,
		})
		return Builtin(), nil
	}

	ttl := time.Duration(cfg.CacheTTL) * time.Second

	if rdb != nil {
		raw, err := fetchSnapshot(ctx, rdb, cfg.CachePrefix)
		if err != nil {
			log.Warn("catalog cache unavailable, loading from database", map[string]interface{}{
				"error": err.Error(),
			})
		}
		if raw != nil {
			store, err := NewStore(raw.Roles, raw.SalaryBoosts, raw.AliasGroups)
			if err == nil {
				log.Info("catalog loaded from cache", map[string]interface{}{
					"roles":  len(raw.Roles),
					"boosts": len(raw.SalaryBoosts),
				})
				return store, nil
			}
			log.Warn("cached catalog invalid, loading from database", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	raw, err := loadFromPostgres(ctx, db)
	if err != nil {
		return nil, errors.NewCatalogLookupError(err.Error())
	}

	store, err := NewStore(raw.Roles, raw.SalaryBoosts, raw.AliasGroups)
	if err != nil {
		return nil, errors.NewCatalogLookupError(err.Error())
	}

	if rdb != nil {
		if err := storeSnapshot(ctx, rdb, cfg.CachePrefix, raw, ttl); err != nil {
			log.Warn("failed to cache catalog snapshot", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	log.Info("catalog loaded from database", map[string]interface{}{
		"roles":  len(raw.Roles),
		"boosts": len(raw.SalaryBoosts),
	})
	return store, nil
}
