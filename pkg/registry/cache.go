package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/fleet"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
)

const vehicleCacheExpiration = 5 * time.Minute

// cached as a sentinel so repeated lookups of unknown vehicles also avoid
// hitting the registry collection
const missingVehicleMarker = "N/A"

var _ Registry = (*CachedRegistry)(nil)

// CachedRegistry wraps another Registry with a redis read-through cache.
// Ownership is consulted on every position write so single lookups are the
// hot path; fleet listings pass straight through.
type CachedRegistry struct {
	upstream Registry
	cache    *cache.Cache[string]
}

func NewCachedRegistry(upstream Registry, redisClient *redis.Client) *CachedRegistry {
	redisStore := redisstore.NewRedis(redisClient, store.WithExpiration(vehicleCacheExpiration))

	return &CachedRegistry{
		upstream: upstream,
		cache:    cache.New[string](redisStore),
	}
}

func (r *CachedRegistry) Vehicle(ctx context.Context, vehicleID int) (*fleet.Vehicle, error) {
	cacheKey := fmt.Sprintf("registry/vehicle/%d", vehicleID)

	cacheValue, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		if cacheValue == missingVehicleMarker {
			return nil, fleet.ErrVehicleNotFound
		}

		var vehicle fleet.Vehicle
		if err := json.Unmarshal([]byte(cacheValue), &vehicle); err == nil {
			return &vehicle, nil
		}
	}

	vehicle, err := r.upstream.Vehicle(ctx, vehicleID)
	if errors.Is(err, fleet.ErrVehicleNotFound) {
		r.cache.Set(ctx, cacheKey, missingVehicleMarker)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	vehicleJSON, err := json.Marshal(vehicle)
	if err == nil {
		r.cache.Set(ctx, cacheKey, string(vehicleJSON))
	}

	return vehicle, nil
}

func (r *CachedRegistry) Vehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	return r.upstream.Vehicles(ctx)
}
