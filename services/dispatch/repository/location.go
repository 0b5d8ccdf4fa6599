package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/limpia-app/dispatch/internal/pkg/constants"
	"github.com/limpia-app/dispatch/internal/pkg/database"
	"github.com/limpia-app/dispatch/internal/pkg/models"
)

// LocationRepo caches worker positions in a Redis GEO set. The set is the
// read path for workers whose row has no current location yet.
type LocationRepo struct {
	cfg   *models.Config
	redis *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(cfg *models.Config, redisClient *database.RedisClient) *LocationRepo {
	return &LocationRepo{
		cfg:   cfg,
		redis: redisClient,
	}
}

// SaveWorkerLocation stores the position in the GEO set and the report
// timestamp under a per-worker key with a staleness TTL.
func (r *LocationRepo) SaveWorkerLocation(ctx context.Context, workerID string, location models.Coordinate, reportedAt time.Time) error {
	if err := r.redis.GeoAdd(ctx, constants.KeyWorkerGeo, location.Longitude, location.Latitude, workerID); err != nil {
		return fmt.Errorf("save worker location: %w", err)
	}

	ttl := time.Duration(r.cfg.Dispatch.LocationTTLMinutes) * time.Minute
	tsKey := fmt.Sprintf(constants.KeyWorkerLocation, workerID)
	if err := r.redis.Set(ctx, tsKey, strconv.FormatInt(reportedAt.Unix(), 10), ttl); err != nil {
		return fmt.Errorf("save worker location timestamp: %w", err)
	}

	return nil
}

// GetWorkerLocation returns the cached position, or nil when the worker has
// never reported or the report has gone stale.
func (r *LocationRepo) GetWorkerLocation(ctx context.Context, workerID string) (*models.Coordinate, error) {
	tsKey := fmt.Sprintf(constants.KeyWorkerLocation, workerID)
	if _, err := r.redis.Get(ctx, tsKey); err != nil {
		// Expired timestamp means the GEO entry is stale; treat as unknown.
		return nil, nil
	}

	pos, err := r.redis.GeoPos(ctx, constants.KeyWorkerGeo, workerID)
	if err != nil {
		return nil, fmt.Errorf("get worker location: %w", err)
	}
	if pos == nil {
		return nil, nil
	}

	return &models.Coordinate{
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
	}, nil
}

// NearbyWorkers returns workers within radiusKm of the center, nearest first
func (r *LocationRepo) NearbyWorkers(ctx context.Context, center models.Coordinate, radiusKm float64, count int) ([]models.NearbyWorker, error) {
	locations, err := r.redis.GeoSearch(ctx, constants.KeyWorkerGeo, center.Longitude, center.Latitude, radiusKm, count)
	if err != nil {
		return nil, fmt.Errorf("nearby workers: %w", err)
	}

	nearby := make([]models.NearbyWorker, 0, len(locations))
	for _, loc := range locations {
		nearby = append(nearby, models.NearbyWorker{
			WorkerID:   loc.Name,
			DistanceKm: loc.Dist,
			Location: models.Coordinate{
				Latitude:  loc.Latitude,
				Longitude: loc.Longitude,
			},
		})
	}

	return nearby, nil
}

// RemoveWorker drops a worker from the GEO set (e.g. on going offline)
func (r *LocationRepo) RemoveWorker(ctx context.Context, workerID string) error {
	if err := r.redis.ZRem(ctx, constants.KeyWorkerGeo, workerID); err != nil {
		return fmt.Errorf("remove worker location: %w", err)
	}

	tsKey := fmt.Sprintf(constants.KeyWorkerLocation, workerID)
	return r.redis.Delete(ctx, tsKey)
}
