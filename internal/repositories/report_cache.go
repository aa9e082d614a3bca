package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
	"github.com/redis/go-redis/v9"
)

const reportVersionKey = "analytics:version"

// ReportCacheRepository caches analytics reports in Redis. Cache keys embed a
// global version counter that every transaction mutation bumps, so a stale
// report is never served.
type ReportCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached reports
}

// NewReportCacheRepository creates a new repository instance with the given TTL
func NewReportCacheRepository(client *redis.Client, expiration time.Duration) *ReportCacheRepository {
	return &ReportCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetReport fetches a cached report. A cache miss returns (nil, nil).
func (r *ReportCacheRepository) GetReport(ctx context.Context, key string) (*models.Analytics, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var report models.Analytics
	if err := json.Unmarshal([]byte(val), &report); err != nil {
		logger.Log.Errorw("failed to decode cached report", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", "hit",
		"error", nil,
	)

	return &report, nil
}

// SetReport caches a report with the configured expiration
func (r *ReportCacheRepository) SetReport(ctx context.Context, key string, report models.Analytics) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// CurrentVersion returns the current report version counter. A missing
// counter reads as 0.
func (r *ReportCacheRepository) CurrentVersion(ctx context.Context) (int64, error) {
	version, err := r.client.Get(ctx, reportVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return version, nil
}

// BumpVersion increments the report version counter, invalidating every
// previously cached report key.
func (r *ReportCacheRepository) BumpVersion(ctx context.Context) error {
	err := r.client.Incr(ctx, reportVersionKey).Err()

	logger.Log.Infow(
		"key", reportVersionKey,
		"result", "incr",
		"error", err,
	)

	return err
}
