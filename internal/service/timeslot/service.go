package timeslot

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/observability/telemetry"
	"github.com/seu-repo/passlog/internal/ports"
)

const slotsKey = "timeslots:all"

// CachedRepository decorates the timeslot repository with the shared cache.
// The table changes at most once a term but is read on every report run.
type CachedRepository struct {
	repo  ports.TimeSlotRepository
	cache ports.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedRepository(repo ports.TimeSlotRepository, cache ports.Cache, ttl time.Duration, log *zap.Logger) ports.TimeSlotRepository {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CachedRepository{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

func (r *CachedRepository) All(ctx context.Context) ([]domain.TimeSlot, error) {
	if raw, err := r.cache.Get(ctx, slotsKey); err == nil {
		var slots []domain.TimeSlot
		if err := json.Unmarshal([]byte(raw), &slots); err == nil {
			telemetry.TimeslotCacheHits.WithLabelValues("hit").Inc()
			return slots, nil
		}
	}
	telemetry.TimeslotCacheHits.WithLabelValues("miss").Inc()

	slots, err := r.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(slots); err == nil {
		if err := r.cache.Set(ctx, slotsKey, string(b), r.ttl); err != nil {
			r.log.Debug("Timeslot cache write failed", zap.Error(err))
		}
	}
	return slots, nil
}
