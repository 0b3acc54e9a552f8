package roster

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/observability/telemetry"
	"github.com/seu-repo/passlog/internal/ports"
)

const (
	groupsKey       = "roster:groups"
	memberKeyPrefix = "roster:members:"
)

// Service reads group rosters through a short-lived cache; the files change
// rarely but are read on every kiosk page load.
type Service struct {
	repo  ports.GroupRepository
	cache ports.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewService(repo ports.GroupRepository, cache ports.Cache, ttl time.Duration, log *zap.Logger) *Service {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Service{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

func (s *Service) Groups(ctx context.Context) ([]string, error) {
	var groups []string
	if hit(ctx, s.cache, groupsKey, &groups) {
		return groups, nil
	}

	groups, err := s.repo.Groups(ctx)
	if err != nil {
		return nil, err
	}
	s.put(ctx, groupsKey, groups)
	return groups, nil
}

func (s *Service) Members(ctx context.Context, group string) ([]domain.Member, error) {
	key := memberKeyPrefix + group
	var members []domain.Member
	if hit(ctx, s.cache, key, &members) {
		return members, nil
	}

	members, err := s.repo.Members(ctx, group)
	if err != nil {
		return nil, err
	}
	s.put(ctx, key, members)
	return members, nil
}

func (s *Service) SaveRoster(ctx context.Context, group string, csvData []byte) error {
	if err := s.repo.SaveRoster(ctx, group, csvData); err != nil {
		return err
	}
	s.cache.Delete(ctx, groupsKey)
	s.cache.Delete(ctx, memberKeyPrefix+group)
	return nil
}

func hit(ctx context.Context, cache ports.Cache, key string, dst interface{}) bool {
	raw, err := cache.Get(ctx, key)
	if err != nil {
		telemetry.RosterCacheHits.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		telemetry.RosterCacheHits.WithLabelValues("miss").Inc()
		return false
	}
	telemetry.RosterCacheHits.WithLabelValues("hit").Inc()
	return true
}

func (s *Service) put(ctx context.Context, key string, value interface{}) {
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(b), s.ttl); err != nil {
		s.log.Debug("Roster cache write failed", zap.String("key", key), zap.Error(err))
	}
}
