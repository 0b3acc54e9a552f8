package health

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/ports"
)

// Status represents the health status
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name      string        `json:"name"`
	Status    Status        `json:"status"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"duration_ms"`
	Timestamp time.Time     `json:"timestamp"`
}

// HealthResponse represents the overall health response
type HealthResponse struct {
	Status    Status                 `json:"status"`
	Version   string                 `json:"version,omitempty"`
	Uptime    string                 `json:"uptime,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
}

// Checker defines a health check function
type Checker func(ctx context.Context) CheckResult

// Service runs the configured health checks
type Service struct {
	startTime time.Time
	version   string
	checkers  map[string]Checker
	log       *zap.Logger
	mu        sync.RWMutex
}

func NewService(version string, log *zap.Logger) *Service {
	return &Service{
		startTime: time.Now(),
		version:   version,
		checkers:  make(map[string]Checker),
		log:       log,
	}
}

// RegisterChecker adds a named check.
func (s *Service) RegisterChecker(name string, c Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = c
}

// Check runs every registered check and aggregates the worst outcome.
func (s *Service) Check(ctx context.Context) HealthResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	overall := StatusHealthy
	checks := make(map[string]CheckResult, len(s.checkers))
	for name, checker := range s.checkers {
		res := checker(ctx)
		checks[name] = res
		switch res.Status {
		case StatusUnhealthy:
			overall = StatusUnhealthy
		case StatusDegraded:
			if overall == StatusHealthy {
				overall = StatusDegraded
			}
		}
	}

	return HealthResponse{
		Status:    overall,
		Version:   s.version,
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Timestamp: time.Now(),
		Checks:    checks,
	}
}

// DataDirChecker verifies the data directory is present and writable.
func DataDirChecker(dataDir string) Checker {
	return func(ctx context.Context) CheckResult {
		start := time.Now()
		res := CheckResult{Name: "data_dir", Status: StatusHealthy, Timestamp: start}

		probe := filepath.Join(dataDir, ".health")
		if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
			res.Status = StatusUnhealthy
			res.Message = fmt.Sprintf("data dir not writable: %v", err)
		} else {
			os.Remove(probe)
		}
		res.Duration = time.Since(start)
		return res
	}
}

// CacheChecker pings the cache; a dead cache degrades but does not fail the
// service, roster reads fall through to the files.
func CacheChecker(cache ports.Cache) Checker {
	return func(ctx context.Context) CheckResult {
		start := time.Now()
		res := CheckResult{Name: "cache", Status: StatusHealthy, Timestamp: start}
		if err := cache.Ping(); err != nil {
			res.Status = StatusDegraded
			res.Message = err.Error()
		}
		res.Duration = time.Since(start)
		return res
	}
}
