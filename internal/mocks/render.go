package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/seu-repo/passlog/internal/domain"
)

// MockChartRenderer is a mock implementation of ChartRenderer
type MockChartRenderer struct {
	RenderHistogramFunc func(h domain.DurationHistogram, path string) error
	RenderHeatmapFunc   func(g domain.FrequencyGrid, path string) error
}

func (m *MockChartRenderer) RenderHistogram(h domain.DurationHistogram, path string) error {
	if m.RenderHistogramFunc != nil {
		return m.RenderHistogramFunc(h, path)
	}
	return nil
}

func (m *MockChartRenderer) RenderHeatmap(g domain.FrequencyGrid, path string) error {
	if m.RenderHeatmapFunc != nil {
		return m.RenderHeatmapFunc(g, path)
	}
	return nil
}

// MockDocumentBuilder is a mock implementation of DocumentBuilder
type MockDocumentBuilder struct {
	BuildFunc func(path, header string, blocks []domain.DocBlock) error
}

func (m *MockDocumentBuilder) Build(path, header string, blocks []domain.DocBlock) error {
	if m.BuildFunc != nil {
		return m.BuildFunc(path, header, blocks)
	}
	return nil
}

// MockCache is a mock implementation of Cache
type MockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
	PingFunc   func() error
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("cache miss")
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, expiration)
	}
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

func (m *MockCache) Ping() error {
	if m.PingFunc != nil {
		return m.PingFunc()
	}
	return nil
}

func (m *MockCache) Close() error { return nil }
