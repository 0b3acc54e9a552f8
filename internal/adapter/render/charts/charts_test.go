package charts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
)

func assertPNG(t *testing.T, path string) {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	if len(b) < 8 || string(b[1:4]) != "PNG" {
		t.Errorf("%s does not look like a PNG", path)
	}
}

func TestRenderHistogram(t *testing.T) {
	hist := domain.DurationHistogram{MaxMinutes: 20, Bins: make([]int, 20)}
	hist.Bins[3] = 2
	hist.Bins[7] = 5

	path := filepath.Join(t.TempDir(), "hist.png")
	if err := NewRenderer(zap.NewNop()).RenderHistogram(hist, path); err != nil {
		t.Fatalf("RenderHistogram: %v", err)
	}
	assertPNG(t, path)
}

func TestRenderHeatmap(t *testing.T) {
	slots := []domain.TimeSlot{
		{ID: 1, Start: 7*time.Hour + 50*time.Minute, End: 8*time.Hour + 35*time.Minute},
		{ID: 2, Start: 8*time.Hour + 35*time.Minute, End: 9*time.Hour + 20*time.Minute},
	}
	grid := domain.FrequencyGrid{
		Slots: slots,
		Counts: [][]int{
			{1, 0, 2, 0, 0},
			{0, 3, 0, 0, 1},
		},
	}

	path := filepath.Join(t.TempDir(), "heat.png")
	if err := NewRenderer(zap.NewNop()).RenderHeatmap(grid, path); err != nil {
		t.Fatalf("RenderHeatmap: %v", err)
	}
	assertPNG(t, path)
}

func TestRenderHeatmap_AllZeroGrid(t *testing.T) {
	slots := []domain.TimeSlot{
		{ID: 1, Start: 7*time.Hour + 50*time.Minute, End: 8*time.Hour + 35*time.Minute},
	}
	grid := domain.FrequencyGrid{Slots: slots, Counts: [][]int{{0, 0, 0, 0, 0}}}

	path := filepath.Join(t.TempDir(), "empty.png")
	if err := NewRenderer(zap.NewNop()).RenderHeatmap(grid, path); err != nil {
		t.Fatalf("RenderHeatmap on empty grid: %v", err)
	}
	assertPNG(t, path)
}

func TestRenderHeatmap_NoSlots(t *testing.T) {
	err := NewRenderer(zap.NewNop()).RenderHeatmap(domain.FrequencyGrid{}, filepath.Join(t.TempDir(), "x.png"))
	if err == nil {
		t.Fatal("expected error for a grid without slots")
	}
}
