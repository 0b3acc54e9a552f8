package csvstore

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/ports"
)

type TimeSlotRepository struct {
	store *Store
	log   *zap.Logger
}

func NewTimeSlotRepository(store *Store, log *zap.Logger) ports.TimeSlotRepository {
	return &TimeSlotRepository{
		store: store,
		log:   log,
	}
}

// All parses the timeslot table, lines of "slot,HH:MM,HH:MM", and returns the
// slots sorted by ascending id regardless of file order.
func (r *TimeSlotRepository) All(ctx context.Context) ([]domain.TimeSlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	f, err := os.Open(r.store.timeslotsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open timeslot table: %w", err)
	}
	defer f.Close()

	var slots []domain.TimeSlot
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		slot, err := parseSlotLine(text)
		if err != nil {
			return nil, fmt.Errorf("timeslot table line %d: %w", line, err)
		}
		slots = append(slots, slot)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read timeslot table: %w", err)
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].ID < slots[j].ID })
	return slots, nil
}

func parseSlotLine(text string) (domain.TimeSlot, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return domain.TimeSlot{}, fmt.Errorf("expected slot,start,end: %w", domain.ErrMalformedInput)
	}
	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("bad slot id %q: %w", parts[0], domain.ErrMalformedInput)
	}
	start, err := parseClock(parts[1])
	if err != nil {
		return domain.TimeSlot{}, err
	}
	end, err := parseClock(parts[2])
	if err != nil {
		return domain.TimeSlot{}, err
	}
	return domain.TimeSlot{ID: id, Start: start, End: end}, nil
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bad time %q: %w", s, domain.ErrMalformedInput)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
