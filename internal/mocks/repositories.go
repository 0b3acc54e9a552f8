package mocks

import (
	"context"

	"github.com/seu-repo/passlog/internal/domain"
)

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	AppendFunc       func(ctx context.Context, rows []domain.EventRow) error
	FindByPersonFunc func(ctx context.Context, group, personID string) ([]domain.EventRow, error)
	AllFunc          func(ctx context.Context) ([]domain.EventRow, error)
	UpdateFunc       func(ctx context.Context, match, update domain.EventRow) (int, error)
	DeleteFunc       func(ctx context.Context, match domain.EventRow) (int, error)
}

func (m *MockEventRepository) Append(ctx context.Context, rows []domain.EventRow) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, rows)
	}
	return nil
}

func (m *MockEventRepository) FindByPerson(ctx context.Context, group, personID string) ([]domain.EventRow, error) {
	if m.FindByPersonFunc != nil {
		return m.FindByPersonFunc(ctx, group, personID)
	}
	return nil, nil
}

func (m *MockEventRepository) All(ctx context.Context) ([]domain.EventRow, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	return nil, nil
}

func (m *MockEventRepository) Update(ctx context.Context, match, update domain.EventRow) (int, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, match, update)
	}
	return 0, nil
}

func (m *MockEventRepository) Delete(ctx context.Context, match domain.EventRow) (int, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, match)
	}
	return 0, nil
}

// MockGroupRepository is a mock implementation of GroupRepository
type MockGroupRepository struct {
	GroupsFunc     func(ctx context.Context) ([]string, error)
	MembersFunc    func(ctx context.Context, group string) ([]domain.Member, error)
	SaveRosterFunc func(ctx context.Context, group string, csvData []byte) error
}

func (m *MockGroupRepository) Groups(ctx context.Context) ([]string, error) {
	if m.GroupsFunc != nil {
		return m.GroupsFunc(ctx)
	}
	return nil, nil
}

func (m *MockGroupRepository) Members(ctx context.Context, group string) ([]domain.Member, error) {
	if m.MembersFunc != nil {
		return m.MembersFunc(ctx, group)
	}
	return nil, nil
}

func (m *MockGroupRepository) SaveRoster(ctx context.Context, group string, csvData []byte) error {
	if m.SaveRosterFunc != nil {
		return m.SaveRosterFunc(ctx, group, csvData)
	}
	return nil
}

// MockTimeSlotRepository is a mock implementation of TimeSlotRepository
type MockTimeSlotRepository struct {
	AllFunc func(ctx context.Context) ([]domain.TimeSlot, error)
}

func (m *MockTimeSlotRepository) All(ctx context.Context) ([]domain.TimeSlot, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	return nil, nil
}
