package mocks

import (
	"context"
	"io"
)

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	WriteArchiveFunc func(ctx context.Context, w io.Writer) error
	EventsCSVFunc    func(ctx context.Context) ([]byte, error)
}

func (m *MockExportService) WriteArchive(ctx context.Context, w io.Writer) error {
	if m.WriteArchiveFunc != nil {
		return m.WriteArchiveFunc(ctx, w)
	}
	return nil
}

func (m *MockExportService) EventsCSV(ctx context.Context) ([]byte, error) {
	if m.EventsCSVFunc != nil {
		return m.EventsCSVFunc(ctx)
	}
	return nil, nil
}
