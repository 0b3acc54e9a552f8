package ports

import (
	"github.com/seu-repo/passlog/internal/domain"
)

// ChartRenderer produces the report's chart images. Implementations write
// PNG files; the report service only hands paths onward to the document.
type ChartRenderer interface {
	RenderHistogram(h domain.DurationHistogram, path string) error
	RenderHeatmap(g domain.FrequencyGrid, path string) error
}

// DocumentBuilder turns an ordered block list into one paginated file.
// header is repeated on top of every page and doubles as document title.
type DocumentBuilder interface {
	Build(path, header string, blocks []domain.DocBlock) error
}
