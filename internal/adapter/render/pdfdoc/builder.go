// Package pdfdoc implements the document-builder port on go-pdf/fpdf: an
// ordered list of blocks in, one paginated A4 PDF out.
package pdfdoc

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/seu-repo/passlog/internal/domain"
	"github.com/seu-repo/passlog/internal/ports"
)

const (
	marginLeft   = 25.0
	marginTop    = 15.0
	marginRight  = 15.0
	imageWidth   = 150.0
	imageHeight  = 90.0
	tableRowH    = 5.0
	headingSize  = 13.0
	bodySize     = 10.0
	tableSize    = 8.0
	headerFontSz = 9.0
)

type Builder struct {
	log *zap.Logger
}

func NewBuilder(log *zap.Logger) ports.DocumentBuilder {
	return &Builder{log: log}
}

func (b *Builder) Build(path, header string, blocks []domain.DocBlock) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "", headerFontSz)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 5, tr(header), "", 1, "L", false, 0, "")
		pdf.Ln(3)
	})
	pdf.SetTitle(header, true)
	pdf.AddPage()

	for _, blk := range blocks {
		switch blk.Kind {
		case domain.BlockHeading:
			pdf.SetFont("Helvetica", "B", headingSize)
			pdf.CellFormat(0, 8, tr(blk.Text), "", 1, "L", false, 0, "")
			pdf.Ln(2)
		case domain.BlockParagraph:
			pdf.SetFont("Helvetica", "", bodySize)
			pdf.MultiCell(0, 5, tr(blk.Text), "", "L", false)
			pdf.Ln(1)
		case domain.BlockTable:
			b.table(pdf, tr, blk)
			pdf.Ln(2)
		case domain.BlockImage:
			opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
			pdf.ImageOptions(blk.ImagePath, marginLeft, -1, imageWidth, imageHeight, true, opts, 0, "")
			pdf.Ln(4)
		case domain.BlockPageBreak:
			pdf.AddPage()
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	b.log.Debug("Document written", zap.String("path", path), zap.Int("blocks", len(blocks)))
	return nil
}

func (b *Builder) table(pdf *fpdf.Fpdf, tr func(string) string, blk domain.DocBlock) {
	if len(blk.Header) == 0 {
		return
	}
	pageW, _ := pdf.GetPageSize()
	usable := pageW - marginLeft - marginRight
	colW := usable / float64(len(blk.Header))

	pdf.SetFont("Helvetica", "B", tableSize)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	for _, h := range blk.Header {
		pdf.CellFormat(colW, tableRowH, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", tableSize)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range blk.Rows {
		for i := 0; i < len(blk.Header); i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colW, tableRowH, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
