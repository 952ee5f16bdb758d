package pdfs

import (
	"sync"

	"faktur-backend/layout"

	"github.com/jung-kurt/gofpdf"
)

const fontFamily = "Helvetica"

func fontStyle(f layout.Font) string {
	if f.Bold {
		return "B"
	}
	return ""
}

// Measurer answers string widths from the core Helvetica metrics, the same
// ones the writer prints with, so wrapped lines fit once rendered.
type Measurer struct {
	mu        sync.Mutex
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

func NewMeasurer() *Measurer {
	pdf := gofpdf.New("P", "mm", "A4", "")
	return &Measurer{pdf: pdf, translate: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (m *Measurer) StringWidth(f layout.Font, s string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pdf.SetFont(fontFamily, fontStyle(f), f.Size)
	return m.pdf.GetStringWidth(m.translate(s))
}
