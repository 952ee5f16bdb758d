package pdfs

import (
	"bytes"
	"fmt"

	"faktur-backend/layout"

	"github.com/jung-kurt/gofpdf"
)

// Render draws every page of doc and returns the finished PDF bytes.
func Render(doc *layout.Document) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: doc.Paper.Width, Ht: doc.Paper.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("faktur-backend", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, el := range page.Elements {
			draw(pdf, tr, el)
		}
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func draw(pdf *gofpdf.Fpdf, tr func(string) string, el layout.Element) {
	switch el.Kind {
	case layout.KindText:
		pdf.SetFont(fontFamily, fontStyle(el.Font), el.Font.Size)
		pdf.SetTextColor(el.Color.R, el.Color.G, el.Color.B)
		s := tr(el.Text)
		x := el.X
		switch el.Align {
		case layout.AlignRight:
			x -= pdf.GetStringWidth(s)
		case layout.AlignCenter:
			x -= pdf.GetStringWidth(s) / 2
		}
		pdf.Text(x, el.Y, s)
	case layout.KindLine:
		pdf.SetDrawColor(el.Color.R, el.Color.G, el.Color.B)
		pdf.SetLineWidth(el.LineWidth)
		pdf.Line(el.X, el.Y, el.X2, el.Y2)
	case layout.KindRect:
		pdf.SetDrawColor(el.Color.R, el.Color.G, el.Color.B)
		pdf.SetLineWidth(el.LineWidth)
		pdf.Rect(el.X, el.Y, el.W, el.H, "D")
	}
}
