package layout

// PaperSize is a physical page in millimetres, portrait.
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

var A4 = PaperSize{Name: "A4", Width: 210, Height: 297}

// Setup holds the fixed geometry and type sizes of the invoice document.
// All lengths are millimetres, font sizes are points.
type Setup struct {
	Paper        PaperSize
	Margin       float64 // left, right and top
	BottomMargin float64 // content must end above Paper.Height-BottomMargin
	LineHeight   float64
	MinRowHeight float64
	RowPadding   float64

	BodySize   float64
	TitleSize  float64
	TotalSize  float64
	FooterSize float64
}

func DefaultSetup() Setup {
	return Setup{
		Paper:        A4,
		Margin:       20,
		BottomMargin: 40,
		LineHeight:   5,
		MinRowHeight: 7,
		RowPadding:   4,
		BodySize:     11,
		TitleSize:    20,
		TotalSize:    12,
		FooterSize:   10,
	}
}

// ContentWidth is the page width between the side margins.
func (s Setup) ContentWidth() float64 {
	return s.Paper.Width - 2*s.Margin
}

// Limit is the lowest cursor position content may reach on a page.
func (s Setup) Limit() float64 {
	return s.Paper.Height - s.BottomMargin
}

// UsableHeight is the vertical room of an empty page.
func (s Setup) UsableHeight() float64 {
	return s.Limit() - s.Margin
}

type column struct {
	x, w float64
}

// right is the x coordinate right-aligned text is anchored to.
func (c column) right() float64 {
	return c.x + c.w
}

type tableColumns struct {
	desc, qty, price, total column
}

// columns splits the content width 55/15/15/15.
func (s Setup) columns() tableColumns {
	x := s.Margin
	w := s.ContentWidth()
	return tableColumns{
		desc:  column{x: x, w: w * 0.55},
		qty:   column{x: x + w*0.55, w: w * 0.15},
		price: column{x: x + w*0.70, w: w * 0.15},
		total: column{x: x + w*0.85, w: w * 0.15},
	}
}
