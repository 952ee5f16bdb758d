package layout

// Kind is the drawing primitive an Element stands for.
type Kind int

const (
	KindText Kind = iota
	KindLine
	KindRect
)

type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Section tags every element with the part of the invoice it belongs to.
type Section int

const (
	SectionHeader Section = iota
	SectionParties
	SectionTableHeader
	SectionItem
	SectionTableRule
	SectionTotals
	SectionPayment
	SectionNotes
	SectionFooter
)

func (s Section) String() string {
	switch s {
	case SectionHeader:
		return "header"
	case SectionParties:
		return "parties"
	case SectionTableHeader:
		return "table-header"
	case SectionItem:
		return "item"
	case SectionTableRule:
		return "table-rule"
	case SectionTotals:
		return "totals"
	case SectionPayment:
		return "payment"
	case SectionNotes:
		return "notes"
	case SectionFooter:
		return "footer"
	}
	return "unknown"
}

type Font struct {
	Bold bool
	Size float64
}

type Color struct {
	R, G, B int
}

var (
	Black     = Color{}
	BoxGrey   = Color{R: 200, G: 200, B: 200}
	FooterInk = Color{R: 100, G: 100, B: 100}
)

// Element is one positioned drawing instruction. For text, (X, Y) is the
// baseline anchor: the left edge, right edge or centre depending on Align.
// Lines run from (X, Y) to (X2, Y2); rectangles span W×H from (X, Y).
type Element struct {
	Kind      Kind
	Section   Section
	Row       int // item index for SectionItem, -1 otherwise
	X, Y      float64
	X2, Y2    float64
	W, H      float64
	Text      string
	Font      Font
	Align     Align
	Color     Color
	LineWidth float64
}

type Page struct {
	Index    int
	Elements []Element
}

// Document is the finished page sequence handed to an output sink.
type Document struct {
	Paper PaperSize
	Title string
	Pages []Page
}

// Texts returns the text of every text element in s on the page, in order.
func (p Page) Texts(s Section) []string {
	var out []string
	for _, el := range p.Elements {
		if el.Kind == KindText && el.Section == s {
			out = append(out, el.Text)
		}
	}
	return out
}

// Has reports whether any element of section s is on the page.
func (p Page) Has(s Section) bool {
	for _, el := range p.Elements {
		if el.Section == s {
			return true
		}
	}
	return false
}
