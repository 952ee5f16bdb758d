package layout

import (
	"errors"
	"fmt"
	"math"

	"faktur-backend/models"
)

// ErrMalformedNumber marks an invoice whose money fields are not finite.
var ErrMalformedNumber = errors.New("malformed numeric field")

// ErrNoItems is returned for an invoice without line items.
var ErrNoItems = errors.New("invoice has no items")

// Engine lays an invoice out on fixed-size pages in one forward pass.
type Engine struct {
	setup   Setup
	measure Measurer
}

func NewEngine(setup Setup, m Measurer) *Engine {
	return &Engine{setup: setup, measure: m}
}

func (e *Engine) Setup() Setup {
	return e.setup
}

// Layout renders inv into a Document. Sections are placed in order: header,
// parties, item table, totals, payment box, notes, footer. Before each
// section (and each table row) its height is measured; if it would cross the
// page limit a new page is started. Only the item table repeats its header
// on the new page.
func (e *Engine) Layout(inv models.Invoice) (*Document, error) {
	if err := checkNumbers(inv); err != nil {
		return nil, err
	}
	if len(inv.Items) == 0 {
		return nil, ErrNoItems
	}

	w := &writer{
		setup: e.setup,
		m:     e.measure,
		cols:  e.setup.columns(),
		doc:   &Document{Paper: e.setup.Paper, Title: "Faktur " + inv.Number},
	}
	w.newPage()

	w.header(inv)
	w.parties(inv)
	w.table(inv)
	w.totals(inv)
	w.payment(inv)
	if inv.Notes != "" {
		w.notes(inv.Notes)
	}
	w.footer()

	return w.doc, nil
}

func checkNumbers(inv models.Invoice) error {
	if !finite(inv.Tax) {
		return fmt.Errorf("%w: tax", ErrMalformedNumber)
	}
	for i, item := range inv.Items {
		if !finite(item.Price) {
			return fmt.Errorf("%w: items[%d].price", ErrMalformedNumber, i)
		}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// writer carries the cursor state of a single Layout call.
type writer struct {
	setup Setup
	m     Measurer
	cols  tableColumns
	doc   *Document
	y     float64
	top   float64 // cursor position that still counts as the top of the page
}

func (w *writer) newPage() {
	w.doc.Pages = append(w.doc.Pages, Page{Index: len(w.doc.Pages)})
	w.y = w.setup.Margin
	w.top = w.y
}

func (w *writer) atTop() bool {
	return w.y <= w.top
}

// ensure starts a new page when h more millimetres would cross the limit.
// A fresh page is never abandoned, so content taller than a page is placed
// at the top and allowed to run over rather than looping.
func (w *writer) ensure(h float64) bool {
	if w.y+h <= w.setup.Limit() || w.atTop() {
		return false
	}
	w.newPage()
	return true
}

func (w *writer) add(el Element) {
	p := &w.doc.Pages[len(w.doc.Pages)-1]
	p.Elements = append(p.Elements, el)
}

func (w *writer) text(sec Section, row int, x, y float64, s string, f Font, a Align) {
	if s == "" {
		return
	}
	w.add(Element{Kind: KindText, Section: sec, Row: row, X: x, Y: y, Text: s, Font: f, Align: a, Color: Black})
}

func (w *writer) line(sec Section, x1, y1, x2, y2 float64) {
	w.add(Element{Kind: KindLine, Section: sec, Row: -1, X: x1, Y: y1, X2: x2, Y2: y2, LineWidth: 0.5, Color: Black})
}

func (w *writer) body() Font {
	return Font{Size: w.setup.BodySize}
}

func (w *writer) bold() Font {
	return Font{Bold: true, Size: w.setup.BodySize}
}
