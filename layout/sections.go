package layout

import (
	"fmt"
	"math"
	"strconv"

	"faktur-backend/models"
	"faktur-backend/utils"
)

const (
	headerHeight     = 25
	headerLineGap    = 7
	labelHeight      = 7
	partyGap         = 10
	columnGutter     = 5
	tableHeaderRule  = 2
	tableHeaderAfter = 5
	tableAfterRule   = 7
	totalsLine       = 7
	totalsRuleGap    = 4
	totalsAfter      = 15
	boxPadding       = 5
	boxBaseHeight    = 20
	boxAfter         = 9
	notesAfter       = 10
	descInset        = 5

	ThankYou = "Terima kasih atas kepercayaan Anda!"
)

func (w *writer) header(inv models.Invoice) {
	s := w.setup
	top := w.y
	right := s.Paper.Width - s.Margin

	w.text(SectionHeader, -1, s.Margin, top, "FAKTUR", Font{Bold: true, Size: s.TitleSize}, AlignLeft)
	w.text(SectionHeader, -1, s.Margin, top+headerLineGap, "Nomor: "+inv.Number, w.body(), AlignLeft)
	w.text(SectionHeader, -1, right, top, "Tanggal: "+utils.FormatDate(inv.Date), w.body(), AlignRight)
	w.text(SectionHeader, -1, right, top+headerLineGap, "Jatuh Tempo: "+utils.FormatDate(inv.DueDate), w.body(), AlignRight)

	w.y += headerHeight
}

type styledLine struct {
	text string
	bold bool
}

// contactLines lists a contact block: bold name, email, phone, NPWP and
// the address, each wrapped to width. Blank optional fields take no room;
// the name line is always reserved.
func (w *writer) contactLines(c models.Contact, width float64) []styledLine {
	var out []styledLine
	for _, l := range Wrap(w.m, w.bold(), c.Name, width) {
		out = append(out, styledLine{text: l, bold: true})
	}
	for _, v := range []string{c.Email, c.Phone, npwpLine(c.NPWP)} {
		if v == "" {
			continue
		}
		for _, l := range Wrap(w.m, w.body(), v, width) {
			out = append(out, styledLine{text: l})
		}
	}
	if c.Address != "" {
		for _, l := range Wrap(w.m, w.body(), c.Address, width) {
			out = append(out, styledLine{text: l})
		}
	}
	return out
}

func npwpLine(npwp string) string {
	if npwp == "" {
		return ""
	}
	return "NPWP: " + npwp
}

func (w *writer) parties(inv models.Invoice) {
	s := w.setup
	colW := s.Paper.Width/2 - s.Margin - columnGutter
	leftX := s.Margin
	rightX := s.Paper.Width/2 + columnGutter

	from := w.contactLines(inv.From, colW)
	to := w.contactLines(inv.To, colW)
	rows := max(len(from), len(to))
	w.ensure(labelHeight + float64(rows)*s.LineHeight + partyGap)

	w.text(SectionParties, -1, leftX, w.y, "DARI", w.bold(), AlignLeft)
	w.text(SectionParties, -1, rightX, w.y, "UNTUK", w.bold(), AlignLeft)
	top := w.y + labelHeight
	for _, col := range []struct {
		x     float64
		lines []styledLine
	}{{leftX, from}, {rightX, to}} {
		for i, l := range col.lines {
			f := w.body()
			if l.bold {
				f = w.bold()
			}
			w.text(SectionParties, -1, col.x, top+float64(i)*s.LineHeight, l.text, f, AlignLeft)
		}
	}
	w.y = top + float64(rows)*s.LineHeight + partyGap
}

type itemRow struct {
	lines  []string
	block  float64 // height of the description block
	height float64 // block plus padding
}

func (w *writer) planRow(item models.LineItem) itemRow {
	s := w.setup
	desc := item.Description
	if desc == "" {
		desc = "Item"
	}
	lines := Wrap(w.m, w.body(), desc, w.cols.desc.w-descInset)
	block := math.Max(float64(len(lines))*s.LineHeight, s.MinRowHeight)
	return itemRow{lines: lines, block: block, height: block + s.RowPadding}
}

// tableHeader draws the column titles. A header opening a page leaves the
// row below it at the page top, so an oversize row is not pushed further.
func (w *writer) tableHeader() {
	atTop := w.atTop()
	c := w.cols
	w.text(SectionTableHeader, -1, c.desc.x, w.y, "Deskripsi", w.bold(), AlignLeft)
	w.text(SectionTableHeader, -1, c.qty.right(), w.y, "Jumlah", w.bold(), AlignRight)
	w.text(SectionTableHeader, -1, c.price.right(), w.y, "Harga", w.bold(), AlignRight)
	w.text(SectionTableHeader, -1, c.total.right(), w.y, "Total", w.bold(), AlignRight)
	w.y += tableHeaderRule
	w.line(SectionTableHeader, w.setup.Margin, w.y, w.setup.Paper.Width-w.setup.Margin, w.y)
	w.y += tableHeaderAfter
	if atTop {
		w.top = w.y
	}
}

func (w *writer) table(inv models.Invoice) {
	s := w.setup
	rows := make([]itemRow, len(inv.Items))
	for i, item := range inv.Items {
		rows[i] = w.planRow(item)
	}

	// keep the header together with the first row
	w.ensure(tableHeaderRule + tableHeaderAfter + rows[0].height)
	w.tableHeader()

	c := w.cols
	for i, item := range inv.Items {
		r := rows[i]
		if w.ensure(r.height) {
			w.tableHeader()
		}
		for j, l := range r.lines {
			w.text(SectionItem, i, c.desc.x, w.y+float64(j)*s.LineHeight, l, w.body(), AlignLeft)
		}
		// numbers sit at the vertical middle of the description block
		valueY := w.y + r.block/2 - s.LineHeight/2
		w.text(SectionItem, i, c.qty.right(), valueY, strconv.Itoa(item.Quantity), w.body(), AlignRight)
		w.text(SectionItem, i, c.price.right(), valueY, utils.FormatAmount(item.Price), w.body(), AlignRight)
		w.text(SectionItem, i, c.total.right(), valueY, utils.FormatAmount(models.RowTotal(item)), w.body(), AlignRight)
		w.y += r.height
	}

	w.line(SectionTableRule, s.Margin, w.y, s.Paper.Width-s.Margin, w.y)
	w.y += tableAfterRule
}

func (w *writer) totals(inv models.Invoice) {
	s := w.setup
	c := w.cols
	h := float64(totalsLine + totalsRuleGap + totalsAfter)
	if inv.Tax > 0 {
		h += totalsLine
	}
	w.ensure(h)

	labelX := c.price.x
	valueX := c.total.right()
	w.text(SectionTotals, -1, labelX, w.y, "Subtotal", w.body(), AlignLeft)
	w.text(SectionTotals, -1, valueX, w.y, utils.FormatAmount(models.Subtotal(inv)), w.body(), AlignRight)
	w.y += totalsLine

	if inv.Tax > 0 {
		w.text(SectionTotals, -1, labelX, w.y, "Pajak ("+utils.FormatPercent(inv.Tax)+")", w.body(), AlignLeft)
		w.text(SectionTotals, -1, valueX, w.y, utils.FormatAmount(models.TaxAmount(inv)), w.body(), AlignRight)
		w.y += totalsLine
	}

	w.line(SectionTotals, labelX-columnGutter, w.y-3, s.Paper.Width-s.Margin, w.y-3)
	w.y += totalsRuleGap

	big := Font{Bold: true, Size: s.TotalSize}
	w.text(SectionTotals, -1, labelX, w.y, "TOTAL", big, AlignLeft)
	w.text(SectionTotals, -1, valueX, w.y, utils.FormatAmount(models.GrandTotal(inv)), big, AlignRight)
	w.y += totalsAfter
}

func paymentText(p models.PaymentInfo) string {
	return fmt.Sprintf("Bank: %s   |   Rekening: %s   |   A/N: %s", p.Bank, p.AccountNumber, p.AccountName)
}

func (w *writer) payment(inv models.Invoice) {
	s := w.setup
	width := s.ContentWidth()
	lines := Wrap(w.m, w.body(), paymentText(inv.Payment), width-2*boxPadding)
	boxH := boxBaseHeight + float64(len(lines))*s.LineHeight
	w.ensure(boxH)

	w.add(Element{
		Kind: KindRect, Section: SectionPayment, Row: -1,
		X: s.Margin, Y: w.y, W: width, H: boxH,
		LineWidth: 0.5, Color: BoxGrey,
	})
	x := s.Margin + boxPadding
	w.text(SectionPayment, -1, x, w.y+labelHeight, "Instruksi Pembayaran", w.bold(), AlignLeft)
	for i, l := range lines {
		w.text(SectionPayment, -1, x, w.y+2*labelHeight+float64(i)*s.LineHeight, l, w.body(), AlignLeft)
	}
	w.y += boxH + boxAfter
}

// notes keeps the label with the text when the whole block fits on one
// page; longer notes continue line by line onto following pages.
func (w *writer) notes(notes string) {
	s := w.setup
	lines := Wrap(w.m, w.body(), notes, s.ContentWidth())
	h := labelHeight + float64(len(lines))*s.LineHeight + notesAfter
	w.ensure(math.Min(h, s.UsableHeight()))

	w.text(SectionNotes, -1, s.Margin, w.y, "Catatan", w.bold(), AlignLeft)
	w.y += labelHeight
	for _, l := range lines {
		w.ensure(s.LineHeight)
		w.text(SectionNotes, -1, s.Margin, w.y, l, w.body(), AlignLeft)
		w.y += s.LineHeight
	}
	w.y += notesAfter
}

// footer is pinned to the bottom margin of the last page; when the content
// already reaches the limit it moves to a fresh page.
func (w *writer) footer() {
	s := w.setup
	w.ensure(s.LineHeight)
	w.add(Element{
		Kind: KindText, Section: SectionFooter, Row: -1,
		X: s.Paper.Width / 2, Y: s.Paper.Height - s.Margin,
		Text: ThankYou, Font: Font{Size: s.FooterSize}, Align: AlignCenter, Color: FooterInk,
	})
}
