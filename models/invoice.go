package models

import (
	"fmt"
	"time"
)

// Invoice is the root aggregate a user edits. Totals are never stored on it;
// they are derived on demand (see Subtotal, TaxAmount, GrandTotal).
type Invoice struct {
	Number  string      `json:"number"`
	Date    string      `json:"date" validate:"omitempty,datetime=2006-01-02"`
	DueDate string      `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	From    Contact     `json:"from"`
	To      Contact     `json:"to"`
	Items   []LineItem  `json:"items" validate:"min=1,dive"`
	Payment PaymentInfo `json:"payment"`
	Notes   string      `json:"notes"`
	Tax     float64     `json:"tax" validate:"gte=0"`
}

type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	NPWP    string `json:"npwp,omitempty"`
}

type PaymentInfo struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

// StoredInvoice is a persisted snapshot of an Invoice.
type StoredInvoice struct {
	ID        string    `json:"id"`
	Invoice   Invoice   `json:"invoice"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	dateLayout     = "2006-01-02"
	defaultDueDays = 30
	sampleDueDays  = 14
)

// NewInvoice returns a blank invoice defaulted from now: a number derived
// from the current date, today's date, a due date 30 days out, one blank
// item and no tax.
func NewInvoice(now time.Time) Invoice {
	return Invoice{
		Number:  DefaultNumber(now),
		Date:    now.Format(dateLayout),
		DueDate: now.AddDate(0, 0, defaultDueDays).Format(dateLayout),
		Items:   []LineItem{BlankItem()},
	}
}

// DefaultNumber formats the auto-generated invoice number, e.g. INV-2024-0305-001.
func DefaultNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d-%02d%02d-001", now.Year(), int(now.Month()), now.Day())
}

func BlankItem() LineItem {
	return LineItem{Quantity: 1}
}

// SampleInvoice returns a fully filled invoice for demonstrations.
func SampleInvoice(now time.Time) Invoice {
	return Invoice{
		Number:  "INV-2023-001",
		Date:    now.Format(dateLayout),
		DueDate: now.AddDate(0, 0, sampleDueDays).Format(dateLayout),
		From: Contact{
			Name:    "John Doe",
			Email:   "john.doe@example.com",
			Phone:   "+62 8123456789",
			Address: "Jl. Merdeka No. 123, Jakarta Selatan, DKI Jakarta 12345",
		},
		To: Contact{
			Name:    "PT Abadi Jaya",
			Email:   "finance@abadijaya.com",
			Phone:   "+62 2198765432",
			Address: "Jl. Sudirman No. 45, Jakarta Pusat, DKI Jakarta 10220",
		},
		Items: []LineItem{
			{Description: "Website Development", Quantity: 1, Price: 5000000},
			{Description: "Logo Design", Quantity: 1, Price: 1500000},
			{Description: "SEO Setup", Quantity: 1, Price: 2000000},
		},
		Payment: PaymentInfo{
			Bank:          "Bank Mandiri",
			AccountNumber: "123-456-789-0",
			AccountName:   "John Doe",
		},
		Notes: "Pembayaran paling lambat 14 hari setelah faktur diterima. Terima kasih atas kerjasamanya.",
	}
}

// RowTotal is quantity × price with no rounding.
func RowTotal(item LineItem) float64 {
	return float64(item.Quantity) * item.Price
}

func Subtotal(inv Invoice) float64 {
	var sum float64
	for _, item := range inv.Items {
		sum += RowTotal(item)
	}
	return sum
}

func TaxAmount(inv Invoice) float64 {
	return Subtotal(inv) * inv.Tax / 100
}

func GrandTotal(inv Invoice) float64 {
	return Subtotal(inv) + TaxAmount(inv)
}

// Clone returns a deep copy so edits never alias the caller's item slice.
func (inv Invoice) Clone() Invoice {
	out := inv
	out.Items = append([]LineItem(nil), inv.Items...)
	return out
}

// AddItem returns a copy of inv with a blank item appended.
func (inv Invoice) AddItem() Invoice {
	out := inv.Clone()
	out.Items = append(out.Items, BlankItem())
	return out
}

// RemoveItem returns a copy of inv without item i. The last remaining item
// is never removed; an out-of-range index is an error.
func (inv Invoice) RemoveItem(i int) (Invoice, error) {
	if i < 0 || i >= len(inv.Items) {
		return inv, fmt.Errorf("item index %d out of range", i)
	}
	out := inv.Clone()
	if len(out.Items) <= 1 {
		return out, nil
	}
	out.Items = append(out.Items[:i], out.Items[i+1:]...)
	return out, nil
}
