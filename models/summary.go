package models

import "faktur-backend/utils"

// Summary is every figure derived from an invoice, recomputed on each call.
type Summary struct {
	RowTotals  []float64        `json:"rowTotals"`
	Subtotal   float64          `json:"subtotal"`
	TaxAmount  float64          `json:"taxAmount"`
	GrandTotal float64          `json:"grandTotal"`
	Formatted  FormattedSummary `json:"formatted"`
	Completion int              `json:"completion"`
	Missing    []string         `json:"missing"`
}

// FormattedSummary holds the display strings shown next to the form.
type FormattedSummary struct {
	RowTotals  []string `json:"rowTotals"`
	Subtotal   string   `json:"subtotal"`
	Tax        string   `json:"tax"`
	TaxAmount  string   `json:"taxAmount"`
	GrandTotal string   `json:"grandTotal"`
}

func Summarize(inv Invoice) Summary {
	s := Summary{
		RowTotals:  make([]float64, len(inv.Items)),
		Subtotal:   Subtotal(inv),
		TaxAmount:  TaxAmount(inv),
		GrandTotal: GrandTotal(inv),
		Completion: CompletionPercent(inv),
		Missing:    MissingFields(inv),
	}
	s.Formatted.RowTotals = make([]string, len(inv.Items))
	for i, item := range inv.Items {
		s.RowTotals[i] = RowTotal(item)
		s.Formatted.RowTotals[i] = utils.FormatRupiah(s.RowTotals[i])
	}
	s.Formatted.Subtotal = utils.FormatRupiah(s.Subtotal)
	s.Formatted.Tax = utils.FormatPercent(inv.Tax)
	s.Formatted.TaxAmount = utils.FormatRupiah(s.TaxAmount)
	s.Formatted.GrandTotal = utils.FormatRupiah(s.GrandTotal)
	return s
}
