package preview

import (
	"strings"
	"testing"
	"time"

	"faktur-backend/models"
)

var testNow = time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

func render(t *testing.T, inv models.Invoice) string {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	b, err := r.HTML(inv)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(b)
}

func TestPreviewSample(t *testing.T) {
	html := render(t, models.SampleInvoice(testNow))
	for _, want := range []string{
		"FAKTUR",
		"Nomor: INV-2023-001",
		"Tanggal: 5 Maret 2024",
		"Website Development",
		"5.000.000",
		"Rp 8.500.000",
		"Bank Mandiri",
		"Kelengkapan 100%",
		"Terima kasih atas kepercayaan Anda!",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("preview missing %q", want)
		}
	}
	if strings.Contains(html, "Pajak (") {
		t.Fatalf("tax line shown for zero tax")
	}
}

func TestPreviewTaxAndNPWP(t *testing.T) {
	inv := models.SampleInvoice(testNow)
	inv.Tax = 11
	inv.To.NPWP = "01.234.567.8-901.000"
	html := render(t, inv)
	for _, want := range []string{"Pajak (11%)", "935.000", "Rp 9.435.000", "NPWP: 01.234.567.8-901.000"} {
		if !strings.Contains(html, want) {
			t.Fatalf("preview missing %q", want)
		}
	}
}

func TestPreviewEscapesInput(t *testing.T) {
	inv := models.NewInvoice(testNow)
	inv.Notes = "<script>alert(1)</script>"
	html := render(t, inv)
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Fatalf("notes were not escaped")
	}
	if !strings.Contains(html, ">Item<") {
		t.Fatalf("blank description should show the placeholder")
	}
}
