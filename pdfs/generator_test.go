package pdfs

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"faktur-backend/layout"
	"faktur-backend/models"
)

var testNow = time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

func TestGenerateSample(t *testing.T) {
	g := NewGenerator(layout.DefaultSetup(), nil)
	out, err := g.Generate(models.SampleInvoice(testNow))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out.Filename != "faktur-INV-2023-001.pdf" {
		t.Fatalf("unexpected filename %q", out.Filename)
	}
	if !bytes.HasPrefix(out.Bytes, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestGenerateIncompleteInvoice(t *testing.T) {
	g := NewGenerator(layout.DefaultSetup(), nil)
	inv := models.NewInvoice(testNow)
	inv.Number = ""
	out, err := g.Generate(inv)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out.Filename != "faktur-.pdf" || len(out.Bytes) == 0 {
		t.Fatalf("unexpected output %q (%d bytes)", out.Filename, len(out.Bytes))
	}
}

func TestGenerateManyPages(t *testing.T) {
	inv := models.SampleInvoice(testNow)
	inv.Notes = strings.Repeat("Catatan panjang dengan é dan ü. ", 200)
	for i := 0; i < 60; i++ {
		inv = inv.AddItem()
	}
	out, err := NewGenerator(layout.DefaultSetup(), nil).Generate(inv)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(out.Bytes, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestGenerateFailureReturnsNothing(t *testing.T) {
	inv := models.SampleInvoice(testNow)
	inv.Items[0].Price = math.NaN()
	out, err := NewGenerator(layout.DefaultSetup(), nil).Generate(inv)
	if !errors.Is(err, ErrGenerate) || !errors.Is(err, layout.ErrMalformedNumber) {
		t.Fatalf("expected wrapped generation error, got %v", err)
	}
	if out.Bytes != nil || out.Filename != "" {
		t.Fatalf("expected no output on failure")
	}
}

func TestMeasurerBoldIsWider(t *testing.T) {
	m := NewMeasurer()
	plain := m.StringWidth(layout.Font{Size: 11}, "Instruksi Pembayaran")
	bold := m.StringWidth(layout.Font{Bold: true, Size: 11}, "Instruksi Pembayaran")
	if plain <= 0 || bold <= plain {
		t.Fatalf("unexpected widths plain=%.2f bold=%.2f", plain, bold)
	}
}
