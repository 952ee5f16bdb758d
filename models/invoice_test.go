package models

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

var testNow = time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

func TestNewInvoiceDefaults(t *testing.T) {
	inv := NewInvoice(testNow)
	if inv.Number != "INV-2024-0305-001" {
		t.Fatalf("unexpected number %q", inv.Number)
	}
	if inv.Date != "2024-03-05" || inv.DueDate != "2024-04-04" {
		t.Fatalf("unexpected dates %q %q", inv.Date, inv.DueDate)
	}
	if len(inv.Items) != 1 || inv.Items[0].Quantity != 1 || inv.Items[0].Price != 0 {
		t.Fatalf("unexpected items %+v", inv.Items)
	}
	if inv.Tax != 0 {
		t.Fatalf("expected no tax, got %v", inv.Tax)
	}
}

func TestTotals(t *testing.T) {
	inv := Invoice{
		Items: []LineItem{
			{Description: "Website", Quantity: 2, Price: 1500000},
			{Description: "Hosting", Quantity: 1, Price: 500000},
		},
		Tax: 11,
	}
	if got := RowTotal(inv.Items[0]); got != 3000000 {
		t.Fatalf("row total = %v", got)
	}
	if got := Subtotal(inv); got != 3500000 {
		t.Fatalf("subtotal = %v", got)
	}
	if got := TaxAmount(inv); got != 385000 {
		t.Fatalf("tax = %v", got)
	}
	if got := GrandTotal(inv); got != 3885000 {
		t.Fatalf("grand total = %v", got)
	}
}

func TestTotalsIgnoreItemOrder(t *testing.T) {
	inv := SampleInvoice(testNow)
	inv.Tax = 10
	reversed := inv.Clone()
	for i, j := 0, len(reversed.Items)-1; i < j; i, j = i+1, j-1 {
		reversed.Items[i], reversed.Items[j] = reversed.Items[j], reversed.Items[i]
	}
	if GrandTotal(inv) != GrandTotal(reversed) {
		t.Fatalf("grand total depends on item order")
	}
}

func TestZeroTax(t *testing.T) {
	inv := SampleInvoice(testNow)
	if TaxAmount(inv) != 0 || GrandTotal(inv) != Subtotal(inv) {
		t.Fatalf("zero tax should leave the subtotal unchanged")
	}
}

func TestAddAndRemoveItem(t *testing.T) {
	inv := NewInvoice(testNow)
	added := inv.AddItem()
	if len(added.Items) != 2 || len(inv.Items) != 1 {
		t.Fatalf("AddItem must not modify the original")
	}
	if added.Items[1] != BlankItem() {
		t.Fatalf("new item should be blank, got %+v", added.Items[1])
	}

	removed, err := added.RemoveItem(0)
	if err != nil || len(removed.Items) != 1 {
		t.Fatalf("remove: %v, items %d", err, len(removed.Items))
	}
	if len(added.Items) != 2 {
		t.Fatalf("RemoveItem must not modify the original")
	}

	last, err := removed.RemoveItem(0)
	if err != nil || len(last.Items) != 1 {
		t.Fatalf("the last item must be kept")
	}
	if _, err := removed.RemoveItem(3); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestRemoveItemKeepsOrder(t *testing.T) {
	inv := SampleInvoice(testNow)
	out, err := inv.RemoveItem(1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	got := []string{out.Items[0].Description, out.Items[1].Description}
	want := []string{"Website Development", "SEO Setup"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if inv.Items[1].Description != "Logo Design" {
		t.Fatalf("original invoice was modified")
	}
}

func TestUnmarshalCoercesText(t *testing.T) {
	body := `{"number":"A","items":[{"description":"x","quantity":"3","price":""},{"quantity":2,"price":"12.5"}],"tax":"11"}`
	var inv Invoice
	if err := json.Unmarshal([]byte(body), &inv); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if inv.Items[0].Quantity != 3 || inv.Items[0].Price != 0 {
		t.Fatalf("unexpected first item %+v", inv.Items[0])
	}
	if inv.Items[1].Price != 12.5 || inv.Tax != 11 || inv.Number != "A" {
		t.Fatalf("unexpected invoice %+v", inv)
	}
}

func TestUnmarshalRejectsBadNumbers(t *testing.T) {
	for _, body := range []string{
		`{"items":[{"price":"abc"}]}`,
		`{"items":[{"quantity":"1.5"}]}`,
		`{"tax":"NaN"}`,
	} {
		var inv Invoice
		if err := json.Unmarshal([]byte(body), &inv); err == nil {
			t.Fatalf("expected error for %s", body)
		}
	}
}
