package models

import (
	"reflect"
	"testing"
)

func TestCompletionSample(t *testing.T) {
	inv := SampleInvoice(testNow)
	if got := CompletionPercent(inv); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	if missing := MissingFields(inv); len(missing) != 0 {
		t.Fatalf("expected nothing missing, got %v", missing)
	}
}

func TestCompletionSevenOfEight(t *testing.T) {
	inv := SampleInvoice(testNow)
	inv.Payment.Bank = ""
	if got := CompletionPercent(inv); got != 88 {
		t.Fatalf("expected 88, got %d", got)
	}
	if got := MissingFields(inv); !reflect.DeepEqual(got, []string{FieldPaymentBank}) {
		t.Fatalf("unexpected missing %v", got)
	}
}

func TestCompletionNewInvoice(t *testing.T) {
	inv := NewInvoice(testNow)
	// number, dates and items are filled; names, item details and bank are not
	want := []string{FieldFromName, FieldToName, FieldItemDetails, FieldPaymentBank}
	if got := MissingFields(inv); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if got := CompletionPercent(inv); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestCompletionNeverDecreasesWhenFilling(t *testing.T) {
	inv := NewInvoice(testNow)
	inv.Number = ""
	prev := CompletionPercent(inv)
	steps := []struct{ path, value string }{
		{"number", "INV-1"},
		{"from.name", "John"},
		{"to.name", "PT X"},
		{"items.0.description", "Jasa"},
		{"items.0.price", "1000"},
		{"payment.bank", "BCA"},
	}
	for _, s := range steps {
		var err error
		inv, err = inv.WithField(s.path, s.value)
		if err != nil {
			t.Fatalf("%s: %v", s.path, err)
		}
		got := CompletionPercent(inv)
		if got < prev {
			t.Fatalf("completion dropped from %d to %d after %s", prev, got, s.path)
		}
		prev = got
	}
	if prev != 100 {
		t.Fatalf("expected 100 at the end, got %d", prev)
	}
}

func TestItemDetailsNeedsEveryItem(t *testing.T) {
	inv := SampleInvoice(testNow).AddItem()
	if got := MissingFields(inv); !reflect.DeepEqual(got, []string{FieldItemDetails}) {
		t.Fatalf("unexpected missing %v", got)
	}
}

func TestIsMissing(t *testing.T) {
	empty := ""
	zero := 0
	var nilInt *int
	cases := []struct {
		v    any
		want bool
	}{
		{nil, true},
		{"", true},
		{"x", false},
		{&empty, true},
		{nilInt, true},
		{&zero, false},
		{0, false},
		{0.0, false},
	}
	for _, c := range cases {
		if got := IsMissing(c.v); got != c.want {
			t.Fatalf("IsMissing(%#v) = %v, want %v", c.v, got, c.want)
		}
	}
}
