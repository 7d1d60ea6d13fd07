package domain

import (
	"reflect"
	"testing"
)

func testCatalog() *Catalog {
	return NewCatalog([]Product{
		{ID: 1, Name: "Apple", UnitPrice: 50},
		{ID: 2, Name: "Mango", UnitPrice: 60},
	})
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		raw string
		qty int
		ok  bool
	}{
		{"0", 0, true},
		{"1", 1, true},
		{"42", 42, true},
		{"-1", 0, false},
		{"1.5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{" 2", 0, false},
	}
	for _, tc := range cases {
		qty, ok := ParseQuantity(tc.raw)
		if qty != tc.qty || ok != tc.ok {
			t.Errorf("ParseQuantity(%q) = (%d, %v), want (%d, %v)", tc.raw, qty, ok, tc.qty, tc.ok)
		}
	}
}

func TestCartPrice(t *testing.T) {
	cart := Cart{1: 2, 2: 1}

	items, total := cart.Price(testCatalog())

	want := []LineItem{
		{ProductID: 1, Name: "Apple", UnitPrice: 50, Quantity: 2, Subtotal: 100},
		{ProductID: 2, Name: "Mango", UnitPrice: 60, Quantity: 1, Subtotal: 60},
	}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("unexpected line items: %+v", items)
	}
	if total != 160 {
		t.Fatalf("expected total 160, got %d", total)
	}
}

func TestCartPrice_UnknownProductSkipped(t *testing.T) {
	cart := Cart{1: 2, 999: 5}

	items, total := cart.Price(testCatalog())

	if len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(items))
	}
	if items[0].ProductID != 1 {
		t.Fatalf("unexpected product: %+v", items[0])
	}
	if total != 100 {
		t.Fatalf("stale entry must not contribute to total, got %d", total)
	}
}

func TestCartPrice_Idempotent(t *testing.T) {
	cart := Cart{1: 3, 2: 2}
	catalog := testCatalog()

	items1, total1 := cart.Price(catalog)
	items2, total2 := cart.Price(catalog)

	if !reflect.DeepEqual(items1, items2) || total1 != total2 {
		t.Fatalf("pricing is not deterministic: %+v/%d vs %+v/%d", items1, total1, items2, total2)
	}
}

func TestCartPrice_Empty(t *testing.T) {
	items, total := Cart{}.Price(testCatalog())
	if len(items) != 0 || total != 0 {
		t.Fatalf("expected empty pricing, got %+v total %d", items, total)
	}
}

func TestCatalogFind(t *testing.T) {
	catalog := testCatalog()

	if p, ok := catalog.Find(2); !ok || p.Name != "Mango" {
		t.Fatalf("expected Mango, got %+v (%v)", p, ok)
	}
	if _, ok := catalog.Find(999); ok {
		t.Fatalf("expected miss for unknown id")
	}
}

func TestDefaultCatalogOrder(t *testing.T) {
	products := DefaultCatalog().Products()
	if len(products) != 10 {
		t.Fatalf("expected 10 products, got %d", len(products))
	}
	for i, p := range products {
		if p.ID != i+1 {
			t.Fatalf("catalog order broken at index %d: %+v", i, p)
		}
	}
}
