package daybook

import (
	"testing"

	"github.com/we-dream-team/Halimou/internal/apiclient"
)

func prevDayLines() []apiclient.LineItem {
	return []apiclient.LineItem{
		{ProductID: "p1", ProductName: "Croissant", Category: "viennoiserie", QuantityProduced: 10, QuantitySold: 5, QuantityRemaining: 5, Price: 1.5},
		{ProductID: "p2", ProductName: "Éclair", Category: "gâteau", QuantityProduced: 4, QuantitySold: 4, QuantityRemaining: 0, Price: 3},
		{ProductID: "p3", ProductName: "Baguette", Category: "autre", QuantityProduced: 6, QuantitySold: 3, QuantityRemaining: 3, Price: 1},
	}
}

func TestCarryoverFiltersZeroRemaining(t *testing.T) {
	carry := Carryover(prevDayLines())
	if len(carry) != 2 {
		t.Fatalf("carryover items = %d, want 2", len(carry))
	}
	for _, c := range carry {
		if c.Source.QuantityRemaining == 0 {
			t.Fatalf("zero-remaining item offered: %+v", c.Source)
		}
		if c.AddQuantity != c.Source.QuantityRemaining {
			t.Fatalf("default add = %d, want full remaining %d", c.AddQuantity, c.Source.QuantityRemaining)
		}
	}
}

func TestSetAddQuantityBounds(t *testing.T) {
	c := CarryoverItem{Source: apiclient.LineItem{ProductID: "p1", QuantityRemaining: 5}}

	c.SetAddQuantity(3)
	if c.AddQuantity != 3 {
		t.Fatalf("add = %d, want 3", c.AddQuantity)
	}
	c.SetAddQuantity(99)
	if c.AddQuantity != 5 {
		t.Fatalf("add = %d, want clamp to 5", c.AddQuantity)
	}
	c.SetAddQuantity(-1)
	if c.AddQuantity != 0 {
		t.Fatalf("add = %d, want clamp to 0", c.AddQuantity)
	}
}

func TestMergeCarryoverIntoExistingLine(t *testing.T) {
	today := []apiclient.LineItem{
		{ProductID: "p1", ProductName: "Croissant", QuantityProduced: 8, QuantitySold: 2, QuantityRemaining: 6, Price: 1.5},
	}
	carry := []CarryoverItem{
		{Source: apiclient.LineItem{ProductID: "p1", QuantityRemaining: 5}, AddQuantity: 3},
	}

	merged := MergeCarryover(today, carry)
	if merged[0].QuantityProduced != 11 {
		t.Fatalf("produced = %d, want 8+3", merged[0].QuantityProduced)
	}
	if merged[0].QuantityRemaining != 9 {
		t.Fatalf("remaining = %d, want 9 (recomputed)", merged[0].QuantityRemaining)
	}

	// source slice untouched
	if today[0].QuantityProduced != 8 {
		t.Fatal("merge must not mutate its input")
	}
}

func TestMergeCarryoverInsertsNewLine(t *testing.T) {
	carry := []CarryoverItem{
		{Source: apiclient.LineItem{ProductID: "p3", ProductName: "Baguette", Category: "autre", QuantityRemaining: 3, Price: 1}, AddQuantity: 2},
	}

	merged := MergeCarryover(nil, carry)
	if len(merged) != 1 {
		t.Fatalf("lines = %d, want 1", len(merged))
	}
	got := merged[0]
	if got.QuantityProduced != 2 || got.QuantitySold != 0 || got.QuantityWasted != 0 || got.QuantityRemaining != 2 {
		t.Fatalf("seeded line wrong: %+v", got)
	}
	if got.ProductName != "Baguette" || got.Price != 1 {
		t.Fatalf("snapshot not carried from previous day: %+v", got)
	}
}

func TestMergeCarryoverAllZeroIsNoop(t *testing.T) {
	today := []apiclient.LineItem{
		{ProductID: "p1", QuantityProduced: 8, QuantityRemaining: 8},
	}
	carry := Carryover(prevDayLines())
	for i := range carry {
		carry[i].SetAddQuantity(0)
	}

	merged := MergeCarryover(today, carry)
	if len(merged) != 1 || merged[0] != today[0] {
		t.Fatalf("all-zero carryover must leave the list unchanged: %+v", merged)
	}
}

func TestMergeCarryoverNeverExceedsRemaining(t *testing.T) {
	carry := []CarryoverItem{
		// AddQuantity set out of band above the bound
		{Source: apiclient.LineItem{ProductID: "p1", QuantityRemaining: 5}, AddQuantity: 50},
	}
	merged := MergeCarryover(nil, carry)
	if merged[0].QuantityProduced != 5 {
		t.Fatalf("produced = %d, merge must cap at source remaining", merged[0].QuantityProduced)
	}
}

func TestReintegrateSingleUse(t *testing.T) {
	s := NewSheet("2024-05-02", apiclient.InventoryLookup{Found: false})
	carry := []CarryoverItem{
		{Source: apiclient.LineItem{ProductID: "p1", ProductName: "Croissant", QuantityRemaining: 5, Price: 1.5}, AddQuantity: 3},
	}

	if !s.CanReintegrate() {
		t.Fatal("fresh sheet should allow reintegration")
	}
	if err := s.Reintegrate(carry); err != nil {
		t.Fatalf("first reintegration: %v", err)
	}
	if s.Items[0].QuantityProduced != 3 {
		t.Fatalf("produced = %d, want 3", s.Items[0].QuantityProduced)
	}
	if !s.Dirty() {
		t.Fatal("reintegration with added stock should mark the sheet dirty")
	}

	if err := s.Reintegrate(carry); err != ErrAlreadyReintegrated {
		t.Fatalf("second reintegration: got %v, want ErrAlreadyReintegrated", err)
	}
}

func TestPreviousDate(t *testing.T) {
	got, err := previousDate("2024-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if got != "2024-02-29" {
		t.Fatalf("previousDate = %s, want 2024-02-29", got)
	}

	if _, err := previousDate("01/03/2024"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
