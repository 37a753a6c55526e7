// Package daybook holds the state of the daily-inventory screen: an
// editable working copy of one date's line items plus the pure transition
// functions that mutate it. All network I/O stays in save.go so the
// reducers are testable without a server.
package daybook

import (
	"encoding/json"

	"github.com/we-dream-team/Halimou/internal/apiclient"
)

type QuantityField string

const (
	FieldProduced  QuantityField = "produced"
	FieldSold      QuantityField = "sold"
	FieldWasted    QuantityField = "wasted"
	FieldRemaining QuantityField = "remaining"
)

// Sheet is the working set for one calendar date. The API stays the
// source of truth; the sheet only tracks what the user is editing now.
type Sheet struct {
	Date  string
	Items []apiclient.LineItem

	exists       bool // an inventory record existed on the server at load time
	dirty        bool
	reintegrated bool // carryover already applied for this date-view
}

// NewSheet builds the working set from a by-date lookup. A NotFound
// lookup yields an empty, editable sheet (no record yet for this date).
func NewSheet(date string, lookup apiclient.InventoryLookup) *Sheet {
	s := &Sheet{Date: date, Items: []apiclient.LineItem{}}
	if lookup.Found {
		s.exists = true
		s.Items = append(s.Items, lookup.Inventory.Products...)
	}
	return s
}

func (s *Sheet) Dirty() bool  { return s.dirty }
func (s *Sheet) Exists() bool { return s.exists }

// SelectProducts replaces the sheet's product set with the target ids:
// lines already present keep their quantities, new ids get zero-quantity
// lines seeded with a name/category/price snapshot from the catalog, and
// ids missing from the target set are dropped. Existing order is
// preserved; new lines are appended in catalog order.
func (s *Sheet) SelectProducts(catalog []apiclient.Product, ids []string) {
	target := make(map[string]bool, len(ids))
	for _, id := range ids {
		target[id] = true
	}

	next := make([]apiclient.LineItem, 0, len(ids))
	kept := make(map[string]bool, len(s.Items))
	for _, item := range s.Items {
		if target[item.ProductID] {
			next = append(next, item)
			kept[item.ProductID] = true
		}
	}
	for _, p := range catalog {
		if target[p.ID] && !kept[p.ID] {
			next = append(next, apiclient.LineItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Category:    p.Category,
				Price:       p.Price,
			})
		}
	}

	s.Items = next
	s.dirty = true
}

// SetQuantity clamps the new value to >= 0 and, unless the remaining
// counter itself is being overridden, recomputes
// remaining = max(0, produced - sold - wasted). Returns false when the
// product is not on the sheet.
func (s *Sheet) SetQuantity(productID string, field QuantityField, value int) bool {
	if value < 0 {
		value = 0
	}
	for i := range s.Items {
		item := &s.Items[i]
		if item.ProductID != productID {
			continue
		}
		switch field {
		case FieldProduced:
			item.QuantityProduced = value
		case FieldSold:
			item.QuantitySold = value
		case FieldWasted:
			item.QuantityWasted = value
		case FieldRemaining:
			// raw override path: no recompute
			item.QuantityRemaining = value
			s.dirty = true
			return true
		default:
			return false
		}
		item.QuantityRemaining = remaining(item.QuantityProduced, item.QuantitySold, item.QuantityWasted)
		s.dirty = true
		return true
	}
	return false
}

func remaining(produced, sold, wasted int) int {
	r := produced - sold - wasted
	if r < 0 {
		return 0
	}
	return r
}

// TotalRevenue is Σ sold × price over the given lines. Pure and
// order-independent; an empty list yields 0.
func TotalRevenue(items []apiclient.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.QuantitySold) * item.Price
	}
	return total
}

func (s *Sheet) TotalRevenue() float64 {
	return TotalRevenue(s.Items)
}

// Snapshot serializes a line list for dirty-since-last-save comparison.
func Snapshot(items []apiclient.LineItem) string {
	raw, err := json.Marshal(items)
	if err != nil {
		return ""
	}
	return string(raw)
}
