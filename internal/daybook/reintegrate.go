package daybook

import (
	"context"
	"errors"
	"time"

	"github.com/we-dream-team/Halimou/internal/apiclient"
)

var (
	// ErrNoPreviousInventory: the previous day has no record, so there is
	// nothing to carry over. Unlike the current-day fetch, this 404 is a
	// reported failure, not an empty sheet.
	ErrNoPreviousInventory = errors.New("no inventory recorded for the previous day")

	// ErrAlreadyReintegrated: carryover is single-use per date-view;
	// re-selecting a date re-arms it.
	ErrAlreadyReintegrated = errors.New("carryover already applied for this date")
)

// CarryoverItem: one leftover line from the previous day plus the amount
// the user chose to roll into today's production.
type CarryoverItem struct {
	Source      apiclient.LineItem
	AddQuantity int
}

// SetAddQuantity clamps to [0, source remaining]: carryover can never
// fabricate stock beyond what was actually left.
func (c *CarryoverItem) SetAddQuantity(n int) {
	if n < 0 {
		n = 0
	}
	if n > c.Source.QuantityRemaining {
		n = c.Source.QuantityRemaining
	}
	c.AddQuantity = n
}

// Carryover filters the previous day's lines to those with leftover
// stock, defaulting each add-quantity to the full remaining amount.
func Carryover(prev []apiclient.LineItem) []CarryoverItem {
	items := make([]CarryoverItem, 0, len(prev))
	for _, line := range prev {
		if line.QuantityRemaining > 0 {
			items = append(items, CarryoverItem{Source: line, AddQuantity: line.QuantityRemaining})
		}
	}
	return items
}

// MergeCarryover folds the chosen amounts into the working lines: a line
// for the same product gets its produced count increased (remaining
// recomputed), otherwise a new line is inserted seeded with the previous
// day's snapshot. Amounts of zero are skipped, so an all-zero carryover
// returns the input unchanged. The source day's record is never touched.
func MergeCarryover(items []apiclient.LineItem, carry []CarryoverItem) []apiclient.LineItem {
	next := make([]apiclient.LineItem, len(items))
	copy(next, items)

	for _, c := range carry {
		add := c.AddQuantity
		if add <= 0 {
			continue
		}
		if add > c.Source.QuantityRemaining {
			add = c.Source.QuantityRemaining
		}

		merged := false
		for i := range next {
			if next[i].ProductID != c.Source.ProductID {
				continue
			}
			next[i].QuantityProduced += add
			next[i].QuantityRemaining = remaining(next[i].QuantityProduced, next[i].QuantitySold, next[i].QuantityWasted)
			merged = true
			break
		}
		if !merged {
			next = append(next, apiclient.LineItem{
				ProductID:         c.Source.ProductID,
				ProductName:       c.Source.ProductName,
				Category:          c.Source.Category,
				QuantityProduced:  add,
				QuantityRemaining: add,
				Price:             c.Source.Price,
			})
		}
	}
	return next
}

func (s *Sheet) CanReintegrate() bool { return !s.reintegrated }

// Reintegrate applies a confirmed carryover to the sheet. It succeeds at
// most once per date-view.
func (s *Sheet) Reintegrate(carry []CarryoverItem) error {
	if s.reintegrated {
		return ErrAlreadyReintegrated
	}
	merged := MergeCarryover(s.Items, carry)
	for _, c := range carry {
		if c.AddQuantity > 0 {
			s.dirty = true
			break
		}
	}
	s.Items = merged
	s.reintegrated = true
	return nil
}

// LoadCarryover fetches the inventory of the day before the sheet's date
// and turns its leftovers into editable carryover items. A missing
// previous-day record or a network failure aborts with no partial state.
func LoadCarryover(ctx context.Context, c *apiclient.Client, date string) ([]CarryoverItem, error) {
	prev, err := previousDate(date)
	if err != nil {
		return nil, err
	}
	lookup, err := c.InventoryByDate(ctx, prev)
	if err != nil {
		return nil, err
	}
	if !lookup.Found {
		return nil, ErrNoPreviousInventory
	}
	return Carryover(lookup.Inventory.Products), nil
}

func previousDate(date string) (string, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, -1).Format("2006-01-02"), nil
}
