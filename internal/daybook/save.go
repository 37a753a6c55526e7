package daybook

import (
	"context"
	"errors"

	"github.com/we-dream-team/Halimou/internal/apiclient"
)

// ErrNoProducts: save is refused client-side when the sheet has no lines;
// no request is issued.
var ErrNoProducts = errors.New("at least one product is required")

// Save upserts the sheet: update when a record already existed for the
// date, create otherwise. Success clears the dirty flag and remembers
// that the record now exists, so later saves take the update path.
func Save(ctx context.Context, c *apiclient.Client, s *Sheet) error {
	if len(s.Items) == 0 {
		return ErrNoProducts
	}

	var err error
	if s.exists {
		_, err = c.UpdateInventory(ctx, s.Date, s.Items)
	} else {
		_, err = c.CreateInventory(ctx, s.Date, s.Items)
	}
	if err != nil {
		return err
	}

	s.exists = true
	s.dirty = false
	return nil
}
