// Package statview holds the state of the statistics screen: period
// resolution, derived per-product rates and the read-only data it fetches.
package statview

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/we-dream-team/Halimou/internal/apiclient"
)

type Period string

const (
	PeriodWeek   Period = "week" // Monday-start week containing the reference date
	PeriodLast7  Period = "7"    // rolling 7 days ending today
	PeriodLast30 Period = "30"   // rolling 30 days ending today
	PeriodAll    Period = "all"  // no date bound
)

// Range resolves a period to start/end dates (yyyy-MM-dd). Empty strings
// mean "unbounded" on that side.
func Range(p Period, reference, today time.Time) (string, string) {
	switch p {
	case PeriodWeek:
		start := startOfWeek(reference)
		return start.Format("2006-01-02"), start.AddDate(0, 0, 6).Format("2006-01-02")
	case PeriodLast7:
		return today.AddDate(0, 0, -7).Format("2006-01-02"), today.Format("2006-01-02")
	case PeriodLast30:
		return today.AddDate(0, 0, -30).Format("2006-01-02"), today.Format("2006-01-02")
	default:
		return "", ""
	}
}

func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// SoldRate: sold/produced as a percentage with one decimal place; 0 when
// nothing was produced. WasteRate is the analogous waste figure.
func SoldRate(sold, produced int) float64 {
	return rate(sold, produced)
}

func WasteRate(wasted, produced int) float64 {
	return rate(wasted, produced)
}

func rate(part, produced int) float64 {
	if produced == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(produced)*1000) / 10
}

// View is the screen's working data for one period selection.
type View struct {
	Period Period
	Stats  apiclient.StatsSummary
	Recent []apiclient.Inventory
	Start  string
	End    string
}

// Load fetches the aggregate summary and the recent-inventory list for
// the period. State is replaced wholesale on every period change.
func Load(ctx context.Context, c *apiclient.Client, p Period, reference time.Time) (*View, error) {
	start, end := Range(p, reference, time.Now())

	stats, err := c.StatsSummary(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	recent, err := c.Inventories(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("load recent inventories: %w", err)
	}

	return &View{Period: p, Stats: stats, Recent: recent, Start: start, End: end}, nil
}
