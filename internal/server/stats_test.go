package server

import (
	"net/http"
	"testing"

	"github.com/we-dream-team/Halimou/internal/stats"

	"github.com/stretchr/testify/require"
)

func TestStatsSummaryAggregation(t *testing.T) {
	app := setupApp(t)
	croissant := createProduct(t, app, "Croissant", "viennoiserie", 2)
	galette := createProduct(t, app, "Galette", "gâteau", 12)

	createInventory(t, app, "2026-01-15",
		lineFor(croissant, 10, 7, 1),
		lineFor(galette, 3, 2, 0),
	)
	createInventory(t, app, "2026-01-16",
		lineFor(croissant, 8, 6, 2),
	)

	status, raw := doJSON(t, app, http.MethodGet, "/api/stats/summary", nil)
	require.Equal(t, http.StatusOK, status)

	var sum stats.SummaryResponse
	decode(t, raw, &sum)
	require.Equal(t, 21, sum.TotalProduced)
	require.Equal(t, 15, sum.TotalSold)
	require.Equal(t, 3, sum.TotalWasted)
	require.Equal(t, (7*2.0+2*12.0)+(6*2.0), sum.TotalSales)

	require.Len(t, sum.ProductsStats, 2)
	require.Equal(t, croissant.ID, sum.ProductsStats[0].ProductID)
	require.Equal(t, 13, sum.ProductsStats[0].TotalSold)
	require.Equal(t, 6.5, sum.ProductsStats[0].AvgSoldPerDay) // 13 sold over 2 days
	require.Equal(t, galette.ID, sum.ProductsStats[1].ProductID)
	require.Equal(t, 1.0, sum.ProductsStats[1].AvgSoldPerDay) // 2 sold over 2 days
}

func TestStatsSummaryDateRange(t *testing.T) {
	app := setupApp(t)
	p := createProduct(t, app, "Croissant", "viennoiserie", 2)
	createInventory(t, app, "2026-01-10", lineFor(p, 5, 5, 0))
	createInventory(t, app, "2026-01-15", lineFor(p, 6, 4, 0))
	createInventory(t, app, "2026-01-20", lineFor(p, 7, 3, 0))

	status, raw := doJSON(t, app, http.MethodGet, "/api/stats/summary?start_date=2026-01-12&end_date=2026-01-18", nil)
	require.Equal(t, http.StatusOK, status)

	var sum stats.SummaryResponse
	decode(t, raw, &sum)
	require.Equal(t, 6, sum.TotalProduced)
	require.Equal(t, 4, sum.TotalSold)
	require.Len(t, sum.ProductsStats, 1)
	require.Equal(t, 4.0, sum.ProductsStats[0].AvgSoldPerDay)
}

func TestStatsSummaryEmpty(t *testing.T) {
	app := setupApp(t)

	status, raw := doJSON(t, app, http.MethodGet, "/api/stats/summary", nil)
	require.Equal(t, http.StatusOK, status)

	var sum stats.SummaryResponse
	decode(t, raw, &sum)
	require.Zero(t, sum.TotalSales)
	require.Zero(t, sum.TotalProduced)
	require.NotNil(t, sum.ProductsStats)
	require.Empty(t, sum.ProductsStats)
}

func TestProductDailyStats(t *testing.T) {
	app := setupApp(t)
	croissant := createProduct(t, app, "Croissant", "viennoiserie", 2)
	galette := createProduct(t, app, "Galette", "gâteau", 12)

	createInventory(t, app, "2026-01-15",
		lineFor(croissant, 10, 7, 1),
		lineFor(galette, 3, 2, 0),
	)
	createInventory(t, app, "2026-01-16", lineFor(croissant, 8, 6, 0))

	status, raw := doJSON(t, app, http.MethodGet, "/api/stats/product/"+croissant.ID, nil)
	require.Equal(t, http.StatusOK, status)

	var resp stats.ProductStatsResponse
	decode(t, raw, &resp)
	require.Equal(t, croissant.ID, resp.ProductID)
	require.Len(t, resp.DailyStats, 2)
	require.Equal(t, "2026-01-15", resp.DailyStats[0].Date)
	require.Equal(t, 7, resp.DailyStats[0].Sold)
	require.Equal(t, 14.0, resp.DailyStats[0].Revenue)
	require.Equal(t, "2026-01-16", resp.DailyStats[1].Date)

	// a product that never appears yields an empty series
	status, raw = doJSON(t, app, http.MethodGet, "/api/stats/product/ghost", nil)
	require.Equal(t, http.StatusOK, status)
	decode(t, raw, &resp)
	require.Empty(t, resp.DailyStats)
}
