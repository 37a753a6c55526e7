package stats

import (
	"math"

	"github.com/we-dream-team/Halimou/internal/database"
	"github.com/we-dream-team/Halimou/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductStat struct {
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Category      string  `json:"category"`
	TotalProduced int     `json:"total_produced"`
	TotalSold     int     `json:"total_sold"`
	TotalWasted   int     `json:"total_wasted"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgSoldPerDay float64 `json:"avg_sold_per_day"`
}

type SummaryResponse struct {
	TotalSales    float64       `json:"total_sales"`
	TotalWasted   int           `json:"total_wasted"`
	TotalSold     int           `json:"total_sold"`
	TotalProduced int           `json:"total_produced"`
	ProductsStats []ProductStat `json:"products_stats"`
}

type DailyStat struct {
	Date     string  `json:"date"`
	Produced int     `json:"produced"`
	Sold     int     `json:"sold"`
	Wasted   int     `json:"wasted"`
	Revenue  float64 `json:"revenue"`
}

type ProductStatsResponse struct {
	ProductID  string      `json:"product_id"`
	DailyStats []DailyStat `json:"daily_stats"`
}

func rangeQuery(db *gorm.DB, startDate, endDate string) *gorm.DB {
	if startDate != "" {
		db = db.Where("date >= ?", startDate)
	}
	if endDate != "" {
		db = db.Where("date <= ?", endDate)
	}
	return db
}

func loadInventories(startDate, endDate string) ([]models.DailyInventory, error) {
	var inventories []models.DailyInventory
	err := rangeQuery(database.DB, startDate, endDate).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Order("date asc").
		Find(&inventories).Error
	return inventories, err
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// GET /api/stats/summary?start_date=&end_date=
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		inventories, err := loadInventories(c.Query("start_date"), c.Query("end_date"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load statistics")
		}

		resp := SummaryResponse{ProductsStats: []ProductStat{}}
		byProduct := map[string]*ProductStat{}
		order := []string{}

		for _, inv := range inventories {
			resp.TotalSales += inv.TotalRevenue
			for _, l := range inv.Lines {
				resp.TotalWasted += l.QuantityWasted
				resp.TotalSold += l.QuantitySold
				resp.TotalProduced += l.QuantityProduced

				ps, ok := byProduct[l.ProductID]
				if !ok {
					ps = &ProductStat{
						ProductID:   l.ProductID,
						ProductName: l.ProductName,
						Category:    l.Category,
					}
					byProduct[l.ProductID] = ps
					order = append(order, l.ProductID)
				}
				ps.TotalProduced += l.QuantityProduced
				ps.TotalSold += l.QuantitySold
				ps.TotalWasted += l.QuantityWasted
				ps.TotalRevenue += float64(l.QuantitySold) * l.Price
			}
		}

		days := len(inventories)
		if days == 0 {
			days = 1
		}
		for _, id := range order {
			ps := byProduct[id]
			ps.AvgSoldPerDay = round1(float64(ps.TotalSold) / float64(days))
			resp.ProductsStats = append(resp.ProductsStats, *ps)
		}

		return c.JSON(resp)
	}
}

// GET /api/stats/product/:id?start_date=&end_date=
func ProductStatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID := c.Params("id")

		inventories, err := loadInventories(c.Query("start_date"), c.Query("end_date"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load statistics")
		}

		resp := ProductStatsResponse{ProductID: productID, DailyStats: []DailyStat{}}
		for _, inv := range inventories {
			for _, l := range inv.Lines {
				if l.ProductID != productID {
					continue
				}
				resp.DailyStats = append(resp.DailyStats, DailyStat{
					Date:     inv.Date,
					Produced: l.QuantityProduced,
					Sold:     l.QuantitySold,
					Wasted:   l.QuantityWasted,
					Revenue:  float64(l.QuantitySold) * l.Price,
				})
			}
		}
		return c.JSON(resp)
	}
}
