package export

import (
	"bytes"
	"fmt"

	"github.com/we-dream-team/Halimou/internal/database"
	"github.com/we-dream-team/Halimou/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type Payload struct {
	Inventories []models.DailyInventory `json:"inventories"`
	Products    []models.Product        `json:"products"`
}

func buildPayload(startDate, endDate string) (*Payload, error) {
	q := database.DB
	if startDate != "" {
		q = q.Where("date >= ?", startDate)
	}
	if endDate != "" {
		q = q.Where("date <= ?", endDate)
	}

	payload := &Payload{Inventories: []models.DailyInventory{}, Products: []models.Product{}}
	err := q.
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Order("date desc").
		Find(&payload.Inventories).Error
	if err != nil {
		return nil, err
	}
	err = database.DB.Where("is_archived = ?", false).Find(&payload.Products).Error
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// GET /api/export?start_date=&end_date=[&format=xlsx]
// Default is the raw JSON payload; format=xlsx renders the same data as a
// downloadable workbook.
func ExportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload, err := buildPayload(c.Query("start_date"), c.Query("end_date"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not export data")
		}

		if c.Query("format") != "xlsx" {
			return c.JSON(payload)
		}

		buf, err := renderWorkbook(payload)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not render workbook")
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="export-halimou.xlsx"`)
		return c.Send(buf.Bytes())
	}
}

func renderWorkbook(payload *Payload) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const invSheet = "Inventories"
	f.SetSheetName("Sheet1", invSheet)
	invHeader := []interface{}{"date", "product_name", "category", "produced", "sold", "wasted", "remaining", "price", "revenue"}
	if err := f.SetSheetRow(invSheet, "A1", &invHeader); err != nil {
		return nil, err
	}
	row := 2
	for _, inv := range payload.Inventories {
		for _, l := range inv.Lines {
			cell := fmt.Sprintf("A%d", row)
			values := []interface{}{
				inv.Date, l.ProductName, l.Category,
				l.QuantityProduced, l.QuantitySold, l.QuantityWasted, l.QuantityRemaining,
				l.Price, float64(l.QuantitySold) * l.Price,
			}
			if err := f.SetSheetRow(invSheet, cell, &values); err != nil {
				return nil, err
			}
			row++
		}
	}

	const prodSheet = "Products"
	if _, err := f.NewSheet(prodSheet); err != nil {
		return nil, err
	}
	prodHeader := []interface{}{"name", "category", "price", "is_recurring"}
	if err := f.SetSheetRow(prodSheet, "A1", &prodHeader); err != nil {
		return nil, err
	}
	for i, p := range payload.Products {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{p.Name, p.Category, p.Price, p.IsRecurring}
		if err := f.SetSheetRow(prodSheet, cell, &values); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}
