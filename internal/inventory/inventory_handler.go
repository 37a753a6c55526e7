package inventory

import (
	"time"

	"github.com/we-dream-team/Halimou/internal/database"
	"github.com/we-dream-team/Halimou/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LineInput struct {
	ProductID         string  `json:"product_id"`
	ProductName       string  `json:"product_name"`
	Category          string  `json:"category"`
	QuantityProduced  int     `json:"quantity_produced"`
	QuantitySold      int     `json:"quantity_sold"`
	QuantityWasted    int     `json:"quantity_wasted"`
	QuantityRemaining int     `json:"quantity_remaining"`
	Price             float64 `json:"price"`
}

type CreateInventoryRequest struct {
	Date     string      `json:"date"`
	Products []LineInput `json:"products"`
}

type UpdateInventoryRequest struct {
	Products []LineInput `json:"products"`
}

func validateLines(lines []LineInput, checkProducts bool) error {
	for _, l := range lines {
		if l.ProductID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "product_id is required on every line")
		}
		if l.QuantityProduced < 0 || l.QuantitySold < 0 || l.QuantityWasted < 0 || l.QuantityRemaining < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantities must be >= 0")
		}
		if l.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "price must be >= 0")
		}
		if checkProducts {
			var p models.Product
			if err := database.DB.First(&p, "id = ?", l.ProductID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Unknown product: "+l.ProductID)
			}
		}
	}
	return nil
}

func toLines(inventoryID string, inputs []LineInput) []models.InventoryLine {
	lines := make([]models.InventoryLine, 0, len(inputs))
	for i, l := range inputs {
		lines = append(lines, models.InventoryLine{
			InventoryID:       inventoryID,
			ProductID:         l.ProductID,
			ProductName:       l.ProductName,
			Category:          l.Category,
			QuantityProduced:  l.QuantityProduced,
			QuantitySold:      l.QuantitySold,
			QuantityWasted:    l.QuantityWasted,
			QuantityRemaining: l.QuantityRemaining,
			Price:             l.Price,
			Position:          i,
		})
	}
	return lines
}

// POST /api/inventories
func CreateInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateInventoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if _, err := time.Parse("2006-01-02", body.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be in YYYY-MM-DD format")
		}
		if len(body.Products) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "At least one product is required")
		}
		if err := validateLines(body.Products, true); err != nil {
			return err
		}

		var existing models.DailyInventory
		if err := database.DB.First(&existing, "date = ?", body.Date).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Inventory already exists for this date")
		}

		inv := models.DailyInventory{
			Date:  body.Date,
			Lines: toLines("", body.Products),
		}
		inv.TotalRevenue = inv.Revenue()

		if err := database.DB.Create(&inv).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create inventory")
		}
		return c.JSON(inv)
	}
}

// GET /api/inventories?limit=N
func ListInventoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 30)
		if limit <= 0 {
			limit = 30
		}

		var inventories []models.DailyInventory
		err := database.DB.
			Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
			Order("date desc").
			Limit(limit).
			Find(&inventories).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list inventories")
		}
		return c.JSON(inventories)
	}
}

// GET /api/inventories/:date — 404 means "no record yet", the clients
// treat it as an empty day rather than an error.
func GetInventoryByDateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var inv models.DailyInventory
		err := database.DB.
			Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
			First(&inv, "date = ?", c.Params("date")).Error
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Inventory not found for this date")
		}
		return c.JSON(inv)
	}
}

// PUT /api/inventories/:date — replaces the line list and recomputes
// revenue in one transaction; per-date upsert atomicity lives here.
func UpdateInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Params("date")

		var body UpdateInventoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validateLines(body.Products, false); err != nil {
			return err
		}

		var inv models.DailyInventory
		if err := database.DB.First(&inv, "date = ?", date).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Inventory not found")
		}

		lines := toLines(inv.ID, body.Products)
		inv.Lines = lines
		inv.TotalRevenue = inv.Revenue()

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&models.InventoryLine{}, "inventory_id = ?", inv.ID).Error; err != nil {
				return err
			}
			if len(lines) > 0 {
				if err := tx.Create(&lines).Error; err != nil {
					return err
				}
			}
			return tx.Model(&models.DailyInventory{}).
				Where("id = ?", inv.ID).
				Updates(map[string]interface{}{
					"total_revenue": inv.TotalRevenue,
					"updated_at":    time.Now(),
				}).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update inventory")
		}
		return c.JSON(inv)
	}
}

// DELETE /api/inventories/:date
func DeleteInventoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var inv models.DailyInventory
		if err := database.DB.First(&inv, "date = ?", c.Params("date")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Inventory not found")
		}
		if err := database.DB.Select("Lines").Delete(&inv).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete inventory")
		}
		return c.JSON(fiber.Map{"message": "Inventory deleted successfully"})
	}
}
