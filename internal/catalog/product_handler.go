package catalog

import (
	"strings"

	"github.com/we-dream-team/Halimou/internal/database"
	"github.com/we-dream-team/Halimou/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	IsRecurring *bool   `json:"is_recurring"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	IsRecurring *bool    `json:"is_recurring"`
	IsArchived  *bool    `json:"is_archived"`
}

// GET /api/products?include_archived=true
// Archived products are hidden by default; they only matter for history.
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Product{})
		if c.Query("include_archived") != "true" {
			dbq = dbq.Where("is_archived = ?", false)
		}

		var products []models.Product
		if err := dbq.Order("created_at asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list products")
		}
		return c.JSON(products)
	}
}

// GET /api/products/:id
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.Product
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return c.JSON(p)
	}
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "name and category are required, price must be >= 0")
		}
		if !models.ValidCategory(body.Category) {
			return fiber.NewError(fiber.StatusBadRequest, "category must be viennoiserie, gâteau or autre")
		}

		recurring := true
		if body.IsRecurring != nil {
			recurring = *body.IsRecurring
		}

		p := models.Product{
			Name:        body.Name,
			Category:    body.Category,
			Price:       body.Price,
			IsRecurring: recurring,
			IsArchived:  false,
		}
		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create product")
		}
		return c.JSON(p)
	}
}

// PUT /api/products/:id (partial update)
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.Product
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Name == nil && body.Category == nil && body.Price == nil &&
			body.IsRecurring == nil && body.IsArchived == nil {
			return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name cannot be empty")
			}
			p.Name = name
		}
		if body.Category != nil {
			if !models.ValidCategory(*body.Category) {
				return fiber.NewError(fiber.StatusBadRequest, "category must be viennoiserie, gâteau or autre")
			}
			p.Category = *body.Category
		}
		if body.Price != nil {
			if *body.Price < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "price must be >= 0")
			}
			p.Price = *body.Price
		}
		if body.IsRecurring != nil {
			p.IsRecurring = *body.IsRecurring
		}
		if body.IsArchived != nil {
			p.IsArchived = *body.IsArchived
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update product")
		}
		return c.JSON(p)
	}
}

// DELETE /api/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := database.DB.Delete(&models.Product{}, "id = ?", c.Params("id"))
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete product")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return c.JSON(fiber.Map{"message": "Product deleted successfully"})
	}
}
