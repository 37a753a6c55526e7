package server

import (
	"log"
	"strings"

	"github.com/we-dream-team/Halimou/internal/catalog"
	"github.com/we-dream-team/Halimou/internal/export"
	"github.com/we-dream-team/Halimou/internal/inventory"
	"github.com/we-dream-team/Halimou/internal/payroll"
	"github.com/we-dream-team/Halimou/internal/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// New builds the API application with all routes registered. Error
// responses use the {"detail": ...} shape the clients expect.
func New(corsOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"detail": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"detail": "Internal server error",
			})
		},
	})

	origins := strings.Split(corsOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Health check
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Halimou Bakery Inventory API", "status": "running"})
	})

	// Product catalog
	api.Get("/products", catalog.ListProductsHandler())
	api.Post("/products", catalog.CreateProductHandler())
	api.Get("/products/:id", catalog.GetProductHandler())
	api.Put("/products/:id", catalog.UpdateProductHandler())
	api.Delete("/products/:id", catalog.DeleteProductHandler())

	// Daily inventories
	api.Post("/inventories", inventory.CreateInventoryHandler())
	api.Get("/inventories", inventory.ListInventoriesHandler())
	api.Get("/inventories/:date", inventory.GetInventoryByDateHandler())
	api.Put("/inventories/:date", inventory.UpdateInventoryHandler())
	api.Delete("/inventories/:date", inventory.DeleteInventoryHandler())

	// Statistics
	api.Get("/stats/summary", stats.SummaryHandler())
	api.Get("/stats/product/:id", stats.ProductStatsHandler())

	// Data export
	api.Get("/export", export.ExportHandler())

	// Employees & payroll
	api.Get("/employees", payroll.ListEmployeesHandler())
	api.Post("/employees", payroll.CreateEmployeeHandler())
	api.Put("/employees/:id", payroll.UpdateEmployeeHandler())
	api.Delete("/employees/:id", payroll.DeleteEmployeeHandler())
	api.Get("/payrolls", payroll.ListPayrollsHandler())
	api.Post("/payrolls", payroll.CreatePayrollHandler())
	api.Put("/payrolls/:id", payroll.UpdatePayrollHandler())
	api.Delete("/payrolls/:id", payroll.DeletePayrollHandler())

	return app
}
