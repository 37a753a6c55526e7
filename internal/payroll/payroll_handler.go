package payroll

import (
	"regexp"

	"github.com/we-dream-team/Halimou/internal/database"
	"github.com/we-dream-team/Halimou/internal/models"

	"github.com/gofiber/fiber/v2"
)

var periodRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type CreatePayrollRequest struct {
	EmployeeID string  `json:"employee_id"`
	Period     string  `json:"period"`
	Advances   float64 `json:"advances"`
	Paid       float64 `json:"paid"`
	Notes      string  `json:"notes"`
}

type UpdatePayrollRequest struct {
	Advances *float64 `json:"advances"`
	Paid     *float64 `json:"paid"`
	Notes    *string  `json:"notes"`
}

// GET /api/payrolls?employee_id=&period=
func ListPayrollsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.PayrollEntry{})
		if id := c.Query("employee_id"); id != "" {
			dbq = dbq.Where("employee_id = ?", id)
		}
		if period := c.Query("period"); period != "" {
			dbq = dbq.Where("period = ?", period)
		}

		var entries []models.PayrollEntry
		if err := dbq.Order("period desc, created_at asc").Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list payroll entries")
		}
		return c.JSON(entries)
	}
}

// POST /api/payrolls
func CreatePayrollHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePayrollRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if !periodRe.MatchString(body.Period) {
			return fiber.NewError(fiber.StatusBadRequest, "period must be in YYYY-MM format")
		}
		if body.Advances < 0 || body.Paid < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "advances and paid must be >= 0")
		}

		var e models.Employee
		if err := database.DB.First(&e, "id = ?", body.EmployeeID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown employee")
		}

		entry := models.PayrollEntry{
			EmployeeID: body.EmployeeID,
			Period:     body.Period,
			Advances:   body.Advances,
			Paid:       body.Paid,
			Notes:      body.Notes,
		}
		if err := database.DB.Create(&entry).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create payroll entry")
		}
		return c.JSON(entry)
	}
}

// PUT /api/payrolls/:id (partial update)
func UpdatePayrollHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var entry models.PayrollEntry
		if err := database.DB.First(&entry, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Payroll entry not found")
		}

		var body UpdatePayrollRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Advances != nil {
			if *body.Advances < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "advances must be >= 0")
			}
			entry.Advances = *body.Advances
		}
		if body.Paid != nil {
			if *body.Paid < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "paid must be >= 0")
			}
			entry.Paid = *body.Paid
		}
		if body.Notes != nil {
			entry.Notes = *body.Notes
		}

		if err := database.DB.Save(&entry).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update payroll entry")
		}
		return c.JSON(entry)
	}
}

// DELETE /api/payrolls/:id
func DeletePayrollHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := database.DB.Delete(&models.PayrollEntry{}, "id = ?", c.Params("id"))
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete payroll entry")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Payroll entry not found")
		}
		return c.JSON(fiber.Map{"message": "Payroll entry deleted successfully"})
	}
}
