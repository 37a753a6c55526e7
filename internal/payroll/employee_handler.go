package payroll

import (
	"strings"

	"github.com/we-dream-team/Halimou/internal/database"
	"github.com/we-dream-team/Halimou/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateEmployeeRequest struct {
	FullName   string  `json:"full_name" validate:"required"`
	Role       string  `json:"role"`
	BaseSalary float64 `json:"base_salary" validate:"gte=0"`
}

type UpdateEmployeeRequest struct {
	FullName   *string  `json:"full_name"`
	Role       *string  `json:"role"`
	BaseSalary *float64 `json:"base_salary"`
	IsActive   *bool    `json:"is_active"`
}

// GET /api/employees?include_inactive=true
func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Employee{})
		if c.Query("include_inactive") != "true" {
			dbq = dbq.Where("is_active = ?", true)
		}

		var employees []models.Employee
		if err := dbq.Order("full_name asc").Find(&employees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list employees")
		}
		return c.JSON(employees)
	}
}

// POST /api/employees
func CreateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.FullName = strings.TrimSpace(body.FullName)
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "full_name is required, base_salary must be >= 0")
		}

		e := models.Employee{
			FullName:   body.FullName,
			Role:       body.Role,
			BaseSalary: body.BaseSalary,
			IsActive:   true,
		}
		if err := database.DB.Create(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create employee")
		}
		return c.JSON(e)
	}
}

// PUT /api/employees/:id (partial update)
func UpdateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var e models.Employee
		if err := database.DB.First(&e, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Employee not found")
		}

		var body UpdateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.FullName != nil {
			name := strings.TrimSpace(*body.FullName)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "full_name cannot be empty")
			}
			e.FullName = name
		}
		if body.Role != nil {
			e.Role = *body.Role
		}
		if body.BaseSalary != nil {
			if *body.BaseSalary < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "base_salary must be >= 0")
			}
			e.BaseSalary = *body.BaseSalary
		}
		if body.IsActive != nil {
			e.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update employee")
		}
		return c.JSON(e)
	}
}

// DELETE /api/employees/:id
func DeleteEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := database.DB.Delete(&models.Employee{}, "id = ?", c.Params("id"))
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete employee")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Employee not found")
		}
		return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
	}
}
