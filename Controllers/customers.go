package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Anvil/AbstractFunctions"
	"Anvil/Models"
	"Anvil/Services"
)

// CustomerController handles customer-book API endpoints
type CustomerController struct {
	Service *Services.CustomerService
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{Service: Services.NewCustomerService(db)}
}

// GetCustomers retrieves all active customers
// GET /api/customers
func (c *CustomerController) GetCustomers(ctx *fiber.Ctx) error {
	return ctx.JSON(c.Service.GetCustomers())
}

// CreateCustomer creates a new customer
// POST /api/customers
func (c *CustomerController) CreateCustomer(ctx *fiber.Ctx) error {
	var request Models.CustomerRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if items := AbstractFunctions.ValidateStruct(&request); items != nil {
		return ctx.JSON(Models.GetValidationErrorResponse(items))
	}
	return ctx.JSON(c.Service.CreateCustomer(&request))
}

// UpdateCustomer updates an existing customer
// PUT /api/customers/:id
func (c *CustomerController) UpdateCustomer(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	var request Models.CustomerRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if items := AbstractFunctions.ValidateStruct(&request); items != nil {
		return ctx.JSON(Models.GetValidationErrorResponse(items))
	}
	return ctx.JSON(c.Service.UpdateCustomer(uint(id), &request))
}

// DeleteCustomer soft deletes a customer
// DELETE /api/customers/:id
func (c *CustomerController) DeleteCustomer(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer ID"})
	}
	return ctx.JSON(c.Service.DeleteCustomer(uint(id)))
}
