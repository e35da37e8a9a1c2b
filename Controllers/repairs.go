package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Anvil/AbstractFunctions"
	"Anvil/Models"
	"Anvil/Services"
)

// RepairController handles repair-ticket API endpoints
type RepairController struct {
	Service *Services.RepairService
}

func NewRepairController(db *gorm.DB) *RepairController {
	return &RepairController{Service: Services.NewRepairService(db)}
}

// CreateRepair creates a new ticket with its payments and warranties
// POST /api/repairs
func (c *RepairController) CreateRepair(ctx *fiber.Ctx) error {
	var form Models.RepairForm
	if err := ctx.BodyParser(&form); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if items := AbstractFunctions.ValidateStruct(&form); items != nil {
		return ctx.JSON(Models.GetValidationErrorResponse(items))
	}
	return ctx.JSON(c.Service.CreateRepair(&form))
}

// GetRepair retrieves a ticket with its children and derived fields
// GET /api/repairs/:id
func (c *RepairController) GetRepair(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid repair ID"})
	}
	return ctx.JSON(c.Service.GetRepairByID(uint(id)))
}

// UpdateRepair reconciles the submitted ticket state against the stored one
// PUT /api/repairs/:id
func (c *RepairController) UpdateRepair(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid repair ID"})
	}

	var form Models.RepairForm
	if err := ctx.BodyParser(&form); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if items := AbstractFunctions.ValidateStruct(&form); items != nil {
		return ctx.JSON(Models.GetValidationErrorResponse(items))
	}
	return ctx.JSON(c.Service.UpdateRepair(uint(id), &form))
}

// DeleteRepair soft deletes a ticket and its children
// DELETE /api/repairs/:id
func (c *RepairController) DeleteRepair(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid repair ID"})
	}
	return ctx.JSON(c.Service.DeleteRepair(uint(id)))
}
