package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Anvil/Services"
)

// MasterController serves the lookup-table dropdown options
type MasterController struct {
	Service *Services.MasterService
}

func NewMasterController(db *gorm.DB) *MasterController {
	return &MasterController{Service: Services.NewMasterService(db)}
}

// GetOptions returns the option rows of one lookup category
// GET /api/options/:key
func (c *MasterController) GetOptions(ctx *fiber.Ctx) error {
	return ctx.JSON(c.Service.GetOptionsByKey(ctx.Params("key")))
}
