package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Anvil/Services"
)

// SuggestionController handles typeahead lookups
type SuggestionController struct {
	Service *Services.SuggestionService
}

func NewSuggestionController(db *gorm.DB) *SuggestionController {
	return &SuggestionController{Service: Services.NewSuggestionService(db)}
}

// Suggest returns suggestions for one entity type
// GET /api/suggestions/:type?key=
func (c *SuggestionController) Suggest(ctx *fiber.Ctx) error {
	return ctx.JSON(c.Service.Suggest(ctx.Params("type"), ctx.Query("key")))
}
