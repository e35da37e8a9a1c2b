package Controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Anvil/Models"
	"Anvil/Services"
)

// SearchController handles ledger search and spreadsheet export
type SearchController struct {
	Service *Services.SearchService
}

func NewSearchController(db *gorm.DB) *SearchController {
	return &SearchController{Service: Services.NewSearchService(db)}
}

// Search filters the ticket ledger
// POST /api/search
func (c *SearchController) Search(ctx *fiber.Ctx) error {
	var payload Models.SearchPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	return ctx.JSON(c.Service.Search(&payload))
}

// ExportExcel streams the filtered ledger as an xlsx download
// POST /api/search/export
func (c *SearchController) ExportExcel(ctx *fiber.Ctx) error {
	var payload Models.SearchPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	buf, errResponse := c.Service.ExportExcel(&payload)
	if errResponse != nil {
		return ctx.JSON(errResponse)
	}

	filename := Services.ExportFileName(time.Now())
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Send(buf.Bytes())
}
