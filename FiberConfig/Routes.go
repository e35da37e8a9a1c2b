package FiberConfig

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"Anvil/Controllers"
	"Anvil/Models"
	"Anvil/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	customerController := Controllers.NewCustomerController(db)
	repairController := Controllers.NewRepairController(db)
	searchController := Controllers.NewSearchController(db)
	suggestionController := Controllers.NewSuggestionController(db)
	masterController := Controllers.NewMasterController(db)

	api := app.Group("/api")

	// Customer routes
	customers := api.Group("/customers")
	customers.Get("/", customerController.GetCustomers)
	customers.Post("/", customerController.CreateCustomer)
	customers.Put("/:id", customerController.UpdateCustomer)
	customers.Delete("/:id", customerController.DeleteCustomer)

	// Repair ticket routes
	repairs := api.Group("/repairs")
	repairs.Post("/", repairController.CreateRepair)
	repairs.Get("/:id", repairController.GetRepair)
	repairs.Put("/:id", repairController.UpdateRepair)
	repairs.Delete("/:id", repairController.DeleteRepair)

	// Ledger search and export
	api.Post("/search", searchController.Search)
	api.Post("/search/export", searchController.ExportExcel)

	// Typeahead and dropdown data
	api.Get("/suggestions/:type", suggestionController.Suggest)
	api.Get("/options/:key", masterController.GetOptions)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	SetupRoutes(app, Models.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Fatal(app.Listen(":" + port))
}
