package routes

import (
	"faktur-backend/controllers"

	"github.com/gofiber/fiber/v2"
)

// Register wires all HTTP routes.
// idempotency guards the mutating calls on saved invoices.
func Register(app *fiber.App, ic *controllers.InvoiceController, idempotency fiber.Handler) {
	api := app.Group("/api")
	api.Get("/health", controllers.Health)

	invoices := api.Group("/invoices")

	// Form operations: the invoice travels in the body, nothing is stored.
	invoices.Get("/new", ic.NewInvoice)
	invoices.Get("/sample", ic.SampleInvoice)
	invoices.Post("/summary", ic.Summary)
	invoices.Post("/edit", ic.EditField)
	invoices.Post("/items", ic.AddItem)
	invoices.Delete("/items/:index", ic.RemoveItem)
	invoices.Post("/preview", ic.PreviewInvoice)
	invoices.Post("/pdf", ic.DownloadPDF)

	// Saved invoices
	invoices.Get("", ic.ListInvoices)
	invoices.Post("", idempotency, ic.SaveInvoice)
	invoices.Get("/:id", ic.GetInvoice)
	invoices.Delete("/:id", idempotency, ic.DeleteInvoice)
	invoices.Get("/:id/pdf", ic.StoredPDF)
	invoices.Get("/:id/preview", ic.StoredPreview)
}
