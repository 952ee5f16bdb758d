package controllers

import (
	"fmt"
	"mime"
	"strconv"
	"time"

	"faktur-backend/middlewares"
	"faktur-backend/models"
	"faktur-backend/pdfs"
	"faktur-backend/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DocumentGenerator turns an invoice into a downloadable document.
type DocumentGenerator interface {
	Generate(inv models.Invoice) (pdfs.Output, error)
}

type PreviewRenderer interface {
	HTML(inv models.Invoice) ([]byte, error)
}

// InvoiceController serves the invoice form operations, rendering and the
// saved-invoice collection.
type InvoiceController struct {
	Store     storage.Repository
	Generator DocumentGenerator
	Preview   PreviewRenderer
	Log       *zap.Logger
	Now       func() time.Time
}

type EditRequest struct {
	Invoice models.Invoice `json:"invoice"`
	Field   string         `json:"field" validate:"required"`
	Value   string         `json:"value"`
}

type invoiceState struct {
	Invoice models.Invoice `json:"invoice"`
	Summary models.Summary `json:"summary"`
}

func stateOf(inv models.Invoice) invoiceState {
	return invoiceState{Invoice: inv, Summary: models.Summarize(inv)}
}

func (ic *InvoiceController) now() time.Time {
	if ic.Now != nil {
		return ic.Now()
	}
	return time.Now()
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (ic *InvoiceController) NewInvoice(c *fiber.Ctx) error {
	return c.JSON(stateOf(models.NewInvoice(ic.now())))
}

func (ic *InvoiceController) SampleInvoice(c *fiber.Ctx) error {
	return c.JSON(stateOf(models.SampleInvoice(ic.now())))
}

func (ic *InvoiceController) Summary(c *fiber.Ctx) error {
	var inv models.Invoice
	if err := middlewares.BindAndValidate(c, &inv); err != nil {
		return err
	}
	return c.JSON(models.Summarize(inv))
}

func (ic *InvoiceController) EditField(c *fiber.Ctx) error {
	var req EditRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}
	inv, err := req.Invoice.WithField(req.Field, req.Value)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(stateOf(inv))
}

func (ic *InvoiceController) AddItem(c *fiber.Ctx) error {
	var inv models.Invoice
	if err := middlewares.BindAndValidate(c, &inv); err != nil {
		return err
	}
	return c.JSON(stateOf(inv.AddItem()))
}

func (ic *InvoiceController) RemoveItem(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid item index")
	}
	var inv models.Invoice
	if err := middlewares.BindAndValidate(c, &inv); err != nil {
		return err
	}
	out, err := inv.RemoveItem(index)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(stateOf(out))
}

func (ic *InvoiceController) PreviewInvoice(c *fiber.Ctx) error {
	var inv models.Invoice
	if err := middlewares.BindAndValidate(c, &inv); err != nil {
		return err
	}
	return ic.sendPreview(c, inv)
}

func (ic *InvoiceController) DownloadPDF(c *fiber.Ctx) error {
	var inv models.Invoice
	if err := middlewares.BindAndValidate(c, &inv); err != nil {
		return err
	}
	return ic.sendPDF(c, inv)
}

func (ic *InvoiceController) ListInvoices(c *fiber.Ctx) error {
	return c.JSON(ic.Store.List(c.UserContext()))
}

// SaveInvoice upserts by invoice number. Storage failures are reported as
// {success:false}, never as a crash.
func (ic *InvoiceController) SaveInvoice(c *fiber.Ctx) error {
	var inv models.Invoice
	if err := middlewares.BindAndValidate(c, &inv); err != nil {
		return err
	}
	if !ic.Store.Save(c.UserContext(), inv) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "could not save invoice",
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (ic *InvoiceController) GetInvoice(c *fiber.Ctx) error {
	stored, ok := ic.Store.Get(c.UserContext(), c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}
	return c.JSON(stored)
}

func (ic *InvoiceController) DeleteInvoice(c *fiber.Ctx) error {
	if !ic.Store.Delete(c.UserContext(), c.Params("id")) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "could not delete invoice",
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (ic *InvoiceController) StoredPDF(c *fiber.Ctx) error {
	stored, ok := ic.Store.Get(c.UserContext(), c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}
	return ic.sendPDF(c, stored.Invoice)
}

func (ic *InvoiceController) StoredPreview(c *fiber.Ctx) error {
	stored, ok := ic.Store.Get(c.UserContext(), c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "invoice not found")
	}
	return ic.sendPreview(c, stored.Invoice)
}

func (ic *InvoiceController) sendPDF(c *fiber.Ctx, inv models.Invoice) error {
	out, err := ic.Generator.Generate(inv)
	if err != nil {
		ic.Log.Warn("pdf export failed", zap.String("number", inv.Number), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "could not generate PDF",
		})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, attachment(out.Filename))
	return c.Send(out.Bytes)
}

// attachment builds a Content-Disposition value; non-ASCII names are
// encoded as filename*.
func attachment(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}

func (ic *InvoiceController) sendPreview(c *fiber.Ctx, inv models.Invoice) error {
	html, err := ic.Preview.HTML(inv)
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(html)
}
