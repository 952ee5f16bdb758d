// Package preview renders the on-screen HTML view of an invoice. It shows
// the same labels and totals as the PDF, without pagination.
package preview

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"faktur-backend/models"
	"faktur-backend/utils"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const templateName = "invoice.gohtml"

var funcs = template.FuncMap{
	"amount":   utils.FormatAmount,
	"rupiah":   utils.FormatRupiah,
	"percent":  utils.FormatPercent,
	"tanggal":  utils.FormatDate,
	"rowTotal": models.RowTotal,
	"join":     strings.Join,
	"dict":     dict,
}

func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict needs key/value pairs")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[k] = pairs[i+1]
	}
	return m, nil
}

// View is the template data: the invoice plus its derived figures.
type View struct {
	Invoice    models.Invoice
	Subtotal   float64
	TaxAmount  float64
	GrandTotal float64
	Completion int
	Missing    []string
}

func NewView(inv models.Invoice) View {
	return View{
		Invoice:    inv,
		Subtotal:   models.Subtotal(inv),
		TaxAmount:  models.TaxAmount(inv),
		GrandTotal: models.GrandTotal(inv),
		Completion: models.CompletionPercent(inv),
		Missing:    models.MissingFields(inv),
	}
}

type Renderer struct {
	tpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tpl, err := template.New(templateName).Funcs(funcs).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse preview template: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

func (r *Renderer) Render(w io.Writer, inv models.Invoice) error {
	return r.tpl.ExecuteTemplate(w, templateName, NewView(inv))
}

// HTML renders into memory so a failed render never leaves a half-written
// response.
func (r *Renderer) HTML(inv models.Invoice) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, inv); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
