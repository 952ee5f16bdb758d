package pdfs

import (
	"errors"
	"fmt"

	"faktur-backend/layout"
	"faktur-backend/models"
	"faktur-backend/utils"

	"go.uber.org/zap"
)

// ErrGenerate wraps every failure to produce a document. No partial
// output is ever returned alongside it.
var ErrGenerate = errors.New("could not generate PDF")

// Output is a finished document ready to be sent as a download.
type Output struct {
	Filename string
	Bytes    []byte
}

type Generator struct {
	engine *layout.Engine
	log    *zap.Logger
}

func NewGenerator(setup layout.Setup, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{engine: layout.NewEngine(setup, NewMeasurer()), log: log}
}

func (g *Generator) Generate(inv models.Invoice) (out Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = Output{}
			err = fmt.Errorf("%w: %v", ErrGenerate, r)
		}
		if err != nil {
			g.log.Error("pdf generation failed", zap.String("number", inv.Number), zap.Error(err))
		}
	}()

	doc, err := g.engine.Layout(inv)
	if err != nil {
		return Output{}, fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	b, err := Render(doc)
	if err != nil {
		return Output{}, fmt.Errorf("%w: %w", ErrGenerate, err)
	}

	g.log.Debug("pdf generated",
		zap.String("number", inv.Number),
		zap.Int("pages", len(doc.Pages)),
		zap.Int("bytes", len(b)))
	return Output{Filename: utils.DocumentFilename(inv.Number), Bytes: b}, nil
}
