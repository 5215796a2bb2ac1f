package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/ShubhanginiSharma627/e-sign-app/ports"
)

// Layout constants, shared with the field placements submitted to the
// signature provider.
const (
	titleX = 100
	titleY = 50

	radioRow1Y    = 100
	radioRow2Y    = 150
	radioOption1X = 240
	radioOption2X = 360
	radioRadius   = 10
	labelGap      = 20

	signatureLabelX = 100
	signatureY      = 190
	signatureBoxX   = 170
	signatureWidth  = 100
	signatureHeight = 30
)

// Renderer draws the fixed e-sign document: a title, two radio-button
// rows and a bordered signature capture area. Rendering is deterministic
// and takes no input.
type Renderer struct{}

// NewRenderer creates a document renderer.
func NewRenderer() ports.DocumentRenderer {
	return &Renderer{}
}

// Render produces the PDF bytes and validates them before returning.
func (r *Renderer) Render() ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "", 20)
	doc.Text(titleX, titleY+20, "Sample E-sign PDF")

	doc.SetFont("Helvetica", "", 16)
	drawRadioRow(doc, "Radio Button 1", radioRow1Y)
	drawRadioRow(doc, "Radio Button 2", radioRow2Y)

	doc.Text(signatureLabelX, signatureY+16, "E-Sign")
	doc.Rect(signatureBoxX, signatureY, signatureWidth, signatureHeight, "D")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	if err := validate(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("rendered document failed validation: %w", err)
	}

	return buf.Bytes(), nil
}

func drawRadioRow(doc *fpdf.Fpdf, title string, rowY float64) {
	doc.Text(titleX, rowY+16, title)
	for i, optionX := range []float64{radioOption1X, radioOption2X} {
		doc.Circle(optionX, rowY+8, radioRadius, "D")
		doc.Text(optionX+labelGap, rowY+16, fmt.Sprintf("Option %d", i+1))
	}
}

// validate parses the rendered bytes back and checks they form a
// well-formed single-page document.
func validate(document []byte) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(document), conf)
	if err != nil {
		return err
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return err
	}
	if ctx.PageCount != 1 {
		return fmt.Errorf("expected a single page, got %d", ctx.PageCount)
	}

	return nil
}
