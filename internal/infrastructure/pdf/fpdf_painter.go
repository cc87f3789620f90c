// Package pdf holds the document-painting backends: the receipt painter that
// executes the renderer's directive list, and the maroto-based sales report.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phpdave11/gofpdf"

	"github.com/salonpro/salonpro-api/internal/application/billing"
	"github.com/salonpro/salonpro-api/internal/render"
)

var _ billing.ReceiptPainter = (*FpdfPainter)(nil)

// FpdfPainter executes a directive list against gofpdf and returns PDF
// bytes. Directives use absolute mm coordinates; the painter adds no layout
// of its own.
type FpdfPainter struct {
	outputDir string
}

// NewFpdfPainter builds the painter and creates the archive directory once
// (create-if-absent; idempotent).
func NewFpdfPainter(outputDir string) (*FpdfPainter, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return nil, fmt.Errorf("pdf: create output dir: %w", err)
		}
	}
	return &FpdfPainter{outputDir: outputDir}, nil
}

// Paint executes the directives on a fresh page sized for the profile.
func (p *FpdfPainter) Paint(_ context.Context, profile render.Profile, directives []render.Directive) ([]byte, error) {
	w, h := render.PageSize(profile)
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	for _, d := range directives {
		switch d.Kind {
		case render.KindText:
			p.drawText(doc, d)
		case render.KindLine:
			doc.SetDrawColor(d.Color.R, d.Color.G, d.Color.B)
			doc.SetLineWidth(0.3)
			doc.Line(d.X, d.Y, d.X2, d.Y2)
		case render.KindRotate:
			doc.TransformBegin()
			doc.TransformRotate(d.Angle, d.X, d.Y)
		case render.KindRotateReset:
			doc.TransformEnd()
		}
	}

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("pdf: draw: %w", err)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *FpdfPainter) drawText(doc *gofpdf.Fpdf, d render.Directive) {
	style := ""
	if d.Bold {
		style += "B"
	}
	if d.Underline {
		style += "U"
	}
	doc.SetFont(d.Font, style, d.Size)
	doc.SetTextColor(d.Color.R, d.Color.G, d.Color.B)
	if d.Alpha > 0 && d.Alpha < 1 {
		doc.SetAlpha(d.Alpha, "Normal")
		defer doc.SetAlpha(1, "Normal")
	}

	x := d.X
	switch d.Align {
	case render.AlignCenter:
		x -= doc.GetStringWidth(d.Text) / 2
	case render.AlignRight:
		x -= doc.GetStringWidth(d.Text)
	}
	doc.Text(x, d.Y, d.Text)
}

// Archive writes "<invoiceNumber>.pdf" into the output directory and returns
// the path. A configured-off directory (empty) is a no-op.
func (p *FpdfPainter) Archive(invoiceNumber string, pdfBytes []byte) (string, error) {
	if p.outputDir == "" {
		return "", nil
	}
	path := filepath.Join(p.outputDir, invoiceNumber+".pdf")
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return "", fmt.Errorf("pdf: archive receipt: %w", err)
	}
	return path, nil
}
