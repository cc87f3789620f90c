package pdf_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonpro/salonpro-api/internal/infrastructure/pdf"
	"github.com/salonpro/salonpro-api/internal/render"
)

func sampleDirectives() []render.Directive {
	return []render.Directive{
		{Kind: render.KindText, Text: "SalonPro", X: 40, Y: 10, Font: "Courier", Size: 11, Bold: true, Align: render.AlignCenter},
		{Kind: render.KindLine, X: 5, Y: 14, X2: 75, Y2: 14},
		{Kind: render.KindText, Text: "Rs.525.00", X: 75, Y: 20, Font: "Courier", Size: 8, Align: render.AlignRight},
	}
}

func TestPaint_ProducesPDFBytes(t *testing.T) {
	painter, err := pdf.NewFpdfPainter("")
	require.NoError(t, err)

	out, err := painter.Paint(context.Background(), render.ProfileCompact, sampleDirectives())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "output must start with the PDF magic")
}

func TestPaint_RotatedWatermarkPair(t *testing.T) {
	painter, err := pdf.NewFpdfPainter("")
	require.NoError(t, err)

	directives := []render.Directive{
		{Kind: render.KindRotate, Angle: -45, X: 105, Y: 235},
		{Kind: render.KindText, Text: "SalonPro", X: 105, Y: 235, Font: "Helvetica", Size: 52, Bold: true, Align: render.AlignCenter, Alpha: 0.08, Color: render.Color{R: 180, G: 180, B: 180}},
		{Kind: render.KindRotateReset},
		{Kind: render.KindText, Text: "after", X: 20, Y: 280, Font: "Helvetica", Size: 10},
	}
	out, err := painter.Paint(context.Background(), render.ProfileFull, directives)
	require.NoError(t, err, "an unbalanced transform would surface as a doc error")
	assert.NotEmpty(t, out)
}

func TestArchive_WritesNamedFile(t *testing.T) {
	dir := t.TempDir()
	painter, err := pdf.NewFpdfPainter(dir)
	require.NoError(t, err)

	out, err := painter.Paint(context.Background(), render.ProfileCompact, sampleDirectives())
	require.NoError(t, err)

	path, err := painter.Archive("INV-1234567", out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "INV-1234567.pdf"), path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, written)
}

func TestArchive_DisabledWhenNoDirectory(t *testing.T) {
	painter, err := pdf.NewFpdfPainter("")
	require.NoError(t, err)

	path, err := painter.Archive("INV-1234567", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Empty(t, path, "archiving is a no-op without a configured directory")
}
