package label

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"github.com/shyamganesh19k-droid/Barcode/internal/bom"
)

// Renderer composes label artifacts into the output directory.
type Renderer struct {
	outDir string
	layout Layout
	fonts  *FontSet
	logger *zap.Logger
}

func NewRenderer(outDir string, layout Layout, fonts *FontSet, logger *zap.Logger) *Renderer {
	return &Renderer{outDir: outDir, layout: layout, fonts: fonts, logger: logger}
}

// Artifact paths are keyed by the raw SKU string, so regenerating a SKU
// always overwrites its previous files.

func (r *Renderer) BarcodePath(sku string) string {
	return filepath.Join(r.outDir, sku+"_barcode.png")
}

func (r *Renderer) LabelPath(sku string) string {
	return filepath.Join(r.outDir, sku+"_label.png")
}

func (r *Renderer) PDFPath(sku string) string {
	return filepath.Join(r.outDir, sku+"_label.pdf")
}

// Compose draws the label for the product with the given final price and
// writes the barcode and label PNGs. It returns the label filename.
func (r *Renderer) Compose(p *bom.Product, price string) (string, error) {
	bcImg, err := r.renderBarcode(p.SKU)
	if err != nil {
		return "", err
	}

	l := r.layout
	dc := gg.NewContext(l.CanvasW, l.CanvasH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)

	dc.SetLineWidth(l.BorderStroke)
	dc.DrawRectangle(l.BorderInset, l.BorderInset,
		float64(l.CanvasW)-2*l.BorderInset, float64(l.CanvasH)-2*l.BorderInset)
	dc.Stroke()

	dc.SetFontFace(r.fonts.Title)
	dc.DrawStringAnchored(p.Description, l.TitleX, l.TitleY, 0, 1)

	dc.SetFontFace(r.fonts.Heading)
	dc.DrawStringAnchored("CONTENTS OF KIT:", l.HeadingX, l.HeadingY, 0, 1)

	dc.SetFontFace(r.fonts.Body)
	items := p.Items
	if len(items) > l.MaxItems {
		items = items[:l.MaxItems]
	}
	y := l.ItemsY
	for i, item := range items {
		dc.DrawStringAnchored(fmt.Sprintf("%d. %s", i+1, item), l.ItemsX, y, 0, 1)
		y += l.LineStep
	}

	dc.SetLineWidth(l.InfoStroke)
	dc.DrawRectangle(l.InfoBox.X, l.InfoBox.Y, l.InfoBox.W, l.InfoBox.H)
	dc.Stroke()

	infoLines := []string{
		fmt.Sprintf("ISBN: %s", p.ISBN),
		fmt.Sprintf("Qty: %d Items", p.Quantity),
		fmt.Sprintf("MRP: ₹%s", price),
	}
	startY := l.InfoBox.Y + (l.InfoBox.H-float64(len(infoLines))*l.InfoLineHeight)/2
	for i, line := range infoLines {
		dc.DrawStringAnchored(line, l.InfoTextX, startY+float64(i)*l.LineStep, 0, 1)
	}

	dc.SetLineWidth(l.BarcodeStroke)
	dc.DrawRectangle(l.BarcodeBox.X, l.BarcodeBox.Y, l.BarcodeBox.W, l.BarcodeBox.H)
	dc.Stroke()
	dc.DrawImage(bcImg, l.BarcodeX, l.BarcodeY)
	dc.DrawStringAnchored(p.SKU, l.SKUTextX, l.SKUTextY, 0, 1)

	path := r.LabelPath(p.SKU)
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("write label image: %w", err)
	}
	r.logger.Info("label composed",
		zap.String("sku", p.SKU), zap.Int("items", len(items)))
	return filepath.Base(path), nil
}

// renderBarcode encodes the raw SKU as Code128 without human-readable text,
// scales it to the layout size, writes the barcode PNG, and returns the
// image for pasting onto the canvas.
func (r *Renderer) renderBarcode(sku string) (image.Image, error) {
	bc, err := code128.Encode(sku)
	if err != nil {
		return nil, fmt.Errorf("encode barcode: %w", err)
	}
	scaled, err := barcode.Scale(bc, r.layout.BarcodeW, r.layout.BarcodeH)
	if err != nil {
		return nil, fmt.Errorf("scale barcode: %w", err)
	}

	out, err := os.Create(r.BarcodePath(sku))
	if err != nil {
		return nil, fmt.Errorf("write barcode image: %w", err)
	}
	defer out.Close()
	if err := png.Encode(out, scaled); err != nil {
		return nil, fmt.Errorf("write barcode image: %w", err)
	}
	return scaled, nil
}
