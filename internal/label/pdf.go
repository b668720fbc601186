package label

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF places the composed label PNG at full scale on a single page
// sized for the label stock and writes {SKU}_label.pdf, returning the file
// path. The label image must already exist.
func (r *Renderer) WritePDF(sku string) (string, error) {
	l := r.layout
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: l.PDFW, Ht: l.PDFH},
	})
	pdf.AddPage()
	pdf.ImageOptions(r.LabelPath(sku), 0, 0, l.PDFW, l.PDFH, false,
		gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	path := r.PDFPath(sku)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write label pdf: %w", err)
	}
	return path, nil
}
