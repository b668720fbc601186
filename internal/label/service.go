package label

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/shyamganesh19k-droid/Barcode/internal/bom"
	"github.com/shyamganesh19k-droid/Barcode/internal/metrics"
)

// Service takes a SKU from form input to artifacts on disk: load the table,
// resolve its columns, find the product, compose the label. The table is
// reloaded from disk on every call, never cached.
type Service struct {
	catalog  *bom.Catalog
	renderer *Renderer
	logger   *zap.Logger
}

func NewService(catalog *bom.Catalog, renderer *Renderer, logger *zap.Logger) *Service {
	return &Service{catalog: catalog, renderer: renderer, logger: logger}
}

// Preview looks the SKU up without rendering anything, for the form echo.
func (s *Service) Preview(sku string) (*bom.Product, error) {
	table, cols, err := s.catalog.Load()
	if err != nil {
		return nil, err
	}
	metrics.TableRows.Set(float64(len(table.Rows)))
	return bom.Find(table, cols, sku)
}

// Generate renders the barcode and label PNGs for the SKU and returns the
// label filename. A non-empty overridePrice takes precedence verbatim over
// the table MRP. A failed lookup writes no files.
func (s *Service) Generate(sku, overridePrice string) (string, error) {
	start := time.Now()

	product, err := s.Preview(sku)
	if err != nil {
		metrics.LookupFailures.WithLabelValues(failureReason(err)).Inc()
		return "", err
	}

	price := overridePrice
	if price == "" {
		price = product.MRP
	}

	filename, err := s.renderer.Compose(product, price)
	if err != nil {
		s.logger.Error("label composition failed",
			zap.String("sku", sku), zap.Error(err))
		return "", err
	}

	metrics.ComposeDuration.Observe(time.Since(start).Seconds())
	metrics.LabelsComposed.WithLabelValues("png").Inc()
	return filename, nil
}

// GeneratePDF re-runs the full composition against the current table and
// wraps the result as a PDF, returning the file path.
func (s *Service) GeneratePDF(sku, overridePrice string) (string, error) {
	if _, err := s.Generate(sku, overridePrice); err != nil {
		return "", err
	}
	path, err := s.renderer.WritePDF(sku)
	if err != nil {
		s.logger.Error("pdf wrap failed", zap.String("sku", sku), zap.Error(err))
		return "", err
	}
	metrics.LabelsComposed.WithLabelValues("pdf").Inc()
	return path, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, bom.ErrSKUNotFound):
		return "not_found"
	case errors.Is(err, bom.ErrNoSKUColumn):
		return "no_sku_column"
	default:
		return "load"
	}
}
