package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
)

// Header columnas en el orden de los campos de Product.
var Header = []string{
	"id", "name", "code", "quantity", "category", "supplier",
	"minQuantity", "purchasePrice", "salePrice", "createdAt", "updatedAt",
}

// ProductExporter escribe el catálogo como CSV.
type ProductExporter struct {
	charset string
}

// NewProductExporter valida el charset (utf-8, windows-1252, iso-8859-1).
func NewProductExporter(charset string) (*ProductExporter, error) {
	if _, err := lookup(charset); err != nil {
		return nil, err
	}
	return &ProductExporter{charset: charset}, nil
}

// ContentType para la cabecera HTTP de la descarga.
func (e *ProductExporter) ContentType() string {
	if e.charset == "" {
		return "text/csv; charset=utf-8"
	}
	return "text/csv; charset=" + e.charset
}

// Export escribe encabezado y una fila por producto. Sin productos se escribe solo el encabezado.
func (e *ProductExporter) Export(w io.Writer, products []*entity.Product) error {
	out, err := encodeWriter(w, e.charset)
	if err != nil {
		return err
	}
	defer out.Close()
	cw := csv.NewWriter(out)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, p := range products {
		if err := cw.Write(record(p)); err != nil {
			return fmt.Errorf("csv product %s: %w", p.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	return out.Close()
}

func record(p *entity.Product) []string {
	return []string{
		p.ID,
		p.Name,
		p.Code,
		strconv.Itoa(p.Quantity),
		p.Category,
		p.Supplier,
		strconv.Itoa(p.MinQuantity),
		p.PurchasePrice.String(),
		p.SalePrice.String(),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
