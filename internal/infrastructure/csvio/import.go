package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-tracker/internal/application/dto"
)

// RowError fila que no pudo leerse; la importación sigue con las demás.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string { return fmt.Sprintf("línea %d: %v", e.Line, e.Err) }

func (e RowError) Unwrap() error { return e.Err }

// ReadProducts lee un CSV con el mismo encabezado que Export. Las columnas se ubican por nombre,
// en cualquier orden; id, createdAt y updatedAt se ignoran (el catálogo asigna los suyos).
// Solo name es obligatoria.
func ReadProducts(r io.Reader, charset string) ([]dto.CreateProductRequest, []RowError, error) {
	in, err := decodeReader(r, charset)
	if err != nil {
		return nil, nil, err
	}
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, nil, fmt.Errorf("csv header: falta la columna name")
	}

	var (
		out     []dto.CreateProductRequest
		rowErrs []RowError
		line    = 1
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return out, rowErrs, fmt.Errorf("csv línea %d: %w", line, err)
		}
		p, err := parseRow(rec, cols)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: err})
			continue
		}
		out = append(out, p)
	}
	return out, rowErrs, nil
}

func parseRow(rec []string, cols map[string]int) (dto.CreateProductRequest, error) {
	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	p := dto.CreateProductRequest{
		Name:     get("name"),
		Code:     get("code"),
		Category: get("category"),
		Supplier: get("supplier"),
	}
	if p.Name == "" {
		return p, fmt.Errorf("name vacío")
	}
	var err error
	if p.Quantity, err = parseCount(get("quantity")); err != nil {
		return p, fmt.Errorf("quantity: %w", err)
	}
	if p.MinQuantity, err = parseCount(get("minQuantity")); err != nil {
		return p, fmt.Errorf("minQuantity: %w", err)
	}
	if p.PurchasePrice, err = parsePrice(get("purchasePrice")); err != nil {
		return p, fmt.Errorf("purchasePrice: %w", err)
	}
	if p.SalePrice, err = parsePrice(get("salePrice")); err != nil {
		return p, fmt.Errorf("salePrice: %w", err)
	}
	return p, nil
}

func parseCount(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negativo: %d", n)
	}
	return n, nil
}

// parsePrice acepta punto o coma decimal ("12.50" o "12,50").
func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negativo: %s", d)
	}
	return d, nil
}
