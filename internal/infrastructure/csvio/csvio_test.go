package csvio_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/csvio"
)

const header = "id,name,code,quantity,category,supplier,minQuantity,purchasePrice,salePrice,createdAt,updatedAt\n"

func TestExport_SoloEncabezadoSiVacio(t *testing.T) {
	e, err := csvio.NewProductExporter("utf-8")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, e.Export(&buf, nil))
	assert.Equal(t, header, buf.String())
}

func TestExport_Filas(t *testing.T) {
	e, err := csvio.NewProductExporter("")
	require.NoError(t, err)
	ts := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	products := []*entity.Product{{
		ID: "p1", Name: "Café, tostado", Code: "C-1", Quantity: 3, Category: "Bebidas",
		Supplier: "Don \"Juan\"", MinQuantity: 1,
		PurchasePrice: decimal.RequireFromString("4.5"), SalePrice: decimal.NewFromInt(7),
		CreatedAt: ts, UpdatedAt: ts,
	}}

	var buf bytes.Buffer
	require.NoError(t, e.Export(&buf, products))
	assert.Equal(t,
		header+`p1,"Café, tostado",C-1,3,Bebidas,"Don ""Juan""",1,4.5,7,2026-03-10T12:00:00Z,2026-03-10T12:00:00Z`+"\n",
		buf.String())
	assert.Equal(t, "text/csv; charset=utf-8", e.ContentType())
}

func TestExport_Windows1252(t *testing.T) {
	e, err := csvio.NewProductExporter("windows-1252")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, e.Export(&buf, []*entity.Product{{ID: "p1", Name: "Açúcar €"}}))

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(buf.Bytes())
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "Açúcar €")
	assert.NotContains(t, buf.String(), "Açúcar", "los bytes no son UTF-8")
	assert.Equal(t, "text/csv; charset=windows-1252", e.ContentType())
}

// failAfter acepta limit bytes y luego falla.
type failAfter struct {
	limit   int
	written int
}

func (w *failAfter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.limit {
		return 0, errors.New("disco lleno")
	}
	w.written += len(p)
	return len(p), nil
}

func TestExport_ErrorDeEscrituraEnMedioDeLasFilas(t *testing.T) {
	e, err := csvio.NewProductExporter("windows-1252")
	require.NoError(t, err)
	products := make([]*entity.Product, 0, 500)
	for i := 0; i < 500; i++ {
		products = append(products, &entity.Product{ID: fmt.Sprintf("p%03d", i), Name: "Açúcar refinado"})
	}

	err = e.Export(&failAfter{limit: 1024}, products)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disco lleno")
}

func TestNewProductExporter_CharsetDesconocido(t *testing.T) {
	_, err := csvio.NewProductExporter("utf-16")
	assert.Error(t, err)
}

func TestReadProducts_RoundTripYErroresPorFila(t *testing.T) {
	in := "\ufeff" + header +
		"x,Arroz,AR-1,10,Granos,Proveedor,2,3.10,4.5,2026-01-01T00:00:00Z,2026-01-01T00:00:00Z\n" +
		"y,,SIN-NOMBRE,1,,,0,1,1,,\n" +
		"z,Sal,SA-1,-3,,,0,1,1,,\n" +
		"w,Azúcar,AZ-1,,,,,\"2,75\",,,\n"

	products, rowErrs, err := csvio.ReadProducts(strings.NewReader(in), "utf-8")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Arroz", products[0].Name)
	assert.Equal(t, 10, products[0].Quantity)
	assert.Equal(t, 2, products[0].MinQuantity)
	assert.True(t, decimal.RequireFromString("3.10").Equal(products[0].PurchasePrice))
	assert.Equal(t, "Azúcar", products[1].Name)
	assert.True(t, decimal.RequireFromString("2.75").Equal(products[1].PurchasePrice))
	assert.True(t, products[1].SalePrice.IsZero())

	require.Len(t, rowErrs, 2)
	assert.Equal(t, 3, rowErrs[0].Line)
	assert.Equal(t, 4, rowErrs[1].Line)
}

func TestReadProducts_ColumnasEnOtroOrdenYLatin1(t *testing.T) {
	src := "name,code,quantity\nJabón,JB-1,4\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(src)
	require.NoError(t, err)

	products, rowErrs, err := csvio.ReadProducts(strings.NewReader(latin1), "iso-8859-1")
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, products, 1)
	assert.Equal(t, "Jabón", products[0].Name)
	assert.Equal(t, "JB-1", products[0].Code)
	assert.Equal(t, 4, products[0].Quantity)
}

func TestReadProducts_SinColumnaName(t *testing.T) {
	_, _, err := csvio.ReadProducts(strings.NewReader("code,quantity\nA,1\n"), "utf-8")
	assert.Error(t, err)

	products, rowErrs, err := csvio.ReadProducts(strings.NewReader(""), "utf-8")
	require.NoError(t, err)
	assert.Nil(t, products)
	assert.Nil(t, rowErrs)
}
