package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tracker/internal/application/dto"
	"github.com/jhoicas/inventario-tracker/internal/application/usecase"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/memory"
)

func newProductUC(now time.Time) (*usecase.ProductUseCase, *time.Time) {
	clock := now
	return usecase.NewProductUseCase(memory.NewProductStore(), func() time.Time { return clock }), &clock
}

func create(t *testing.T, uc *usecase.ProductUseCase, name, code string, qty, min int) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateProductRequest{
		Name: name, Code: code, Quantity: qty, MinQuantity: min,
		PurchasePrice: decimal.NewFromInt(1), SalePrice: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	return out
}

func TestProductUseCase_CreateAsignaIDYFechas(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	uc, _ := newProductUC(t0)

	a := create(t, uc, "Café", "C-1", 10, 2)
	b := create(t, uc, "Té", "T-1", 1, 2)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, a.CreatedAt.Equal(t0))
	assert.True(t, a.UpdatedAt.Equal(t0))
	assert.False(t, a.LowStock)
	assert.True(t, b.LowStock)
}

func TestProductUseCase_UpdateParcial(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	uc, clock := newProductUC(t0)
	p := create(t, uc, "Café", "C-1", 10, 2)

	*clock = t0.Add(time.Hour)
	name := "Café molido"
	min := 20
	out, err := uc.Update(p.ID, dto.UpdateProductRequest{Name: &name, MinQuantity: &min})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Café molido", out.Name)
	assert.Equal(t, "C-1", out.Code)
	assert.Equal(t, 10, out.Quantity)
	assert.True(t, out.LowStock)
	assert.True(t, out.CreatedAt.Equal(t0))
	assert.True(t, out.UpdatedAt.Equal(t0.Add(time.Hour)))
}

func TestProductUseCase_UpdateInexistente(t *testing.T) {
	uc, _ := newProductUC(time.Now())
	name := "x"
	out, err := uc.Update("nope", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductUseCase_ListFiltros(t *testing.T) {
	uc, _ := newProductUC(time.Now())
	create(t, uc, "Arroz", "AR-01", 50, 5)
	create(t, uc, "Sal", "SA-02", 3, 5)
	create(t, uc, "Frijol", "FR-ar", 5, 5)

	all, err := uc.List(dto.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, "Arroz", all.Items[0].Name)

	byText, err := uc.List(dto.ProductFilter{Search: "  AR "})
	require.NoError(t, err)
	require.Equal(t, 2, byText.Total)
	assert.Equal(t, "Arroz", byText.Items[0].Name)
	assert.Equal(t, "Frijol", byText.Items[1].Name)

	low, err := uc.List(dto.ProductFilter{LowStockOnly: true})
	require.NoError(t, err)
	require.Equal(t, 2, low.Total)
	assert.Equal(t, "Sal", low.Items[0].Name)

	both, err := uc.List(dto.ProductFilter{Search: "ar", LowStockOnly: true})
	require.NoError(t, err)
	require.Equal(t, 1, both.Total)
	assert.Equal(t, "Frijol", both.Items[0].Name)
}

func TestProductUseCase_Delete(t *testing.T) {
	uc, _ := newProductUC(time.Now())
	p := create(t, uc, "Arroz", "AR-01", 50, 5)

	ok, err := uc.Delete(p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Delete(p.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := uc.GetByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
