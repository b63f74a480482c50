package money_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tracker/pkg/money"
)

func TestFormat_SeparadoresPorLocale(t *testing.T) {
	br, err := money.New("pt-BR", "BRL")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(br.Format(decimal.RequireFromString("1234.5")), "1.234,50"))

	us, err := money.New("en-US", "USD")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(us.Format(decimal.RequireFromString("1234.5")), "1,234.50"))
	assert.True(t, strings.HasSuffix(us.Format(decimal.RequireFromString("0.005")), "0.01"))
}

func TestNumber(t *testing.T) {
	br, err := money.New("pt-BR", "BRL")
	require.NoError(t, err)
	assert.Equal(t, "12.000", br.Number(12000))
}

func TestNew_Invalido(t *testing.T) {
	_, err := money.New("??", "BRL")
	assert.Error(t, err)

	_, err = money.New("pt-BR", "XX")
	assert.Error(t, err)
}
