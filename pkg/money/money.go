// Package money formatea montos según el locale y la moneda configurados.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea decimales como "<símbolo> <número>" con los separadores del locale.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// New valida locale (BCP 47) y moneda (ISO 4217).
func New(locale, isoCurrency string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("money: locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(isoCurrency)
	if err != nil {
		return nil, fmt.Errorf("money: moneda %q: %w", isoCurrency, err)
	}
	p := message.NewPrinter(tag)
	return &Formatter{printer: p, symbol: p.Sprint(currency.Symbol(unit))}, nil
}

// Format siempre con dos decimales.
func (f *Formatter) Format(amount decimal.Decimal) string {
	v, _ := amount.Round(2).Float64()
	return f.printer.Sprintf("%s %v", f.symbol, number.Decimal(v, number.Scale(2)))
}

// Number formatea un entero con separador de miles.
func (f *Formatter) Number(n int) string {
	return f.printer.Sprint(number.Decimal(n))
}
