// Package money formatea importes en pesos mexicanos para reportes (PDF, XLSX, vistas).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-MX"))

// Format devuelve el importe con separador de miles y dos decimales, p. ej. "$1,234.50".
func Format(d decimal.Decimal) string {
	f := d.Round(2).InexactFloat64()
	if f < 0 {
		return "-$" + printer.Sprintf("%.2f", -f)
	}
	return "$" + printer.Sprintf("%.2f", f)
}

// Percent formatea un porcentaje con un decimal, p. ej. "62.5%".
func Percent(d decimal.Decimal) string {
	return printer.Sprintf("%.1f", d.Round(1).InexactFloat64()) + "%"
}
