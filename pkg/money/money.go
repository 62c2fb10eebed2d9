// Package money formatea importes para documentos legibles (es-AR: "$ 1.234,50").
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-AR"))

// Format devuelve d con separador de miles "." y dos decimales con ",".
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("$ %.2f", f)
}

// Integer formatea cantidades enteras con separador de miles.
func Integer(n int) string {
	return printer.Sprintf("%d", n)
}
