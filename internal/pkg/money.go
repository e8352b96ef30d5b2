package pkg

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata um valor em reais no padrão pt-BR, ex: R$ 1.234,56.
func FormatBRL(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	if value < 0 {
		return "-" + FormatBRL(-value)
	}
	return "R$ " + brPrinter.Sprintf("%.2f", value)
}
