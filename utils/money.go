package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const currencySymbol = "Rp"

var printer = message.NewPrinter(language.Indonesian)

// FormatAmount renders a money value the Indonesian way with no decimal
// places: 1500000 -> "1.500.000". Halves round away from zero. Only the
// display is rounded; the value itself is never changed.
func FormatAmount(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "NaN"
	}
	n := decimal.NewFromFloat(x).Round(0)
	sign := ""
	if n.IsNegative() {
		sign = "-"
		n = n.Neg()
	}
	// n is whole, so the formatter has nothing left to round
	return sign + printer.Sprintf("%v", number.Decimal(n.InexactFloat64(), number.MaxFractionDigits(0)))
}

// FormatRupiah is FormatAmount with the currency symbol: "Rp 1.500.000".
func FormatRupiah(x float64) string {
	s := FormatAmount(x)
	if strings.HasPrefix(s, "-") {
		return "-" + currencySymbol + " " + s[1:]
	}
	return currencySymbol + " " + s
}

// FormatPercent prints a tax rate with a decimal comma: 11 -> "11%", 2.5 -> "2,5%".
func FormatPercent(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	return strings.Replace(s, ".", ",", 1) + "%"
}
