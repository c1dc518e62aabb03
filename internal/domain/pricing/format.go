package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount with Indonesian digit grouping, e.g. "Rp 2.000.000".
func FormatRupiah(amount int64) string {
	return "Rp " + idPrinter.Sprintf("%d", amount)
}

func FormatRange(r Range) string {
	if r.Min == r.Max {
		return FormatRupiah(r.Min)
	}
	return FormatRupiah(r.Min) + " - " + idPrinter.Sprintf("%d", r.Max)
}
