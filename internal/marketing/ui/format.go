package ui

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats whole US dollars with thousands separators, e.g. "$12,345".
func Currency(amount float64) string {
	rounded := math.Round(amount)
	if rounded < 0 {
		return printer.Sprintf("-$%d", int64(-rounded))
	}
	return printer.Sprintf("$%d", int64(rounded))
}

// Number formats an integer with thousands separators.
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Percent formats a percentage with one decimal place.
func Percent(v float64) string {
	return printer.Sprintf("%.1f%%", v)
}

// Change formats a growth badge as an absolute percentage with a direction arrow.
func Change(v float64) string {
	arrow := "▲"
	if v < 0 {
		arrow = "▼"
	}
	return arrow + " " + Percent(math.Abs(v))
}
