// Package money formats whole-rupee amounts for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const prefix = "Rs. "

// Formatter renders amounts as "Rs. 1,500" using locale digit grouping.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter builds a formatter for a BCP 47 locale. Invalid tags fall back to English.
func NewFormatter(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return Formatter{printer: message.NewPrinter(tag)}
}

func (f Formatter) Format(amount int64) string {
	if f.printer == nil {
		f = NewFormatter("en")
	}
	return prefix + f.printer.Sprintf("%d", amount)
}

var defaultFormatter = NewFormatter("en")

// Format uses the English grouping.
func Format(amount int64) string {
	return defaultFormatter.Format(amount)
}
