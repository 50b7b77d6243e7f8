package views

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatRelative renders how long ago t was, relative to now, in one of four
// buckets. Counts are rounded to the nearest unit, halves up.
func FormatRelative(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d min ago", roundUnits(diff, time.Minute))
	case diff < 24*time.Hour:
		return plural(roundUnits(diff, time.Hour), "hr") + " ago"
	default:
		return plural(roundUnits(diff, 24*time.Hour), "day") + " ago"
	}
}

func roundUnits(d, unit time.Duration) int {
	return int(math.Floor(float64(d)/float64(unit) + 0.5))
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatCurrency renders amount with the symbol of the ISO 4217 code and two
// fraction digits, e.g. "€45.20" or "-$1,234.50". Unknown codes render as
// "<CODE> 12.34".
func FormatCurrency(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %s%.2f", code, sign, amount)
	}

	symbol := printer.Sprint(currency.Symbol(unit))
	digits := printer.Sprint(number.Decimal(amount, number.Scale(2)))
	return sign + symbol + digits
}
