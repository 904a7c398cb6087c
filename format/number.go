package format

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// Currency renders an amount with its currency symbol and digit grouping,
// rounded to whole units ("$25,000"). An unknown or empty code falls back
// to USD.
func Currency(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	whole := int64(math.Round(amount))
	return currencyPrinter.Sprintf("%v%d", currency.Symbol(unit), whole)
}

// CompactNumber shortens large counts for card display: below 1000 the
// literal integer, below one million a one-decimal K suffix, otherwise a
// one-decimal M suffix.
func CompactNumber(n int) string {
	if n < 1000 {
		return strconv.Itoa(n)
	}
	if n < 1_000_000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
}

// WinRate derives a whole-number win percentage from a W/D/L tally.
// A zero tally is defined as 0, not an error.
func WinRate(wins, draws, losses int) int {
	total := wins + draws + losses
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(wins) / float64(total)))
}
