// Package format renders backend numbers for display.
package format

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const currency = money.USD

// plain groups thousands without a currency sign.
var plain = money.NewFormatter(0, ".", ",", "", "1")

// USD renders v as dollars with thousands separators and two decimals,
// e.g. "$1,234.56" or "-$30.00".
func USD(v float64) string {
	cur := money.GetCurrency(currency)
	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, currency).Display()
}

// USDOrNA renders v like USD, or "N/A" for zero (no quote available).
func USDOrNA(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return USD(v)
}

// USDOrDash renders v like USD, or "-" for zero.
func USDOrDash(v float64) string {
	if v == 0 {
		return "-"
	}
	return USD(v)
}

// SignedPercent renders v with an explicit sign and two decimals, e.g. "+1.25%".
func SignedPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// SignedPercentOrDash renders v like SignedPercent, or "-" for zero.
func SignedPercentOrDash(v float64) string {
	if v == 0 {
		return "-"
	}
	return SignedPercent(v)
}

// Volume renders an integer with thousands separators.
func Volume(v int64) string {
	return plain.Format(v)
}

// Quantity renders a share count with two decimals.
func Quantity(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Lot renders "qty @ $price".
func Lot(quantity, buyPrice float64) string {
	return Quantity(quantity) + " @ " + USD(buyPrice)
}

// PnL renders "$value (+pct%)".
func PnL(value, pct float64) string {
	return fmt.Sprintf("%s (%s)", USD(value), SignedPercent(pct))
}

// Range renders a day range "$low - $high".
func Range(low, high float64) string {
	return USD(low) + " - " + USD(high)
}
