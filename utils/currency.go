package utils

import "fmt"

// FormatPrice renders a price the way the menu board does: Rupiah with three
// fractional digits, e.g. 12.0 -> "Rp.12.000".
func FormatPrice(amount float64) string {
	return fmt.Sprintf("Rp.%.3f", amount)
}
