package utils

// ApplyDiscount subtracts percent of the price, rounding the discount down.
// The percent range is the caller's responsibility; values outside 0-100 are
// not rejected here.
func ApplyDiscount(price, percent int) int {
	return price - price*percent/100
}
