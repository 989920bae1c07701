package analytics

// RateTable maps a currency code to the reference-currency value of
// one unit. The table is fixed configuration, not a live feed.
type RateTable map[string]float64

// DefaultRates normalizes into INR, the reference currency for every
// aggregate this package produces.
func DefaultRates() RateTable {
	return RateTable{
		"INR": 1,
		"USD": 83,
		"EUR": 90,
		"GBP": 105,
		"JPY": 0.55,
		"AUD": 55,
		"CAD": 61,
	}
}

// ToReference converts amount into the reference currency. A blank or
// unknown code is treated as already being in the reference currency.
func (t RateTable) ToReference(amount float64, currency string) float64 {
	if currency == "" {
		return amount
	}
	rate, ok := t[currency]
	if !ok || rate == 0 {
		return amount
	}
	return amount * rate
}
