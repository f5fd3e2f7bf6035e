package engine

import "github.com/shopspring/decimal"

var (
	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
)

// money converts a stored amount to a decimal rounded to cents.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// monthlyRate turns an annual percentage into a monthly fraction.
func monthlyRate(annualPct float64) decimal.Decimal {
	return decimal.NewFromFloat(annualPct).Div(hundred).Div(monthsPerYear)
}

func f64(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// ratio divides num by den. A zero denominator yields zero for a zero
// numerator and sentinel otherwise.
func ratio(num, den decimal.Decimal, sentinel float64) decimal.Decimal {
	if den.Sign() <= 0 {
		if num.Sign() <= 0 {
			return decimal.Zero
		}
		return decimal.NewFromFloat(sentinel)
	}
	return num.Div(den)
}
