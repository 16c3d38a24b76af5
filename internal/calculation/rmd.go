package calculation

import (
	"github.com/shopspring/decimal"
)

// uniformLifetimeTable maps age to the IRS Uniform Lifetime Table divisor
// used for required minimum distributions. Ages outside 73-100 have no
// divisor: no RMD is due.
var uniformLifetimeTable = map[int]decimal.Decimal{
	73:  decimal.NewFromFloat(26.5),
	74:  decimal.NewFromFloat(25.5),
	75:  decimal.NewFromFloat(24.6),
	76:  decimal.NewFromFloat(23.7),
	77:  decimal.NewFromFloat(22.9),
	78:  decimal.NewFromFloat(22.0),
	79:  decimal.NewFromFloat(21.1),
	80:  decimal.NewFromFloat(20.2),
	81:  decimal.NewFromFloat(19.4),
	82:  decimal.NewFromFloat(18.5),
	83:  decimal.NewFromFloat(17.7),
	84:  decimal.NewFromFloat(16.8),
	85:  decimal.NewFromFloat(16.0),
	86:  decimal.NewFromFloat(15.2),
	87:  decimal.NewFromFloat(14.4),
	88:  decimal.NewFromFloat(13.7),
	89:  decimal.NewFromFloat(12.9),
	90:  decimal.NewFromFloat(12.2),
	91:  decimal.NewFromFloat(11.5),
	92:  decimal.NewFromFloat(10.8),
	93:  decimal.NewFromFloat(10.1),
	94:  decimal.NewFromFloat(9.5),
	95:  decimal.NewFromFloat(8.9),
	96:  decimal.NewFromFloat(8.4),
	97:  decimal.NewFromFloat(7.8),
	98:  decimal.NewFromFloat(7.3),
	99:  decimal.NewFromFloat(6.8),
	100: decimal.NewFromFloat(6.4),
}

// CalculateRMD returns the required minimum distribution for a tax-deferred
// balance at the given age: balance divided by the age's divisor. Ages with
// no table entry return zero, matching the regulatory semantics of no
// mandatory distribution outside that range.
func CalculateRMD(balance decimal.Decimal, age int) decimal.Decimal {
	divisor, ok := uniformLifetimeTable[age]
	if !ok {
		return decimal.Zero
	}
	return balance.Div(divisor)
}
