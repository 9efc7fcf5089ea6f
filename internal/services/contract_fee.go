package services

import (
	"github.com/shopspring/decimal"

	"mtfuji-paragliding/fujipsystem/internal/constants"
)

// Fee is the billing outcome for one day's flight count.
type Fee struct {
	TotalAmount   decimal.Decimal
	MiniGuarantee bool
}

// ComputeFee prices a day of tandem flights. Zero or one flight pays the minimum
// guarantee; from two flights on each flight pays the per-flight rate less a volume
// discount. Both register and edit paths price through here.
func ComputeFee(flights int) Fee {
	if flights <= 1 {
		return Fee{
			TotalAmount:   decimal.NewFromInt(constants.FeeMinimumGuarantee),
			MiniGuarantee: true,
		}
	}

	amount := int64(constants.FeePerFlight * flights)
	if flights <= 3 {
		amount -= constants.FeeDiscountSmall
	} else {
		amount -= constants.FeeDiscountLarge
	}
	return Fee{TotalAmount: decimal.NewFromInt(amount)}
}
