package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ReportCouponValue flags a percentage discount above 100.
// Call it from a struct rule with the decoded coupon fields.
func ReportCouponValue(sl validator.StructLevel, discountType string, value *decimal.Decimal, field string) {
	if discountType != "percentage" || value == nil {
		return
	}
	if value.GreaterThan(decimal.NewFromInt(100)) {
		sl.ReportError(*value, field, field, couponValueTag, "")
	}
}

// ReportDecimalLTE flags value when it exceeds limit, e.g. a discount price above the price.
func ReportDecimalLTE(sl validator.StructLevel, value, limit *decimal.Decimal, field, limitField string) {
	if value == nil || limit == nil {
		return
	}
	if value.GreaterThan(*limit) {
		sl.ReportError(*value, field, field, lteFieldTag, limitField)
	}
}

// ReportIndexInRange flags an index that does not address one of n entries.
func ReportIndexInRange(sl validator.StructLevel, index *int, n int, field string) {
	if index == nil {
		return
	}
	if *index < 0 || *index >= n {
		sl.ReportError(*index, field, field, indexRangeTag, "")
	}
}
