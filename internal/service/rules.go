package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	apperrors "learnhub/internal/errors"
	"learnhub/internal/model"
)

var maxPercentage = decimal.NewFromInt(100)

// merged returns the value the column will hold after changes are applied.
func merged[V any](changes map[string]interface{}, column string, current V) V {
	if v, ok := changes[column].(V); ok {
		return v
	}
	return current
}

func checkCourse(current *model.Course, changes map[string]interface{}) error {
	price := merged(changes, "price", current.Price)
	discount := current.DiscountPrice
	if v, ok := changes["discount_price"].(decimal.Decimal); ok {
		discount = &v
	}
	if discount != nil && discount.GreaterThan(price) {
		return apperrors.NewValidationError("discount_price must not exceed price")
	}
	return nil
}

func checkCoupon(current *model.Coupon, changes map[string]interface{}) error {
	kind := merged(changes, "discount_type", current.DiscountType)
	value := merged(changes, "discount_value", current.DiscountValue)
	if kind == model.DiscountPercentage && value.GreaterThan(maxPercentage) {
		return apperrors.NewValidationError("discount_value must be at most 100 for a percentage coupon")
	}
	return nil
}

func checkWindow(start, end time.Time) error {
	if !end.After(start) {
		return apperrors.NewValidationError("end_date must be greater than start_date")
	}
	return nil
}

// QuestionHooks keep the correct option pointing at one of the stored options.
func QuestionHooks() Hooks[model.Question] {
	return Hooks[model.Question]{
		BeforeUpdate: func(_ context.Context, current *model.Question, changes map[string]interface{}) error {
			options := merged(changes, "options", current.Options)
			correct := merged(changes, "correct_option", current.CorrectOption)
			if correct < 0 || correct >= len(options) {
				return apperrors.NewValidationError("correct_option must point at one of the options")
			}
			return nil
		},
	}
}

// ClassHooks keep the class window ordered across partial updates.
func ClassHooks() Hooks[model.Class] {
	return Hooks[model.Class]{
		BeforeUpdate: func(_ context.Context, current *model.Class, changes map[string]interface{}) error {
			return checkWindow(
				merged(changes, "start_date", current.StartDate),
				merged(changes, "end_date", current.EndDate),
			)
		},
	}
}

// SubscriptionHooks keep the subscription window ordered across partial updates.
func SubscriptionHooks() Hooks[model.Subscription] {
	return Hooks[model.Subscription]{
		BeforeUpdate: func(_ context.Context, current *model.Subscription, changes map[string]interface{}) error {
			return checkWindow(
				merged(changes, "start_date", current.StartDate),
				merged(changes, "end_date", current.EndDate),
			)
		},
	}
}
