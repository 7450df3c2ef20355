package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"learnhub/internal/model"
)

// CreateAddressRequest represents a create address request.
type CreateAddressRequest struct {
	UserID     uuid.UUID `json:"user_id" form:"user_id" validate:"required"`
	FullName   string    `json:"full_name" form:"full_name" validate:"required,notblank,max=255"`
	Phone      string    `json:"phone" form:"phone" validate:"required,notblank,max=30"`
	Line1      string    `json:"line1" form:"line1" validate:"required,notblank,max=255"`
	Line2      string    `json:"line2" form:"line2" validate:"max=255"`
	City       string    `json:"city" form:"city" validate:"required,notblank,max=100"`
	State      string    `json:"state" form:"state" validate:"required,notblank,max=100"`
	PostalCode string    `json:"postal_code" form:"postal_code" validate:"required,notblank,max=20"`
	Country    string    `json:"country" form:"country" validate:"required,notblank,max=100"`
}

func (r *CreateAddressRequest) Model(map[string]string) *model.Address {
	return &model.Address{
		UserID:     r.UserID,
		FullName:   r.FullName,
		Phone:      r.Phone,
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// UpdateAddressRequest represents an update address request.
type UpdateAddressRequest struct {
	UserID     *uuid.UUID `json:"user_id" form:"user_id"`
	FullName   *string    `json:"full_name" form:"full_name" validate:"omitempty,notblank,max=255"`
	Phone      *string    `json:"phone" form:"phone" validate:"omitempty,notblank,max=30"`
	Line1      *string    `json:"line1" form:"line1" validate:"omitempty,notblank,max=255"`
	Line2      *string    `json:"line2" form:"line2" validate:"omitempty,max=255"`
	City       *string    `json:"city" form:"city" validate:"omitempty,notblank,max=100"`
	State      *string    `json:"state" form:"state" validate:"omitempty,notblank,max=100"`
	PostalCode *string    `json:"postal_code" form:"postal_code" validate:"omitempty,notblank,max=20"`
	Country    *string    `json:"country" form:"country" validate:"omitempty,notblank,max=100"`
}

func (r *UpdateAddressRequest) Changes(map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "user_id", r.UserID)
	set(changes, "full_name", r.FullName)
	set(changes, "phone", r.Phone)
	set(changes, "line1", r.Line1)
	set(changes, "line2", r.Line2)
	set(changes, "city", r.City)
	set(changes, "state", r.State)
	set(changes, "postal_code", r.PostalCode)
	set(changes, "country", r.Country)
	return changes
}

// CreateOrderRequest represents a create order request.
// order_id and total_price are computed server side.
type CreateOrderRequest struct {
	UserID           uuid.UUID           `json:"user_id" form:"user_id" validate:"required"`
	ProductType      model.ProductType   `json:"product_type" form:"product_type" validate:"required,oneof=course book ebook"`
	ProductID        uuid.UUID           `json:"product_id" form:"product_id" validate:"required"`
	AddressID        *uuid.UUID          `json:"address_id" form:"address_id"`
	PricePerQuantity *decimal.Decimal    `json:"price_per_quantity" form:"price_per_quantity" validate:"required,gt=0"`
	TotalQuantity    int                 `json:"total_quantity" form:"total_quantity" validate:"required,gt=0"`
	ShippingCharge   *decimal.Decimal    `json:"shipping_charge" form:"shipping_charge" validate:"omitempty,gte=0"`
	PaymentStatus    model.PaymentStatus `json:"payment_status" form:"payment_status" validate:"omitempty,oneof=pending paid failed refunded"`
	OrderStatus      model.OrderStatus   `json:"order_status" form:"order_status" validate:"omitempty,oneof=placed shipped delivered cancelled"`
}

func (r *CreateOrderRequest) Model(map[string]string) *model.Order {
	return &model.Order{
		UserID:           r.UserID,
		ProductType:      r.ProductType,
		ProductID:        r.ProductID,
		AddressID:        r.AddressID,
		PricePerQuantity: deref(r.PricePerQuantity),
		TotalQuantity:    r.TotalQuantity,
		ShippingCharge:   deref(r.ShippingCharge),
		PaymentStatus:    r.PaymentStatus,
		OrderStatus:      r.OrderStatus,
	}
}

// UpdateOrderRequest represents an update order request.
type UpdateOrderRequest struct {
	UserID           *uuid.UUID           `json:"user_id" form:"user_id"`
	ProductType      *model.ProductType   `json:"product_type" form:"product_type" validate:"omitempty,oneof=course book ebook"`
	ProductID        *uuid.UUID           `json:"product_id" form:"product_id"`
	AddressID        *uuid.UUID           `json:"address_id" form:"address_id"`
	PricePerQuantity *decimal.Decimal     `json:"price_per_quantity" form:"price_per_quantity" validate:"omitempty,gt=0"`
	TotalQuantity    *int                 `json:"total_quantity" form:"total_quantity" validate:"omitempty,gt=0"`
	ShippingCharge   *decimal.Decimal     `json:"shipping_charge" form:"shipping_charge" validate:"omitempty,gte=0"`
	PaymentStatus    *model.PaymentStatus `json:"payment_status" form:"payment_status" validate:"omitempty,oneof=pending paid failed refunded"`
	OrderStatus      *model.OrderStatus   `json:"order_status" form:"order_status" validate:"omitempty,oneof=placed shipped delivered cancelled"`
}

func (r *UpdateOrderRequest) Changes(map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "user_id", r.UserID)
	set(changes, "product_type", r.ProductType)
	set(changes, "product_id", r.ProductID)
	set(changes, "address_id", r.AddressID)
	set(changes, "price_per_quantity", r.PricePerQuantity)
	set(changes, "total_quantity", r.TotalQuantity)
	set(changes, "shipping_charge", r.ShippingCharge)
	set(changes, "payment_status", r.PaymentStatus)
	set(changes, "order_status", r.OrderStatus)
	return changes
}

// CreateSubscriptionRequest represents a create subscription request.
type CreateSubscriptionRequest struct {
	UserID    uuid.UUID                `json:"user_id" form:"user_id" validate:"required"`
	CourseID  uuid.UUID                `json:"course_id" form:"course_id" validate:"required"`
	StartDate time.Time                `json:"start_date" form:"start_date" validate:"required"`
	EndDate   time.Time                `json:"end_date" form:"end_date" validate:"required,gtfield=StartDate"`
	Status    model.SubscriptionStatus `json:"status" form:"status" validate:"omitempty,oneof=active expired cancelled"`
}

func (r *CreateSubscriptionRequest) Model(map[string]string) *model.Subscription {
	status := r.Status
	if status == "" {
		status = model.SubscriptionActive
	}
	return &model.Subscription{
		UserID:    r.UserID,
		CourseID:  r.CourseID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Status:    status,
	}
}

// UpdateSubscriptionRequest represents an update subscription request.
type UpdateSubscriptionRequest struct {
	UserID    *uuid.UUID                `json:"user_id" form:"user_id"`
	CourseID  *uuid.UUID                `json:"course_id" form:"course_id"`
	StartDate *time.Time                `json:"start_date" form:"start_date"`
	EndDate   *time.Time                `json:"end_date" form:"end_date"`
	Status    *model.SubscriptionStatus `json:"status" form:"status" validate:"omitempty,oneof=active expired cancelled"`
}

func (r *UpdateSubscriptionRequest) Changes(map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "user_id", r.UserID)
	set(changes, "course_id", r.CourseID)
	set(changes, "start_date", r.StartDate)
	set(changes, "end_date", r.EndDate)
	set(changes, "status", r.Status)
	return changes
}

// CreateCouponRequest represents a create coupon request.
type CreateCouponRequest struct {
	Code          string             `json:"code" form:"code" validate:"required,alphanum,min=3,max=30"`
	DiscountType  model.DiscountType `json:"discount_type" form:"discount_type" validate:"required,oneof=percentage flat"`
	DiscountValue *decimal.Decimal   `json:"discount_value" form:"discount_value" validate:"required,gt=0"`
	ExpiresAt     *time.Time         `json:"expires_at" form:"expires_at"`
	UsageLimit    int                `json:"usage_limit" form:"usage_limit" validate:"gte=0"`
	Status        model.Status       `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateCouponRequest) Model(map[string]string) *model.Coupon {
	return &model.Coupon{
		Code:          r.Code,
		DiscountType:  r.DiscountType,
		DiscountValue: deref(r.DiscountValue),
		ExpiresAt:     r.ExpiresAt,
		UsageLimit:    r.UsageLimit,
		Status:        orActive(r.Status),
	}
}

// UpdateCouponRequest represents an update coupon request.
type UpdateCouponRequest struct {
	Code          *string             `json:"code" form:"code" validate:"omitempty,alphanum,min=3,max=30"`
	DiscountType  *model.DiscountType `json:"discount_type" form:"discount_type" validate:"omitempty,oneof=percentage flat"`
	DiscountValue *decimal.Decimal    `json:"discount_value" form:"discount_value" validate:"omitempty,gt=0"`
	ExpiresAt     *time.Time          `json:"expires_at" form:"expires_at"`
	UsageLimit    *int                `json:"usage_limit" form:"usage_limit" validate:"omitempty,gte=0"`
	Status        *model.Status       `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateCouponRequest) Changes(map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "code", r.Code)
	set(changes, "discount_type", r.DiscountType)
	set(changes, "discount_value", r.DiscountValue)
	set(changes, "expires_at", r.ExpiresAt)
	set(changes, "usage_limit", r.UsageLimit)
	set(changes, "status", r.Status)
	return changes
}
