package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Address is a shipping address owned by a user.
type Address struct {
	Base
	UserID     uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	FullName   string    `json:"full_name" gorm:"size:255;not null"`
	Phone      string    `json:"phone" gorm:"size:30;not null"`
	Line1      string    `json:"line1" gorm:"size:255;not null"`
	Line2      string    `json:"line2" gorm:"size:255"`
	City       string    `json:"city" gorm:"size:100;not null"`
	State      string    `json:"state" gorm:"size:100;not null"`
	PostalCode string    `json:"postal_code" gorm:"size:20;not null"`
	Country    string    `json:"country" gorm:"size:100;not null"`

	User *UserRef `json:"user" gorm:"foreignKey:UserID;-:migration"`
}

// ProductType identifies which catalog table an order line points at.
type ProductType string

const (
	ProductCourse ProductType = "course"
	ProductBook   ProductType = "book"
	ProductEBook  ProductType = "ebook"
)

// PaymentStatus represents the status of an order payment.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is a purchase of a single product in some quantity.
type Order struct {
	Base
	OrderID          string          `json:"order_id" gorm:"uniqueIndex:uniq_order_id;size:20;not null"`
	UserID           uuid.UUID       `json:"user_id" gorm:"type:char(36);not null;index"`
	ProductType      ProductType     `json:"product_type" gorm:"type:varchar(20);not null"`
	ProductID        uuid.UUID       `json:"product_id" gorm:"type:char(36);not null;index"`
	AddressID        *uuid.UUID      `json:"address_id" gorm:"type:char(36);index"`
	PricePerQuantity decimal.Decimal `json:"price_per_quantity" gorm:"type:decimal(12,2);not null"`
	TotalQuantity    int             `json:"total_quantity" gorm:"not null"`
	ShippingCharge   decimal.Decimal `json:"shipping_charge" gorm:"type:decimal(12,2);not null;default:0"`
	TotalPrice       decimal.Decimal `json:"total_price" gorm:"type:decimal(12,2);not null"`
	PaymentStatus    PaymentStatus   `json:"payment_status" gorm:"type:varchar(20);not null;default:'pending';index"`
	OrderStatus      OrderStatus     `json:"order_status" gorm:"type:varchar(20);not null;default:'placed';index"`

	User    *UserRef `json:"user" gorm:"foreignKey:UserID;-:migration"`
	Address *Address `json:"address" gorm:"foreignKey:AddressID;-:migration"`
	Product *Product `json:"product" gorm:"-"`
}

// Product is the resolved view of the item an order points at.
type Product struct {
	ID    uuid.UUID   `json:"id"`
	Type  ProductType `json:"type"`
	Title string      `json:"title"`
}

// ComputeTotal returns price_per_quantity * total_quantity + shipping_charge.
func ComputeTotal(pricePerQuantity decimal.Decimal, quantity int, shipping decimal.Decimal) decimal.Decimal {
	return pricePerQuantity.Mul(decimal.NewFromInt(int64(quantity))).Add(shipping)
}

// SubscriptionStatus represents the lifecycle of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription grants a user access to a course for a period.
type Subscription struct {
	Base
	UserID    uuid.UUID          `json:"user_id" gorm:"type:char(36);not null;index"`
	CourseID  uuid.UUID          `json:"course_id" gorm:"type:char(36);not null;index"`
	StartDate time.Time          `json:"start_date" gorm:"not null"`
	EndDate   time.Time          `json:"end_date" gorm:"not null;index"`
	Status    SubscriptionStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	User   *UserRef   `json:"user" gorm:"foreignKey:UserID;-:migration"`
	Course *CourseRef `json:"course" gorm:"foreignKey:CourseID;-:migration"`
}

// DiscountType tells how a coupon value is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

// Coupon is a discount code.
type Coupon struct {
	Base
	Code          string          `json:"code" gorm:"uniqueIndex:uniq_code;size:30;not null"`
	DiscountType  DiscountType    `json:"discount_type" gorm:"type:varchar(20);not null"`
	DiscountValue decimal.Decimal `json:"discount_value" gorm:"type:decimal(12,2);not null"`
	ExpiresAt     *time.Time      `json:"expires_at" gorm:"index"`
	UsageLimit    int             `json:"usage_limit" gorm:"not null;default:0"`
	Status        Status          `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
}
