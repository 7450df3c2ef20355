package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"learnhub/internal/model"
	"learnhub/internal/repository"
)

const (
	orderIDPrefix  = "ORD-"
	orderIDLength  = 10
	orderIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ProductLookup resolves the product an order points at.
type ProductLookup interface {
	// Resolve returns nil without error when the product no longer exists.
	Resolve(ctx context.Context, productType model.ProductType, id uuid.UUID) (*model.Product, error)
}

type productLookup struct {
	courses repository.Repository[model.Course]
	books   repository.Repository[model.Book]
	ebooks  repository.Repository[model.EBook]
}

// NewProductLookup builds a ProductLookup over the three catalog tables.
func NewProductLookup(
	courses repository.Repository[model.Course],
	books repository.Repository[model.Book],
	ebooks repository.Repository[model.EBook],
) ProductLookup {
	return &productLookup{courses: courses, books: books, ebooks: ebooks}
}

func (l *productLookup) Resolve(ctx context.Context, productType model.ProductType, id uuid.UUID) (*model.Product, error) {
	var (
		title string
		err   error
	)
	switch productType {
	case model.ProductCourse:
		var c *model.Course
		if c, err = l.courses.FindByID(ctx, id); err == nil {
			title = c.Title
		}
	case model.ProductBook:
		var b *model.Book
		if b, err = l.books.FindByID(ctx, id); err == nil {
			title = b.Title
		}
	case model.ProductEBook:
		var e *model.EBook
		if e, err = l.ebooks.FindByID(ctx, id); err == nil {
			title = e.Title
		}
	default:
		return nil, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve %s %s: %w", productType, id, err)
	}
	return &model.Product{ID: id, Type: productType, Title: title}, nil
}

// GenerateOrderID returns "ORD-" followed by 10 random upper-case alphanumerics.
func GenerateOrderID() (string, error) {
	buf := make([]byte, orderIDLength)
	max := big.NewInt(int64(len(orderIDCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate order id: %w", err)
		}
		buf[i] = orderIDCharset[n.Int64()]
	}
	return orderIDPrefix + string(buf), nil
}

// OrderHooks computes totals and identifiers and resolves the ordered product.
func OrderHooks(products ProductLookup, newOrderID func() (string, error)) Hooks[model.Order] {
	if newOrderID == nil {
		newOrderID = GenerateOrderID
	}
	return Hooks[model.Order]{
		BeforeCreate: func(_ context.Context, o *model.Order) error {
			id, err := newOrderID()
			if err != nil {
				return err
			}
			o.OrderID = id
			o.TotalPrice = model.ComputeTotal(o.PricePerQuantity, o.TotalQuantity, o.ShippingCharge)
			if o.PaymentStatus == "" {
				o.PaymentStatus = model.PaymentPending
			}
			if o.OrderStatus == "" {
				o.OrderStatus = model.OrderPlaced
			}
			return nil
		},
		BeforeUpdate: func(_ context.Context, current *model.Order, changes map[string]interface{}) error {
			delete(changes, "order_id")
			delete(changes, "total_price")

			ppq, qty, shipping := current.PricePerQuantity, current.TotalQuantity, current.ShippingCharge
			touched := false
			if v, ok := changes["price_per_quantity"].(decimal.Decimal); ok {
				ppq, touched = v, true
			}
			if v, ok := changes["total_quantity"].(int); ok {
				qty, touched = v, true
			}
			if v, ok := changes["shipping_charge"].(decimal.Decimal); ok {
				shipping, touched = v, true
			}
			if touched {
				changes["total_price"] = model.ComputeTotal(ppq, qty, shipping)
			}
			return nil
		},
		AfterLoad: func(ctx context.Context, o *model.Order) error {
			p, err := products.Resolve(ctx, o.ProductType, o.ProductID)
			if err != nil {
				return err
			}
			o.Product = p
			return nil
		},
	}
}
