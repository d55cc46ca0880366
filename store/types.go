// Package store declares sample models that generated data is poured into.
package store

import (
	"math/big"
	"time"

	"cloud.google.com/go/civil"

	"fairy-generator/primitive"
)

// Product represents an individual item available for sale.
// Price is kept in cents to avoid floating-point errors.
type Product struct {
	ID          int64      `json:"id"`
	SKU         string     `json:"sku"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	PriceCents  int64      `json:"price_cents"`
	Weight      float32    `json:"weight"`
	Rating      float64    `json:"rating"`
	ReleasedOn  civil.Date `json:"released_on"`
	CreatedAt   time.Time  `json:"created_at"`
	// Inventory is a plain int, it is left alone when bewitched.
	Inventory   int        `json:"inventory_count"`
}

// Customer represents the user placing orders.
type Customer struct {
	ID       int64      `json:"id"`
	Email    string     `json:"email"`
	FullName string     `json:"full_name"`
	Address  *string    `json:"address"`
	Born     civil.Date `json:"born"`
	IsActive bool       `json:"is_active"`
	password string
}

// Password exposes the unexported field for inspection.
func (c Customer) Password() string { return c.password }

// Order represents a transaction made by a customer.
type Order struct {
	ID         int64             `json:"id"`
	CustomerID int64             `json:"customer_id"`
	Status     OrderStatus       `json:"status"`
	TotalCents *big.Int          `json:"total_cents"`
	Items      []OrderItem       `json:"items"`
	OrderedAt  civil.DateTime    `json:"ordered_at"`
	SettledAt  primitive.Instant `json:"settled_at"`
}

// OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
type OrderItem struct {
	ProductID int64      `json:"product_id"`
	Name      string     `json:"name"`
	Quantity  int32      `json:"quantity"`
	UnitPrice *big.Float `json:"unit_price"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
