package entities

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrUserNotFound    = fmt.Errorf("user: %w", ErrRecordNotFound)
	ErrOrderNotFound   = fmt.Errorf("order: %w", ErrRecordNotFound)
	ErrEnquiryNotFound = fmt.Errorf("enquiry: %w", ErrRecordNotFound)
	ErrInvalidStatus   = errors.New("invalid status")
	ErrDataNotEmpty    = errors.New("collections already contain records")
)

// Enums and types
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusDelivered OrderStatus = "Delivered"
)

type EnquiryStatus string

const (
	EnquiryStatusPending EnquiryStatus = "Pending"
	EnquiryStatusDone    EnquiryStatus = "Done"
)

// User represents a registered storefront customer account.
// Field names match the on-disk JSON documents written by the storefront.
type User struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}

// RecordID returns the collection lookup key.
func (u User) RecordID() string { return u.ID }

// OrderItem is one line of an order.
type OrderItem struct {
	Name     string  `json:"name,omitempty"`
	Quantity int     `json:"quantity,omitempty" validate:"gte=0"`
	Price    float64 `json:"price,omitempty" validate:"gte=0"`
}

// LineTotal returns price multiplied by quantity for display purposes.
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order represents a placed storefront order.
type Order struct {
	ID            string      `json:"id" validate:"required"`
	UserID        string      `json:"userId,omitempty"`
	CustomerName  string      `json:"customerName,omitempty"`
	Phone         string      `json:"phone,omitempty"`
	Address       string      `json:"address,omitempty"`
	City          string      `json:"city,omitempty"`
	Pincode       string      `json:"pincode,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	Status        OrderStatus `json:"status,omitempty" validate:"omitempty,oneof=Pending Confirmed Delivered"`
	CreatedAt     string      `json:"createdAt,omitempty"`
	Items         []OrderItem `json:"items,omitempty" validate:"dive"`
	Total         float64     `json:"total,omitempty" validate:"gte=0"`
}

// RecordID returns the collection lookup key.
func (o Order) RecordID() string { return o.ID }

// Normalize resolves absent fields to their defaults. It runs once at load
// time; values already present are never touched.
func (o *Order) Normalize() {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
}

// Contact represents a customer enquiry submitted through the storefront
// contact form.
type Contact struct {
	ID        string        `json:"id" validate:"required"`
	Name      string        `json:"name,omitempty"`
	Email     string        `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string        `json:"phone,omitempty"`
	Message   string        `json:"message,omitempty"`
	Status    EnquiryStatus `json:"status,omitempty" validate:"omitempty,oneof=Pending Done"`
	CreatedAt string        `json:"createdAt,omitempty"`
}

// RecordID returns the collection lookup key.
func (c Contact) RecordID() string { return c.ID }

// Normalize resolves absent fields to their defaults.
func (c *Contact) Normalize() {
	if c.Status == "" {
		c.Status = EnquiryStatusPending
	}
}

// Business logic methods for Order
func (o *Order) IsOpen() bool {
	return o.Status != OrderStatusDelivered
}

func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// Business logic methods for Contact
func (c *Contact) IsPending() bool {
	return c.Status == EnquiryStatusPending
}

// Utility methods
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

func (s EnquiryStatus) IsValid() bool {
	switch s {
	case EnquiryStatusPending, EnquiryStatusDone:
		return true
	default:
		return false
	}
}

// ParseOrderStatus converts operator input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	status := OrderStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
	}
	return status, nil
}

// ParseEnquiryStatus converts operator input into an EnquiryStatus.
func ParseEnquiryStatus(value string) (EnquiryStatus, error) {
	status := EnquiryStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
	}
	return status, nil
}
