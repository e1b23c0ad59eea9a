package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label is the customer-facing status text.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Menunggu Pembayaran"
	case OrderStatusPaid:
		return "Pembayaran Dikonfirmasi"
	case OrderStatusProcessing:
		return "Sedang Diproses"
	case OrderStatusShipped:
		return "Dalam Pengiriman"
	case OrderStatusDelivered:
		return "Pesanan Diterima"
	case OrderStatusCancelled:
		return "Dibatalkan"
	default:
		return string(s)
	}
}

// OrderItem is a copy of the cart line taken when the order is created
type OrderItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

type ShippingAddress struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}

// Complete reports whether every address field is filled in.
func (a ShippingAddress) Complete() bool {
	return a.Name != "" && a.Phone != "" && a.Address != "" &&
		a.City != "" && a.Province != "" && a.PostalCode != ""
}

type BankAccount struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

// Order is a priced snapshot of a checkout. OrderID is the customer-facing reference,
// ID is internal.
type Order struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"order_id"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	Subtotal        int64           `json:"subtotal"`
	ShippingCost    int64           `json:"shipping_cost"`
	AdminFee        int64           `json:"admin_fee"`
	CodFee          int64           `json:"cod_fee"`
	Total           int64           `json:"total"`
	PaymentMethod   string          `json:"payment_method"`
	ShippingMethod  string          `json:"shipping_method"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	PaymentProof    string          `json:"payment_proof,omitempty"`
	TrackingNumber  string          `json:"tracking_number,omitempty"`
	BankAccount     *BankAccount    `json:"bank_account,omitempty"`
}

// Clone returns a deep copy so callers never share the item slice or bank account.
func (o Order) Clone() Order {
	c := o
	if o.Items != nil {
		c.Items = make([]OrderItem, len(o.Items))
		copy(c.Items, o.Items)
	}
	if o.BankAccount != nil {
		b := *o.BankAccount
		c.BankAccount = &b
	}
	return c
}
