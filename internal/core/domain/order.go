package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusNew             OrderStatus = "NEW"
	OrderStatusLoaded          OrderStatus = "LOADED"
	OrderStatusDone            OrderStatus = "DONE"
	OrderStatusBad             OrderStatus = "BAD"
	OrderStatusDeleted         OrderStatus = "DELETED"
	OrderStatusTemp            OrderStatus = "TEMP"
	OrderStatusMerchantChecked OrderStatus = "MERCHANT_CHECKED"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid    PaymentStatus = "UNPAID"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusReceiving PaymentStatus = "RECEIVING"
)

type OrderItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Quantity    int             `json:"quantity"`
	TaxRate     decimal.Decimal `json:"taxRate"`
}

type Order struct {
	ID           string
	Code         string
	ClientID     string
	ClientName   string
	MerchantID   string
	MerchantName string
	Driver       DriverRef
	DriverName   string

	Items []OrderItem

	Price           decimal.Decimal
	Cost            decimal.Decimal
	Tax             decimal.Decimal
	Tips            decimal.Decimal
	GroupDiscount   decimal.Decimal
	OverRangeCharge decimal.Decimal
	Total           decimal.Decimal

	Status        OrderStatus
	PaymentStatus PaymentStatus
	PaymentID     string

	DeliverDate string // calendar day key, YYYY-MM-DD
	Delivered   time.Time
	Created     time.Time
	Modified    time.Time
}

// Chargeable reports whether the order carries a live ledger charge pair.
func (o *Order) Chargeable() bool {
	if o.PaymentStatus != PaymentStatusPaid {
		return false
	}
	switch o.Status {
	case OrderStatusBad, OrderStatusDeleted, OrderStatusTemp:
		return false
	}
	return true
}
