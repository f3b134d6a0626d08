package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type ActionCode string

const (
	ActionOrderFromMerchant       ActionCode = "ORDER_FROM_MERCHANT"
	ActionOrderFromDuocun         ActionCode = "ORDER_FROM_DUOCUN"
	ActionCancelOrderFromMerchant ActionCode = "CANCEL_ORDER_FROM_MERCHANT"
	ActionCancelOrderFromDuocun   ActionCode = "CANCEL_ORDER_FROM_DUOCUN"
	ActionPaySalary               ActionCode = "PAY_SALARY"
	ActionPayDriverCash           ActionCode = "PAY_DRIVER_CASH"
)

// TransactionStatusDeleted flags an entry out of the balance replay set.
// Flagged entries stay in the collection as an audit trail.
const TransactionStatusDeleted = "del"

// Transaction is one ledger entry. Replaying all live entries touching an
// account in (Created, Seq) order, adding Amount where the account is the
// from-side and subtracting where it is the to-side, reproduces the account
// balance. Entries are immutable after creation except for the
// CancelledOrderIDs append, the split amount adjustment and the
// FromBalance/ToBalance correction performed by recomputation.
type Transaction struct {
	ID       string
	Seq      int64 // monotonic insert-time sequence, tie-break for replay order
	FromID   string
	ToID     string
	FromName string
	ToName   string

	Amount     decimal.Decimal
	ActionCode ActionCode

	OrderID           string
	PaymentID         string
	CancelledOrderIDs []string

	// Balance snapshots of each side immediately after this entry,
	// given ledger order.
	FromBalance decimal.Decimal
	ToBalance   decimal.Decimal

	Status    string // "" or TransactionStatusDeleted
	Delivered time.Time
	Created   time.Time
	Modified  time.Time
}

// Live reports whether the entry participates in balance replay.
func (t *Transaction) Live() bool {
	return t.Status != TransactionStatusDeleted
}
