package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type AccountType string

const (
	AccountTypeClient   AccountType = "client"
	AccountTypeMerchant AccountType = "merchant"
	AccountTypeDriver   AccountType = "driver"
	AccountTypeSystem   AccountType = "system"
)

// Fixed system accounts, seeded by migration. Balances of these accounts
// absorb the platform side of every order charge and payout.
const (
	AccountNameCashBank    = "Cash Bank"
	AccountNameTDBank      = "TD Bank"
	AccountNameSnapPayBank = "SnapPay Bank"
	AccountNameExpense     = "Expense"
)

// Account balance is owned by the ledger: business code never writes it
// directly, only through appends and recomputation.
type Account struct {
	ID       string
	Username string
	Type     AccountType
	Balance  decimal.Decimal
	Created  time.Time
	Modified time.Time
}
