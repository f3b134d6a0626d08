package port

import (
	"context"

	"github.com/duocun-ca/ledgercore/internal/core/domain"
	"github.com/govalues/decimal"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Accounts
	CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	ReadAccount(ctx context.Context, id string) (*domain.Account, error)
	ReadAccountByName(ctx context.Context, username string) (*domain.Account, error)
	ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]*domain.Account, error)
	UpdateAccountBalance(ctx context.Context, id string, balance decimal.Decimal) error

	// Transactions
	CreateTransaction(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error)
	// ListTransactionsByAccount returns live entries touching the account,
	// ordered by (created, seq) ascending.
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error)
	ListTransactionsByOrder(ctx context.Context, orderID string) ([]*domain.Transaction, error)
	UpdateTransactionAmount(ctx context.Context, id string, amount decimal.Decimal) error
	AppendCancelledOrder(ctx context.Context, orderID string, cancelledOrderID string) error
	MarkTransactionsDeleted(ctx context.Context, orderIDs []string) error
	SaveTransactionSnapshots(ctx context.Context, trs []*domain.Transaction) error

	// Orders
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListOrdersByDeliverDate(ctx context.Context, deliverDate string) ([]*domain.Order, error)

	// Pickups
	ListPickups(ctx context.Context, deliverDate string) ([]*domain.Pickup, error)
	CreatePickup(ctx context.Context, pickup *domain.Pickup) (*domain.Pickup, error)
	UpdatePickup(ctx context.Context, pickup *domain.Pickup) (*domain.Pickup, error)
	ListPickupsByOrder(ctx context.Context, deliverDate string) ([]*domain.PickupByOrder, error)
	CreatePickupByOrder(ctx context.Context, pickup *domain.PickupByOrder) (*domain.PickupByOrder, error)
}
