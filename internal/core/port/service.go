package port

import (
	"context"

	"github.com/duocun-ca/ledgercore/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// LedgerService owns every write to transactions and account balances.
type LedgerService interface {
	CreateAccount(ctx context.Context, username string, accountType domain.AccountType) (*domain.Account, error)
	Accounts(ctx context.Context, accountType domain.AccountType) ([]*domain.Account, error)

	Append(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error)
	RecomputeBalance(ctx context.Context, accountID string) (*domain.Account, error)
	AccountTransactions(ctx context.Context, accountID string) ([]*domain.Transaction, error)

	// Compensating entries for order lifecycle events.
	OrderCharge(ctx context.Context, order *domain.Order) error
	SplitCompensation(ctx context.Context, original *domain.Order, sibling *domain.Order) error
	CancelCompensation(ctx context.Context, original *domain.Order, sibling *domain.Order) error
	RemovalReversal(ctx context.Context, order *domain.Order) error
}

type OrderService interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	MarkPaid(ctx context.Context, orderID string) (*domain.Order, error)
	Split(ctx context.Context, orderID string, items []domain.OrderItem) (*domain.Order, error)
	CancelItems(ctx context.Context, orderID string, items []domain.OrderItem) (*domain.Order, error)
	Remove(ctx context.Context, orderID string) error
}

type PickupService interface {
	BuildPickupMap(ctx context.Context, deliverDate string, assignments []domain.Assignment) (map[string]*domain.Pickup, error)
	BuildPickupByOrderMap(ctx context.Context, deliverDate string, assignments []domain.Assignment) (map[string]*domain.PickupByOrder, error)
	Reconcile(ctx context.Context, deliverDate string, assignments []domain.Assignment) error
	ListPickups(ctx context.Context, deliverDate string) ([]*domain.Pickup, error)
}
