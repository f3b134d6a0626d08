package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/duocun-ca/ledgercore/internal/core/domain"
	"github.com/duocun-ca/ledgercore/internal/core/port"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// Ledger appends money movements between accounts and keeps account
// balances consistent with ledger history. Appends are not atomic across
// the transaction insert and the two balance writes; a concurrent editor
// can observe an intermediate state. Consistency is restored by
// RecomputeBalance, not guaranteed continuously.
type Ledger struct {
	repo   port.Repository
	ids    port.IDGenerator
	logger *zap.Logger
}

func NewLedger(repo port.Repository, ids port.IDGenerator, logger *zap.Logger) (*Ledger, error) {
	return &Ledger{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}, nil
}

// CreateAccount registers a client, merchant or driver account mirroring
// an upstream user. System accounts are seeded by migration, never here.
func (l *Ledger) CreateAccount(ctx context.Context, username string, accountType domain.AccountType) (*domain.Account, error) {
	if username == "" {
		return nil, domain.ErrBadRequest
	}
	switch accountType {
	case domain.AccountTypeClient, domain.AccountTypeMerchant, domain.AccountTypeDriver:
	default:
		return nil, domain.ErrBadRequest
	}

	account := &domain.Account{
		ID:       l.ids.NewID(),
		Username: username,
		Type:     accountType,
		Balance:  decimal.Zero.Rescale(2),
		Created:  l.ids.Now(),
	}
	created, err := l.repo.CreateAccount(ctx, account)
	if err != nil {
		l.logger.Error("create account", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (l *Ledger) Accounts(ctx context.Context, accountType domain.AccountType) ([]*domain.Account, error) {
	list, err := l.repo.ListAccountsByType(ctx, accountType)
	if err != nil {
		l.logger.Error("list accounts", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// Append records one ledger entry. Both accounts must resolve; on a
// missing account nothing is written and ErrAccountNotFound is returned.
// The from-side balance moves up by amount, the to-side down. PAY_SALARY
// entries are redirected to the fixed Expense account regardless of the
// caller-supplied to-side.
func (l *Ledger) Append(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
	if tr.Amount.Sign() <= 0 {
		return nil, domain.ErrNegativeAmount
	}

	toID := tr.ToID
	if tr.ActionCode == domain.ActionPaySalary {
		expense, err := l.repo.ReadAccountByName(ctx, domain.AccountNameExpense)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return nil, domain.ErrAccountNotFound
			}
			return nil, err
		}
		toID = expense.ID
	}

	from, err := l.repo.ReadAccount(ctx, tr.FromID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	to, err := l.repo.ReadAccount(ctx, toID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	amount := tr.Amount.Rescale(2)

	fromBalance, err := from.Balance.Add(amount)
	if err != nil {
		return nil, fmt.Errorf("math error: %w", err)
	}
	toBalance, err := to.Balance.Sub(amount)
	if err != nil {
		return nil, fmt.Errorf("math error: %w", err)
	}

	if tr.ID == "" {
		tr.ID = l.ids.NewID()
	}
	if tr.Created.IsZero() {
		tr.Created = l.ids.Now()
	}
	tr.ToID = toID
	tr.FromName = from.Username
	tr.ToName = to.Username
	tr.Amount = amount
	tr.FromBalance = fromBalance.Rescale(2)
	tr.ToBalance = toBalance.Rescale(2)

	created, err := l.repo.CreateTransaction(ctx, tr)
	if err != nil {
		l.logger.Error("append transaction", zap.Error(err))
		return nil, err
	}

	if err := l.repo.UpdateAccountBalance(ctx, from.ID, tr.FromBalance); err != nil {
		l.logger.Error("write from-side balance", zap.Error(err))
		return nil, err
	}
	if err := l.repo.UpdateAccountBalance(ctx, to.ID, tr.ToBalance); err != nil {
		l.logger.Error("write to-side balance", zap.Error(err))
		return nil, err
	}

	return created, nil
}

// RecomputeBalance replays the account's live ledger history in
// (created, seq) order, rewrites each entry's balance snapshot on the
// account's side and writes the final running total to the account.
// Idempotent: a second run with no intervening writes is a no-op in effect.
func (l *Ledger) RecomputeBalance(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := l.repo.ReadAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	trs, err := l.repo.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		l.logger.Error("list account transactions", zap.Error(err))
		return nil, err
	}

	running := decimal.Zero
	for _, tr := range trs {
		if tr.FromID == accountID {
			running, err = running.Add(tr.Amount)
			if err != nil {
				return nil, fmt.Errorf("math error: %w", err)
			}
			tr.FromBalance = running.Rescale(2)
		} else {
			running, err = running.Sub(tr.Amount)
			if err != nil {
				return nil, fmt.Errorf("math error: %w", err)
			}
			tr.ToBalance = running.Rescale(2)
		}
	}

	if err := l.repo.SaveTransactionSnapshots(ctx, trs); err != nil {
		l.logger.Error("save balance snapshots", zap.Error(err))
		return nil, err
	}
	running = running.Rescale(2)
	if err := l.repo.UpdateAccountBalance(ctx, accountID, running); err != nil {
		l.logger.Error("write recomputed balance", zap.Error(err))
		return nil, err
	}

	account.Balance = running
	return account, nil
}

func (l *Ledger) AccountTransactions(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	trs, err := l.repo.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		l.logger.Error("list account transactions", zap.Error(err))
		return nil, err
	}
	return trs, nil
}

// OrderCharge records the charge pair for a freshly paid order: the
// platform owes the merchant the cost (ORDER_FROM_MERCHANT) and the client
// owes the platform the total (ORDER_FROM_DUOCUN).
func (l *Ledger) OrderCharge(ctx context.Context, order *domain.Order) error {
	if !order.Chargeable() {
		return domain.ErrOrderNotPaid
	}

	bank, err := l.repo.ReadAccountByName(ctx, domain.AccountNameCashBank)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrAccountNotFound
		}
		return err
	}

	_, err = l.Append(ctx, &domain.Transaction{
		FromID:     order.MerchantID,
		ToID:       bank.ID,
		Amount:     order.Cost,
		ActionCode: domain.ActionOrderFromMerchant,
		OrderID:    order.ID,
		PaymentID:  order.PaymentID,
		Delivered:  order.Delivered,
	})
	if err != nil {
		return err
	}

	_, err = l.Append(ctx, &domain.Transaction{
		FromID:     bank.ID,
		ToID:       order.ClientID,
		Amount:     order.Total,
		ActionCode: domain.ActionOrderFromDuocun,
		OrderID:    order.ID,
		PaymentID:  order.PaymentID,
		Delivered:  order.Delivered,
	})
	return err
}

// SplitCompensation charges the split-out sibling and shrinks the original
// charge pair to the shrunk order's cost and total, so the live charge
// entries of the two orders together still equal the pre-split charge.
// The amount edit is out-of-band with respect to running balances, so the
// client and merchant balances are recomputed afterwards; the cash bank
// account is left to a deferred recompute.
func (l *Ledger) SplitCompensation(ctx context.Context, original *domain.Order, sibling *domain.Order) error {
	if err := l.OrderCharge(ctx, sibling); err != nil {
		return err
	}

	trs, err := l.repo.ListTransactionsByOrder(ctx, original.ID)
	if err != nil {
		return err
	}
	for _, tr := range trs {
		if !tr.Live() {
			continue
		}
		switch tr.ActionCode {
		case domain.ActionOrderFromMerchant:
			if err := l.repo.UpdateTransactionAmount(ctx, tr.ID, original.Cost); err != nil {
				return err
			}
		case domain.ActionOrderFromDuocun:
			if err := l.repo.UpdateTransactionAmount(ctx, tr.ID, original.Total); err != nil {
				return err
			}
		}
	}

	if err := l.repo.AppendCancelledOrder(ctx, original.ID, sibling.ID); err != nil {
		return err
	}

	return l.recomputeParties(ctx, original)
}

// CancelCompensation reverses the cancelled items' charge: the platform
// takes the cost back from the merchant and returns the total to the
// client. The entries are linked to the deleted sibling holding the
// removed items, and the original pair keeps a trace of the reversal in
// cancelledOrderIds.
func (l *Ledger) CancelCompensation(ctx context.Context, original *domain.Order, sibling *domain.Order) error {
	if err := l.appendReversalPair(ctx, sibling, sibling.ID); err != nil {
		return err
	}
	if err := l.repo.AppendCancelledOrder(ctx, original.ID, sibling.ID); err != nil {
		return err
	}
	return l.recomputeParties(ctx, original)
}

// RemovalReversal settles a whole-order removal. The order's charge
// entries and every linked cancellation entry are flagged out of the
// replay set, then an audit reversal pair for the order's current cost and
// total is appended and flagged as well. The flagged group nets to zero,
// so replay with or without it agrees with the balances the reversal
// already wrote.
func (l *Ledger) RemovalReversal(ctx context.Context, order *domain.Order) error {
	trs, err := l.repo.ListTransactionsByOrder(ctx, order.ID)
	if err != nil {
		return err
	}

	orderIDs := []string{order.ID}
	seen := map[string]bool{order.ID: true}
	for _, tr := range trs {
		for _, id := range tr.CancelledOrderIDs {
			if !seen[id] {
				seen[id] = true
				orderIDs = append(orderIDs, id)
			}
		}
	}
	if err := l.repo.MarkTransactionsDeleted(ctx, orderIDs); err != nil {
		return err
	}

	if err := l.appendReversalPair(ctx, order, order.ID); err != nil {
		return err
	}
	// The reversal pair references the removed order, so this flags it too.
	if err := l.repo.MarkTransactionsDeleted(ctx, []string{order.ID}); err != nil {
		return err
	}

	return l.recomputeParties(ctx, order)
}

func (l *Ledger) appendReversalPair(ctx context.Context, charge *domain.Order, orderID string) error {
	bank, err := l.repo.ReadAccountByName(ctx, domain.AccountNameCashBank)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrAccountNotFound
		}
		return err
	}

	_, err = l.Append(ctx, &domain.Transaction{
		FromID:     bank.ID,
		ToID:       charge.MerchantID,
		Amount:     charge.Cost,
		ActionCode: domain.ActionCancelOrderFromMerchant,
		OrderID:    orderID,
		PaymentID:  charge.PaymentID,
		Delivered:  charge.Delivered,
	})
	if err != nil {
		return err
	}

	_, err = l.Append(ctx, &domain.Transaction{
		FromID:     charge.ClientID,
		ToID:       bank.ID,
		Amount:     charge.Total,
		ActionCode: domain.ActionCancelOrderFromDuocun,
		OrderID:    orderID,
		PaymentID:  charge.PaymentID,
		Delivered:  charge.Delivered,
	})
	return err
}

func (l *Ledger) recomputeParties(ctx context.Context, order *domain.Order) error {
	if _, err := l.RecomputeBalance(ctx, order.ClientID); err != nil {
		return err
	}
	if _, err := l.RecomputeBalance(ctx, order.MerchantID); err != nil {
		return err
	}
	return nil
}
