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

// Orders drives the order lifecycle: placement, payment, split, partial
// cancellation and removal. Every money-moving event goes through the
// ledger after the order mutation has been persisted.
type Orders struct {
	repo   port.Repository
	ledger port.LedgerService
	ids    port.IDGenerator
	logger *zap.Logger
}

func NewOrders(repo port.Repository, ledger port.LedgerService,
	ids port.IDGenerator, logger *zap.Logger) (*Orders, error) {
	return &Orders{
		repo:   repo,
		ledger: ledger,
		ids:    ids,
		logger: logger,
	}, nil
}

func (s *Orders) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	charge, err := domain.ComputeCharge(order.Items, order.Tips, order.GroupDiscount, order.OverRangeCharge)
	if err != nil {
		return nil, err
	}
	charge.Apply(order)

	order.ID = s.ids.NewID()
	order.Created = s.ids.Now()
	if order.Code == "" {
		order.Code = s.newOrderCode(order)
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusNew
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = domain.PaymentStatusUnpaid
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("create order", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// MarkPaid flips the payment status and records the order's charge pair.
// The order is persisted as paid before the ledger append, per the
// sequencing rule for money-moving events.
func (s *Orders) MarkPaid(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.readOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == domain.PaymentStatusPaid {
		return nil, domain.ErrOrderAlreadyPaid
	}

	order.PaymentStatus = domain.PaymentStatusPaid
	if _, err := s.repo.UpdateOrder(ctx, order); err != nil {
		s.logger.Error("update order payment status", zap.Error(err))
		return nil, err
	}

	if err := s.ledger.OrderCharge(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Split moves a subset of an order's items into a new sibling order with
// its own charge and a fresh code. A split that would take every item is
// an order removal, not a split; the removed original is returned.
func (s *Orders) Split(ctx context.Context, orderID string, items []domain.OrderItem) (*domain.Order, error) {
	original, err := s.readOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	moved, remaining := partitionItems(original.Items, items)
	if len(moved) == 0 {
		return nil, domain.ErrNoItemsMatched
	}
	if len(remaining) == 0 {
		if err := s.Remove(ctx, orderID); err != nil {
			return nil, err
		}
		return s.readOrder(ctx, orderID)
	}

	sibling, err := s.shrinkAndFork(ctx, original, moved, remaining, domain.OrderStatusNew)
	if err != nil {
		return nil, err
	}

	if original.PaymentStatus == domain.PaymentStatusPaid {
		if err := s.ledger.SplitCompensation(ctx, original, sibling); err != nil {
			return nil, err
		}
	}
	return sibling, nil
}

// CancelItems removes a subset of an order's items. The sibling order is
// created already DELETED, purely as an audit record of what was removed,
// and the ledger reverses the removed items' charge.
func (s *Orders) CancelItems(ctx context.Context, orderID string, items []domain.OrderItem) (*domain.Order, error) {
	original, err := s.readOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	moved, remaining := partitionItems(original.Items, items)
	if len(moved) == 0 {
		return nil, domain.ErrNoItemsMatched
	}
	if len(remaining) == 0 {
		if err := s.Remove(ctx, orderID); err != nil {
			return nil, err
		}
		return s.readOrder(ctx, orderID)
	}

	sibling, err := s.shrinkAndFork(ctx, original, moved, remaining, domain.OrderStatusDeleted)
	if err != nil {
		return nil, err
	}

	if original.PaymentStatus == domain.PaymentStatusPaid {
		if err := s.ledger.CancelCompensation(ctx, original, sibling); err != nil {
			return nil, err
		}
	}
	return sibling, nil
}

// Remove marks the order DELETED in place. TEMP and unpaid orders were
// never charged and leave no ledger trace; for paid orders the ledger
// settles the removal.
func (s *Orders) Remove(ctx context.Context, orderID string) error {
	order, err := s.readOrder(ctx, orderID)
	if err != nil {
		return err
	}

	wasCharged := order.PaymentStatus == domain.PaymentStatusPaid &&
		order.Status != domain.OrderStatusTemp

	order.Status = domain.OrderStatusDeleted
	if _, err := s.repo.UpdateOrder(ctx, order); err != nil {
		s.logger.Error("mark order deleted", zap.Error(err))
		return err
	}

	if !wasCharged {
		return nil
	}
	return s.ledger.RemovalReversal(ctx, order)
}

// shrinkAndFork persists the original with the remaining items and a
// recomputed charge, then creates the sibling carrying the moved items.
// Tips, discounts and surcharges stay on the original.
func (s *Orders) shrinkAndFork(ctx context.Context, original *domain.Order,
	moved, remaining []domain.OrderItem, siblingStatus domain.OrderStatus) (*domain.Order, error) {

	charge, err := domain.ComputeCharge(remaining, original.Tips,
		original.GroupDiscount, original.OverRangeCharge)
	if err != nil {
		return nil, err
	}
	original.Items = remaining
	charge.Apply(original)

	if _, err := s.repo.UpdateOrder(ctx, original); err != nil {
		s.logger.Error("shrink original order", zap.Error(err))
		return nil, err
	}

	sibling := &domain.Order{
		ClientID:      original.ClientID,
		ClientName:    original.ClientName,
		MerchantID:    original.MerchantID,
		MerchantName:  original.MerchantName,
		Driver:        original.Driver,
		DriverName:    original.DriverName,
		Items:         moved,
		Status:        siblingStatus,
		PaymentStatus: original.PaymentStatus,
		PaymentID:     original.PaymentID,
		DeliverDate:   original.DeliverDate,
		Delivered:     original.Delivered,
	}
	siblingCharge, err := domain.ComputeCharge(moved, decimal.Zero, decimal.Zero, decimal.Zero)
	if err != nil {
		return nil, err
	}
	siblingCharge.Apply(sibling)

	sibling.ID = s.ids.NewID()
	sibling.Code = s.newOrderCode(sibling)
	sibling.Created = s.ids.Now()

	created, err := s.repo.CreateOrder(ctx, sibling)
	if err != nil {
		s.logger.Error("create sibling order", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Orders) readOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("read order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (s *Orders) newOrderCode(order *domain.Order) string {
	id := order.ID
	if len(id) > 6 {
		id = id[:6]
	}
	return fmt.Sprintf("%s-%s", s.ids.Now().Format("20060102"), id)
}

// partitionItems splits an item set into the lines matched by the request
// and the lines that stay. Requested quantities are capped at what the
// order holds; zero-quantity lines are dropped on both sides.
func partitionItems(items, requested []domain.OrderItem) (moved, remaining []domain.OrderItem) {
	wanted := make(map[string]int, len(requested))
	for _, it := range requested {
		wanted[it.ProductID] += it.Quantity
	}

	for _, it := range items {
		take := wanted[it.ProductID]
		if take > it.Quantity {
			take = it.Quantity
		}
		if take > 0 {
			m := it
			m.Quantity = take
			moved = append(moved, m)
		}
		if keep := it.Quantity - take; keep > 0 {
			r := it
			r.Quantity = keep
			remaining = append(remaining, r)
		}
	}
	return moved, remaining
}
