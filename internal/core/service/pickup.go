package service

import (
	"context"

	"github.com/duocun-ca/ledgercore/internal/core/domain"
	"github.com/duocun-ca/ledgercore/internal/core/port"
	"go.uber.org/zap"
)

// Pickups reconciles the driver loading aggregates with the current
// order-to-driver assignments for a delivery date. It reads orders for the
// authoritative driver linkage, so it must run only after assignments have
// been persisted. The per-cell writes are not atomic as a group; every
// branch of the diff is a pure function of (target, origin), so re-running
// after a partial failure converges to the same end state.
type Pickups struct {
	repo   port.Repository
	ids    port.IDGenerator
	logger *zap.Logger
}

func NewPickups(repo port.Repository, ids port.IDGenerator, logger *zap.Logger) (*Pickups, error) {
	return &Pickups{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}, nil
}

// BuildPickupMap computes the target quantity-per-driver-per-product view.
// Every driver in the assignment set, the unassigned bucket and every
// active driver with zero orders gets a zero-seeded cell for each distinct
// product on the date, then order items accumulate into their driver's
// cells.
func (s *Pickups) BuildPickupMap(ctx context.Context, deliverDate string,
	assignments []domain.Assignment) (map[string]*domain.Pickup, error) {

	orders, err := s.liveOrders(ctx, deliverDate)
	if err != nil {
		return nil, err
	}

	drivers, err := s.driverAxis(ctx, orders, assignments)
	if err != nil {
		return nil, err
	}

	type product struct{ id, name string }
	products := make([]product, 0)
	seenProduct := make(map[string]bool)
	for _, o := range orders {
		for _, it := range o.Items {
			if !seenProduct[it.ProductID] {
				seenProduct[it.ProductID] = true
				products = append(products, product{id: it.ProductID, name: it.ProductName})
			}
		}
	}

	target := make(map[string]*domain.Pickup)
	for _, d := range drivers {
		for _, p := range products {
			cell := &domain.Pickup{
				Driver:      d.ref,
				DriverName:  d.name,
				ProductID:   p.id,
				ProductName: p.name,
				Quantity:    0,
				Status:      domain.PickupStatusUnpicked,
				DeliverDate: deliverDate,
			}
			target[cell.Key()] = cell
		}
	}

	for _, o := range orders {
		for _, it := range o.Items {
			key := o.Driver.Key() + "-" + it.ProductID
			cell, ok := target[key]
			if !ok {
				cell = &domain.Pickup{
					Driver:      o.Driver,
					DriverName:  o.DriverName,
					ProductID:   it.ProductID,
					ProductName: it.ProductName,
					Status:      domain.PickupStatusUnpicked,
					DeliverDate: deliverDate,
				}
				target[key] = cell
			}
			cell.Quantity += it.Quantity
		}
	}

	return target, nil
}

// BuildPickupByOrderMap computes the target payment-group manifest view:
// one cell per (driver, checkout batch), quantity 1 when the batch is
// assigned to the driver.
func (s *Pickups) BuildPickupByOrderMap(ctx context.Context, deliverDate string,
	assignments []domain.Assignment) (map[string]*domain.PickupByOrder, error) {

	orders, err := s.liveOrders(ctx, deliverDate)
	if err != nil {
		return nil, err
	}

	target := make(map[string]*domain.PickupByOrder)
	for _, o := range orders {
		paymentID := o.PaymentID
		if paymentID == "" {
			paymentID = o.ID
		}
		key := o.Driver.Key() + "-" + paymentID
		cell, ok := target[key]
		if !ok {
			cell = &domain.PickupByOrder{
				Driver:      o.Driver,
				DriverName:  o.DriverName,
				PaymentID:   paymentID,
				ClientName:  o.ClientName,
				Quantity:    1,
				Status:      domain.PickupStatusUnpicked,
				DeliverDate: deliverDate,
			}
			target[key] = cell
		}

		line := domain.ManifestLine{
			OrderCode:    o.Code,
			ClientName:   o.ClientName,
			MerchantName: o.MerchantName,
		}
		for _, it := range o.Items {
			line.Products = append(line.Products, domain.ManifestProduct{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
			})
		}
		cell.Lines = append(cell.Lines, line)
		cell.Codes = append(cell.Codes, o.Code)
	}

	return target, nil
}

// Reconcile diffs the target aggregate views against the persisted ones
// and applies the minimal inserts, updates, status transitions and soft
// deletes. Unchanged cells produce no write, so reconciling the same
// assignment state twice is idempotent.
func (s *Pickups) Reconcile(ctx context.Context, deliverDate string,
	assignments []domain.Assignment) error {

	target, err := s.BuildPickupMap(ctx, deliverDate, assignments)
	if err != nil {
		return err
	}

	persisted, err := s.repo.ListPickups(ctx, deliverDate)
	if err != nil {
		return err
	}
	origin := make(map[string]*domain.Pickup, len(persisted))
	for _, p := range persisted {
		origin[p.Key()] = p
	}

	for key, cell := range target {
		if !cell.Driver.Assigned {
			continue
		}

		og, exists := origin[key]
		switch {
		case exists && og.Status != domain.PickupStatusDeleted:
			if cell.Quantity == 0 {
				og.Status = domain.PickupStatusDeleted
				if _, err := s.repo.UpdatePickup(ctx, og); err != nil {
					return err
				}
			} else if cell.Quantity != og.Quantity {
				og.Quantity = cell.Quantity
				// Changing an already collected manifest must surface
				// as changed, never stay PICKED_UP.
				if og.Status == domain.PickupStatusPickedUp ||
					og.Status == domain.PickupStatusPickedUpChanged {
					og.Status = domain.PickupStatusPickedUpChanged
				}
				if _, err := s.repo.UpdatePickup(ctx, og); err != nil {
					return err
				}
			}
		case exists:
			if cell.Quantity > 0 {
				og.Quantity = cell.Quantity
				og.Status = domain.PickupStatusUnpicked
				if _, err := s.repo.UpdatePickup(ctx, og); err != nil {
					return err
				}
			}
		default:
			if cell.Quantity > 0 {
				cell.ID = s.ids.NewID()
				if _, err := s.repo.CreatePickup(ctx, cell); err != nil {
					return err
				}
			}
		}
	}

	return s.reconcileByOrder(ctx, deliverDate, assignments)
}

// reconcileByOrder inserts manifest cells for newly observed
// (driver, payment group) pairs. Manifests are append-only: this pass
// never updates or deletes an existing record.
func (s *Pickups) reconcileByOrder(ctx context.Context, deliverDate string,
	assignments []domain.Assignment) error {

	target, err := s.BuildPickupByOrderMap(ctx, deliverDate, assignments)
	if err != nil {
		return err
	}

	persisted, err := s.repo.ListPickupsByOrder(ctx, deliverDate)
	if err != nil {
		return err
	}
	origin := make(map[string]bool, len(persisted))
	for _, p := range persisted {
		origin[p.Key()] = true
	}

	for key, cell := range target {
		if !cell.Driver.Assigned || cell.Quantity == 0 {
			continue
		}
		if origin[key] {
			continue
		}
		cell.ID = s.ids.NewID()
		if _, err := s.repo.CreatePickupByOrder(ctx, cell); err != nil {
			return err
		}
	}
	return nil
}

func (s *Pickups) ListPickups(ctx context.Context, deliverDate string) ([]*domain.Pickup, error) {
	pickups, err := s.repo.ListPickups(ctx, deliverDate)
	if err != nil {
		s.logger.Error("list pickups", zap.Error(err))
		return nil, err
	}
	return pickups, nil
}

// liveOrders returns the date's orders that count toward loading sheets.
func (s *Pickups) liveOrders(ctx context.Context, deliverDate string) ([]*domain.Order, error) {
	orders, err := s.repo.ListOrdersByDeliverDate(ctx, deliverDate)
	if err != nil {
		s.logger.Error("list orders for deliver date", zap.Error(err))
		return nil, err
	}

	live := make([]*domain.Order, 0, len(orders))
	for _, o := range orders {
		switch o.Status {
		case domain.OrderStatusBad, domain.OrderStatusDeleted, domain.OrderStatusTemp:
			continue
		}
		live = append(live, o)
	}
	return live, nil
}

type driverCell struct {
	ref  domain.DriverRef
	name string
}

// driverAxis collects every driver that must appear in the cross product:
// drivers named by the assignment set, the unassigned bucket, drivers
// already on orders and active driver accounts with zero orders.
func (s *Pickups) driverAxis(ctx context.Context, orders []*domain.Order,
	assignments []domain.Assignment) ([]driverCell, error) {

	cells := []driverCell{{ref: domain.DriverRef{}}}
	seen := map[string]bool{domain.UnassignedKey: true}

	add := func(ref domain.DriverRef, name string) {
		if !seen[ref.Key()] {
			seen[ref.Key()] = true
			cells = append(cells, driverCell{ref: ref, name: name})
		}
	}

	for _, a := range assignments {
		add(a.Driver, "")
	}
	for _, o := range orders {
		add(o.Driver, o.DriverName)
	}

	active, err := s.repo.ListAccountsByType(ctx, domain.AccountTypeDriver)
	if err != nil {
		return nil, err
	}
	for _, d := range active {
		add(domain.AssignedDriver(d.ID), d.Username)
	}

	// Backfill names for drivers first seen through the assignment list.
	for i := range cells {
		if cells[i].name == "" && cells[i].ref.Assigned {
			for _, d := range active {
				if d.ID == cells[i].ref.ID {
					cells[i].name = d.Username
					break
				}
			}
		}
	}

	return cells, nil
}
