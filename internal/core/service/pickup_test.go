package service_test

import (
	"context"
	"testing"

	"github.com/duocun-ca/ledgercore/internal/core/domain"
	"github.com/duocun-ca/ledgercore/internal/core/port/mock"
	"github.com/duocun-ca/ledgercore/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const deliverDate = "2024-01-11"

func pickupOrder(id, driverID, driverName, paymentID string, items ...domain.OrderItem) *domain.Order {
	return &domain.Order{
		ID:            id,
		Code:          "20240110-" + id,
		ClientID:      "client-1",
		Driver:        domain.AssignedDriver(driverID),
		DriverName:    driverName,
		PaymentID:     paymentID,
		Items:         items,
		Status:        domain.OrderStatusNew,
		PaymentStatus: domain.PaymentStatusPaid,
		DeliverDate:   deliverDate,
	}
}

func qty(productID string, n int) domain.OrderItem {
	return domain.OrderItem{ProductID: productID, ProductName: productID, Quantity: n}
}

func driverAccount(id, name string) *domain.Account {
	return &domain.Account{ID: id, Username: name, Type: domain.AccountTypeDriver}
}

func TestPickups_BuildPickupMap(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	ids := mock.NewMockIDGenerator(mockCtrl)

	orders := []*domain.Order{
		{ // removed, must not count
			ID: "o4", Status: domain.OrderStatusDeleted, DeliverDate: deliverDate,
			Driver: domain.AssignedDriver("d1"),
			Items:  []domain.OrderItem{qty("p1", 5)},
		},
		pickupOrder("o1", "d1", "Dave", "pay-1", qty("p1", 2), qty("p2", 1)),
		pickupOrder("o2", "d1", "Dave", "pay-2", qty("p1", 1)),
		{ // waiting for assignment
			ID: "o3", Status: domain.OrderStatusNew, DeliverDate: deliverDate,
			Items: []domain.OrderItem{qty("p1", 1)},
		},
	}
	repo.EXPECT().ListOrdersByDeliverDate(gomock.Any(), deliverDate).Return(orders, nil)
	repo.EXPECT().ListAccountsByType(gomock.Any(), domain.AccountTypeDriver).
		Return([]*domain.Account{driverAccount("d1", "Dave"), driverAccount("d2", "Dana")}, nil)

	s, err := service.NewPickups(repo, ids, logger)
	assert.NoError(t, err)

	target, err := s.BuildPickupMap(context.Background(), deliverDate, []domain.Assignment{
		{OrderID: "o1", Driver: domain.AssignedDriver("d1")},
		{OrderID: "o2", Driver: domain.AssignedDriver("d1")},
	})
	assert.NoError(t, err)

	// 3 drivers on the axis (unassigned, d1, idle d2) x 2 products.
	assert.Len(t, target, 6)

	assert.Equal(t, 3, target["d1-p1"].Quantity)
	assert.Equal(t, 1, target["d1-p2"].Quantity)
	assert.Equal(t, 1, target[domain.UnassignedKey+"-p1"].Quantity)
	assert.Equal(t, 0, target[domain.UnassignedKey+"-p2"].Quantity)
	assert.Equal(t, 0, target["d2-p1"].Quantity)
	assert.Equal(t, 0, target["d2-p2"].Quantity)

	assert.Equal(t, "Dana", target["d2-p1"].DriverName)
	assert.Equal(t, domain.PickupStatusUnpicked, target["d1-p1"].Status)

	// Filtering the date's orders must not rearrange the slice the
	// repository handed out.
	assert.Equal(t, "o4", orders[0].ID)
	assert.Equal(t, "o1", orders[1].ID)
}

func TestPickups_BuildPickupByOrderMap(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	ids := mock.NewMockIDGenerator(mockCtrl)

	// o1 and o2 belong to the same checkout batch; o3 has no payment id.
	orders := []*domain.Order{
		pickupOrder("o1", "d1", "Dave", "pay-1", qty("p1", 2)),
		pickupOrder("o2", "d1", "Dave", "pay-1", qty("p2", 1)),
		pickupOrder("o3", "d1", "Dave", "", qty("p1", 1)),
	}
	repo.EXPECT().ListOrdersByDeliverDate(gomock.Any(), deliverDate).Return(orders, nil)

	s, err := service.NewPickups(repo, ids, logger)
	assert.NoError(t, err)

	target, err := s.BuildPickupByOrderMap(context.Background(), deliverDate, nil)
	assert.NoError(t, err)

	assert.Len(t, target, 2)

	batch := target["d1-pay-1"]
	assert.Equal(t, 1, batch.Quantity)
	assert.Len(t, batch.Lines, 2)
	assert.Equal(t, []string{"20240110-o1", "20240110-o2"}, batch.Codes)

	// Payment id falls back to the order id.
	single := target["d1-o3"]
	assert.Equal(t, "o3", single.PaymentID)
	assert.Len(t, single.Lines, 1)
}

func TestPickups_Reconcile(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type reconcileTest struct {
		name        string
		orders      []*domain.Order
		assignments []domain.Assignment
		accounts    []*domain.Account
		persisted   []*domain.Pickup
		manifests   []*domain.PickupByOrder
		expUpdates  map[string]*domain.Pickup
		expCreates  map[string]*domain.Pickup
		expManifest []string
	}

	tests := []reconcileTest{
		{
			// One unit of p1 moves from d1's batch to d2: d1's cell shrinks,
			// d2's cell is inserted, d1's untouched cell produces no write.
			name: "reassignment updates and inserts",
			orders: []*domain.Order{
				pickupOrder("o1", "d1", "Dave", "pay-1", qty("p1", 3), qty("p2", 2)),
				pickupOrder("o2", "d2", "Dana", "pay-2", qty("p1", 1)),
			},
			assignments: []domain.Assignment{
				{OrderID: "o1", Driver: domain.AssignedDriver("d1")},
				{OrderID: "o2", Driver: domain.AssignedDriver("d2")},
			},
			accounts: []*domain.Account{driverAccount("d1", "Dave"), driverAccount("d2", "Dana")},
			persisted: []*domain.Pickup{
				{ID: "pk1", Driver: domain.AssignedDriver("d1"), ProductID: "p1",
					Quantity: 4, Status: domain.PickupStatusUnpicked, DeliverDate: deliverDate},
				{ID: "pk2", Driver: domain.AssignedDriver("d1"), ProductID: "p2",
					Quantity: 2, Status: domain.PickupStatusUnpicked, DeliverDate: deliverDate},
			},
			manifests: []*domain.PickupByOrder{
				{ID: "m1", Driver: domain.AssignedDriver("d1"), PaymentID: "pay-1", DeliverDate: deliverDate},
			},
			expUpdates: map[string]*domain.Pickup{
				"d1-p1": {Quantity: 3, Status: domain.PickupStatusUnpicked},
			},
			expCreates: map[string]*domain.Pickup{
				"d2-p1": {Quantity: 1, Status: domain.PickupStatusUnpicked},
			},
			expManifest: []string{"d2-pay-2"},
		},
		{
			name: "matching state writes nothing",
			orders: []*domain.Order{
				pickupOrder("o1", "d1", "Dave", "pay-1", qty("p1", 3)),
			},
			assignments: []domain.Assignment{
				{OrderID: "o1", Driver: domain.AssignedDriver("d1")},
			},
			accounts: []*domain.Account{driverAccount("d1", "Dave")},
			persisted: []*domain.Pickup{
				{ID: "pk1", Driver: domain.AssignedDriver("d1"), ProductID: "p1",
					Quantity: 3, Status: domain.PickupStatusUnpicked, DeliverDate: deliverDate},
			},
			manifests: []*domain.PickupByOrder{
				{ID: "m1", Driver: domain.AssignedDriver("d1"), PaymentID: "pay-1", DeliverDate: deliverDate},
			},
		},
		{
			name: "quantity change on a collected cell surfaces as changed",
			orders: []*domain.Order{
				pickupOrder("o1", "d1", "Dave", "pay-1", qty("p1", 2)),
			},
			accounts: []*domain.Account{driverAccount("d1", "Dave")},
			persisted: []*domain.Pickup{
				{ID: "pk1", Driver: domain.AssignedDriver("d1"), ProductID: "p1",
					Quantity: 3, Status: domain.PickupStatusPickedUp, DeliverDate: deliverDate},
			},
			manifests: []*domain.PickupByOrder{
				{ID: "m1", Driver: domain.AssignedDriver("d1"), PaymentID: "pay-1", DeliverDate: deliverDate},
			},
			expUpdates: map[string]*domain.Pickup{
				"d1-p1": {Quantity: 2, Status: domain.PickupStatusPickedUpChanged},
			},
		},
		{
			// d1 lost its only product, d2 gained one that was soft-deleted
			// before: the first cell is soft-deleted, the second revived.
			name: "zero quantity soft-deletes, assignment revives",
			orders: []*domain.Order{
				pickupOrder("o1", "d2", "Dana", "pay-1", qty("p1", 1)),
			},
			accounts: []*domain.Account{driverAccount("d1", "Dave"), driverAccount("d2", "Dana")},
			persisted: []*domain.Pickup{
				{ID: "pk1", Driver: domain.AssignedDriver("d1"), ProductID: "p1",
					Quantity: 2, Status: domain.PickupStatusUnpicked, DeliverDate: deliverDate},
				{ID: "pk2", Driver: domain.AssignedDriver("d2"), ProductID: "p1",
					Quantity: 0, Status: domain.PickupStatusDeleted, DeliverDate: deliverDate},
			},
			manifests: []*domain.PickupByOrder{
				{ID: "m1", Driver: domain.AssignedDriver("d2"), PaymentID: "pay-1", DeliverDate: deliverDate},
			},
			expUpdates: map[string]*domain.Pickup{
				"d1-p1": {Quantity: 0, Status: domain.PickupStatusDeleted},
				"d2-p1": {Quantity: 1, Status: domain.PickupStatusUnpicked},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ids := mock.NewMockIDGenerator(mockCtrl)

			repo.EXPECT().ListOrdersByDeliverDate(gomock.Any(), deliverDate).
				Return(test.orders, nil).
				Times(2)
			repo.EXPECT().ListAccountsByType(gomock.Any(), domain.AccountTypeDriver).
				Return(test.accounts, nil)
			repo.EXPECT().ListPickups(gomock.Any(), deliverDate).Return(test.persisted, nil)
			repo.EXPECT().ListPickupsByOrder(gomock.Any(), deliverDate).Return(test.manifests, nil)

			updates := make(map[string]*domain.Pickup)
			repo.EXPECT().UpdatePickup(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p *domain.Pickup) (*domain.Pickup, error) {
					updates[p.Key()] = p
					return p, nil
				}).
				Times(len(test.expUpdates))

			creates := make(map[string]*domain.Pickup)
			repo.EXPECT().CreatePickup(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p *domain.Pickup) (*domain.Pickup, error) {
					creates[p.Key()] = p
					return p, nil
				}).
				Times(len(test.expCreates))

			var manifestInserts []string
			repo.EXPECT().CreatePickupByOrder(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p *domain.PickupByOrder) (*domain.PickupByOrder, error) {
					manifestInserts = append(manifestInserts, p.Key())
					return p, nil
				}).
				Times(len(test.expManifest))

			ids.EXPECT().NewID().Return("generated-id").AnyTimes()

			s, err := service.NewPickups(repo, ids, logger)
			assert.NoError(t, err)

			err = s.Reconcile(context.Background(), deliverDate, test.assignments)
			assert.NoError(t, err)

			for key, exp := range test.expUpdates {
				upd, ok := updates[key]
				assert.True(t, ok, "expected update for %s", key)
				if ok {
					assert.Equal(t, exp.Quantity, upd.Quantity, key)
					assert.Equal(t, exp.Status, upd.Status, key)
				}
			}
			for key, exp := range test.expCreates {
				created, ok := creates[key]
				assert.True(t, ok, "expected insert for %s", key)
				if ok {
					assert.Equal(t, exp.Quantity, created.Quantity, key)
					assert.Equal(t, exp.Status, created.Status, key)
					assert.NotEmpty(t, created.ID)
				}
			}
			assert.ElementsMatch(t, test.expManifest, manifestInserts)
		})
	}
}
