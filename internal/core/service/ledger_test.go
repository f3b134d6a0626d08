package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/duocun-ca/ledgercore/internal/core/domain"
	"github.com/duocun-ca/ledgercore/internal/core/port/mock"
	"github.com/duocun-ca/ledgercore/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var testTime = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func account(id, name string, accountType domain.AccountType, balance string) *domain.Account {
	return &domain.Account{
		ID:       id,
		Username: name,
		Type:     accountType,
		Balance:  decimal.MustParse(balance),
	}
}

func TestLedger_Append(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type appendTest struct {
		name       string
		tr         domain.Transaction
		mock       func(repo *mock.MockRepository, ids *mock.MockIDGenerator)
		expError   error
		expFromBal string
		expToBal   string
		expToID    string
	}

	tests := []appendTest{
		{
			name: "good append moves both balances",
			tr: domain.Transaction{
				FromID:     "merchant-1",
				ToID:       "bank-1",
				Amount:     decimal.MustParse("6.00"),
				ActionCode: domain.ActionOrderFromMerchant,
				OrderID:    "order-1",
			},
			mock: func(repo *mock.MockRepository, ids *mock.MockIDGenerator) {
				repo.EXPECT().ReadAccount(gomock.Any(), "merchant-1").
					Return(account("merchant-1", "merchant", domain.AccountTypeMerchant, "100.00"), nil)
				repo.EXPECT().ReadAccount(gomock.Any(), "bank-1").
					Return(account("bank-1", domain.AccountNameCashBank, domain.AccountTypeSystem, "50.00"), nil)
				ids.EXPECT().NewID().Return("tx-1")
				ids.EXPECT().Now().Return(testTime)
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
						return tr, nil
					})
				repo.EXPECT().UpdateAccountBalance(gomock.Any(), "merchant-1", decimal.MustParse("106.00")).Return(nil)
				repo.EXPECT().UpdateAccountBalance(gomock.Any(), "bank-1", decimal.MustParse("44.00")).Return(nil)
			},
			expError:   nil,
			expFromBal: "106.00",
			expToBal:   "44.00",
			expToID:    "bank-1",
		},
		{
			name: "missing from account writes nothing",
			tr: domain.Transaction{
				FromID:     "ghost",
				ToID:       "bank-1",
				Amount:     decimal.MustParse("5.00"),
				ActionCode: domain.ActionPayDriverCash,
			},
			mock: func(repo *mock.MockRepository, ids *mock.MockIDGenerator) {
				repo.EXPECT().ReadAccount(gomock.Any(), "ghost").
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrAccountNotFound,
		},
		{
			name: "pay salary redirects to expense account",
			tr: domain.Transaction{
				FromID:     "bank-1",
				ToID:       "driver-1",
				Amount:     decimal.MustParse("200.00"),
				ActionCode: domain.ActionPaySalary,
			},
			mock: func(repo *mock.MockRepository, ids *mock.MockIDGenerator) {
				repo.EXPECT().ReadAccountByName(gomock.Any(), domain.AccountNameExpense).
					Return(account("expense-1", domain.AccountNameExpense, domain.AccountTypeSystem, "0"), nil)
				repo.EXPECT().ReadAccount(gomock.Any(), "bank-1").
					Return(account("bank-1", domain.AccountNameCashBank, domain.AccountTypeSystem, "500.00"), nil)
				repo.EXPECT().ReadAccount(gomock.Any(), "expense-1").
					Return(account("expense-1", domain.AccountNameExpense, domain.AccountTypeSystem, "0"), nil)
				ids.EXPECT().NewID().Return("tx-2")
				ids.EXPECT().Now().Return(testTime)
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
						return tr, nil
					})
				repo.EXPECT().UpdateAccountBalance(gomock.Any(), "bank-1", decimal.MustParse("700.00")).Return(nil)
				repo.EXPECT().UpdateAccountBalance(gomock.Any(), "expense-1", decimal.MustParse("-200.00")).Return(nil)
			},
			expError: nil,
			expToID:  "expense-1",
		},
		{
			name: "zero amount rejected",
			tr: domain.Transaction{
				FromID:     "a",
				ToID:       "b",
				Amount:     decimal.Zero,
				ActionCode: domain.ActionPayDriverCash,
			},
			mock:     func(repo *mock.MockRepository, ids *mock.MockIDGenerator) {},
			expError: domain.ErrNegativeAmount,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ids := mock.NewMockIDGenerator(mockCtrl)
			test.mock(repo, ids)

			l, err := service.NewLedger(repo, ids, logger)
			assert.NoError(t, err)

			tr := test.tr
			result, err := l.Append(context.Background(), &tr)
			assert.Equal(t, test.expError, err)

			if test.expError != nil {
				assert.Nil(t, result)
				return
			}
			if test.expFromBal != "" {
				assert.Equal(t, test.expFromBal, result.FromBalance.String())
				assert.Equal(t, test.expToBal, result.ToBalance.String())
			}
			assert.Equal(t, test.expToID, result.ToID)
		})
	}
}

func TestLedger_CreateAccount(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type createTest struct {
		name        string
		username    string
		accountType domain.AccountType
		mock        func(repo *mock.MockRepository, ids *mock.MockIDGenerator)
		expError    error
	}

	tests := []createTest{
		{
			name:        "driver account starts at zero",
			username:    "Dana",
			accountType: domain.AccountTypeDriver,
			mock: func(repo *mock.MockRepository, ids *mock.MockIDGenerator) {
				ids.EXPECT().NewID().Return("acc-1")
				ids.EXPECT().Now().Return(testTime)
				repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *domain.Account) (*domain.Account, error) {
						assert.Equal(t, "0.00", a.Balance.String())
						return a, nil
					})
			},
		},
		{
			name:        "system type rejected",
			username:    "Sneaky Bank",
			accountType: domain.AccountTypeSystem,
			mock:        func(repo *mock.MockRepository, ids *mock.MockIDGenerator) {},
			expError:    domain.ErrBadRequest,
		},
		{
			name:        "empty username rejected",
			username:    "",
			accountType: domain.AccountTypeClient,
			mock:        func(repo *mock.MockRepository, ids *mock.MockIDGenerator) {},
			expError:    domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ids := mock.NewMockIDGenerator(mockCtrl)
			test.mock(repo, ids)

			l, err := service.NewLedger(repo, ids, logger)
			assert.NoError(t, err)

			account, err := l.CreateAccount(context.Background(), test.username, test.accountType)
			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, "acc-1", account.ID)
				assert.Equal(t, test.username, account.Username)
			}
		})
	}
}

func TestLedger_RecomputeBalance(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	trs := []*domain.Transaction{
		{ID: "t1", Seq: 1, FromID: "client-1", ToID: "bank-1",
			Amount: decimal.MustParse("20.00"), Created: testTime},
		{ID: "t2", Seq: 2, FromID: "bank-1", ToID: "client-1",
			Amount: decimal.MustParse("11.30"), Created: testTime.Add(time.Minute)},
		{ID: "t3", Seq: 3, FromID: "client-1", ToID: "bank-1",
			Amount: decimal.MustParse("5.00"), Created: testTime.Add(2 * time.Minute)},
	}
	// +20.00 - 11.30 + 5.00 from client-1's point of view
	expBalance := "13.70"

	repo := mock.NewMockRepository(mockCtrl)
	ids := mock.NewMockIDGenerator(mockCtrl)

	const runs = 2
	repo.EXPECT().ReadAccount(gomock.Any(), "client-1").
		Return(account("client-1", "client", domain.AccountTypeClient, "999.99"), nil).
		Times(runs)
	repo.EXPECT().ListTransactionsByAccount(gomock.Any(), "client-1").
		Return(trs, nil).
		Times(runs)

	var savedSnapshots []*domain.Transaction
	repo.EXPECT().SaveTransactionSnapshots(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, saved []*domain.Transaction) error {
			savedSnapshots = saved
			return nil
		}).
		Times(runs)
	repo.EXPECT().UpdateAccountBalance(gomock.Any(), "client-1", decimal.MustParse(expBalance)).
		Return(nil).
		Times(runs)

	l, err := service.NewLedger(repo, ids, logger)
	assert.NoError(t, err)

	// Run twice: the second pass must produce identical writes.
	for i := 0; i < runs; i++ {
		acc, err := l.RecomputeBalance(context.Background(), "client-1")
		assert.NoError(t, err)
		assert.Equal(t, expBalance, acc.Balance.String())

		assert.Len(t, savedSnapshots, 3)
		assert.Equal(t, "20.00", savedSnapshots[0].FromBalance.String())
		assert.Equal(t, "8.70", savedSnapshots[1].ToBalance.String())
		assert.Equal(t, "13.70", savedSnapshots[2].FromBalance.String())
	}
}

func TestLedger_CancelCompensation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	original := &domain.Order{
		ID:            "order-1",
		ClientID:      "client-1",
		MerchantID:    "merchant-1",
		PaymentID:     "pay-1",
		Status:        domain.OrderStatusNew,
		PaymentStatus: domain.PaymentStatusPaid,
	}
	// One cancelled unit: price 10.00, tax rate 13, cost 6.00.
	sibling := &domain.Order{
		ID:            "order-2",
		ClientID:      "client-1",
		MerchantID:    "merchant-1",
		PaymentID:     "pay-1",
		Status:        domain.OrderStatusDeleted,
		PaymentStatus: domain.PaymentStatusPaid,
		Cost:          decimal.MustParse("6.00"),
		Total:         decimal.MustParse("11.30"),
	}

	repo := mock.NewMockRepository(mockCtrl)
	ids := mock.NewMockIDGenerator(mockCtrl)

	ids.EXPECT().NewID().Return("tx-1")
	ids.EXPECT().NewID().Return("tx-2")
	ids.EXPECT().Now().Return(testTime).AnyTimes()

	repo.EXPECT().ReadAccountByName(gomock.Any(), domain.AccountNameCashBank).
		Return(account("bank-1", domain.AccountNameCashBank, domain.AccountTypeSystem, "0"), nil)
	repo.EXPECT().ReadAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*domain.Account, error) {
			return account(id, id, domain.AccountTypeClient, "0"), nil
		}).
		AnyTimes()

	var appended []*domain.Transaction
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
			appended = append(appended, tr)
			return tr, nil
		}).
		Times(2)
	repo.EXPECT().UpdateAccountBalance(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	repo.EXPECT().AppendCancelledOrder(gomock.Any(), "order-1", "order-2").Return(nil)

	// Deferred consistency: both parties get a replay afterwards.
	repo.EXPECT().ListTransactionsByAccount(gomock.Any(), "client-1").Return(nil, nil)
	repo.EXPECT().ListTransactionsByAccount(gomock.Any(), "merchant-1").Return(nil, nil)
	repo.EXPECT().SaveTransactionSnapshots(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	l, err := service.NewLedger(repo, ids, logger)
	assert.NoError(t, err)

	err = l.CancelCompensation(context.Background(), original, sibling)
	assert.NoError(t, err)

	assert.Len(t, appended, 2)

	merchantSide := appended[0]
	assert.Equal(t, domain.ActionCancelOrderFromMerchant, merchantSide.ActionCode)
	assert.Equal(t, "6.00", merchantSide.Amount.String())
	assert.Equal(t, "bank-1", merchantSide.FromID)
	assert.Equal(t, "merchant-1", merchantSide.ToID)
	assert.Equal(t, "order-2", merchantSide.OrderID)

	clientSide := appended[1]
	assert.Equal(t, domain.ActionCancelOrderFromDuocun, clientSide.ActionCode)
	assert.Equal(t, "11.30", clientSide.Amount.String())
	assert.Equal(t, "client-1", clientSide.FromID)
	assert.Equal(t, "bank-1", clientSide.ToID)
	assert.Equal(t, "order-2", clientSide.OrderID)
}

func TestLedger_SplitCompensation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	// Pre-split charge was 18.00/33.90; one 10.00/6.00 unit moved out.
	original := &domain.Order{
		ID:            "order-1",
		ClientID:      "client-1",
		MerchantID:    "merchant-1",
		PaymentID:     "pay-1",
		Status:        domain.OrderStatusNew,
		PaymentStatus: domain.PaymentStatusPaid,
		Cost:          decimal.MustParse("12.00"),
		Total:         decimal.MustParse("22.60"),
	}
	sibling := &domain.Order{
		ID:            "order-2",
		ClientID:      "client-1",
		MerchantID:    "merchant-1",
		PaymentID:     "pay-1",
		Status:        domain.OrderStatusNew,
		PaymentStatus: domain.PaymentStatusPaid,
		Cost:          decimal.MustParse("6.00"),
		Total:         decimal.MustParse("11.30"),
	}

	originalPair := []*domain.Transaction{
		{ID: "t1", OrderID: "order-1", ActionCode: domain.ActionOrderFromMerchant,
			Amount: decimal.MustParse("18.00")},
		{ID: "t2", OrderID: "order-1", ActionCode: domain.ActionOrderFromDuocun,
			Amount: decimal.MustParse("33.90")},
		{ID: "t3", OrderID: "order-1", ActionCode: domain.ActionOrderFromDuocun,
			Amount: decimal.MustParse("1.00"), Status: domain.TransactionStatusDeleted},
	}

	repo := mock.NewMockRepository(mockCtrl)
	ids := mock.NewMockIDGenerator(mockCtrl)

	ids.EXPECT().NewID().Return("tx-1")
	ids.EXPECT().NewID().Return("tx-2")
	ids.EXPECT().Now().Return(testTime).AnyTimes()

	repo.EXPECT().ReadAccountByName(gomock.Any(), domain.AccountNameCashBank).
		Return(account("bank-1", domain.AccountNameCashBank, domain.AccountTypeSystem, "0"), nil)
	repo.EXPECT().ReadAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*domain.Account, error) {
			return account(id, id, domain.AccountTypeClient, "0"), nil
		}).
		AnyTimes()

	var appended []*domain.Transaction
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
			appended = append(appended, tr)
			return tr, nil
		}).
		Times(2)
	repo.EXPECT().UpdateAccountBalance(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	repo.EXPECT().ListTransactionsByOrder(gomock.Any(), "order-1").Return(originalPair, nil)

	shrunk := make(map[string]decimal.Decimal)
	repo.EXPECT().UpdateTransactionAmount(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, amount decimal.Decimal) error {
			shrunk[id] = amount
			return nil
		}).
		Times(2)
	repo.EXPECT().AppendCancelledOrder(gomock.Any(), "order-1", "order-2").Return(nil)

	repo.EXPECT().ListTransactionsByAccount(gomock.Any(), "client-1").Return(nil, nil)
	repo.EXPECT().ListTransactionsByAccount(gomock.Any(), "merchant-1").Return(nil, nil)
	repo.EXPECT().SaveTransactionSnapshots(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	l, err := service.NewLedger(repo, ids, logger)
	assert.NoError(t, err)

	err = l.SplitCompensation(context.Background(), original, sibling)
	assert.NoError(t, err)

	// Sibling pair carries the moved items' charge and references the sibling.
	assert.Len(t, appended, 2)
	assert.Equal(t, domain.ActionOrderFromMerchant, appended[0].ActionCode)
	assert.Equal(t, "6.00", appended[0].Amount.String())
	assert.Equal(t, domain.ActionOrderFromDuocun, appended[1].ActionCode)
	assert.Equal(t, "11.30", appended[1].Amount.String())
	assert.Equal(t, "order-2", appended[0].OrderID)
	assert.Equal(t, "order-2", appended[1].OrderID)

	// Original pair shrinks to the remaining items' charge; the flagged
	// entry is left alone.
	assert.Len(t, shrunk, 2)
	assert.Equal(t, "12.00", shrunk["t1"].String())
	assert.Equal(t, "22.60", shrunk["t2"].String())

	// Conservation: the two live client-side amounts still sum to the
	// pre-split total.
	sum, err := shrunk["t2"].Add(appended[1].Amount)
	assert.NoError(t, err)
	assert.Equal(t, "33.90", sum.String())
}

func TestLedger_RemovalReversal(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	order := &domain.Order{
		ID:            "order-1",
		ClientID:      "client-1",
		MerchantID:    "merchant-1",
		Status:        domain.OrderStatusDeleted,
		PaymentStatus: domain.PaymentStatusPaid,
		Cost:          decimal.MustParse("18.00"),
		Total:         decimal.MustParse("33.90"),
	}

	repo := mock.NewMockRepository(mockCtrl)
	ids := mock.NewMockIDGenerator(mockCtrl)

	ids.EXPECT().NewID().Return("tx-1")
	ids.EXPECT().NewID().Return("tx-2")
	ids.EXPECT().Now().Return(testTime).AnyTimes()

	// The original pair carries a trace of a prior partial cancellation.
	repo.EXPECT().ListTransactionsByOrder(gomock.Any(), "order-1").
		Return([]*domain.Transaction{
			{ID: "t1", OrderID: "order-1", ActionCode: domain.ActionOrderFromDuocun,
				CancelledOrderIDs: []string{"order-2"}},
		}, nil)

	// Both the order's entries and the linked cancellation entries leave
	// the replay set, then the reversal pair follows them.
	repo.EXPECT().MarkTransactionsDeleted(gomock.Any(), []string{"order-1", "order-2"}).Return(nil)
	repo.EXPECT().MarkTransactionsDeleted(gomock.Any(), []string{"order-1"}).Return(nil)

	repo.EXPECT().ReadAccountByName(gomock.Any(), domain.AccountNameCashBank).
		Return(account("bank-1", domain.AccountNameCashBank, domain.AccountTypeSystem, "0"), nil)
	repo.EXPECT().ReadAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*domain.Account, error) {
			return account(id, id, domain.AccountTypeClient, "0"), nil
		}).
		AnyTimes()

	var appended []*domain.Transaction
	repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
			appended = append(appended, tr)
			return tr, nil
		}).
		Times(2)
	repo.EXPECT().UpdateAccountBalance(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	repo.EXPECT().ListTransactionsByAccount(gomock.Any(), "client-1").Return(nil, nil)
	repo.EXPECT().ListTransactionsByAccount(gomock.Any(), "merchant-1").Return(nil, nil)
	repo.EXPECT().SaveTransactionSnapshots(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	l, err := service.NewLedger(repo, ids, logger)
	assert.NoError(t, err)

	err = l.RemovalReversal(context.Background(), order)
	assert.NoError(t, err)

	assert.Len(t, appended, 2)
	assert.Equal(t, "18.00", appended[0].Amount.String())
	assert.Equal(t, "33.90", appended[1].Amount.String())
}
