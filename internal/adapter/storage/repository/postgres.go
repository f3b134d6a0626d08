package repository

import (
	"context"
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/duocun-ca/ledgercore/internal/adapter/storage"
	"github.com/duocun-ca/ledgercore/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func nullDriver(d domain.DriverRef) *string {
	if !d.Assigned {
		return nil
	}
	id := d.ID
	return &id
}

func (r *Repository) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	statement := r.db.QueryBuilder.Insert("accounts").
		Columns("id", "username", "account_type", "balance", "created").
		Values(account.ID, account.Username, account.Type, account.Balance, account.Created)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return account, nil
}

func (r *Repository) ReadAccount(ctx context.Context, id string) (*domain.Account, error) {
	return r.readAccountWhere(ctx, sq.Eq{"id": id})
}

func (r *Repository) ReadAccountByName(ctx context.Context, username string) (*domain.Account, error) {
	return r.readAccountWhere(ctx, sq.Eq{"username": username})
}

func (r *Repository) readAccountWhere(ctx context.Context, where sq.Eq) (*domain.Account, error) {
	statement := r.db.QueryBuilder.
		Select("id", "username", "account_type", "balance", "created", "modified").
		From("accounts").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	account := domain.Account{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&account.ID,
		&account.Username,
		&account.Type,
		&account.Balance,
		&account.Created,
		&account.Modified,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &account, nil
}

func (r *Repository) ListAccountsByType(ctx context.Context, accountType domain.AccountType) ([]*domain.Account, error) {
	statement := r.db.QueryBuilder.
		Select("id", "username", "account_type", "balance", "created", "modified").
		From("accounts").
		Where(sq.Eq{"account_type": accountType}).
		OrderBy("username")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Account, 0)
	for rows.Next() {
		account := domain.Account{}
		err := rows.Scan(
			&account.ID,
			&account.Username,
			&account.Type,
			&account.Balance,
			&account.Created,
			&account.Modified,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &account)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdateAccountBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	statement := r.db.QueryBuilder.Update("accounts").
		Set("balance", balance).
		Set("modified", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

var transactionColumns = []string{"id", "seq", "from_id", "to_id", "from_name", "to_name",
	"amount", "action_code", "order_id", "payment_id", "cancelled_order_ids",
	"from_balance", "to_balance", "status", "delivered", "created", "modified"}

func (r *Repository) CreateTransaction(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
	cancelled := tr.CancelledOrderIDs
	if cancelled == nil {
		cancelled = []string{}
	}

	statement := r.db.QueryBuilder.Insert("transactions").
		Columns("id", "from_id", "to_id", "from_name", "to_name", "amount", "action_code",
			"order_id", "payment_id", "cancelled_order_ids", "from_balance", "to_balance",
			"status", "delivered", "created").
		Values(tr.ID, tr.FromID, tr.ToID, tr.FromName, tr.ToName, tr.Amount, tr.ActionCode,
			tr.OrderID, tr.PaymentID, cancelled, tr.FromBalance, tr.ToBalance,
			tr.Status, nullTime(tr.Delivered), tr.Created).
		Suffix("RETURNING seq")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&tr.Seq)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return tr, nil
}

func (r *Repository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	statement := r.db.QueryBuilder.
		Select(transactionColumns...).
		From("transactions").
		Where(sq.And{
			sq.Or{sq.Eq{"from_id": accountID}, sq.Eq{"to_id": accountID}},
			sq.NotEq{"status": domain.TransactionStatusDeleted},
		}).
		OrderBy("created", "seq")

	return r.listTransactions(ctx, statement)
}

func (r *Repository) ListTransactionsByOrder(ctx context.Context, orderID string) ([]*domain.Transaction, error) {
	statement := r.db.QueryBuilder.
		Select(transactionColumns...).
		From("transactions").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created", "seq")

	return r.listTransactions(ctx, statement)
}

func (r *Repository) listTransactions(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Transaction, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Transaction, 0)
	for rows.Next() {
		tr := domain.Transaction{}
		var delivered *time.Time
		err := rows.Scan(
			&tr.ID,
			&tr.Seq,
			&tr.FromID,
			&tr.ToID,
			&tr.FromName,
			&tr.ToName,
			&tr.Amount,
			&tr.ActionCode,
			&tr.OrderID,
			&tr.PaymentID,
			&tr.CancelledOrderIDs,
			&tr.FromBalance,
			&tr.ToBalance,
			&tr.Status,
			&delivered,
			&tr.Created,
			&tr.Modified,
		)
		if err != nil {
			return nil, err
		}
		if delivered != nil {
			tr.Delivered = *delivered
		}
		list = append(list, &tr)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdateTransactionAmount(ctx context.Context, id string, amount decimal.Decimal) error {
	statement := r.db.QueryBuilder.Update("transactions").
		Set("amount", amount).
		Set("modified", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) AppendCancelledOrder(ctx context.Context, orderID string, cancelledOrderID string) error {
	statement := r.db.QueryBuilder.Update("transactions").
		Set("cancelled_order_ids", sq.Expr("array_append(cancelled_order_ids, ?)", cancelledOrderID)).
		Set("modified", sq.Expr("now()")).
		Where(sq.Eq{"order_id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) MarkTransactionsDeleted(ctx context.Context, orderIDs []string) error {
	if len(orderIDs) == 0 {
		return nil
	}

	statement := r.db.QueryBuilder.Update("transactions").
		Set("status", domain.TransactionStatusDeleted).
		Set("modified", sq.Expr("now()")).
		Where(sq.Eq{"order_id": orderIDs})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) SaveTransactionSnapshots(ctx context.Context, trs []*domain.Transaction) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, tr := range trs {
			statement := r.db.QueryBuilder.Update("transactions").
				Set("from_balance", tr.FromBalance).
				Set("to_balance", tr.ToBalance).
				Set("modified", sq.Expr("now()")).
				Where(sq.Eq{"id": tr.ID})

			sql, args, err := statement.ToSql()
			if err != nil {
				return err
			}

			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

var orderColumns = []string{"id", "code", "client_id", "client_name", "merchant_id", "merchant_name",
	"driver_id", "driver_name", "items", "price", "cost", "tax", "tips",
	"group_discount", "over_range_charge", "total", "status", "payment_status",
	"payment_id", "deliver_date", "delivered", "created", "modified"}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	order := domain.Order{}
	var driverID *string
	var delivered *time.Time
	var items []byte

	err := row.Scan(
		&order.ID,
		&order.Code,
		&order.ClientID,
		&order.ClientName,
		&order.MerchantID,
		&order.MerchantName,
		&driverID,
		&order.DriverName,
		&items,
		&order.Price,
		&order.Cost,
		&order.Tax,
		&order.Tips,
		&order.GroupDiscount,
		&order.OverRangeCharge,
		&order.Total,
		&order.Status,
		&order.PaymentStatus,
		&order.PaymentID,
		&order.DeliverDate,
		&delivered,
		&order.Created,
		&order.Modified,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, err
	}
	if driverID != nil {
		order.Driver = domain.AssignedDriver(*driverID)
	}
	if delivered != nil {
		order.Delivered = *delivered
	}
	return &order, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}

	statement := r.db.QueryBuilder.Insert("orders").
		Columns("id", "code", "client_id", "client_name", "merchant_id", "merchant_name",
			"driver_id", "driver_name", "items", "price", "cost", "tax", "tips",
			"group_discount", "over_range_charge", "total", "status", "payment_status",
			"payment_id", "deliver_date", "delivered", "created").
		Values(order.ID, order.Code, order.ClientID, order.ClientName, order.MerchantID,
			order.MerchantName, nullDriver(order.Driver), order.DriverName, items,
			order.Price, order.Cost, order.Tax, order.Tips,
			order.GroupDiscount, order.OverRangeCharge, order.Total, order.Status,
			order.PaymentStatus, order.PaymentID, order.DeliverDate,
			nullTime(order.Delivered), order.Created)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, id string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}

	statement := r.db.QueryBuilder.Update("orders").
		Set("driver_id", nullDriver(order.Driver)).
		Set("driver_name", order.DriverName).
		Set("items", items).
		Set("price", order.Price).
		Set("cost", order.Cost).
		Set("tax", order.Tax).
		Set("tips", order.Tips).
		Set("group_discount", order.GroupDiscount).
		Set("over_range_charge", order.OverRangeCharge).
		Set("total", order.Total).
		Set("status", order.Status).
		Set("payment_status", order.PaymentStatus).
		Set("payment_id", order.PaymentID).
		Set("deliver_date", order.DeliverDate).
		Set("delivered", nullTime(order.Delivered)).
		Set("modified", sq.Expr("now()")).
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}
	return order, nil
}

func (r *Repository) ListOrdersByDeliverDate(ctx context.Context, deliverDate string) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"deliver_date": deliverDate}).
		OrderBy("created")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) ListPickups(ctx context.Context, deliverDate string) ([]*domain.Pickup, error) {
	statement := r.db.QueryBuilder.
		Select("id", "driver_id", "driver_name", "product_id", "product_name",
			"quantity", "status", "deliver_date").
		From("pickups").
		Where(sq.Eq{"deliver_date": deliverDate})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Pickup, 0)
	for rows.Next() {
		p := domain.Pickup{}
		var driverID string
		err := rows.Scan(
			&p.ID,
			&driverID,
			&p.DriverName,
			&p.ProductID,
			&p.ProductName,
			&p.Quantity,
			&p.Status,
			&p.DeliverDate,
		)
		if err != nil {
			return nil, err
		}
		p.Driver = domain.AssignedDriver(driverID)
		list = append(list, &p)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) CreatePickup(ctx context.Context, pickup *domain.Pickup) (*domain.Pickup, error) {
	statement := r.db.QueryBuilder.Insert("pickups").
		Columns("id", "driver_id", "driver_name", "product_id", "product_name",
			"quantity", "status", "deliver_date").
		Values(pickup.ID, pickup.Driver.ID, pickup.DriverName, pickup.ProductID,
			pickup.ProductName, pickup.Quantity, pickup.Status, pickup.DeliverDate)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return pickup, nil
}

func (r *Repository) UpdatePickup(ctx context.Context, pickup *domain.Pickup) (*domain.Pickup, error) {
	statement := r.db.QueryBuilder.Update("pickups").
		Set("quantity", pickup.Quantity).
		Set("status", pickup.Status).
		Where(sq.Eq{"id": pickup.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}
	return pickup, nil
}

func (r *Repository) ListPickupsByOrder(ctx context.Context, deliverDate string) ([]*domain.PickupByOrder, error) {
	statement := r.db.QueryBuilder.
		Select("id", "driver_id", "driver_name", "payment_id", "client_name",
			"items", "codes", "quantity", "status", "deliver_date").
		From("pickups_by_order").
		Where(sq.Eq{"deliver_date": deliverDate})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.PickupByOrder, 0)
	for rows.Next() {
		p := domain.PickupByOrder{}
		var driverID string
		var items []byte
		err := rows.Scan(
			&p.ID,
			&driverID,
			&p.DriverName,
			&p.PaymentID,
			&p.ClientName,
			&items,
			&p.Codes,
			&p.Quantity,
			&p.Status,
			&p.DeliverDate,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &p.Lines); err != nil {
			return nil, err
		}
		p.Driver = domain.AssignedDriver(driverID)
		list = append(list, &p)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) CreatePickupByOrder(ctx context.Context, pickup *domain.PickupByOrder) (*domain.PickupByOrder, error) {
	items, err := json.Marshal(pickup.Lines)
	if err != nil {
		return nil, err
	}
	codes := pickup.Codes
	if codes == nil {
		codes = []string{}
	}

	statement := r.db.QueryBuilder.Insert("pickups_by_order").
		Columns("id", "driver_id", "driver_name", "payment_id", "client_name",
			"items", "codes", "quantity", "status", "deliver_date").
		Values(pickup.ID, pickup.Driver.ID, pickup.DriverName, pickup.PaymentID,
			pickup.ClientName, items, codes, pickup.Quantity, pickup.Status,
			pickup.DeliverDate)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return pickup, nil
}
