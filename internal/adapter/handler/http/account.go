package http

import (
	"time"

	"github.com/duocun-ca/ledgercore/internal/core/domain"
	"github.com/duocun-ca/ledgercore/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type AccountHandler struct {
	Handler
	ledger port.LedgerService
}

func NewAccountHandler(ledger port.LedgerService, logger *zap.Logger) (*AccountHandler, error) {
	return &AccountHandler{
		Handler: Handler{logger: logger},
		ledger:  ledger,
	}, nil
}

type createAccountRequest struct {
	Username    string `json:"username"`
	AccountType string `json:"accountType"`
}

type accountResponse struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Type     string          `json:"accountType"`
	Balance  decimal.Decimal `json:"balance"`
}

func newAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:       a.ID,
		Username: a.Username,
		Type:     string(a.Type),
		Balance:  a.Balance,
	}
}

// CreateAccount registers a client, merchant or driver account.
func (h *AccountHandler) CreateAccount(ctx *gin.Context) {
	req := createAccountRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		h.handleValidationError(ctx, err)
		return
	}

	account, err := h.ledger.CreateAccount(ctx, req.Username, domain.AccountType(req.AccountType))
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	h.handleSuccess(ctx, newAccountResponse(account))
}

// ListAccounts lists accounts of one type, e.g. the active drivers.
func (h *AccountHandler) ListAccounts(ctx *gin.Context) {
	list, err := h.ledger.Accounts(ctx, domain.AccountType(ctx.Query("type")))
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	result := make([]accountResponse, 0, len(list))
	for _, a := range list {
		result = append(result, newAccountResponse(a))
	}
	h.handleSuccess(ctx, result)
}

type balanceResponse struct {
	AccountID string          `json:"accountId"`
	Username  string          `json:"username"`
	Balance   decimal.Decimal `json:"balance"`
}

// RecomputeBalance replays the account's ledger history and returns the
// restored balance.
func (h *AccountHandler) RecomputeBalance(ctx *gin.Context) {
	account, err := h.ledger.RecomputeBalance(ctx, ctx.Param("id"))
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	h.handleSuccess(ctx, balanceResponse{
		AccountID: account.ID,
		Username:  account.Username,
		Balance:   account.Balance,
	})
}

type transactionResponse struct {
	ID          string          `json:"id"`
	FromID      string          `json:"fromId"`
	ToID        string          `json:"toId"`
	FromName    string          `json:"fromName"`
	ToName      string          `json:"toName"`
	Amount      decimal.Decimal `json:"amount"`
	ActionCode  string          `json:"actionCode"`
	OrderID     string          `json:"orderId,omitempty"`
	PaymentID   string          `json:"paymentId,omitempty"`
	FromBalance decimal.Decimal `json:"fromBalance"`
	ToBalance   decimal.Decimal `json:"toBalance"`
	Created     time.Time       `json:"created"`
}

// Statement lists the account's live ledger entries in replay order.
func (h *AccountHandler) Statement(ctx *gin.Context) {
	list, err := h.ledger.AccountTransactions(ctx, ctx.Param("id"))
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	result := make([]transactionResponse, 0, len(list))
	for _, tr := range list {
		result = append(result, transactionResponse{
			ID:          tr.ID,
			FromID:      tr.FromID,
			ToID:        tr.ToID,
			FromName:    tr.FromName,
			ToName:      tr.ToName,
			Amount:      tr.Amount,
			ActionCode:  string(tr.ActionCode),
			OrderID:     tr.OrderID,
			PaymentID:   tr.PaymentID,
			FromBalance: tr.FromBalance,
			ToBalance:   tr.ToBalance,
			Created:     tr.Created,
		})
	}

	h.handleSuccess(ctx, result)
}

type appendRequest struct {
	FromID     string  `json:"fromId"`
	ToID       string  `json:"toId"`
	Amount     float64 `json:"amount"`
	ActionCode string  `json:"actionCode"`
	OrderID    string  `json:"orderId"`
	PaymentID  string  `json:"paymentId"`
}

// Append records a ledger entry, e.g. a salary or driver cash payout.
func (h *AccountHandler) Append(ctx *gin.Context) {
	req := appendRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		h.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		h.handleValidationError(ctx, err)
		return
	}

	tr, err := h.ledger.Append(ctx, &domain.Transaction{
		FromID:     req.FromID,
		ToID:       req.ToID,
		Amount:     amount,
		ActionCode: domain.ActionCode(req.ActionCode),
		OrderID:    req.OrderID,
		PaymentID:  req.PaymentID,
	})
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	h.handleSuccess(ctx, transactionResponse{
		ID:          tr.ID,
		FromID:      tr.FromID,
		ToID:        tr.ToID,
		FromName:    tr.FromName,
		ToName:      tr.ToName,
		Amount:      tr.Amount,
		ActionCode:  string(tr.ActionCode),
		OrderID:     tr.OrderID,
		PaymentID:   tr.PaymentID,
		FromBalance: tr.FromBalance,
		ToBalance:   tr.ToBalance,
		Created:     tr.Created,
	})
}
