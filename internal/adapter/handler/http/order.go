package http

import (
	"github.com/duocun-ca/ledgercore/internal/core/domain"
	"github.com/duocun-ca/ledgercore/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type orderItemRequest struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Quantity    int     `json:"quantity"`
	TaxRate     float64 `json:"taxRate"`
}

type createOrderRequest struct {
	ClientID     string             `json:"clientId"`
	ClientName   string             `json:"clientName"`
	MerchantID   string             `json:"merchantId"`
	MerchantName string             `json:"merchantName"`
	DriverID     string             `json:"driverId"`
	Items        []orderItemRequest `json:"items"`
	Tips         float64            `json:"tips"`
	PaymentID    string             `json:"paymentId"`
	DeliverDate  string             `json:"deliverDate"`
}

type orderResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	DeliverDate   string          `json:"deliverDate"`
}

func newOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:            o.ID,
		Code:          o.Code,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		Price:         o.Price,
		Cost:          o.Cost,
		Tax:           o.Tax,
		Total:         o.Total,
		DeliverDate:   o.DeliverDate,
	}
}

func parseItems(reqItems []orderItemRequest) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(reqItems))
	for _, it := range reqItems {
		price, err := decimal.NewFromFloat64(it.Price)
		if err != nil {
			return nil, err
		}
		cost, err := decimal.NewFromFloat64(it.Cost)
		if err != nil {
			return nil, err
		}
		taxRate, err := decimal.NewFromFloat64(it.TaxRate)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       price,
			Cost:        cost,
			Quantity:    it.Quantity,
			TaxRate:     taxRate,
		})
	}
	return items, nil
}

func (h *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		h.handleValidationError(ctx, err)
		return
	}

	items, err := parseItems(req.Items)
	if err != nil {
		h.handleValidationError(ctx, err)
		return
	}
	tips, err := decimal.NewFromFloat64(req.Tips)
	if err != nil {
		h.handleValidationError(ctx, err)
		return
	}

	order, err := h.service.Create(ctx, &domain.Order{
		ClientID:     req.ClientID,
		ClientName:   req.ClientName,
		MerchantID:   req.MerchantID,
		MerchantName: req.MerchantName,
		Driver:       domain.AssignedDriver(req.DriverID),
		Items:        items,
		Tips:         tips,
		PaymentID:    req.PaymentID,
		DeliverDate:  req.DeliverDate,
	})
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	h.handleSuccess(ctx, newOrderResponse(order))
}

func (h *OrderHandler) MarkPaid(ctx *gin.Context) {
	order, err := h.service.MarkPaid(ctx, ctx.Param("id"))
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	h.handleSuccess(ctx, newOrderResponse(order))
}

type itemSetRequest struct {
	Items []orderItemRequest `json:"items"`
}

func (h *OrderHandler) Split(ctx *gin.Context) {
	req := itemSetRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		h.handleValidationError(ctx, err)
		return
	}

	items, err := parseItems(req.Items)
	if err != nil {
		h.handleValidationError(ctx, err)
		return
	}

	sibling, err := h.service.Split(ctx, ctx.Param("id"), items)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	h.handleSuccess(ctx, newOrderResponse(sibling))
}

func (h *OrderHandler) CancelItems(ctx *gin.Context) {
	req := itemSetRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		h.handleValidationError(ctx, err)
		return
	}

	items, err := parseItems(req.Items)
	if err != nil {
		h.handleValidationError(ctx, err)
		return
	}

	sibling, err := h.service.CancelItems(ctx, ctx.Param("id"), items)
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	h.handleSuccess(ctx, newOrderResponse(sibling))
}

func (h *OrderHandler) Remove(ctx *gin.Context) {
	err := h.service.Remove(ctx, ctx.Param("id"))
	if err != nil {
		h.handleError(ctx, err)
		return
	}
	h.handleSuccessWithStatus(ctx, nil, 200)
}
