package http

import (
	"github.com/duocun-ca/ledgercore/internal/core/domain"
	"github.com/duocun-ca/ledgercore/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PickupHandler struct {
	Handler
	service port.PickupService
}

func NewPickupHandler(service port.PickupService, logger *zap.Logger) (*PickupHandler, error) {
	return &PickupHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type assignmentRequest struct {
	OrderID  string `json:"orderId"`
	DriverID string `json:"driverId"`
}

type reconcileRequest struct {
	DeliverDate string              `json:"deliverDate"`
	Assignments []assignmentRequest `json:"assignments"`
}

// Reconcile brings the persisted pickup aggregates for a delivery date
// into agreement with the current order assignments. Callers must persist
// the assignments on the orders first.
func (h *PickupHandler) Reconcile(ctx *gin.Context) {
	req := reconcileRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		h.handleValidationError(ctx, err)
		return
	}

	assignments := make([]domain.Assignment, 0, len(req.Assignments))
	for _, a := range req.Assignments {
		assignments = append(assignments, domain.Assignment{
			OrderID: a.OrderID,
			Driver:  domain.AssignedDriver(a.DriverID),
		})
	}

	if err := h.service.Reconcile(ctx, req.DeliverDate, assignments); err != nil {
		h.handleError(ctx, err)
		return
	}
	h.handleSuccessWithStatus(ctx, nil, 200)
}

type pickupResponse struct {
	DriverID    string `json:"driverId"`
	DriverName  string `json:"driverName"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	DeliverDate string `json:"deliverDate"`
}

func (h *PickupHandler) ListPickups(ctx *gin.Context) {
	list, err := h.service.ListPickups(ctx, ctx.Param("date"))
	if err != nil {
		h.handleError(ctx, err)
		return
	}

	result := make([]pickupResponse, 0, len(list))
	for _, p := range list {
		result = append(result, pickupResponse{
			DriverID:    p.Driver.ID,
			DriverName:  p.DriverName,
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			Status:      string(p.Status),
			DeliverDate: p.DeliverDate,
		})
	}

	h.handleSuccess(ctx, result)
}
