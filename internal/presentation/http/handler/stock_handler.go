package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wekesa/dukapos-api/internal/application/service"
	"github.com/wekesa/dukapos-api/internal/domain/repository"
	"github.com/wekesa/dukapos-api/internal/presentation/http/dto/request"
	"github.com/wekesa/dukapos-api/internal/presentation/http/dto/response"
	"github.com/wekesa/dukapos-api/pkg/pagination"
)

// StockHandler handles inventory ledger HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Receive handles recording an incoming stock receipt
func (h *StockHandler) Receive(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}
	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	input := &service.ReceiveInput{
		ProductID:  productID,
		LocationID: locationID,
		Qty:        req.Qty,
		RefType:    req.RefType,
		RefID:      req.RefID,
		ActorID:    *userID,
	}
	if req.UnitCost != nil {
		unitCost, err := decimal.NewFromString(*req.UnitCost)
		if err != nil {
			response.BadRequest(c, "Invalid unit cost")
			return
		}
		input.UnitCost = &unitCost
	}

	result, err := h.stockService.Receive(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock received successfully", result)
}

// Issue handles recording an outgoing stock issue
func (h *StockHandler) Issue(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.IssueStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}
	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	result, err := h.stockService.Issue(c.Request.Context(), &service.IssueInput{
		ProductID:  productID,
		LocationID: locationID,
		Qty:        req.Qty,
		RefType:    req.RefType,
		RefID:      req.RefID,
		ActorID:    *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock issued successfully", result)
}

// Transfer handles moving stock between two locations
func (h *StockHandler) Transfer(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.TransferStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}
	fromID, err := uuid.Parse(req.FromLocationID)
	if err != nil {
		response.BadRequest(c, "Invalid source location ID")
		return
	}
	toID, err := uuid.Parse(req.ToLocationID)
	if err != nil {
		response.BadRequest(c, "Invalid destination location ID")
		return
	}

	result, err := h.stockService.Transfer(c.Request.Context(), &service.TransferInput{
		ProductID:      productID,
		FromLocationID: fromID,
		ToLocationID:   toID,
		Qty:            req.Qty,
		ActorID:        *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock transferred successfully", result)
}

// Adjust handles a manual stock correction
func (h *StockHandler) Adjust(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}
	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	result, err := h.stockService.Adjust(c.Request.Context(), &service.AdjustInput{
		ProductID:  productID,
		LocationID: locationID,
		QtyChange:  req.QtyChange,
		Reason:     req.Reason,
		ActorID:    *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock adjusted successfully", result)
}

// ListBalances handles listing all stock balances
func (h *StockHandler) ListBalances(c *gin.Context) {
	balances, err := h.stockService.ListBalances(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock balances retrieved successfully", balances)
}

// ListMovements handles listing stock movements
func (h *StockHandler) ListMovements(c *gin.Context) {
	var filter request.MovementFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.MoveFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		RefID: filter.RefID,
	}
	if filter.ProductID != "" {
		productID, err := uuid.Parse(filter.ProductID)
		if err == nil {
			params.ProductID = &productID
		}
	}
	if filter.LocationID != "" {
		locationID, err := uuid.Parse(filter.LocationID)
		if err == nil {
			params.LocationID = &locationID
		}
	}

	result, err := h.stockService.ListMovements(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock movements retrieved successfully", result)
}

// Audit handles comparing cached product totals against computed balances
func (h *StockHandler) Audit(c *gin.Context) {
	report, err := h.stockService.Audit(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock audit completed", report)
}
