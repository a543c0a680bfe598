package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wekesa/dukapos-api/internal/application/service"
	"github.com/wekesa/dukapos-api/internal/domain/enum"
	"github.com/wekesa/dukapos-api/internal/presentation/http/dto/request"
	"github.com/wekesa/dukapos-api/internal/presentation/http/dto/response"
	"github.com/wekesa/dukapos-api/pkg/pagination"
)

// CheckoutHandler handles point-of-sale HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout handles processing a sale
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	total, err := decimal.NewFromString(req.Total)
	if err != nil {
		response.BadRequest(c, "Invalid total")
		return
	}
	discount := decimal.Zero
	if req.DiscountAmount != "" {
		discount, err = decimal.NewFromString(req.DiscountAmount)
		if err != nil {
			response.BadRequest(c, "Invalid discount amount")
			return
		}
	}

	cart := make([]service.CartItem, len(req.Cart))
	for i, item := range req.Cart {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product ID in cart")
			return
		}
		cart[i] = service.CartItem{
			ProductID: productID,
			Quantity:  item.Quantity,
		}
	}

	txn, err := h.checkoutService.Checkout(c.Request.Context(), &service.CheckoutInput{
		Cart:           cart,
		DeclaredTotal:  total,
		DiscountAmount: discount,
		PaymentMethod:  enum.PaymentMethod(req.PaymentMethod),
		CashierID:      *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed successfully", txn)
}

// ListSales handles listing sales transactions
func (h *CheckoutHandler) ListSales(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	params.Validate()

	result, err := h.checkoutService.ListSales(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// GetSale handles getting a single sale with its items
func (h *CheckoutHandler) GetSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	txn, err := h.checkoutService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", txn)
}
