// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/payment-system/backend/internal/application/usecase/payment"
	"github.com/payment-system/backend/internal/domain/entity"
	"github.com/payment-system/backend/internal/integration/entrypoint/dto"
)

// PaymentController handles payment endpoints.
type PaymentController struct {
	createUseCase       *payment.CreatePaymentUseCase
	getUseCase          *payment.GetPaymentUseCase
	listUseCase         *payment.ListPaymentsUseCase
	updateStatusUseCase *payment.UpdatePaymentStatusUseCase
	cancelUseCase       *payment.CancelPaymentUseCase
	statisticsUseCase   *payment.CategoryStatisticsUseCase
	totalUseCase        *payment.TotalByUserUseCase
	countUseCase        *payment.CountByStatusUseCase
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	createUseCase *payment.CreatePaymentUseCase,
	getUseCase *payment.GetPaymentUseCase,
	listUseCase *payment.ListPaymentsUseCase,
	updateStatusUseCase *payment.UpdatePaymentStatusUseCase,
	cancelUseCase *payment.CancelPaymentUseCase,
	statisticsUseCase *payment.CategoryStatisticsUseCase,
	totalUseCase *payment.TotalByUserUseCase,
	countUseCase *payment.CountByStatusUseCase,
) *PaymentController {
	return &PaymentController{
		createUseCase:       createUseCase,
		getUseCase:          getUseCase,
		listUseCase:         listUseCase,
		updateStatusUseCase: updateStatusUseCase,
		cancelUseCase:       cancelUseCase,
		statisticsUseCase:   statisticsUseCase,
		totalUseCase:        totalUseCase,
		countUseCase:        countUseCase,
	}
}

// Create handles POST /payments requests.
func (c *PaymentController) Create(ctx *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), payment.CreatePaymentInput{
		SenderAccountID:    req.SenderAccountID,
		RecipientAccountID: req.RecipientAccountID,
		CategoryID:         req.CategoryID,
		StatusID:           entity.Status(req.StatusID),
		Amount:             decimal.NewFromFloat(req.Amount),
		Currency:           req.Currency,
		Description:        req.Description,
		Commission:         decimal.NewFromFloat(req.Commission),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatePaymentResponse{
		PaymentID:       output.PaymentID,
		ReferenceNumber: output.ReferenceNumber,
		StatusID:        int64(output.StatusID),
	})
}

// Get handles GET /payments/:id requests.
func (c *PaymentController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment id",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPaymentResponse(output))
}

// List handles GET /payments requests. At most one of status_id,
// user_id, account_id or category_id applies; the first one present
// wins in that order.
func (c *PaymentController) List(ctx *gin.Context) {
	var input payment.ListPaymentsInput

	if statusStr := ctx.Query("status_id"); statusStr != "" {
		id, err := strconv.ParseInt(statusStr, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid status_id",
			})
			return
		}
		status := entity.Status(id)
		input.Status = &status
	}
	if userStr := ctx.Query("user_id"); userStr != "" {
		id, err := strconv.ParseInt(userStr, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid user_id",
			})
			return
		}
		input.UserID = &id
	}
	if accountStr := ctx.Query("account_id"); accountStr != "" {
		id, err := strconv.ParseInt(accountStr, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid account_id",
			})
			return
		}
		input.AccountID = &id
	}
	if categoryStr := ctx.Query("category_id"); categoryStr != "" {
		id, err := strconv.ParseInt(categoryStr, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category_id",
			})
			return
		}
		input.CategoryID = &id
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PaymentListResponse{
		Payments: dto.NewPaymentResponses(output.Payments),
	})
}

// UpdateStatus handles PATCH /payments/:id/status requests.
func (c *PaymentController) UpdateStatus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment id",
		})
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateStatusUseCase.Execute(ctx.Request.Context(), payment.UpdatePaymentStatusInput{
		PaymentID: id,
		NewStatus: entity.Status(req.StatusID),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdatePaymentStatusResponse{
		StatusID: int64(output.StatusID),
		Changed:  output.Changed,
	})
}

// Cancel handles POST /payments/:id/cancel requests.
func (c *PaymentController) Cancel(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment id",
		})
		return
	}

	output, err := c.cancelUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdatePaymentStatusResponse{
		StatusID: int64(entity.StatusCancelled),
		Changed:  output.Changed,
	})
}

// Statistics handles GET /payments/statistics/by-category requests.
func (c *PaymentController) Statistics(ctx *gin.Context) {
	output, err := c.statisticsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	categories := make([]*dto.CategoryStatisticsResponse, 0, len(output.Categories))
	for _, s := range output.Categories {
		categories = append(categories, &dto.CategoryStatisticsResponse{
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
			PaymentCount: s.PaymentCount,
			TotalAmount:  s.TotalAmount.String(),
		})
	}

	ctx.JSON(http.StatusOK, dto.CategoryStatisticsListResponse{
		Categories: categories,
		FromCache:  output.FromCache,
	})
}

// TotalByUser handles GET /payments/totals/by-user/:id requests.
func (c *PaymentController) TotalByUser(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user id",
		})
		return
	}

	output, err := c.totalUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TotalResponse{
		UserID: output.UserID,
		Total:  output.Total.String(),
	})
}

// CountByStatus handles GET /payments/count requests.
func (c *PaymentController) CountByStatus(ctx *gin.Context) {
	statusStr := ctx.Query("status_id")
	if statusStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Query parameter status_id is required",
		})
		return
	}
	id, err := strconv.ParseInt(statusStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid status_id",
		})
		return
	}

	output, err := c.countUseCase.Execute(ctx.Request.Context(), entity.Status(id))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CountResponse{Count: output.Count})
}
