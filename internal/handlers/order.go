package handlers

import (
	"net/http"
	"time"

	"github.com/gigtrack-dev/gigtrack/internal/utils"
	"github.com/gigtrack-dev/gigtrack/internal/validation"
	"github.com/gin-gonic/gin"
)

type OrderRequest struct {
	Description *string `json:"description"`
	Rate        *string `json:"rate"`
	Location    *string `json:"location"`
	StartDate   *string `json:"start_date"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
	ClientID    *uint   `json:"client_id"`
	JobID       *uint   `json:"job_id"`
}

func (r OrderRequest) toInput() (validation.OrderInput, validation.Errors) {
	in := validation.OrderInput{
		Description: r.Description,
		Rate:        r.Rate,
		Location:    r.Location,
		Status:      r.Status,
		ClientID:    r.ClientID,
		JobID:       r.JobID,
	}

	errs := validation.Errors{}

	if r.StartDate != nil {
		parsed, err := time.Parse(time.DateOnly, *r.StartDate)
		if err != nil {
			errs.Add("start_date", "Invalid date, expected YYYY-MM-DD")
		} else {
			in.StartDate = &parsed
		}
	}

	if r.DueDate != nil {
		parsed, err := time.Parse(time.DateOnly, *r.DueDate)
		if err != nil {
			errs.Add("due_date", "Invalid date, expected YYYY-MM-DD")
		} else {
			in.DueDate = &parsed
		}
	}

	return in, errs
}

func CreateOrder(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var body OrderRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	input, errs := body.toInput()

	if !errs.Empty() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	order, err := store().CreateOrder(userID, input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, order)
}

func UpdateOrder(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	orderID, err := parseIDParam(ctx, "order_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var body OrderRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	input, errs := body.toInput()

	if !errs.Empty() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	order, err := store().UpdateOrder(userID, orderID, input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, order)
}

func DeleteOrder(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	orderID, err := parseIDParam(ctx, "order_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	snapshot, err := store().DeleteOrder(userID, orderID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":       "Order deleted successfully",
		"deleted_order": snapshot,
	})
}
