package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/analytics"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// AnalyticsHandler serves dashboard aggregates. It loads the user's
// transactions through the transaction service and hands them to the
// pure functions in the analytics package; nothing is stored.
type AnalyticsHandler struct {
	transactionService services.TransactionServicer
	categoryService    services.CategoryServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(transactionService services.TransactionServicer, categoryService services.CategoryServicer) *AnalyticsHandler {
	return &AnalyticsHandler{
		transactionService: transactionService,
		categoryService:    categoryService,
	}
}

// GetSummary returns the income/expense totals for one month
// @Summary     Monthly summary
// @Description Get income, expense, balance, and savings rate for a month (defaults to the current month)
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month key (YYYY-MM, default current month)"
// @Success     200 {object} analytics.MonthlySummary "Monthly summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	month := c.Query("month")
	if month == "" {
		month = time.Now().Format(models.MonthLayout)
	} else if !monthKeyRegex.MatchString(month) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month, use YYYY-MM"))
		return
	}

	transactions, err := h.transactionService.List(userID, services.TransactionFilter{Month: &month})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": analytics.Summarize(transactions, month)})
}

// GetTrend returns the trailing-months trend series
// @Summary     Trend series
// @Description Get per-month income/expense totals for the trailing N months, oldest first. Months without transactions are zero-filled.
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Number of trailing months (default 6, max 24)"
// @Success     200 {array} analytics.TrendPoint "Trend series"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/trend [get]
func (h *AnalyticsHandler) GetTrend(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	months := 6
	if v := c.Query("months"); v != "" {
		n, parseErr := strconv.Atoi(v)
		if parseErr != nil || n < 1 || n > 24 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "months must be between 1 and 24"))
			return
		}
		months = n
	}

	transactions, err := h.transactionService.List(userID, services.TransactionFilter{})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trend": analytics.Trend(transactions, time.Now(), months)})
}

// GetBreakdown returns per-category totals for one transaction type
// @Summary     Category breakdown
// @Description Get per-category totals and percentage shares for a transaction type, optionally restricted to a month
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       type  query string true  "Transaction type (income, expense)"
// @Param       month query string false "Month key (YYYY-MM)"
// @Success     200 {array} analytics.CategoryBreakdown "Category breakdown"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/breakdown [get]
func (h *AnalyticsHandler) GetBreakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionType := models.TransactionType(c.Query("type"))
	switch transactionType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense"))
		return
	}

	month := c.Query("month")
	if month != "" && !monthKeyRegex.MatchString(month) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month, use YYYY-MM"))
		return
	}

	transactions, err := h.transactionService.List(userID, services.TransactionFilter{Type: &transactionType})
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.List(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"breakdown": analytics.Breakdown(transactions, categories, transactionType, month),
	})
}
