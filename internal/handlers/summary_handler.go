package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/appdotbuilder/personal-finance-dashboard/internal/errors"
	"github.com/appdotbuilder/personal-finance-dashboard/internal/models"
	"github.com/appdotbuilder/personal-finance-dashboard/internal/services"
)

// SummaryHandler handles financial summary requests.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// SummaryQuery represents the query parameters selecting a reporting period.
// Month is required for monthly summaries and ignored for yearly ones.
type SummaryQuery struct {
	Period string `form:"period" binding:"required,budget_period"`
	Year   int    `form:"year" binding:"required,min=1970,max=9999"`
	Month  int    `form:"month" binding:"omitempty,min=1,max=12"`
}

// GetSummary handles computing a financial summary for a period.
// @Summary     Get financial summary
// @Description Get income, expense, and category totals for a monthly or
// @Description yearly period; yearly summaries include a 12-month breakdown
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       period query string true  "Period type (monthly or yearly)"
// @Param       year   query int    true  "Year"
// @Param       month  query int    false "Month (1-12, required for monthly)"
// @Success     200 {object} services.Summary "Financial summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query SummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	summary, err := h.summaryService.GetSummary(userID, services.SummaryRequest{
		Period: models.BudgetPeriod(query.Period),
		Year:   query.Year,
		Month:  query.Month,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
