package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"travelbuddy/internal/models/request_models"
	"travelbuddy/internal/services"
	"travelbuddy/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseController(expenseService services.ExpenseServiceInterface) *ExpenseController {
	return &ExpenseController{
		expenseService: expenseService,
	}
}

// Create godoc
// @Summary Record an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body request_models.CreateExpenseRequest true "Expense payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /expenses [post]
func (e *ExpenseController) Create(c *gin.Context) {
	var req request_models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := e.expenseService.CreateExpense(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Expense recorded successfully")
}

// List godoc
// @Summary List expenses with optional filters
// @Tags Expenses
// @Produce json
// @Param tripId query string false "Filter by trip"
// @Param category query string false "Filter by category"
// @Param startDate query string false "Filter from date (YYYY-MM-DD)"
// @Param endDate query string false "Filter to date (YYYY-MM-DD)"
// @Param limit query int false "Max rows"
// @Success 200 {object} utils.APIResponse
// @Router /expenses [get]
func (e *ExpenseController) List(c *gin.Context) {
	filter := expenseFilterFromQuery(c)

	resp, err := e.expenseService.ListExpenses(c.Request.Context(), c.GetString("user_id"), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Expenses fetched successfully")
}

// Stats godoc
// @Summary Summarize expenses by category
// @Tags Expenses
// @Produce json
// @Param tripId query string false "Filter by trip"
// @Param startDate query string false "Filter from date (YYYY-MM-DD)"
// @Param endDate query string false "Filter to date (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Router /expenses/stats [get]
func (e *ExpenseController) Stats(c *gin.Context) {
	filter := expenseFilterFromQuery(c)

	resp, err := e.expenseService.GetStats(c.Request.Context(), c.GetString("user_id"), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Expense stats fetched successfully")
}

// Get godoc
// @Summary Fetch a single expense
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /expenses/{id} [get]
func (e *ExpenseController) Get(c *gin.Context) {
	resp, err := e.expenseService.GetExpense(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Expense fetched successfully")
}

// Update godoc
// @Summary Update an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body request_models.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /expenses/{id} [put]
func (e *ExpenseController) Update(c *gin.Context) {
	var req request_models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := e.expenseService.UpdateExpense(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Expense updated successfully")
}

// Delete godoc
// @Summary Delete an expense
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /expenses/{id} [delete]
func (e *ExpenseController) Delete(c *gin.Context) {
	if err := e.expenseService.DeleteExpense(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense deleted successfully")
}

func expenseFilterFromQuery(c *gin.Context) request_models.ExpenseFilter {
	limit, _ := strconv.Atoi(c.Query("limit"))
	return request_models.ExpenseFilter{
		TripID:    c.Query("tripId"),
		Category:  c.Query("category"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Limit:     limit,
	}
}
