package handlers

import (
	"net/http"
	"strconv"

	"personal_profile/internal/models"
	"personal_profile/internal/service"

	"github.com/gin-gonic/gin"
)

// expenseFilterFromQuery parses the expense list query parameters. Returns
// false if the request was already answered with a 400.
func (h *Handler) expenseFilterFromQuery(c *gin.Context) (models.ExpenseFilter, bool) {
	f := models.ExpenseFilter{
		Q:         c.Query("q"),
		Category:  c.Query("category"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	for name, dst := range map[string]**float64{
		"min_amount": &f.MinAmount,
		"max_amount": &f.MaxAmount,
	} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
			return models.ExpenseFilter{}, false
		}
		*dst = &value
	}
	return f, true
}

// @Summary      List expenses
// @Description  All filters combine with AND semantics; date and amount bounds are inclusive. q matches notes or category.
// @Tags         expenses
// @Produce      json
// @Param        category    query  string  false  "Exact category"
// @Param        start_date  query  string  false  "Inclusive lower date bound (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Inclusive upper date bound (YYYY-MM-DD)"
// @Param        min_amount  query  number  false  "Inclusive lower amount bound"
// @Param        max_amount  query  number  false  "Inclusive upper amount bound"
// @Param        q           query  string  false  "Substring filter"
// @Success      200  {array}   models.Expense
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/expenses [get]
func (h *Handler) listExpenses(c *gin.Context) {
	filter, ok := h.expenseFilterFromQuery(c)
	if !ok {
		return
	}
	items, err := h.services.Expenses.List(c.Request.Context(), userID(c), filter)
	if err != nil {
		h.respondError(c, err, "expenses_list_failed")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Create expense
// @Description  date defaults to today when omitted
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body  service.ExpenseInput  true  "Expense"
// @Success      201  {object}  models.Expense
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/expenses [post]
func (h *Handler) createExpense(c *gin.Context) {
	var input service.ExpenseInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	item, err := h.services.Expenses.Create(c.Request.Context(), userID(c), input)
	if err != nil {
		h.respondError(c, err, "expense_create_failed")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary      Update expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "Expense id"
// @Param        body  body  service.ExpensePatch  true  "Fields to change"
// @Success      200  {object}  models.Expense
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/expenses/{id} [put]
func (h *Handler) updateExpense(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var patch service.ExpensePatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}
	item, err := h.services.Expenses.Update(c.Request.Context(), userID(c), id, patch)
	if err != nil {
		h.respondError(c, err, "expense_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary      Delete expense
// @Tags         expenses
// @Produce      json
// @Param        id  path  int  true  "Expense id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/expenses/{id} [delete]
func (h *Handler) deleteExpense(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.Expenses.Delete(c.Request.Context(), userID(c), id); err != nil {
		h.respondError(c, err, "expense_delete_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
