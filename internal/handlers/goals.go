package handlers

import (
	"net/http"

	"personal_profile/internal/models"
	"personal_profile/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      List goals
// @Description  q matches title or description; status is an exact match
// @Tags         goals
// @Produce      json
// @Param        q       query  string  false  "Substring filter"
// @Param        status  query  string  false  "Status filter"  Enums(planned,in_progress,complete)
// @Success      200  {array}   models.Goal
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/goals [get]
func (h *Handler) listGoals(c *gin.Context) {
	items, err := h.services.Goals.List(c.Request.Context(), userID(c), models.GoalFilter{
		Q:      c.Query("q"),
		Status: c.Query("status"),
	})
	if err != nil {
		h.respondError(c, err, "goals_list_failed")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Create goal
// @Description  status defaults to planned
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        body  body  service.GoalInput  true  "Goal"
// @Success      201  {object}  models.Goal
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/goals [post]
func (h *Handler) createGoal(c *gin.Context) {
	var input service.GoalInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	item, err := h.services.Goals.Create(c.Request.Context(), userID(c), input)
	if err != nil {
		h.respondError(c, err, "goal_create_failed")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary      Update goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "Goal id"
// @Param        body  body  service.GoalPatch  true  "Fields to change"
// @Success      200  {object}  models.Goal
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/goals/{id} [put]
func (h *Handler) updateGoal(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var patch service.GoalPatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}
	item, err := h.services.Goals.Update(c.Request.Context(), userID(c), id, patch)
	if err != nil {
		h.respondError(c, err, "goal_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary      Delete goal
// @Tags         goals
// @Produce      json
// @Param        id  path  int  true  "Goal id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/goals/{id} [delete]
func (h *Handler) deleteGoal(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.Goals.Delete(c.Request.Context(), userID(c), id); err != nil {
		h.respondError(c, err, "goal_delete_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
