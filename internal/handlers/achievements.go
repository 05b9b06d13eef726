package handlers

import (
	"net/http"

	"personal_profile/internal/models"
	"personal_profile/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      List achievements
// @Description  q matches title or description, case-insensitively
// @Tags         achievements
// @Produce      json
// @Param        q  query  string  false  "Substring filter"
// @Success      200  {array}   models.Achievement
// @Failure      401  {object}  map[string]string
// @Router       /api/achievements [get]
func (h *Handler) listAchievements(c *gin.Context) {
	items, err := h.services.Achievements.List(c.Request.Context(), userID(c),
		models.SearchFilter{Q: c.Query("q")})
	if err != nil {
		h.respondError(c, err, "achievements_list_failed")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Create achievement
// @Tags         achievements
// @Accept       json
// @Produce      json
// @Param        body  body  service.AchievementInput  true  "Achievement"
// @Success      201  {object}  models.Achievement
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/achievements [post]
func (h *Handler) createAchievement(c *gin.Context) {
	var input service.AchievementInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	item, err := h.services.Achievements.Create(c.Request.Context(), userID(c), input)
	if err != nil {
		h.respondError(c, err, "achievement_create_failed")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary      Update achievement
// @Description  Only the provided fields change
// @Tags         achievements
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "Achievement id"
// @Param        body  body  service.AchievementPatch  true  "Fields to change"
// @Success      200  {object}  models.Achievement
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/achievements/{id} [put]
func (h *Handler) updateAchievement(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var patch service.AchievementPatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}
	item, err := h.services.Achievements.Update(c.Request.Context(), userID(c), id, patch)
	if err != nil {
		h.respondError(c, err, "achievement_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary      Delete achievement
// @Tags         achievements
// @Produce      json
// @Param        id  path  int  true  "Achievement id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/achievements/{id} [delete]
func (h *Handler) deleteAchievement(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.Achievements.Delete(c.Request.Context(), userID(c), id); err != nil {
		h.respondError(c, err, "achievement_delete_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
