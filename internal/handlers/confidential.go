package handlers

import (
	"net/http"

	"personal_profile/internal/models"
	"personal_profile/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      List confidential details
// @Description  q matches the title only; stored values are never decrypted to filter
// @Tags         confidential-details
// @Produce      json
// @Param        q  query  string  false  "Title substring filter"
// @Success      200  {array}   models.ConfidentialDetail
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/confidential-details [get]
func (h *Handler) listConfidential(c *gin.Context) {
	items, err := h.services.Confidential.List(c.Request.Context(), userID(c),
		models.SearchFilter{Q: c.Query("q")})
	if err != nil {
		h.respondError(c, err, "confidential_list_failed")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Create confidential detail
// @Description  The value is encrypted before it is stored
// @Tags         confidential-details
// @Accept       json
// @Produce      json
// @Param        body  body  service.ConfidentialInput  true  "Detail"
// @Success      201  {object}  models.ConfidentialDetail
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/confidential-details [post]
func (h *Handler) createConfidential(c *gin.Context) {
	var input service.ConfidentialInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	item, err := h.services.Confidential.Create(c.Request.Context(), userID(c), input)
	if err != nil {
		h.respondError(c, err, "confidential_create_failed")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary      Update confidential detail
// @Description  A new value is re-encrypted; the old ciphertext is discarded
// @Tags         confidential-details
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "Detail id"
// @Param        body  body  service.ConfidentialPatch  true  "Fields to change"
// @Success      200  {object}  models.ConfidentialDetail
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/confidential-details/{id} [put]
func (h *Handler) updateConfidential(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var patch service.ConfidentialPatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}
	item, err := h.services.Confidential.Update(c.Request.Context(), userID(c), id, patch)
	if err != nil {
		h.respondError(c, err, "confidential_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary      Delete confidential detail
// @Tags         confidential-details
// @Produce      json
// @Param        id  path  int  true  "Detail id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/confidential-details/{id} [delete]
func (h *Handler) deleteConfidential(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.Confidential.Delete(c.Request.Context(), userID(c), id); err != nil {
		h.respondError(c, err, "confidential_delete_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
