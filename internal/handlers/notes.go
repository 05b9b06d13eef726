package handlers

import (
	"net/http"

	"personal_profile/internal/models"
	"personal_profile/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      List notes
// @Description  q matches title or content, case-insensitively
// @Tags         notes
// @Produce      json
// @Param        q  query  string  false  "Substring filter"
// @Success      200  {array}   models.Note
// @Failure      401  {object}  map[string]string
// @Router       /api/notes [get]
func (h *Handler) listNotes(c *gin.Context) {
	items, err := h.services.Notes.List(c.Request.Context(), userID(c),
		models.SearchFilter{Q: c.Query("q")})
	if err != nil {
		h.respondError(c, err, "notes_list_failed")
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Create note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        body  body  service.NoteInput  true  "Note"
// @Success      201  {object}  models.Note
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/notes [post]
func (h *Handler) createNote(c *gin.Context) {
	var input service.NoteInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	item, err := h.services.Notes.Create(c.Request.Context(), userID(c), input)
	if err != nil {
		h.respondError(c, err, "note_create_failed")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary      Update note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "Note id"
// @Param        body  body  service.NotePatch  true  "Fields to change"
// @Success      200  {object}  models.Note
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/notes/{id} [put]
func (h *Handler) updateNote(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var patch service.NotePatch
	if ok := h.bindJSONOrBadRequest(c, &patch); !ok {
		return
	}
	item, err := h.services.Notes.Update(c.Request.Context(), userID(c), id, patch)
	if err != nil {
		h.respondError(c, err, "note_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary      Delete note
// @Tags         notes
// @Produce      json
// @Param        id  path  int  true  "Note id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/notes/{id} [delete]
func (h *Handler) deleteNote(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.Notes.Delete(c.Request.Context(), userID(c), id); err != nil {
		h.respondError(c, err, "note_delete_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
