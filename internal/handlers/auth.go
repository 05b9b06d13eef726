package handlers

import (
	"net/http"

	"personal_profile/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  service.RegisterInput  true  "Credentials"
// @Success      201  {object}  map[string]interface{}  "message, user"
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/register [post]
func (h *Handler) register(c *gin.Context) {
	var input service.RegisterInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, token, err := h.services.Register(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "register_failed", "username", input.Username)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"message": "registered", "user": user})
}

// @Summary      Log in with username or email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  service.LoginInput  true  "Credentials"
// @Success      200  {object}  map[string]interface{}  "message, user"
// @Failure      401  {object}  map[string]string
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var input service.LoginInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, token, err := h.services.Login(c.Request.Context(), input)
	if err != nil {
		if h.log != nil {
			h.log.Infow("login_failed", "username", input.Username)
		}
		h.respondError(c, err, "login_failed", "username", input.Username)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"message": "logged in", "user": user})
}

// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/logout [post]
func (h *Handler) logout(c *gin.Context) {
	token, _ := c.Cookie(sessionCookie)
	if err := h.services.Logout(c.Request.Context(), token); err != nil {
		h.respondError(c, err, "logout_failed")
		return
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Router       /api/profile [get]
func (h *Handler) profile(c *gin.Context) {
	user, err := h.services.Profile(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err, "profile_failed")
		return
	}
	c.JSON(http.StatusOK, user)
}
