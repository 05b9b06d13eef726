package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"personal_profile/internal/logger"
	"personal_profile/internal/models"
	"personal_profile/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services   *service.Service
	log        *logger.Logger
	sessionTTL time.Duration
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, sessionTTL time.Duration) *Handler {
	return &Handler{services: services, log: log, sessionTTL: sessionTTL}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		// register/login are the only endpoints without a session
		api.POST("/register", h.register)
		api.POST("/login", h.login)

		authed := api.Group("", h.sessionMiddleware)
		{
			authed.POST("/logout", h.logout)
			authed.GET("/profile", h.profile)

			h.registerRecordRoutes(authed, "/achievements", recordRoutes{
				list: h.listAchievements, create: h.createAchievement,
				update: h.updateAchievement, del: h.deleteAchievement,
			})
			h.registerRecordRoutes(authed, "/goals", recordRoutes{
				list: h.listGoals, create: h.createGoal,
				update: h.updateGoal, del: h.deleteGoal,
			})
			h.registerRecordRoutes(authed, "/expenses", recordRoutes{
				list: h.listExpenses, create: h.createExpense,
				update: h.updateExpense, del: h.deleteExpense,
			})
			h.registerRecordRoutes(authed, "/notes", recordRoutes{
				list: h.listNotes, create: h.createNote,
				update: h.updateNote, del: h.deleteNote,
			})
			h.registerRecordRoutes(authed, "/confidential-details", recordRoutes{
				list: h.listConfidential, create: h.createConfidential,
				update: h.updateConfidential, del: h.deleteConfidential,
			})
		}
	}

	return router
}

// recordRoutes is the uniform endpoint set shared by all five resources.
type recordRoutes struct {
	list, create, update, del gin.HandlerFunc
}

func (h *Handler) registerRecordRoutes(api *gin.RouterGroup, path string, r recordRoutes) {
	group := api.Group(path)
	{
		group.GET("", r.list)
		group.POST("", r.create)
		group.PUT("/:id", r.update)
		group.DELETE("/:id", r.del)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindJSONOrBadRequest binds the request body into dst and writes a 400 JSON
// on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return false
	}
	return true
}

// respondError maps domain errors to HTTP statuses. Unexpected errors
// (including decryption failures) are logged server-side and surfaced as a
// generic 500; nothing internal reaches the client.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// idParam parses the :id path parameter; on failure the request is already
// answered with a 400.
func (h *Handler) idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
