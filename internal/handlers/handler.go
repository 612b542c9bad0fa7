package handlers

import (
	"net/http"

	"paywall/internal/logger"
	"paywall/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Pages; /dashboard is the payment-gated one
	router.GET("/", h.indexPage)
	router.GET("/login", h.loginPage)
	router.GET("/payment", h.paymentPage)
	router.GET("/dashboard", h.dashboard)

	// Account endpoints
	router.POST("/register", h.register)
	router.POST("/login", h.login)

	// Payment endpoints; the success callback never runs anonymously
	router.POST("/create-order", h.createOrder)
	router.POST("/payment-success", h.sessionMiddleware, h.paymentSuccess)

	// Contact form
	router.POST("/contact", h.contact)

	return router
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
