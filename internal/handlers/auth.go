package handlers

import (
	"errors"
	"net/http"

	"paywall/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register a new account
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body   registerRequest  true  "Account details"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrEmailTaken):
			// conflict surfaces as a server error on this route
			h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "register_conflict", err, "email", input.Email)
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, "registration failed", "register_failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// @Summary      Log in
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body   loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "session token"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("login_rejected", "email", input.Email)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "login failed", "login_failed", err)
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token})
}
