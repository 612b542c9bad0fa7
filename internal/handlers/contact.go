package handlers

import (
	"errors"
	"net/http"

	"paywall/internal/service"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// @Summary      Send a contact-form message to the operator
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body   contactRequest  true  "Submission"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /contact [post]
func (h *Handler) contact(c *gin.Context) {
	var input contactRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.Contact.Send(c.Request.Context(), input.Name, input.Email, input.Message)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "could not send message", "contact_send_failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
